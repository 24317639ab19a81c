package notion_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"application-sync/core/notion"
	"application-sync/core/notion/mocks"
	"application-sync/core/ratelimit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type countingLimiter struct {
	waits, dones int
	err          error
}

func (l *countingLimiter) Wait(ctx context.Context) error {
	l.waits++
	return l.err
}

func (l *countingLimiter) Done() { l.dones++ }

func TestWithLimiter_EveryCallIsThrottled(t *testing.T) {
	next := new(mocks.Client)
	next.On("QueryDatabase", mock.Anything, "db", mock.Anything).Return([]notion.Page{}, nil)
	next.On("CreatePage", mock.Anything, "db", mock.Anything).Return(&notion.Page{ID: "p"}, nil)
	next.On("UpdatePage", mock.Anything, "p", mock.Anything).Return(nil, errors.New("boom"))

	lim := &countingLimiter{}
	c := notion.WithLimiter(next, lim)
	ctx := context.Background()

	_, err := c.QueryDatabase(ctx, "db", notion.QueryRequest{})
	require.NoError(t, err)
	_, err = c.CreatePage(ctx, "db", notion.Properties{})
	require.NoError(t, err)
	_, err = c.UpdatePage(ctx, "p", notion.Properties{})
	require.Error(t, err)

	assert.Equal(t, 3, lim.waits)
	assert.Equal(t, 3, lim.dones, "failed calls still complete")
	next.AssertExpectations(t)
}

func TestWithLimiter_WaitErrorSkipsCall(t *testing.T) {
	next := new(mocks.Client)
	lim := &countingLimiter{err: context.Canceled}
	c := notion.WithLimiter(next, lim)

	_, err := c.CreatePage(context.Background(), "db", notion.Properties{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, lim.dones)
	next.AssertNotCalled(t, "CreatePage", mock.Anything, mock.Anything, mock.Anything)
}

func TestWithLimiter_MinIntervalBetweenCalls(t *testing.T) {
	const interval = 30 * time.Millisecond

	var stamps []time.Time
	next := new(mocks.Client)
	next.On("QueryDatabase", mock.Anything, "db", mock.Anything).
		Run(func(args mock.Arguments) { stamps = append(stamps, time.Now()) }).
		Return([]notion.Page{}, nil)

	c := notion.WithLimiter(next, ratelimit.NewMinInterval(interval))
	for i := 0; i < 3; i++ {
		_, err := c.QueryDatabase(context.Background(), "db", notion.QueryRequest{})
		require.NoError(t, err)
	}

	require.Len(t, stamps, 3)
	for i := 1; i < len(stamps); i++ {
		assert.GreaterOrEqual(t, stamps[i].Sub(stamps[i-1]), interval)
	}
}
