package reconcile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter_TotalExcludesFailures(t *testing.T) {
	r := &Reporter{}
	r.Record(Outcome{Action: Action{Type: ActionCreate}})
	r.Record(Outcome{Action: Action{Type: ActionUpdate}})
	r.Record(Outcome{Action: Action{Type: ActionUpdate}})
	r.Record(Outcome{Action: Action{Type: ActionSkipUnchanged}})
	r.Record(Outcome{Action: Action{Type: ActionCreate}, Err: errors.New("boom")})

	s := r.Summary()
	assert.Equal(t, 1, s.Created)
	assert.Equal(t, 2, s.Updated)
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, s.Created+s.Updated+s.Skipped, s.Total)
}

func TestActionType(t *testing.T) {
	assert.True(t, ActionCreate.Mutates())
	assert.True(t, ActionUpdate.Mutates())
	assert.False(t, ActionSkipNotApplied.Mutates())
	assert.True(t, ActionSkipUnchanged.IsSkip())
	assert.False(t, ActionCreate.IsSkip())
}
