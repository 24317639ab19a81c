package applications

import (
	"context"
	"errors"
	"testing"
	"time"

	"application-sync/core/notion"
	"application-sync/core/notion/mocks"
	"application-sync/core/reconcile"
	"application-sync/feature/applications/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBuildQuery(t *testing.T) {
	t.Run("All criteria", func(t *testing.T) {
		q := BuildQuery(models.Application{
			Company:     "Acme",
			Role:        "Engineer",
			Locations:   []string{"NYC USA", "Remote"},
			DateApplied: "2024-01-09",
		})

		require.NotNil(t, q.Filter)
		require.Len(t, q.Filter.And, 4)
		assert.Equal(t, models.PropCompany, q.Filter.And[0].Property)
		assert.Equal(t, "Acme", q.Filter.And[0].RichText.Contains)
		assert.Equal(t, models.PropRole, q.Filter.And[1].Property)
		assert.Equal(t, "Engineer", q.Filter.And[1].RichText.Contains)
		assert.Equal(t, models.PropLocation, q.Filter.And[2].Property)
		assert.Equal(t, "NYC USA", q.Filter.And[2].MultiSelect.Contains)
		assert.Equal(t, models.PropDateApplied, q.Filter.And[3].Property)
		assert.Equal(t, "2024-01-09", q.Filter.And[3].Date.Equals)

		assert.Equal(t, []notion.Sort{{Timestamp: notion.TimestampLastEdited, Direction: notion.SortDescending}}, q.Sorts)
	})

	t.Run("Optional criteria omitted", func(t *testing.T) {
		q := BuildQuery(models.Application{Company: "Acme", Role: "Engineer", Locations: []string{}})
		require.Len(t, q.Filter.And, 2)
	})
}

func TestMatcher_Find(t *testing.T) {
	page := func(id string) notion.Page { return notion.Page{ID: id} }

	tests := []struct {
		name  string
		pages []notion.Page
		kind  MatchKind
	}{
		{name: "None", pages: nil, kind: MatchNone},
		{name: "Unique", pages: []notion.Page{page("a")}, kind: MatchUnique},
		{name: "Ambiguous", pages: []notion.Page{page("a"), page("b")}, kind: MatchAmbiguous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mocks.Client)
			client.On("QueryDatabase", mock.Anything, "db", mock.Anything).Return(tt.pages, nil)

			m, err := NewMatcher(client, "db").Find(context.Background(), models.Application{Company: "Acme", Role: "Engineer"})
			require.NoError(t, err)
			assert.Equal(t, tt.kind, m.Kind)
			assert.Len(t, m.Candidates, len(tt.pages))
			client.AssertExpectations(t)
		})
	}
}

func TestMatcher_FindError(t *testing.T) {
	client := new(mocks.Client)
	apiErr := &notion.APIError{Status: 500, Code: "internal_server_error", Message: "boom"}
	client.On("QueryDatabase", mock.Anything, "db", mock.Anything).Return(nil, apiErr)

	_, err := NewMatcher(client, "db").Find(context.Background(), models.Application{Company: "Acme", Role: "Engineer"})
	assert.ErrorIs(t, err, reconcile.ErrRemoteCall)

	var target *notion.APIError
	assert.True(t, errors.As(err, &target))
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyRecent, p)

	p, err = ParsePolicy("First")
	require.NoError(t, err)
	assert.Equal(t, PolicyFirst, p)

	_, err = ParsePolicy("oldest")
	assert.Error(t, err)
}

func TestMatchPolicy_Choose(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	candidates := []notion.Page{
		{ID: "a", LastEditedTime: base.Add(time.Hour)},
		{ID: "b", LastEditedTime: base.Add(3 * time.Hour)},
		{ID: "c", LastEditedTime: base.Add(3 * time.Hour)},
	}

	assert.Equal(t, "b", PolicyRecent.Choose(candidates).ID)
	assert.Equal(t, "a", PolicyFirst.Choose(candidates).ID)
}

func TestDecide(t *testing.T) {
	app := models.Application{Company: "Acme", Role: "Engineer"}
	withStatus := func(id, status string) notion.Page {
		return notion.Page{ID: id, Properties: notion.Properties{models.PropStatus: notion.StatusValue(status)}}
	}

	tests := []struct {
		name   string
		status string
		match  Match
		want   reconcile.ActionType
		target string
	}{
		{
			name:   "No match creates",
			status: models.StatusApplied,
			match:  Match{Kind: MatchNone},
			want:   reconcile.ActionCreate,
		},
		{
			name:   "Same status skips",
			status: models.StatusApplied,
			match:  Match{Kind: MatchUnique, Candidates: []notion.Page{withStatus("p1", models.StatusApplied)}},
			want:   reconcile.ActionSkipUnchanged,
			target: "p1",
		},
		{
			name:   "Different status updates",
			status: models.StatusInterviewing,
			match:  Match{Kind: MatchUnique, Candidates: []notion.Page{withStatus("p1", models.StatusApplied)}},
			want:   reconcile.ActionUpdate,
			target: "p1",
		},
		{
			name:   "Ambiguous uses policy",
			status: models.StatusAccepted,
			match: Match{Kind: MatchAmbiguous, Candidates: []notion.Page{
				withStatus("p1", models.StatusAccepted),
				withStatus("p2", models.StatusApplied),
			}},
			want:   reconcile.ActionSkipUnchanged,
			target: "p1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action := Decide(app, tt.status, tt.match, PolicyFirst)
			assert.Equal(t, tt.want, action.Type)
			assert.Equal(t, tt.target, action.TargetID)
			assert.Equal(t, tt.status, action.Status)
			assert.Equal(t, "Acme / Engineer", action.Key)
			assert.NotEmpty(t, action.Reason)
		})
	}
}
