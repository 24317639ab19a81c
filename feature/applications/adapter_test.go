package applications

import (
	"context"
	"errors"
	"testing"
	"time"

	"application-sync/core/notion"
	"application-sync/core/notion/notiontest"
	"application-sync/core/reconcile"
	"application-sync/feature/applications/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDB = "db-applications"

var fixedNow = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

func newTestAdapter(store *notiontest.Store, policy MatchPolicy) *Adapter {
	a := NewAdapter(store, testDB, policy)
	a.now = func() time.Time { return fixedNow }
	return a
}

func entryOf(line int, app models.Application) reconcile.Entry {
	return reconcile.Entry{Line: line, Key: app.Key(), Item: app}
}

func run(t *testing.T, adapter reconcile.Adapter, entries ...reconcile.Entry) *reconcile.Report {
	t.Helper()
	report, err := reconcile.Run(context.Background(), &reconcile.Spec{Adapter: adapter}, entries)
	require.NoError(t, err)
	return report
}

func TestAdapter_NotStartedMakesNoCalls(t *testing.T) {
	store := notiontest.NewStore()
	adapter := newTestAdapter(store, PolicyRecent)

	report := run(t, adapter,
		entryOf(2, models.Application{Company: "Acme", Role: "Engineer", Status: "bookmarked"}),
		entryOf(3, models.Application{Company: "Globex", Role: "Analyst", Status: "applying"}),
	)

	assert.Empty(t, store.Calls)
	assert.Equal(t, reconcile.Summary{Skipped: 2, Total: 2}, report.Summary)
	assert.Equal(t, reconcile.ActionSkipNotApplied, report.Outcomes[0].Action.Type)
}

func TestAdapter_UnchangedSkipsWithoutWrites(t *testing.T) {
	store := notiontest.NewStore()
	store.Seed(testDB, notion.Properties{
		models.PropCompany: notion.Title("Acme"),
		models.PropRole:    notion.RichTextValue("Engineer"),
		models.PropStatus:  notion.StatusValue(models.StatusInterviewing),
	})
	adapter := newTestAdapter(store, PolicyRecent)

	report := run(t, adapter, entryOf(2, models.Application{Company: "Acme", Role: "Engineer", Status: "negotiating"}))

	assert.Equal(t, reconcile.ActionSkipUnchanged, report.Outcomes[0].Action.Type)
	assert.Equal(t, 0, store.Writes())
	assert.Len(t, store.Calls, 1)
}

func TestAdapter_CreateProperties(t *testing.T) {
	store := notiontest.NewStore()
	adapter := newTestAdapter(store, PolicyRecent)

	app := models.Application{
		Company:     "Acme",
		Role:        "Engineer",
		Locations:   []string{"NYC USA", "Hybrid"},
		Status:      "applied",
		DateApplied: "2024-01-09",
	}
	report := run(t, adapter, entryOf(2, app))
	require.Equal(t, 1, report.Summary.Created)

	pages := store.Pages(testDB)
	require.Len(t, pages, 1)
	props := pages[0].Properties
	assert.Equal(t, pages[0].ID, report.Outcomes[0].ResultID)
	assert.Equal(t, "Acme", props[models.PropCompany].PlainText())
	assert.Equal(t, "Engineer", props[models.PropRole].PlainText())
	assert.Equal(t, models.StatusApplied, props[models.PropStatus].OptionName())
	assert.Equal(t, models.WorkHybrid, props[models.PropWorkEnv].OptionName())
	assert.Equal(t, []string{"NYC USA", "Hybrid"}, props[models.PropLocation].OptionNames())
	assert.Equal(t, "2024-01-09", props[models.PropDateApplied].Date.Start)
	assert.Equal(t, "2024-03-01T12:30:00.000Z", props[models.PropLastActionDate].Date.Start)
	assert.Nil(t, props[models.PropURL].URL)
	assert.Empty(t, props[models.PropNotes].RichText)
}

func TestAdapter_UpdateTouchesOnlyStatus(t *testing.T) {
	store := notiontest.NewStore()
	seeded := store.Seed(testDB, notion.Properties{
		models.PropCompany:  notion.Title("Acme"),
		models.PropRole:     notion.RichTextValue("Engineer"),
		models.PropStatus:   notion.StatusValue(models.StatusApplied),
		models.PropWorkEnv:  notion.SelectValue(models.WorkOffice),
		models.PropLocation: notion.MultiSelectValue("Berlin"),
	})
	adapter := newTestAdapter(store, PolicyRecent)

	report := run(t, adapter, entryOf(2, models.Application{
		Company:   "Acme",
		Role:      "Engineer",
		Locations: []string{"Berlin"},
		Status:    "accepted",
	}))

	require.Equal(t, 1, report.Summary.Updated)
	assert.Equal(t, seeded.ID, report.Outcomes[0].ResultID)
	assert.Equal(t, []notiontest.Call{
		{Method: "QueryDatabase", Target: testDB},
		{Method: "UpdatePage", Target: seeded.ID},
	}, store.Calls)

	props := store.Pages(testDB)[0].Properties
	assert.Equal(t, models.StatusAccepted, props[models.PropStatus].OptionName())
	assert.Equal(t, models.WorkOffice, props[models.PropWorkEnv].OptionName())
	assert.Equal(t, "2024-03-01T12:30:00.000Z", props[models.PropLastActionDate].Date.Start)
}

func TestAdapter_Convergence(t *testing.T) {
	store := notiontest.NewStore()
	adapter := newTestAdapter(store, PolicyRecent)

	entries := []reconcile.Entry{
		entryOf(2, models.Application{Company: "Acme", Role: "Engineer", Locations: []string{"NYC USA"}, Status: "applied", DateApplied: "2024-01-09"}),
		entryOf(3, models.Application{Company: "Globex", Role: "Analyst", Status: "interviewing"}),
		entryOf(4, models.Application{Company: "Initech", Role: "Developer", Status: "bookmarked"}),
	}

	first := run(t, adapter, entries...)
	assert.Equal(t, reconcile.Summary{Created: 2, Skipped: 1, Total: 3}, first.Summary)
	writes := store.Writes()

	second := run(t, adapter, entries...)
	assert.Equal(t, reconcile.Summary{Skipped: 3, Total: 3}, second.Summary)
	assert.Equal(t, writes, store.Writes())
	assert.Len(t, store.Pages(testDB), 2)
}

func TestAdapter_LaterRowSeesEarlierWrite(t *testing.T) {
	store := notiontest.NewStore()
	adapter := newTestAdapter(store, PolicyRecent)

	report := run(t, adapter,
		entryOf(2, models.Application{Company: "Acme", Role: "Engineer", Status: "applied"}),
		entryOf(3, models.Application{Company: "Acme", Role: "Engineer", Status: "interviewing"}),
	)

	assert.Equal(t, reconcile.Summary{Created: 1, Updated: 1, Total: 2}, report.Summary)
	assert.Equal(t, report.Outcomes[0].ResultID, report.Outcomes[1].Action.TargetID)
	assert.Len(t, store.Pages(testDB), 1)
}

func TestAdapter_AmbiguousPrefersRecent(t *testing.T) {
	store := notiontest.NewStore()
	older := store.Seed(testDB, notion.Properties{
		models.PropCompany: notion.Title("Acme"),
		models.PropRole:    notion.RichTextValue("Engineer"),
		models.PropStatus:  notion.StatusValue(models.StatusApplied),
	})
	newer := store.Seed(testDB, notion.Properties{
		models.PropCompany: notion.Title("Acme"),
		models.PropRole:    notion.RichTextValue("Senior Engineer"),
		models.PropStatus:  notion.StatusValue(models.StatusApplied),
	})

	report := run(t, newTestAdapter(store, PolicyRecent), entryOf(2, models.Application{Company: "Acme", Role: "Engineer", Status: "interviewing"}))
	out := report.Outcomes[0]
	assert.Equal(t, reconcile.ActionUpdate, out.Action.Type)
	assert.Equal(t, 2, out.Action.Candidates)
	assert.Equal(t, newer.ID, out.Action.TargetID)
	assert.NotEqual(t, older.ID, out.Action.TargetID)
}

func TestAdapter_FailuresAreRecordLevel(t *testing.T) {
	store := notiontest.NewStore()
	store.Errors["CreatePage"] = &notion.APIError{Status: 400, Code: "validation_error", Message: "bad property"}
	adapter := newTestAdapter(store, PolicyRecent)

	report := run(t, adapter,
		entryOf(2, models.Application{Company: "Acme", Role: "Engineer", Status: "ghosted"}),
		entryOf(3, models.Application{Company: "Globex", Role: "Analyst", Status: "applied"}),
		entryOf(4, models.Application{Company: "Initech", Role: "Developer", Status: "bookmarked"}),
	)

	assert.Equal(t, reconcile.Summary{Skipped: 1, Failed: 2, Total: 1}, report.Summary)
	assert.Equal(t, reconcile.KindUnknownStatus, report.Outcomes[0].Kind)
	assert.Equal(t, reconcile.KindRemoteCall, report.Outcomes[1].Kind)

	var apiErr *notion.APIError
	assert.True(t, errors.As(report.Outcomes[1].Err, &apiErr))
	assert.Equal(t, "validation_error", apiErr.Code)
}

func TestAdapter_DryRunLooksUpButNeverWrites(t *testing.T) {
	store := notiontest.NewStore()
	adapter := newTestAdapter(store, PolicyRecent)

	report, err := reconcile.Run(context.Background(), &reconcile.Spec{
		Adapter: adapter,
		Options: reconcile.Options{DryRun: true},
	}, []reconcile.Entry{entryOf(2, models.Application{Company: "Acme", Role: "Engineer", Status: "applied"})})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Summary.Created)
	assert.Equal(t, 0, store.Writes())
	assert.Len(t, store.Calls, 1)
}

func TestAdapter_ApplyRejectsSkip(t *testing.T) {
	adapter := newTestAdapter(notiontest.NewStore(), PolicyRecent)
	_, err := adapter.Apply(context.Background(), models.Application{Company: "Acme", Role: "Engineer"}, reconcile.Action{Type: reconcile.ActionSkipUnchanged})
	assert.Error(t, err)

	_, err = adapter.Plan(context.Background(), "not an application")
	assert.Error(t, err)
}
