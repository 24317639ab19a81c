package applications

import (
	"fmt"

	"application-sync/core/notion"
	"application-sync/core/reconcile"
	"application-sync/feature/applications/models"
)

// Decide picks the action for an application whose mapped status is not
// "Not started", given the lookup result. Only the status is compared.
func Decide(app models.Application, status string, match Match, policy MatchPolicy) reconcile.Action {
	action := reconcile.Action{
		Key:        app.Key(),
		Status:     status,
		Candidates: len(match.Candidates),
	}

	if match.Kind == MatchNone || len(match.Candidates) == 0 {
		action.Type = reconcile.ActionCreate
		action.Reason = "no matching page"
		return action
	}

	page := policy.Choose(match.Candidates)
	action.TargetID = page.ID
	current := statusOf(page)

	if current == status {
		action.Type = reconcile.ActionSkipUnchanged
		action.Reason = fmt.Sprintf("status already %q", status)
	} else {
		action.Type = reconcile.ActionUpdate
		action.Reason = fmt.Sprintf("status %q -> %q", current, status)
	}
	if match.Kind == MatchAmbiguous {
		action.Reason += fmt.Sprintf(" (%d candidates, policy %s)", len(match.Candidates), policy)
	}
	return action
}

// skipNotApplied is the action for applications that were never submitted.
func skipNotApplied(app models.Application) reconcile.Action {
	return reconcile.Action{
		Type:   reconcile.ActionSkipNotApplied,
		Key:    app.Key(),
		Status: models.StatusNotStarted,
		Reason: "not applied yet",
	}
}

// statusOf reads the status option of a page.
func statusOf(p notion.Page) string {
	return p.Properties[models.PropStatus].OptionName()
}
