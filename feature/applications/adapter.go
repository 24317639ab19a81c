package applications

import (
	"context"
	"fmt"
	"time"

	"application-sync/core/notion"
	"application-sync/core/reconcile"
	"application-sync/feature/applications/models"
)

// Adapter implements reconcile.Adapter for job applications.
type Adapter struct {
	client     notion.Client
	databaseID string
	matcher    *Matcher
	policy     MatchPolicy
	now        func() time.Time
}

// NewAdapter creates an adapter writing to one database. The client is expected
// to be rate limited already (see notion.WithLimiter).
func NewAdapter(client notion.Client, databaseID string, policy MatchPolicy) *Adapter {
	return &Adapter{
		client:     client,
		databaseID: databaseID,
		matcher:    NewMatcher(client, databaseID),
		policy:     policy,
		now:        time.Now,
	}
}

// Name returns the unique name of this adapter.
func (a *Adapter) Name() string {
	return "applications"
}

// Plan maps the status and, unless the application was never submitted, looks up
// the matching page to decide between create, update and skip.
func (a *Adapter) Plan(ctx context.Context, item reconcile.Item) (reconcile.Action, error) {
	app, err := asApplication(item)
	if err != nil {
		return reconcile.Action{}, err
	}

	status, err := MapStatus(app.Status)
	if err != nil {
		return reconcile.Action{Key: app.Key()}, err
	}
	if status == models.StatusNotStarted {
		return skipNotApplied(app), nil
	}

	match, err := a.matcher.Find(ctx, app)
	if err != nil {
		return reconcile.Action{Key: app.Key(), Status: status}, err
	}
	return Decide(app, status, match, a.policy), nil
}

// Apply writes a create or update action and returns the page id.
func (a *Adapter) Apply(ctx context.Context, item reconcile.Item, action reconcile.Action) (string, error) {
	app, err := asApplication(item)
	if err != nil {
		return "", err
	}

	switch action.Type {
	case reconcile.ActionCreate:
		page, err := a.client.CreatePage(ctx, a.databaseID, CreateProperties(app, action.Status, a.now()))
		if err != nil {
			return "", remoteErr("create", err)
		}
		return page.ID, nil
	case reconcile.ActionUpdate:
		page, err := a.client.UpdatePage(ctx, action.TargetID, UpdateProperties(action.Status, a.now()))
		if err != nil {
			return "", remoteErr("update", err)
		}
		return page.ID, nil
	default:
		return "", fmt.Errorf("action %q does not write", action.Type)
	}
}

func asApplication(item reconcile.Item) (models.Application, error) {
	switch v := item.(type) {
	case models.Application:
		return v, nil
	case *models.Application:
		return *v, nil
	default:
		return models.Application{}, fmt.Errorf("unexpected item type %T", item)
	}
}
