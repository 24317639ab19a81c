package applications

import (
	"context"
	"fmt"

	"application-sync/core/notion"
	"application-sync/core/reconcile"
	"application-sync/feature/applications/models"
)

// MatchKind tells how many remote pages a lookup returned.
type MatchKind string

const (
	MatchNone      MatchKind = "none"
	MatchUnique    MatchKind = "unique"
	MatchAmbiguous MatchKind = "ambiguous"
)

// Match is the result of looking up one application.
type Match struct {
	Kind       MatchKind
	Candidates []notion.Page
}

// Matcher looks up existing pages for an application.
type Matcher struct {
	client     notion.Client
	databaseID string
}

// NewMatcher creates a matcher over one database.
func NewMatcher(client notion.Client, databaseID string) *Matcher {
	return &Matcher{client: client, databaseID: databaseID}
}

// BuildQuery returns the lookup query for an application: company and role
// contain the record's values, the first location is among the page's locations
// and the applied date is equal, the last two only when the record has them.
// Results come back most recently edited first.
func BuildQuery(app models.Application) notion.QueryRequest {
	and := []notion.PropertyFilter{
		{Property: models.PropCompany, RichText: &notion.TextCondition{Contains: app.Company}},
		{Property: models.PropRole, RichText: &notion.TextCondition{Contains: app.Role}},
	}
	if loc := app.FirstLocation(); loc != "" {
		and = append(and, notion.PropertyFilter{Property: models.PropLocation, MultiSelect: &notion.TextCondition{Contains: loc}})
	}
	if app.DateApplied != "" {
		and = append(and, notion.PropertyFilter{Property: models.PropDateApplied, Date: &notion.DateCondition{Equals: app.DateApplied}})
	}

	return notion.QueryRequest{
		Filter: &notion.Filter{And: and},
		Sorts:  []notion.Sort{{Timestamp: notion.TimestampLastEdited, Direction: notion.SortDescending}},
	}
}

// Find runs a single query and classifies its first page of results.
func (m *Matcher) Find(ctx context.Context, app models.Application) (Match, error) {
	pages, err := m.client.QueryDatabase(ctx, m.databaseID, BuildQuery(app))
	if err != nil {
		return Match{}, remoteErr("query", err)
	}

	switch len(pages) {
	case 0:
		return Match{Kind: MatchNone}, nil
	case 1:
		return Match{Kind: MatchUnique, Candidates: pages}, nil
	default:
		return Match{Kind: MatchAmbiguous, Candidates: pages}, nil
	}
}

// remoteErr tags a client failure as a remote call failure of the sync run.
func remoteErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, reconcile.ErrRemoteCall, err)
}
