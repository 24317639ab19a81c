// Package notiontest provides an in-memory notion.Client for tests.
package notiontest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"application-sync/core/notion"
)

// Call records one operation received by the store.
type Call struct {
	Method string
	Target string
}

// Store keeps pages in memory and evaluates query filters the way the API does
// for the predicates the sync engine uses.
type Store struct {
	mu    sync.Mutex
	pages []storedPage
	seq   int
	clock time.Time

	// Calls lists every operation in arrival order.
	Calls []Call
	// Errors makes the named method ("QueryDatabase", "CreatePage", "UpdatePage") fail.
	Errors map[string]error
}

type storedPage struct {
	databaseID string
	page       notion.Page
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		clock:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Errors: map[string]error{},
	}
}

// Seed inserts a page directly, without recording a call.
func (s *Store) Seed(databaseID string, props notion.Properties) notion.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(databaseID, props)
}

// Pages returns a copy of the pages of a database in creation order.
func (s *Store) Pages(databaseID string) []notion.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []notion.Page
	for _, sp := range s.pages {
		if sp.databaseID == databaseID {
			out = append(out, sp.page)
		}
	}
	return out
}

// Writes counts create and update calls.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.Calls {
		if c.Method != "QueryDatabase" {
			n++
		}
	}
	return n
}

func (s *Store) QueryDatabase(ctx context.Context, databaseID string, req notion.QueryRequest) ([]notion.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(ctx, "QueryDatabase", databaseID); err != nil {
		return nil, err
	}

	var out []notion.Page
	for _, sp := range s.pages {
		if sp.databaseID != databaseID {
			continue
		}
		if req.Filter == nil || matches(sp.page, *req.Filter) {
			out = append(out, sp.page)
		}
	}

	for _, srt := range req.Sorts {
		if srt.Timestamp != notion.TimestampLastEdited {
			continue
		}
		desc := srt.Direction == notion.SortDescending
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return out[i].LastEditedTime.After(out[j].LastEditedTime)
			}
			return out[i].LastEditedTime.Before(out[j].LastEditedTime)
		})
	}

	if req.PageSize > 0 && len(out) > req.PageSize {
		out = out[:req.PageSize]
	}
	return out, nil
}

func (s *Store) CreatePage(ctx context.Context, databaseID string, props notion.Properties) (*notion.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(ctx, "CreatePage", databaseID); err != nil {
		return nil, err
	}
	page := s.insert(databaseID, props)
	return &page, nil
}

func (s *Store) UpdatePage(ctx context.Context, pageID string, props notion.Properties) (*notion.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(ctx, "UpdatePage", pageID); err != nil {
		return nil, err
	}
	for i := range s.pages {
		p := &s.pages[i].page
		if p.ID != pageID {
			continue
		}
		for name, v := range props {
			p.Properties[name] = v
		}
		p.LastEditedTime = s.tick()
		page := *p
		return &page, nil
	}
	return nil, &notion.APIError{Status: 404, Code: "object_not_found", Message: "Could not find page with ID: " + pageID}
}

func (s *Store) record(ctx context.Context, method, target string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.Calls = append(s.Calls, Call{Method: method, Target: target})
	return s.Errors[method]
}

func (s *Store) insert(databaseID string, props notion.Properties) notion.Page {
	s.seq++
	now := s.tick()
	copied := make(notion.Properties, len(props))
	for k, v := range props {
		copied[k] = v
	}
	page := notion.Page{
		Object:         "page",
		ID:             fmt.Sprintf("page-%04d", s.seq),
		CreatedTime:    now,
		LastEditedTime: now,
		Properties:     copied,
	}
	s.pages = append(s.pages, storedPage{databaseID: databaseID, page: page})
	return page
}

func (s *Store) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func matches(page notion.Page, f notion.Filter) bool {
	for _, pf := range f.And {
		v, ok := page.Properties[pf.Property]
		if !ok {
			return false
		}
		switch {
		case pf.RichText != nil:
			// Text contains is case-insensitive in the API.
			if !strings.Contains(strings.ToLower(v.PlainText()), strings.ToLower(pf.RichText.Contains)) {
				return false
			}
		case pf.MultiSelect != nil:
			found := false
			for _, name := range v.OptionNames() {
				if name == pf.MultiSelect.Contains {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case pf.Date != nil:
			if v.Date == nil || !strings.HasPrefix(v.Date.Start, pf.Date.Equals) {
				return false
			}
		}
	}
	return true
}
