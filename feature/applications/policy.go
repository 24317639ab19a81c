package applications

import (
	"fmt"
	"strings"

	"application-sync/core/notion"
)

// MatchPolicy selects one page when a lookup returns several.
type MatchPolicy string

const (
	// PolicyRecent picks the most recently edited candidate.
	PolicyRecent MatchPolicy = "recent"
	// PolicyFirst picks the first candidate in the order the store returned.
	PolicyFirst MatchPolicy = "first"
)

// ParsePolicy validates a policy name. Empty means PolicyRecent.
func ParsePolicy(name string) (MatchPolicy, error) {
	switch MatchPolicy(strings.ToLower(strings.TrimSpace(name))) {
	case "", PolicyRecent:
		return PolicyRecent, nil
	case PolicyFirst:
		return PolicyFirst, nil
	default:
		return "", fmt.Errorf("unknown match policy %q (expected %s or %s)", name, PolicyRecent, PolicyFirst)
	}
}

// Choose returns the selected candidate. candidates must not be empty.
// Ties on edit time go to the earlier candidate.
func (p MatchPolicy) Choose(candidates []notion.Page) notion.Page {
	chosen := candidates[0]
	if p != PolicyRecent {
		return chosen
	}
	for _, c := range candidates[1:] {
		if c.LastEditedTime.After(chosen.LastEditedTime) {
			chosen = c
		}
	}
	return chosen
}
