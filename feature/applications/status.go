package applications

import (
	"fmt"
	"strings"

	"application-sync/core/reconcile"
	"application-sync/feature/applications/models"
)

var statusMapping = map[string]string{
	models.SourceBookmarked:   models.StatusNotStarted,
	models.SourceApplying:     models.StatusNotStarted,
	models.SourceApplied:      models.StatusApplied,
	models.SourceInterviewing: models.StatusInterviewing,
	models.SourceNegotiating:  models.StatusInterviewing,
	models.SourceAccepted:     models.StatusAccepted,
}

// MapStatus translates an exported status into the database vocabulary.
// Lookup ignores case and surrounding whitespace.
func MapStatus(source string) (string, error) {
	target, ok := statusMapping[strings.ToLower(strings.TrimSpace(source))]
	if !ok {
		return "", fmt.Errorf("%q: %w", source, reconcile.ErrUnknownStatus)
	}
	return target, nil
}
