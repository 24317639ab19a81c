package applications

import (
	"strings"

	"application-sync/feature/applications/models"

	"golang.org/x/text/cases"
)

// WorkEnvironment derives the work environment from the locations. Each location
// is checked in order for "hybrid", then "remote"; the first location containing
// either decides. Without a match the result is Office.
func WorkEnvironment(locations []string) string {
	fold := cases.Fold()
	for _, loc := range locations {
		folded := fold.String(loc)
		switch {
		case strings.Contains(folded, "hybrid"):
			return models.WorkHybrid
		case strings.Contains(folded, "remote"):
			return models.WorkRemote
		}
	}
	return models.WorkOffice
}
