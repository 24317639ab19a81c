package applications

import (
	"fmt"
	"strings"
	"time"

	"application-sync/core/reconcile"
	"application-sync/feature/applications/models"
)

// Canonical field names produced by the dataset reader.
const (
	FieldCompany     = "company"
	FieldRole        = "role"
	FieldSalary      = "salary"
	FieldLocations   = "locations"
	FieldStatus      = "status"
	FieldDateSaved   = "date_saved"
	FieldDateApplied = "date_applied"
)

const (
	sourceDateLayout = "1/2/2006"
	isoDateLayout    = "2006-01-02"
)

// NormalizeLocations splits a "|" separated location list, strips commas and
// surrounding whitespace, and drops empty pieces. Order is kept.
func NormalizeLocations(raw string) []string {
	out := []string{}
	for _, piece := range strings.Split(raw, "|") {
		piece = strings.TrimSpace(strings.ReplaceAll(piece, ",", ""))
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

// NormalizeDate converts a month/day/year date into YYYY-MM-DD. An empty input
// stays empty. The date is treated as a calendar date with no timezone.
func NormalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	t, err := time.Parse(sourceDateLayout, raw)
	if err != nil {
		return "", fmt.Errorf("%q: %w", raw, reconcile.ErrMalformedDate)
	}
	return t.Format(isoDateLayout), nil
}

// Parse builds an Application from a row keyed by canonical field names.
// Company and role are required.
func Parse(row map[string]string) (models.Application, error) {
	app := models.Application{
		Company:   strings.TrimSpace(row[FieldCompany]),
		Role:      strings.TrimSpace(row[FieldRole]),
		Salary:    row[FieldSalary],
		Locations: NormalizeLocations(row[FieldLocations]),
		Status:    row[FieldStatus],
	}

	if app.Company == "" {
		return app, fmt.Errorf("%s is empty: %w", FieldCompany, reconcile.ErrInvalidRecord)
	}
	if app.Role == "" {
		return app, fmt.Errorf("%s is empty: %w", FieldRole, reconcile.ErrInvalidRecord)
	}

	var err error
	if app.DateSaved, err = NormalizeDate(row[FieldDateSaved]); err != nil {
		return app, fmt.Errorf("%s %w", FieldDateSaved, err)
	}
	if app.DateApplied, err = NormalizeDate(row[FieldDateApplied]); err != nil {
		return app, fmt.Errorf("%s %w", FieldDateApplied, err)
	}
	return app, nil
}
