package models

import "strings"

// Source statuses, as exported by the job tracker.
const (
	SourceBookmarked   = "bookmarked"
	SourceApplying     = "applying"
	SourceApplied      = "applied"
	SourceInterviewing = "interviewing"
	SourceNegotiating  = "negotiating"
	SourceAccepted     = "accepted"
)

// Target statuses, as configured on the database Status property.
const (
	StatusNotStarted   = "Not started"
	StatusApplied      = "Applied"
	StatusInterviewing = "Interviewing"
	StatusAccepted     = "Accepted"
)

// Work environment options of the Work Environment select property.
const (
	WorkOffice = "Office"
	WorkRemote = "Remote"
	WorkHybrid = "Hybrid"
)

// Database property names.
const (
	PropCompany        = "Company"
	PropRole           = "Role"
	PropStatus         = "Status"
	PropWorkEnv        = "Work Environment"
	PropLocation       = "Location"
	PropDateApplied    = "Date Applied"
	PropLastActionDate = "Last Action Date"
	PropURL            = "URL"
	PropNotes          = "To Do / Other Notes"
)

// Application is one normalized row of the export.
type Application struct {
	Company     string   `json:"company"`
	Role        string   `json:"role"`
	Salary      string   `json:"salary,omitempty"`
	Locations   []string `json:"locations"`
	Status      string   `json:"status"`
	DateSaved   string   `json:"date_saved,omitempty"`
	DateApplied string   `json:"date_applied,omitempty"`
}

// Key returns a human readable identity used in logs and reports.
func (a Application) Key() string {
	return strings.TrimSpace(a.Company) + " / " + strings.TrimSpace(a.Role)
}

// FirstLocation returns the first location, or "" when there is none.
func (a Application) FirstLocation() string {
	if len(a.Locations) == 0 {
		return ""
	}
	return a.Locations[0]
}
