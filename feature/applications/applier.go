package applications

import (
	"time"

	"application-sync/core/notion"
	"application-sync/feature/applications/models"
)

const lastActionLayout = "2006-01-02T15:04:05.000Z07:00"

// CreateProperties builds the property set of a new page.
func CreateProperties(app models.Application, status string, now time.Time) notion.Properties {
	props := notion.Properties{
		models.PropCompany:        notion.Title(app.Company),
		models.PropRole:           notion.RichTextValue(app.Role),
		models.PropStatus:         notion.StatusValue(status),
		models.PropWorkEnv:        notion.SelectValue(WorkEnvironment(app.Locations)),
		models.PropNotes:          notion.RichTextValue(""),
		models.PropLastActionDate: notion.DateValue(now.UTC().Format(lastActionLayout)),
		models.PropURL:            notion.URLValue(nil),
	}
	if app.DateApplied != "" {
		props[models.PropDateApplied] = notion.DateValue(app.DateApplied)
	}
	if len(app.Locations) > 0 {
		props[models.PropLocation] = notion.MultiSelectValue(app.Locations...)
	}
	return props
}

// UpdateProperties builds the property set written to an existing page.
// Nothing but the status and the last action date is touched.
func UpdateProperties(status string, now time.Time) notion.Properties {
	return notion.Properties{
		models.PropStatus:         notion.StatusValue(status),
		models.PropLastActionDate: notion.DateValue(now.UTC().Format(lastActionLayout)),
	}
}
