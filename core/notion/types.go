package notion

import (
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Property types used by the applications database.
const (
	PropertyTypeTitle       = "title"
	PropertyTypeRichText    = "rich_text"
	PropertyTypeStatus      = "status"
	PropertyTypeSelect      = "select"
	PropertyTypeMultiSelect = "multi_select"
	PropertyTypeDate        = "date"
	PropertyTypeURL         = "url"
)

// Text is the content of a rich text fragment.
type Text struct {
	Content string `json:"content"`
}

// RichText is a single fragment of a title or rich_text property.
type RichText struct {
	Type      string `json:"type,omitempty"`
	Text      *Text  `json:"text,omitempty"`
	PlainText string `json:"plain_text,omitempty"`
}

// Option is a status, select or multi_select option.
type Option struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Date is the value of a date property. Start is either a date or a date-time.
type Date struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

// PropertyValue is a typed page property value.
// Only the field matching Type is encoded on the wire.
type PropertyValue struct {
	Type        string
	Title       []RichText
	RichText    []RichText
	Status      *Option
	Select      *Option
	MultiSelect []Option
	Date        *Date
	URL         *string
}

// Properties maps property names to values.
type Properties map[string]PropertyValue

// MarshalJSON encodes the value as Notion expects it in create and update requests,
// e.g. {"status": {"name": "Applied"}} or {"url": null}.
func (p PropertyValue) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, 1)
	switch p.Type {
	case PropertyTypeTitle:
		body[p.Type] = nonNilText(p.Title)
	case PropertyTypeRichText:
		body[p.Type] = nonNilText(p.RichText)
	case PropertyTypeStatus:
		body[p.Type] = p.Status
	case PropertyTypeSelect:
		body[p.Type] = p.Select
	case PropertyTypeMultiSelect:
		opts := p.MultiSelect
		if opts == nil {
			opts = []Option{}
		}
		body[p.Type] = opts
	case PropertyTypeDate:
		body[p.Type] = p.Date
	case PropertyTypeURL:
		body[p.Type] = p.URL
	default:
		return nil, fmt.Errorf("notion: unsupported property type %q", p.Type)
	}
	return json.Marshal(body)
}

// UnmarshalJSON decodes a property value returned by the API.
func (p *PropertyValue) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type        string     `json:"type"`
		Title       []RichText `json:"title"`
		RichText    []RichText `json:"rich_text"`
		Status      *Option    `json:"status"`
		Select      *Option    `json:"select"`
		MultiSelect []Option   `json:"multi_select"`
		Date        *Date      `json:"date"`
		URL         *string    `json:"url"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = PropertyValue{
		Type:        raw.Type,
		Title:       raw.Title,
		RichText:    raw.RichText,
		Status:      raw.Status,
		Select:      raw.Select,
		MultiSelect: raw.MultiSelect,
		Date:        raw.Date,
		URL:         raw.URL,
	}
	if p.Type == "" {
		p.Type = p.inferType()
	}
	return nil
}

func (p PropertyValue) inferType() string {
	switch {
	case p.Title != nil:
		return PropertyTypeTitle
	case p.RichText != nil:
		return PropertyTypeRichText
	case p.Status != nil:
		return PropertyTypeStatus
	case p.Select != nil:
		return PropertyTypeSelect
	case p.MultiSelect != nil:
		return PropertyTypeMultiSelect
	case p.Date != nil:
		return PropertyTypeDate
	default:
		return PropertyTypeURL
	}
}

// PlainText joins the fragments of a title or rich_text value.
func (p PropertyValue) PlainText() string {
	fragments := p.RichText
	if p.Type == PropertyTypeTitle {
		fragments = p.Title
	}
	var sb strings.Builder
	for _, f := range fragments {
		switch {
		case f.PlainText != "":
			sb.WriteString(f.PlainText)
		case f.Text != nil:
			sb.WriteString(f.Text.Content)
		}
	}
	return sb.String()
}

// OptionName returns the selected option of a status or select value.
func (p PropertyValue) OptionName() string {
	switch {
	case p.Status != nil:
		return p.Status.Name
	case p.Select != nil:
		return p.Select.Name
	default:
		return ""
	}
}

// OptionNames returns the option names of a multi_select value.
func (p PropertyValue) OptionNames() []string {
	names := make([]string, 0, len(p.MultiSelect))
	for _, o := range p.MultiSelect {
		names = append(names, o.Name)
	}
	return names
}

func nonNilText(t []RichText) []RichText {
	if t == nil {
		return []RichText{}
	}
	return t
}

// Title builds a title value.
func Title(content string) PropertyValue {
	return PropertyValue{Type: PropertyTypeTitle, Title: []RichText{{Text: &Text{Content: content}}}}
}

// RichTextValue builds a rich_text value. An empty content yields an empty fragment list.
func RichTextValue(content string) PropertyValue {
	v := PropertyValue{Type: PropertyTypeRichText, RichText: []RichText{}}
	if content != "" {
		v.RichText = append(v.RichText, RichText{Text: &Text{Content: content}})
	}
	return v
}

// StatusValue builds a status value.
func StatusValue(name string) PropertyValue {
	return PropertyValue{Type: PropertyTypeStatus, Status: &Option{Name: name}}
}

// SelectValue builds a select value.
func SelectValue(name string) PropertyValue {
	return PropertyValue{Type: PropertyTypeSelect, Select: &Option{Name: name}}
}

// MultiSelectValue builds a multi_select value from option names.
func MultiSelectValue(names ...string) PropertyValue {
	opts := make([]Option, 0, len(names))
	for _, n := range names {
		opts = append(opts, Option{Name: n})
	}
	return PropertyValue{Type: PropertyTypeMultiSelect, MultiSelect: opts}
}

// DateValue builds a date value.
func DateValue(start string) PropertyValue {
	return PropertyValue{Type: PropertyTypeDate, Date: &Date{Start: start}}
}

// URLValue builds a url value. A nil url is sent as JSON null.
func URLValue(url *string) PropertyValue {
	return PropertyValue{Type: PropertyTypeURL, URL: url}
}

// Page is a database row.
type Page struct {
	Object         string     `json:"object,omitempty"`
	ID             string     `json:"id"`
	CreatedTime    time.Time  `json:"created_time"`
	LastEditedTime time.Time  `json:"last_edited_time"`
	URL            string     `json:"url,omitempty"`
	Properties     Properties `json:"properties"`
}

// TextCondition filters text and multi_select properties.
type TextCondition struct {
	Contains string `json:"contains"`
}

// DateCondition filters date properties.
type DateCondition struct {
	Equals string `json:"equals"`
}

// PropertyFilter is a single predicate over a named property.
type PropertyFilter struct {
	Property    string         `json:"property"`
	RichText    *TextCondition `json:"rich_text,omitempty"`
	MultiSelect *TextCondition `json:"multi_select,omitempty"`
	Date        *DateCondition `json:"date,omitempty"`
}

// Filter is a compound AND of property predicates.
type Filter struct {
	And []PropertyFilter `json:"and"`
}

// Sort orders query results by a property or a page timestamp.
type Sort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Direction string `json:"direction"`
}

const (
	TimestampLastEdited = "last_edited_time"
	SortDescending      = "descending"
	SortAscending       = "ascending"
)

// QueryRequest is the body of a database query.
type QueryRequest struct {
	Filter   *Filter `json:"filter,omitempty"`
	Sorts    []Sort  `json:"sorts,omitempty"`
	PageSize int     `json:"page_size,omitempty"`
}

// QueryResponse is one page of database query results.
type QueryResponse struct {
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

type parent struct {
	Type       string `json:"type"`
	DatabaseID string `json:"database_id"`
}

type createPageRequest struct {
	Parent     parent     `json:"parent"`
	Properties Properties `json:"properties"`
}

type updatePageRequest struct {
	Properties Properties `json:"properties"`
}
