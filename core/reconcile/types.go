package reconcile

import "time"

// ActionType represents the decision taken for one local record.
type ActionType string

const (
	// ActionCreate creates a new remote entity.
	ActionCreate ActionType = "create"
	// ActionUpdate rewrites the status of the matched remote entity.
	ActionUpdate ActionType = "update"
	// ActionSkipNotApplied skips records that were never submitted.
	ActionSkipNotApplied ActionType = "skip_not_applied"
	// ActionSkipUnchanged skips records whose remote status already matches.
	ActionSkipUnchanged ActionType = "skip_unchanged"
)

// Mutates reports whether applying the action writes to the remote store.
func (t ActionType) Mutates() bool {
	return t == ActionCreate || t == ActionUpdate
}

// IsSkip reports whether the action is one of the skip variants.
func (t ActionType) IsSkip() bool {
	return t == ActionSkipNotApplied || t == ActionSkipUnchanged
}

// Action represents a planned decision for one record.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is a human readable identity of the record.
	Key string `json:"key"`

	// Reason explains why this action was chosen.
	Reason string `json:"reason"`

	// TargetID is the matched remote entity, if any.
	TargetID string `json:"target_id,omitempty"`

	// Status is the target status the record maps to.
	Status string `json:"status,omitempty"`

	// Candidates is the number of remote entities the match query returned.
	Candidates int `json:"candidates"`
}

// Item is a local record handed to the adapter. Adapters define the concrete type.
type Item any

// Entry is one ingested row. Err is set when the row could not be turned into an Item.
type Entry struct {
	// Line is the 1-based line of the row in the source file.
	Line int

	// Key is a human readable identity of the row.
	Key string

	// Item is the normalized record.
	Item Item

	// Err is the ingestion failure, if any.
	Err error
}

// Outcome is the tagged result of processing one entry: either a decision that was
// applied, or a failure with its kind.
type Outcome struct {
	// Line is the 1-based line of the row in the source file.
	Line int `json:"line"`

	// Key is a human readable identity of the row.
	Key string `json:"key"`

	// Action is the decision. It is empty when planning failed.
	Action Action `json:"action"`

	// ResultID is the remote entity written by a create or update.
	ResultID string `json:"result_id,omitempty"`

	// Applied is false for dry runs and skips.
	Applied bool `json:"applied"`

	// Kind classifies the failure. Empty on success.
	Kind ErrorKind `json:"error_kind,omitempty"`

	// Error is the failure message. Empty on success.
	Error string `json:"error,omitempty"`

	// Err is the failure. Nil on success.
	Err error `json:"-"`
}

// Failed reports whether processing the entry failed.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Summary provides aggregate counts for a run.
type Summary struct {
	// Created counts records that produced a new remote entity.
	Created int `json:"created"`

	// Updated counts records whose remote status was rewritten.
	Updated int `json:"updated"`

	// Skipped counts both skip variants.
	Skipped int `json:"skipped"`

	// Failed counts records that could not be processed.
	Failed int `json:"failed"`

	// Total is Created + Updated + Skipped.
	Total int `json:"total"`
}

// Report is the result of a run.
type Report struct {
	// Outcomes holds one outcome per processed entry, in source order.
	Outcomes []Outcome `json:"outcomes"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`

	// DryRun is true when no writes were issued.
	DryRun bool `json:"dry_run"`

	// StartedAt is when the first entry was processed.
	StartedAt time.Time `json:"started_at"`

	// FinishedAt is when the run stopped.
	FinishedAt time.Time `json:"finished_at"`

	// Interrupted is true when the run stopped before the last entry.
	Interrupted bool `json:"interrupted"`
}

// Failed reports whether any record failed or the run was interrupted.
func (r *Report) Failed() bool {
	return r.Summary.Failed > 0 || r.Interrupted
}

// Options controls run behavior.
type Options struct {
	// DryRun plans every record but never applies create or update actions.
	DryRun bool
}
