package models

import "time"

// Run is one execution of the sync command.
type Run struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Source      string    `gorm:"size:512" json:"source"`
	DryRun      bool      `json:"dry_run"`
	Interrupted bool      `json:"interrupted"`
	Created     int       `json:"created"`
	Updated     int       `json:"updated"`
	Skipped     int       `json:"skipped"`
	Failed      int       `json:"failed"`
	Total       int       `json:"total"`
	StartedAt   time.Time `gorm:"index" json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	Records     []Record  `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE" json:"records,omitempty"`
}

// TableName overrides the table name used by Run.
func (Run) TableName() string {
	return "sync_runs"
}

// Record is the outcome of one row within a run.
type Record struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	RunID     string `gorm:"index;size:36" json:"-"`
	Line      int    `json:"line"`
	Key       string `gorm:"size:512" json:"key"`
	Action    string `gorm:"size:32" json:"action,omitempty"`
	Reason    string `gorm:"size:512" json:"reason,omitempty"`
	TargetID  string `gorm:"size:64" json:"target_id,omitempty"`
	ResultID  string `gorm:"size:64" json:"result_id,omitempty"`
	Applied   bool   `json:"applied"`
	ErrorKind string `gorm:"size:32" json:"error_kind,omitempty"`
	Error     string `gorm:"type:text" json:"error,omitempty"`
}

// TableName overrides the table name used by Record.
func (Record) TableName() string {
	return "sync_records"
}
