package applications

import (
	"context"
	"fmt"

	"application-sync/core/notion"
	"application-sync/core/reconcile"
	"application-sync/feature/applications/dataset"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder persists the outcome of a run.
type Recorder interface {
	SaveRun(ctx context.Context, runID, source string, report *reconcile.Report) error
}

// Archiver stores the source file and the report of a run.
type Archiver interface {
	Archive(ctx context.Context, runID, sourcePath string, report *reconcile.Report) error
}

// Result is the outcome of a sync.
type Result struct {
	RunID  string            `json:"run_id"`
	Source string            `json:"source"`
	Report *reconcile.Report `json:"report"`
}

// Service syncs job application exports into a database.
type Service struct {
	adapter  *Adapter
	logger   *zap.Logger
	recorder Recorder
	archiver Archiver
}

// NewService creates a new applications service. recorder and archiver may be nil.
func NewService(client notion.Client, databaseID string, policy MatchPolicy, logger *zap.Logger, recorder Recorder, archiver Archiver) *Service {
	return &Service{
		adapter:  NewAdapter(client, databaseID, policy),
		logger:   logger,
		recorder: recorder,
		archiver: archiver,
	}
}

// Entries normalizes dataset rows. Rows that fail normalization keep their error
// and are reported as failed by the engine.
func Entries(rows []dataset.Row) []reconcile.Entry {
	entries := make([]reconcile.Entry, 0, len(rows))
	for _, row := range rows {
		app, err := Parse(row.Fields)
		entries = append(entries, reconcile.Entry{
			Line: row.Line,
			Key:  app.Key(),
			Item: app,
			Err:  err,
		})
	}
	return entries
}

// Sync reads the export at path and syncs every row in file order. The returned
// error is set when the file cannot be read or ctx was cancelled; record failures
// are only reported in the result.
func (s *Service) Sync(ctx context.Context, path string, dryRun bool) (*Result, error) {
	rows, err := dataset.Open(path)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	l := s.logger.With(zap.String("run_id", runID))
	l.Info("Sync started",
		zap.String("source", path),
		zap.Int("records", len(rows)),
		zap.Bool("dry_run", dryRun),
	)

	spec := &reconcile.Spec{
		Adapter:   s.adapter,
		Options:   reconcile.Options{DryRun: dryRun},
		OnOutcome: func(o reconcile.Outcome) { logOutcome(l, o) },
	}
	report, runErr := reconcile.Run(ctx, spec, Entries(rows))
	if report == nil {
		return nil, runErr
	}

	result := &Result{RunID: runID, Source: path, Report: report}

	// Bookkeeping must outlive a cancelled run context.
	bg := context.WithoutCancel(ctx)
	if s.recorder != nil {
		if err := s.recorder.SaveRun(bg, runID, path, report); err != nil {
			l.Warn("Failed to record run history", zap.Error(err))
		}
	}
	if s.archiver != nil {
		if err := s.archiver.Archive(bg, runID, path, report); err != nil {
			l.Warn("Failed to archive run", zap.Error(err))
		}
	}

	l.Info("Sync finished",
		zap.Int("created", report.Summary.Created),
		zap.Int("updated", report.Summary.Updated),
		zap.Int("skipped", report.Summary.Skipped),
		zap.Int("failed", report.Summary.Failed),
		zap.Duration("duration", report.FinishedAt.Sub(report.StartedAt)),
	)

	if runErr != nil {
		return result, fmt.Errorf("sync interrupted: %w", runErr)
	}
	return result, nil
}

func logOutcome(l *zap.Logger, o reconcile.Outcome) {
	fields := []zap.Field{
		zap.Int("line", o.Line),
		zap.String("record", o.Key),
	}
	if o.Failed() {
		l.Error("Record failed", append(fields, zap.String("kind", string(o.Kind)), zap.Error(o.Err))...)
		return
	}
	fields = append(fields,
		zap.String("action", string(o.Action.Type)),
		zap.String("reason", o.Action.Reason),
	)
	if o.ResultID != "" {
		fields = append(fields, zap.String("page_id", o.ResultID))
	}
	l.Info("Record processed", fields...)
}
