package history

import (
	"context"

	"application-sync/core/reconcile"
	"application-sync/feature/history/models"

	"go.uber.org/zap"
)

// DefaultLimit is the number of runs listed when no limit is given.
const DefaultLimit = 20

// MaxLimit caps the number of runs listed at once.
const MaxLimit = 200

// Service handles run history operations.
type Service struct {
	repo   *Repository
	logger *zap.Logger
}

// NewService creates a new history service.
func NewService(repo *Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// SaveRun stores the report of a finished run.
func (s *Service) SaveRun(ctx context.Context, runID, source string, report *reconcile.Report) error {
	run := FromReport(runID, source, report)
	if err := s.repo.Save(ctx, run); err != nil {
		return err
	}
	s.logger.Debug("Run recorded", zap.String("run_id", runID), zap.Int("records", len(run.Records)))
	return nil
}

// ListRuns returns recent runs. limit is clamped to [1, MaxLimit].
func (s *Service) ListRuns(ctx context.Context, limit int) ([]models.Run, error) {
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	return s.repo.List(ctx, limit)
}

// GetRun returns a run with its records.
func (s *Service) GetRun(ctx context.Context, id string) (*models.Run, error) {
	return s.repo.Get(ctx, id)
}

// FromReport converts a run report into its stored form.
func FromReport(runID, source string, report *reconcile.Report) *models.Run {
	run := &models.Run{
		ID:          runID,
		Source:      source,
		DryRun:      report.DryRun,
		Interrupted: report.Interrupted,
		Created:     report.Summary.Created,
		Updated:     report.Summary.Updated,
		Skipped:     report.Summary.Skipped,
		Failed:      report.Summary.Failed,
		Total:       report.Summary.Total,
		StartedAt:   report.StartedAt,
		FinishedAt:  report.FinishedAt,
		Records:     make([]models.Record, 0, len(report.Outcomes)),
	}
	for _, o := range report.Outcomes {
		run.Records = append(run.Records, models.Record{
			RunID:     runID,
			Line:      o.Line,
			Key:       o.Key,
			Action:    string(o.Action.Type),
			Reason:    o.Action.Reason,
			TargetID:  o.Action.TargetID,
			ResultID:  o.ResultID,
			Applied:   o.Applied,
			ErrorKind: string(o.Kind),
			Error:     o.Error,
		})
	}
	return run
}
