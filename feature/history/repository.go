package history

import (
	"context"
	"errors"
	"fmt"

	"application-sync/feature/history/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("history: run not found")

// Repository reads and writes runs.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over an open connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the history tables.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&models.Run{}, &models.Record{}); err != nil {
		return fmt.Errorf("failed to migrate history tables: %w", err)
	}
	return nil
}

// Save stores a run and its records in one transaction.
func (r *Repository) Save(ctx context.Context, run *models.Run) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		records := run.Records
		run.Records = nil
		defer func() { run.Records = records }()

		if err := tx.Create(run).Error; err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		for i := range records {
			records[i].RunID = run.ID
		}
		if err := tx.CreateInBatches(records, 100).Error; err != nil {
			return fmt.Errorf("failed to save run records: %w", err)
		}
		return nil
	})
}

// List returns the most recent runs, newest first, without their records.
func (r *Repository) List(ctx context.Context, limit int) ([]models.Run, error) {
	var runs []models.Run
	if err := r.db.WithContext(ctx).Order("started_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// Get returns a run with its records in line order.
func (r *Repository) Get(ctx context.Context, id string) (*models.Run, error) {
	var run models.Run
	err := r.db.WithContext(ctx).
		Preload("Records", func(db *gorm.DB) *gorm.DB { return db.Order("line ASC") }).
		First(&run, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load run %s: %w", id, err)
	}
	return &run, nil
}
