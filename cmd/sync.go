package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"application-sync/core/config"
	"application-sync/core/database"
	"application-sync/core/lock"
	"application-sync/core/notion"
	"application-sync/core/ratelimit"
	"application-sync/core/secrets"
	"application-sync/core/storage"
	"application-sync/feature/applications"
	"application-sync/feature/archive"
	"application-sync/feature/history"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncDryRun      bool
	syncOutput      string
	syncInterval    time.Duration
	syncMatchPolicy string
)

// syncCmd syncs a CSV export into the Notion database.
var syncCmd = &cobra.Command{
	Use:   "sync <file.csv>",
	Short: "Sync a job application export into Notion",
	Long: `Sync reads the CSV export and processes every row in file order:

  - rows still "bookmarked" or "applying" are skipped without any API call
  - rows without a matching page create one
  - rows whose page already has the same status are skipped
  - rows whose page has another status get the new status written

Calls to the API are spaced by sync.interval_ms (400ms by default).
A failing row is reported and the run continues; the command exits non-zero
when any row failed.

Examples:
  # Decide only, write nothing
  application-sync sync export.csv --dry-run

  # Machine readable summary
  application-sync sync export.csv --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Look up every row but never create or update pages")
	syncCmd.Flags().StringVarP(&syncOutput, "output", "o", "", "Summary format (table, json, yaml)")
	syncCmd.Flags().DurationVar(&syncInterval, "interval", 0, "Minimum pause between API calls (overrides sync.interval_ms)")
	syncCmd.Flags().StringVar(&syncMatchPolicy, "match-policy", "", "How to pick among several matching pages (recent, first)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	format, err := ParseFormat(syncOutput)
	if err != nil {
		return err
	}

	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	applySyncFlags(cmd, cfg)
	if cfg.Notion.Token == "" {
		if token, err := secrets.GetToken(cfg.Notion.DatabaseID); err == nil {
			cfg.Notion.Token = token
		} else if !errors.Is(err, secrets.ErrNotFound) {
			l.Warn("Keychain lookup failed", zap.Error(err))
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	policy, err := applications.ParsePolicy(cfg.Sync.MatchPolicy)
	if err != nil {
		return err
	}

	runLock, err := lock.Acquire(cfg.Sync.DataDir)
	if err != nil {
		return err
	}
	defer runLock.Release()

	limiter, err := ratelimit.New(cfg.Sync.Limiter, time.Duration(cfg.Sync.IntervalMS)*time.Millisecond)
	if err != nil {
		return err
	}
	client, err := notion.NewClient(cfg.Notion)
	if err != nil {
		return err
	}
	client = notion.WithLimiter(client, limiter)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := applications.NewService(client, cfg.Notion.DatabaseID, policy, l,
		openRecorder(ctx, cfg, l),
		openArchiver(cfg, l),
	)

	result, err := svc.Sync(ctx, args[0], cfg.Sync.DryRun)
	if result != nil {
		if renderErr := renderSync(cmd.OutOrStdout(), format, result); renderErr != nil {
			l.Warn("Failed to render summary", zap.Error(renderErr))
		}
	}
	if err != nil {
		return err
	}
	if n := result.Report.Summary.Failed; n > 0 {
		return fmt.Errorf("%d record(s) failed", n)
	}
	return nil
}

// applySyncFlags lets explicit flags win over configuration.
func applySyncFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("dry-run") {
		cfg.Sync.DryRun = syncDryRun
	}
	if flags.Changed("interval") {
		cfg.Sync.IntervalMS = int(syncInterval / time.Millisecond)
	}
	if flags.Changed("match-policy") {
		cfg.Sync.MatchPolicy = syncMatchPolicy
	}
}

// openRecorder connects the run history store. History is optional, so failures
// only produce a warning.
func openRecorder(ctx context.Context, cfg *config.Config, l *zap.Logger) applications.Recorder {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		l.Warn("Run history disabled: database connection failed", zap.Error(err))
		return nil
	}
	repo := history.NewRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		l.Warn("Run history disabled", zap.Error(err))
		return nil
	}
	return history.NewService(repo, l)
}

// openArchiver creates the run archive when storage is enabled.
func openArchiver(cfg *config.Config, l *zap.Logger) applications.Archiver {
	if !cfg.Storage.Enabled {
		return nil
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		l.Warn("Run archive disabled", zap.Error(err))
		return nil
	}
	return archive.NewService(client, cfg.Storage.Bucket, l)
}
