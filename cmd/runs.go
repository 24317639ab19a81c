package cmd

import (
	"context"
	"fmt"

	"application-sync/core/database"
	"application-sync/feature/history"

	"github.com/spf13/cobra"
)

var (
	runsLimit  int
	runsOutput string
)

// runsCmd lists past sync runs from the history store.
var runsCmd = &cobra.Command{
	Use:   "runs [run-id]",
	Short: "Show past sync runs",
	Long: `Without arguments, lists the most recent sync runs.
With a run id, shows every record of that run and its outcome.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", history.DefaultLimit, "Number of runs to list")
	runsCmd.Flags().StringVarP(&runsOutput, "output", "o", "", "Output format (table, json, yaml)")

	RootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	format, err := ParseFormat(runsOutput)
	if err != nil {
		return err
	}

	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	repo := history.NewRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		return err
	}
	svc := history.NewService(repo, l)

	if len(args) == 1 {
		run, err := svc.GetRun(ctx, args[0])
		if err != nil {
			return err
		}
		return renderRun(cmd.OutOrStdout(), format, run)
	}

	runs, err := svc.ListRuns(ctx, runsLimit)
	if err != nil {
		return err
	}
	return renderRuns(cmd.OutOrStdout(), format, runs)
}
