package cmd

import (
	"fmt"
	"os"

	"application-sync/core/config"
	"application-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "application-sync",
	Short: "Sync job application exports into Notion",
	Long: `application-sync reads a CSV export of job applications and keeps a Notion
database in step with it: new applications become pages, status changes are
written back, and unchanged rows are left alone.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// configDir is where the .env file is looked up.
var configDir string

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives ISO8601 timestamps for CLI users
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger shared by all commands.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory containing the .env file")
}
