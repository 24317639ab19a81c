package reconcile

// Config holds the sync run settings.
type Config struct {
	// IntervalMS is the minimum pause between remote calls, in milliseconds.
	IntervalMS int `mapstructure:"interval_ms" default:"400"`
	// Limiter selects the rate limiting policy (fixed, token).
	Limiter string `mapstructure:"limiter" default:"fixed"`
	// MatchPolicy resolves ambiguous matches (recent, first).
	MatchPolicy string `mapstructure:"match_policy" default:"recent"`
	// DryRun plans every record without writing.
	DryRun bool `mapstructure:"dry_run" default:"false"`
	// DataDir holds the run lock file.
	DataDir string `mapstructure:"data_dir" default:"."`
}
