package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"application-sync/core/database"
	"application-sync/core/logger"
	"application-sync/core/notion"
	"application-sync/core/ratelimit"
	"application-sync/core/reconcile"
	"application-sync/core/server"
	"application-sync/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Notion holds the API credential and the target database.
	Notion notion.Config `mapstructure:"notion"`
	// Sync holds the run settings (rate limit, match policy, dry run).
	Sync reconcile.Config `mapstructure:"sync"`
	// Server holds configuration for the history API.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the run archive (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the run history database.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SYNC_INTERVAL_MS -> sync.interval_ms)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// NOTION_KEY is the name used by older .env files.
	if err := v.BindEnv("notion.token", "NOTION_TOKEN", "NOTION_KEY"); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the settings the sync command cannot run without.
func (c *Config) Validate() error {
	var errs []error
	if c.Notion.Token == "" {
		errs = append(errs, errors.New("notion token is not set (NOTION_TOKEN, or `token set`)"))
	}
	if c.Notion.DatabaseID == "" {
		errs = append(errs, errors.New("notion database id is not set (NOTION_DATABASE_ID)"))
	}
	if c.Sync.IntervalMS < 0 {
		errs = append(errs, fmt.Errorf("sync interval must not be negative, got %d", c.Sync.IntervalMS))
	}
	switch c.Sync.Limiter {
	case ratelimit.ModeFixed, ratelimit.ModeToken:
	default:
		errs = append(errs, fmt.Errorf("unknown sync limiter %q", c.Sync.Limiter))
	}
	switch c.Sync.MatchPolicy {
	case "recent", "first":
	default:
		errs = append(errs, fmt.Errorf("unknown match policy %q", c.Sync.MatchPolicy))
	}
	return errors.Join(errs...)
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
