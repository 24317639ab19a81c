// Package config provides configuration management for application-sync.
//
// It loads an optional .env file with godotenv and then reads every setting from
// the environment through Viper. Defaults come from the `default` struct tags of
// each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections, each mapped to an env prefix:
//   - Notion (NOTION_*): integration token, database id, API base URL and version
//   - Sync (SYNC_*): minimum call interval, limiter mode, match policy, dry run
//   - Log (LOG_*): logging level and format
//   - Database (DATABASE_*): run history store (sqlite or mysql)
//   - Storage (STORAGE_*): optional S3/MinIO run archive
//   - Server (SERVER_*): history API address and API key
//
// The token is also read from NOTION_KEY.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
