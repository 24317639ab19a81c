package notion

// Config holds configuration for the Notion API client.
type Config struct {
	// Token is the integration secret used as a Bearer credential.
	Token string `mapstructure:"token" default:""`
	// DatabaseID is the applications database to sync into.
	DatabaseID string `mapstructure:"database_id" default:""`
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.notion.com/v1"`
	// Version is sent as the Notion-Version header.
	Version string `mapstructure:"version" default:"2022-06-28"`
	// TimeoutSeconds bounds connection setup and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
