package server

import "fmt"

// Config holds configuration for the history API server.
type Config struct {
	// Host is the interface the server binds to.
	Host string `mapstructure:"host" default:"127.0.0.1"`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
}

// Address returns the listen address in host:port form.
func (c Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsProtected reports whether requests must carry the API key.
func (c Config) IsProtected() bool {
	return c.ApiKey != ""
}
