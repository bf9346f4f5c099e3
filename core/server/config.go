package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface to bind; empty binds all interfaces.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Enabled toggles the HTTP API. The chat bot runs regardless.
	Enabled bool `mapstructure:"enabled" default:"true"`
}

// Address returns the listen address for Fiber.
func (c Config) Address() string {
	port := strings.TrimPrefix(c.Port, ":")
	if port == "" {
		port = "8080"
	}
	return c.Host + ":" + port
}

// IsProtected reports whether requests must carry the API key.
func (c Config) IsProtected() bool {
	return c.ApiKey != ""
}
