package storage

// Config holds configuration for the object store that archives applied
// guild configurations.
type Config struct {
	// Enabled toggles the archive. When false no client is created.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is host:port of the S3 compatible service. A scheme prefix is tolerated.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket receives one object per applied configuration.
	Bucket string `mapstructure:"bucket" default:"guild-configs"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region         string `mapstructure:"region" default:""`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" default:"30"`
}
