package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds the service configuration, parsed from the environment.
// An empty ProfilesTable means the store runs memory-only; an empty
// S3Bucket disables the media endpoints.
type Config struct {
	Port          string `envconfig:"PORT" default:"8080"`
	AWSRegion     string `envconfig:"AWS_REGION" default:"us-east-1"`
	ProfilesTable string `envconfig:"PROFILES_TABLE" default:""`
	S3Bucket      string `envconfig:"S3_BUCKET_NAME" default:""`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
