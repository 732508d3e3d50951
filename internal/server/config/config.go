// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment overlay, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the photokeeper server.
//
// Fields:
//   - Address: bind address for the HTTP endpoint.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible
//     backend (MINIO_ROOT_USER / MINIO_ROOT_PASSWORD in a MinIO stack).
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage settings.
//   - PresignExpiry: lifetime of presigned GET URLs.
//
// Endpoint and credentials have no defaults: until they are provided the
// storage adapter runs in not-configured mode, failing fast instead of
// hanging, and upstream code falls back to placeholder URLs.
type Config struct {
	Address        string
	S3RootUser     string
	S3RootPassword string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	PresignExpiry  time.Duration
}

// LoadDefaults populates Config with development defaults. Storage
// credentials are deliberately left empty.
func (c *Config) LoadDefaults() {
	c.Address = ":8080"
	c.S3Bucket = "journal"
	c.S3Region = "us-east-1"
	c.PresignExpiry = 15 * time.Minute
}

// LoadConfig builds a Config by applying defaults, then overlaying
// values from an optional JSON file, the environment, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
