package config

import "os"

// parseEnv overlays Config fields from environment variables. Only
// variables that are actually set override the current values, so the
// JSON overlay and defaults survive an empty environment.
//
// Recognized variables:
//
//	PK_ADDRESS        HTTP bind address
//	PK_S3_ENDPOINT    S3/MinIO base endpoint
//	PK_S3_ACCESS_KEY  S3 access key
//	PK_S3_SECRET_KEY  S3 secret key
//	PK_S3_BUCKET      destination bucket
//	PK_S3_REGION      S3 region
func parseEnv(config *Config) {
	setFromEnv(&config.Address, "PK_ADDRESS")
	setFromEnv(&config.S3BaseEndpoint, "PK_S3_ENDPOINT")
	setFromEnv(&config.S3RootUser, "PK_S3_ACCESS_KEY")
	setFromEnv(&config.S3RootPassword, "PK_S3_SECRET_KEY")
	setFromEnv(&config.S3Bucket, "PK_S3_BUCKET")
	setFromEnv(&config.S3Region, "PK_S3_REGION")
}

func setFromEnv(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}
