package config

import "os"

// parseEnv overlays Config fields from environment variables. Only
// variables that are actually set override the current values.
//
// Recognized variables:
//
//	PK_SERVER_URL  base URL of the photokeeper server
func parseEnv(config *Config) {
	setFromEnv(&config.ServerURL, "PK_SERVER_URL")
}

func setFromEnv(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}
