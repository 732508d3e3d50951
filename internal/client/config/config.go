// Package config handles configuration for the CLI client: defaults,
// an optional JSON overlay, environment variables, and command-line
// flags, applied in that order.
package config

// Config holds runtime settings for the photokeeper client.
//
// MaxAttachments caps how many photos a single upload command accepts,
// matching the journal entry limit on the server side.
type Config struct {
	ServerURL      string
	MaxAttachments int
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	c.MaxAttachments = 8
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
