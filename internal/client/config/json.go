package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/photokeeper/internal/flagx"
)

// JsonConfig is the DTO for the optional JSON configuration file.
type JsonConfig struct {
	ServerURL      *string `json:"server_url"`
	MaxAttachments *int    `json:"max_attachments"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. Absent flags mean no file
// is loaded; an unreadable or invalid file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ServerURL != nil {
		config.ServerURL = *c.ServerURL
	}
	if c.MaxAttachments != nil {
		config.MaxAttachments = *c.MaxAttachments
	}
}
