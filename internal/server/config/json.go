package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/photokeeper/internal/flagx"
)

// JsonConfig is the DTO for the optional JSON configuration file. After
// unmarshalling, set fields are copied into the runtime Config.
type JsonConfig struct {
	Address        *string `json:"address"`
	S3RootUser     *string `json:"s3_root_user"`
	S3RootPassword *string `json:"s3_root_password"`
	S3Bucket       *string `json:"s3_bucket"`
	S3Region       *string `json:"s3_region"`
	S3BaseEndpoint *string `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. Absent flags mean no file
// is loaded; an unreadable or invalid file panics, as a broken explicit
// config should not start the server.
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

	setIfPresent(&config.Address, c.Address)
	setIfPresent(&config.S3RootUser, c.S3RootUser)
	setIfPresent(&config.S3RootPassword, c.S3RootPassword)
	setIfPresent(&config.S3Bucket, c.S3Bucket)
	setIfPresent(&config.S3Region, c.S3Region)
	setIfPresent(&config.S3BaseEndpoint, c.S3BaseEndpoint)
}

func setIfPresent(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
