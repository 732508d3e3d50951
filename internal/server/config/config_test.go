package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.Address, ":8080")
	assert.Equal(t, c.S3Bucket, "journal")
	assert.Equal(t, c.S3Region, "us-east-1")
	assert.Equal(t, c.PresignExpiry, 15*time.Minute)

	// Credentials and endpoint must stay empty so the storage adapter
	// starts in not-configured mode.
	assert.Empty(t, c.S3RootUser)
	assert.Empty(t, c.S3RootPassword)
	assert.Empty(t, c.S3BaseEndpoint)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")
	assert.Equal(t, c.Address, ":8080")
	assert.Equal(t, c.S3Bucket, "journal")
}

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("PK_ADDRESS", ":9090")
	t.Setenv("PK_S3_ENDPOINT", "http://127.0.0.1:9000/")
	t.Setenv("PK_S3_ACCESS_KEY", "minioadmin")
	t.Setenv("PK_S3_SECRET_KEY", "miniosecret")
	t.Setenv("PK_S3_BUCKET", "photos")
	t.Setenv("PK_S3_REGION", "eu-west-1")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":9090", c.Address)
	assert.Equal(t, "http://127.0.0.1:9000/", c.S3BaseEndpoint)
	assert.Equal(t, "minioadmin", c.S3RootUser)
	assert.Equal(t, "miniosecret", c.S3RootPassword)
	assert.Equal(t, "photos", c.S3Bucket)
	assert.Equal(t, "eu-west-1", c.S3Region)
}

func TestParseEnv_UnsetKeepsDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":8080", c.Address)
	assert.Equal(t, "journal", c.S3Bucket)
}
