package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args []string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{orig[0]}, args...)
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, 8, cfg.MaxAttachments)
}

func TestParseEnv(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	t.Setenv("PK_SERVER_URL", "http://journal.example:9090")
	parseEnv(cfg)

	assert.Equal(t, "http://journal.example:9090", cfg.ServerURL)
}

func TestParseJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_url":"http://from-file:1234","max_attachments":4}`), 0o600))

	withArgs(t, []string{"-c", path})

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://from-file:1234", cfg.ServerURL)
	assert.Equal(t, 4, cfg.MaxAttachments)
}

func TestParseFlags(t *testing.T) {
	withArgs(t, []string{"-s", "http://flagged:8081"})

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://flagged:8081", cfg.ServerURL)
}

func TestLoadConfig(t *testing.T) {
	withArgs(t, nil)

	cfg := LoadConfig()
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
}
