package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/jpeg"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/photokeeper/internal/client/config"
	"github.com/dmitrijs2005/photokeeper/internal/client/pipeline"
	"github.com/dmitrijs2005/photokeeper/internal/client/transport"
	"github.com/dmitrijs2005/photokeeper/internal/logging"
)

func newTestApp(serverURL string) (*App, *bytes.Buffer) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	out := &bytes.Buffer{}

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ServerURL = serverURL

	return &App{
		config: cfg,
		logger: logger,
		client: transport.New(serverURL),
		intake: pipeline.NewIntake(logger),
		out:    out,
	}, out
}

func writeTestJPEG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestCommand(t *testing.T) {
	tests := []struct {
		args     []string
		wantCmd  string
		wantRest []string
	}{
		{nil, "", nil},
		{[]string{"list"}, "list", []string{}},
		{[]string{"-s", "http://x", "upload", "a.jpg"}, "upload", []string{"a.jpg"}},
		{[]string{"-c", "cfg.json", "delete", "abc"}, "delete", []string{"abc"}},
		{[]string{"-s", "http://x"}, "", nil},
	}

	for _, tt := range tests {
		cmd, rest := command(tt.args)
		assert.Equal(t, tt.wantCmd, cmd)
		assert.Equal(t, tt.wantRest, rest)
	}
}

func TestUpload(t *testing.T) {
	var gotName string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		gotName = r.FormValue("originalName")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"url":      "http://minio.local/journal/k",
			"id":       r.FormValue("photoId"),
			"fileName": "k",
		})
	}))
	defer srv.Close()

	app, out := newTestApp(srv.URL)

	path := writeTestJPEG(t, t.TempDir(), "IMG_0001.jpg")
	require.NoError(t, app.upload(context.Background(), []string{path}))

	assert.Equal(t, "IMG_0001_compressed.jpg", gotName)
	assert.Contains(t, out.String(), "http://minio.local/journal/k")
}

func TestUpload_TooManyAttachments(t *testing.T) {
	app, _ := newTestApp("http://localhost:0")
	app.config.MaxAttachments = 2

	err := app.upload(context.Background(), []string{"a", "b", "c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds the limit")
}

func TestUpload_RejectsDisallowedType(t *testing.T) {
	app, _ := newTestApp("http://localhost:0")

	dir := t.TempDir()
	path := filepath.Join(dir, "big.txt")
	require.NoError(t, os.WriteFile(path, []byte("not a photo"), 0o600))

	err := app.upload(context.Background(), []string{path})
	require.Error(t, err)
}

func TestList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"photos": []map[string]any{
				{"id": "abc", "fileName": "a.jpg", "url": "http://x/a.jpg", "size": 10},
			},
			"total": 1,
		})
	}))
	defer srv.Close()

	app, out := newTestApp(srv.URL)
	require.NoError(t, app.list(context.Background()))

	assert.Contains(t, out.String(), "abc")
	assert.Contains(t, out.String(), "Total: 1")
}

func TestStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"configured": true, "bucket": "journal", "endpoint": "http://minio.local",
		})
	}))
	defer srv.Close()

	app, out := newTestApp(srv.URL)
	require.NoError(t, app.status(context.Background()))

	assert.Contains(t, out.String(), "configured")
	assert.Contains(t, out.String(), "journal")
}
