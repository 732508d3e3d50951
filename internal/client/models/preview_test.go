package models

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilePreview_WritesAndReleases(t *testing.T) {
	p, err := NewFilePreview("abc123", []byte("payload"))
	require.NoError(t, err)

	require.NotEmpty(t, p.Path())
	assert.True(t, strings.HasPrefix(p.URL, "file://"), "preview URL must be file://, got %q", p.URL)

	data, err := os.ReadFile(p.Path())
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	path := p.Path()
	require.NoError(t, p.Release())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "backing file must be removed on release")
}

func TestPreview_ReleaseIsIdempotent(t *testing.T) {
	p, err := NewFilePreview("abc123", []byte("x"))
	require.NoError(t, err)

	require.NoError(t, p.Release())
	require.NoError(t, p.Release())
}

func TestNewPlaceholderPreview(t *testing.T) {
	p := NewPlaceholderPreview("abc123")

	assert.Equal(t, "/api/photos/placeholder/abc123", p.URL)
	assert.Empty(t, p.Path())
	assert.NoError(t, p.Release())
}

func TestProcessedPhoto_SetProgressMonotone(t *testing.T) {
	var p ProcessedPhoto

	p.SetProgress(10)
	p.SetProgress(55)
	p.SetProgress(40) // regression must be ignored
	assert.Equal(t, 55, p.UploadProgress)

	p.SetProgress(250)
	assert.Equal(t, 100, p.UploadProgress)
}

func TestFile_Helpers(t *testing.T) {
	f := File{Name: "IMG_0001.HEIC", ContentType: "image/heic", Data: []byte{1, 2, 3}}

	assert.Equal(t, int64(3), f.Size())
	assert.Equal(t, ".heic", f.Ext())

	g := f.WithName("IMG_0001.jpg")
	assert.Equal(t, "IMG_0001.jpg", g.Name)
	assert.Equal(t, f.Data, g.Data)
	assert.Equal(t, "IMG_0001.HEIC", f.Name, "WithName must not mutate the receiver")
}
