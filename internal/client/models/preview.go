package models

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/photokeeper/internal/filex"
)

// Preview is a locally-resolvable reference to a photo's bytes, shown
// before the upload completes. A file-backed preview owns a temp file
// and must be released when the record is discarded; a placeholder
// preview owns nothing.
type Preview struct {
	// URL resolves the preview: a file:// URL for file-backed previews,
	// a server placeholder path otherwise. Invalid after Release.
	URL string

	path string
}

// NewFilePreview writes data to a file in the preview cache directory
// and returns a preview whose URL points at it. The caller owns the
// handle and must call Release.
func NewFilePreview(id string, data []byte) (*Preview, error) {
	dir, err := filex.PreviewDir()
	if err != nil {
		return nil, fmt.Errorf("preview dir: %w", err)
	}

	f, err := os.CreateTemp(dir, id+"-*")
	if err != nil {
		return nil, fmt.Errorf("create preview file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("write preview file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("close preview file: %w", err)
	}

	u := &url.URL{Scheme: "file", Path: filepath.ToSlash(f.Name())}
	return &Preview{URL: u.String(), path: f.Name()}, nil
}

// NewPlaceholderPreview returns a preview that resolves to the server's
// generated placeholder image for the given photo id. Release is a no-op.
func NewPlaceholderPreview(id string) *Preview {
	return &Preview{URL: "/api/photos/placeholder/" + id}
}

// Path returns the backing file path, empty for placeholder previews.
func (p *Preview) Path() string {
	return p.path
}

// Release removes the backing file, if any. Safe to call more than once.
func (p *Preview) Release() error {
	if p.path == "" {
		return nil
	}
	err := os.Remove(p.path)
	p.path = ""
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("release preview: %w", err)
	}
	return nil
}
