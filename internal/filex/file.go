// Package filex contains small filesystem helpers for the client side.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// PreviewDir returns the directory holding file-backed photo previews,
// creating it under the user cache directory on first use. Falls back
// to the system temp directory when no cache directory is available.
func PreviewDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}

	dir := filepath.Join(base, "photokeeper", "previews")

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
