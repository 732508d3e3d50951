// Package storage places a uniform adapter contract in front of the
// object-storage backend holding uploaded photos. The production
// implementation targets an S3-compatible endpoint (MinIO); the
// interface keeps handlers independent of the concrete backend.
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	// ErrNotConfigured means the backend settings are incomplete. Put
	// and friends fail fast with it; callers substitute placeholder URLs
	// instead of blocking the feature.
	ErrNotConfigured = errors.New("storage backend is not configured")

	// ErrNotFound means no object exists under the requested key.
	ErrNotFound = errors.New("object not found")

	// ErrStorage wraps backend failures that are neither of the above.
	ErrStorage = errors.New("storage error")
)

// Object describes one stored object.
type Object struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// Adapter is the uniform contract over an object-storage backend. All
// operations are idempotent or naturally conflict-free: the key scheme
// guarantees distinct uploads never collide.
type Adapter interface {
	// EnsureBucket creates the destination bucket if it is missing.
	// Safe to call repeatedly.
	EnsureBucket(ctx context.Context) error

	// Put stores size bytes from r under key and returns the durable URL.
	Put(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error)

	// GetURL returns a URL for key: presigned and time-limited when
	// expiry > 0, the stable public URL otherwise.
	GetURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	// Delete removes the object under key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error

	// List returns the objects whose keys start with prefix.
	List(ctx context.Context, prefix string) ([]Object, error)

	// Configured reports whether the backend settings are complete.
	Configured() bool

	// Bucket and Endpoint expose the backend identity for status
	// reporting.
	Bucket() string
	Endpoint() string
}
