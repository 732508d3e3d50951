package pipeline

import "errors"

var (
	// ErrUnsupportedFormat reports that the runtime cannot decode the
	// payload at all (failed capability probe). Callers skip
	// normalization instead of retrying it.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrConversion reports a HEIC to JPEG conversion failure.
	ErrConversion = errors.New("conversion failed")

	// ErrCompression reports a size/quality reduction failure.
	ErrCompression = errors.New("compression failed")

	// ErrPreview reports a local preview creation failure.
	ErrPreview = errors.New("preview creation failed")
)
