package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxUploadSize is the upload ceiling. The storage adapter fronts an
// S3-compatible bucket, so the generic object-store ceiling applies.
const MaxUploadSize = 50 << 20 // 50 MB

// heicWarning is attached to HEIC files that pass validation; conversion
// support depends on the runtime and may still fail later.
const heicWarning = "HEIC images may fail to convert in this environment"

var allowedMIMETypes = map[string]bool{
	"image/jpeg":    true,
	"image/jpg":     true,
	"image/png":     true,
	"image/webp":    true,
	"image/heic":    true,
	"image/heif":    true,
	"image/gif":     true,
	"image/svg+xml": true,
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".heic": true,
	".heif": true,
	".gif":  true,
	".svg":  true,
}

// ValidationResult is the outcome of the validation gate. Error is set
// only when Valid is false; Warning is advisory and never blocks.
type ValidationResult struct {
	Valid   bool
	Error   string
	Warning string
}

// Validate decides whether a candidate file may enter the pipeline,
// based only on its declared metadata. A file is accepted when either
// its MIME type or its extension is on the allow-list; browsers report
// no usable MIME type for HEIC, so extension alone is sufficient.
// Content is not sniffed, which means a spoofed MIME type is accepted.
func Validate(name, contentType string, size int64) ValidationResult {
	if size > MaxUploadSize {
		return ValidationResult{
			Error: fmt.Sprintf("file %q is too large (%d bytes, limit %d)", name, size, MaxUploadSize),
		}
	}

	mime := strings.ToLower(contentType)
	ext := strings.ToLower(filepath.Ext(name))

	if !allowedMIMETypes[mime] && !allowedExtensions[ext] {
		return ValidationResult{
			Error: fmt.Sprintf("file %q has unsupported type %q", name, contentType),
		}
	}

	res := ValidationResult{Valid: true}
	if ext == ".heic" || ext == ".heif" || mime == "image/heic" || mime == "image/heif" {
		res.Warning = heicWarning
	}
	return res
}
