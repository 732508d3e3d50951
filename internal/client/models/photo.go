package models

// ProcessedPhoto tracks one user-selected file from intake through upload.
// The record is exclusively owned by the goroutine processing it until it
// is handed off, so no field needs synchronization.
type ProcessedPhoto struct {
	// ID is the opaque identifier generated at intake time. It is sent to
	// the server and ends up embedded in the storage key.
	ID string

	// Original is the file exactly as selected. Never modified.
	Original File

	// File is the current best-effort output of the pipeline: normalized
	// and compressed when those stages succeeded, the original bytes
	// otherwise. These are the bytes that get uploaded.
	File File

	// Preview locally resolves the current bytes for immediate display.
	Preview *Preview

	// UploadProgress is a monotonically non-decreasing percentage, 0-100.
	// It reaches 100 only on a fully completed upload and freezes at its
	// last value on failure.
	UploadProgress int

	// RemoteURL is set only after a successful upload.
	RemoteURL string

	// Warning accumulates non-fatal advisories from processing, joined
	// with "; ". A non-empty Warning does not make the record unusable.
	Warning string
}

// SetProgress records pct, ignoring regressions so that progress stays
// monotone even if the transport reports out of order.
func (p *ProcessedPhoto) SetProgress(pct int) {
	if pct > p.UploadProgress {
		if pct > 100 {
			pct = 100
		}
		p.UploadProgress = pct
	}
}

// Discard releases resources held by the record. The preview handle is
// the only owned resource.
func (p *ProcessedPhoto) Discard() error {
	if p.Preview == nil {
		return nil
	}
	return p.Preview.Release()
}
