// Package pipeline prepares user-selected photos for upload: a validation
// gate over file metadata, HEIC normalization to JPEG, size/quality
// reduction and local preview creation, orchestrated by Intake.
//
// Every stage below the upload transport degrades gracefully. A stage
// failure becomes an advisory warning on the resulting ProcessedPhoto,
// never a lost photo: the orchestrator always falls back to the last good
// bytes, with the original file as the final fallback.
package pipeline
