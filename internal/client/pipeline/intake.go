package pipeline

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/photokeeper/internal/client/models"
	"github.com/dmitrijs2005/photokeeper/internal/logging"
)

// Advisory warnings attached to a ProcessedPhoto when a stage degrades.
const (
	warnConversion  = "HEIC conversion failed - uploading original file"
	warnCompression = "compression failed - uploading full-size image"
	warnPreview     = "preview creation failed - using placeholder"
)

// stageResult threads a value and its accumulated warnings through the
// pipeline stages, making the degrade-and-continue flow explicit.
type stageResult struct {
	file     models.File
	warnings []string
}

// warn records a non-fatal stage failure and keeps the current file.
func (r *stageResult) warn(msg string) {
	r.warnings = append(r.warnings, msg)
}

// Intake drives a selected file through normalization, reduction and
// preview creation. It never fails: each stage either improves the
// current bytes or leaves them as they were, with a warning attached.
//
// The stage functions are fields so tests can inject failures.
type Intake struct {
	log  logging.Logger
	opts ReduceOptions

	normalize  func(models.File) (models.File, error)
	reduce     func(models.File, ReduceOptions) (models.File, error)
	newPreview func(id string, data []byte) (*models.Preview, error)
}

// NewIntake returns an Intake using the default stages and reduction
// policy.
func NewIntake(log logging.Logger) *Intake {
	return &Intake{
		log:        log.With("module", "intake"),
		normalize:  Normalize,
		reduce:     Reduce,
		newPreview: models.NewFilePreview,
	}
}

// Process turns a structurally valid file into an uploadable
// ProcessedPhoto. Each photo is handled by a single goroutine and shares
// no state with other in-flight photos, so callers may run many Process
// calls concurrently.
func (in *Intake) Process(ctx context.Context, f models.File) *models.ProcessedPhoto {
	id := uuid.NewString()
	res := stageResult{file: f}

	if IsHEIC(f) {
		converted, err := in.normalize(res.file)
		if err != nil {
			in.log.Debug(ctx, "normalization degraded", "photo_id", id, "error", err.Error())
			res.warn(warnConversion)
		} else {
			res.file = converted
		}
	}

	reduced, err := in.reduce(res.file, in.opts)
	if err != nil {
		in.log.Debug(ctx, "reduction degraded", "photo_id", id, "error", err.Error())
		res.warn(warnCompression)
	} else {
		res.file = reduced
	}

	preview, err := in.newPreview(id, res.file.Data)
	if err != nil {
		in.log.Debug(ctx, "preview degraded", "photo_id", id, "error", err.Error())
		res.warn(warnPreview)
		preview = models.NewPlaceholderPreview(id)
	}

	return &models.ProcessedPhoto{
		ID:       id,
		Original: f,
		File:     res.file,
		Preview:  preview,
		Warning:  strings.Join(res.warnings, "; "),
	}
}
