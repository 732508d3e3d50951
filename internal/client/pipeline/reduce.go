package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"strings"

	// Register decoders for the allow-listed raster formats.
	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/dmitrijs2005/photokeeper/internal/client/models"
)

// Default reduction policy. Each value can be overridden per call via
// ReduceOptions.
const (
	DefaultMaxBytes = 1 << 20 // 1 MB target
	DefaultMaxEdge  = 1920    // longest edge, px
	DefaultQuality  = 80

	// minQuality is the floor for the quality back-off loop. Below this
	// the output is accepted even if it still exceeds the byte target.
	minQuality = 30
)

// ReduceOptions overrides the default reduction policy. Zero fields keep
// the defaults.
type ReduceOptions struct {
	MaxBytes int64
	MaxEdge  int
	Quality  int
}

func (o ReduceOptions) withDefaults() ReduceOptions {
	if o.MaxBytes == 0 {
		o.MaxBytes = DefaultMaxBytes
	}
	if o.MaxEdge == 0 {
		o.MaxEdge = DefaultMaxEdge
	}
	if o.Quality == 0 {
		o.Quality = DefaultQuality
	}
	return o
}

// Reduce re-encodes an image to fit the byte target and maximum edge,
// preserving aspect ratio and never upscaling. The output is JPEG named
// after the input with a "_compressed" marker. The input is untouched;
// on error the caller keeps its pre-compression bytes.
func Reduce(f models.File, opts ReduceOptions) (models.File, error) {
	o := opts.withDefaults()

	img, _, err := image.Decode(bytes.NewReader(f.Data))
	if err != nil {
		return models.File{}, fmt.Errorf("%w: decode: %v", ErrCompression, err)
	}

	img = scaleDown(img, o.MaxEdge)

	// Encode at the requested quality, stepping down while the payload
	// exceeds the byte target.
	quality := o.Quality
	var buf bytes.Buffer
	for {
		buf.Reset()
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return models.File{}, fmt.Errorf("%w: encode: %v", ErrCompression, err)
		}
		if int64(buf.Len()) <= o.MaxBytes || quality <= minQuality {
			break
		}
		quality -= 10
	}

	return models.File{
		Name:        compressedName(f.Name),
		ContentType: "image/jpeg",
		Data:        buf.Bytes(),
	}, nil
}

// scaleDown fits img into a maxEdge bounding box, keeping aspect ratio.
// Images already inside the box are returned unchanged.
func scaleDown(img image.Image, maxEdge int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return img
	}

	var nw, nh int
	if w > h {
		nw = maxEdge
		nh = h * maxEdge / w
	} else {
		nh = maxEdge
		nw = w * maxEdge / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

// compressedName inserts the "_compressed" marker before the extension
// and rewrites it to .jpg, matching the re-encoded payload.
func compressedName(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return name + "_compressed.jpg"
}
