package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"strings"

	"github.com/jdeng/goheif"

	"github.com/dmitrijs2005/photokeeper/internal/client/models"
)

// normalizeQuality is the JPEG quality for converted HEIC images. The
// conversion is lossy and the factor is deliberately not configurable.
const normalizeQuality = 90

// decodeHEIC decodes a HEIC payload. Package variable so tests can
// inject decoder failures.
var decodeHEIC = func(r io.Reader) (image.Image, error) {
	return goheif.Decode(r)
}

// heicBrands are the ftyp major brands a decodable HEIC/HEIF container
// may declare.
var heicBrands = map[string]bool{
	"heic": true,
	"heix": true,
	"heim": true,
	"heis": true,
	"hevc": true,
	"hevm": true,
	"hevs": true,
	"mif1": true,
	"msf1": true,
}

// IsHEIC reports whether the file declares itself as HEIC/HEIF by MIME
// type or extension, case-insensitively.
func IsHEIC(f models.File) bool {
	switch strings.ToLower(f.ContentType) {
	case "image/heic", "image/heif":
		return true
	}
	switch f.Ext() {
	case ".heic", ".heif":
		return true
	}
	return false
}

// probeHEIC checks the ISO-BMFF ftyp box for a known HEIC brand. This is
// the capability probe: a payload without a recognized brand cannot be
// converted here and fails fast with ErrUnsupportedFormat, letting the
// caller skip normalization instead of retrying it.
func probeHEIC(data []byte) error {
	if len(data) < 12 || string(data[4:8]) != "ftyp" {
		return fmt.Errorf("%w: no ftyp box", ErrUnsupportedFormat)
	}
	brand := strings.ToLower(string(data[8:12]))
	if !heicBrands[brand] {
		return fmt.Errorf("%w: unknown brand %q", ErrUnsupportedFormat, brand)
	}
	return nil
}

// Normalize converts a HEIC/HEIF file to JPEG, rewriting the extension
// to .jpg. The input file is never modified, so a failure here loses
// nothing: callers fall back to the original bytes.
func Normalize(f models.File) (models.File, error) {
	if err := probeHEIC(f.Data); err != nil {
		return models.File{}, err
	}

	img, err := decodeHEIC(bytes.NewReader(f.Data))
	if err != nil {
		return models.File{}, fmt.Errorf("%w: %v", ErrConversion, err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: normalizeQuality}); err != nil {
		return models.File{}, fmt.Errorf("%w: %v", ErrConversion, err)
	}

	return models.File{
		Name:        jpegName(f.Name),
		ContentType: "image/jpeg",
		Data:        buf.Bytes(),
	}, nil
}

// jpegName replaces the filename extension with .jpg.
func jpegName(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return name + ".jpg"
}
