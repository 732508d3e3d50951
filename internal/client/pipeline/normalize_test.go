package pipeline

import (
	"errors"
	"image"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/photokeeper/internal/client/models"
)

// fakeHEIC builds a payload with a valid ftyp box for the given brand.
func fakeHEIC(brand string) []byte {
	data := make([]byte, 0, 32)
	data = append(data, 0, 0, 0, 24)
	data = append(data, []byte("ftyp")...)
	data = append(data, []byte(brand)...)
	data = append(data, make([]byte, 16)...)
	return data
}

func stubDecoder(t *testing.T, fn func(io.Reader) (image.Image, error)) {
	t.Helper()
	orig := decodeHEIC
	decodeHEIC = fn
	t.Cleanup(func() { decodeHEIC = orig })
}

func TestIsHEIC(t *testing.T) {
	tests := []struct {
		name string
		file models.File
		want bool
	}{
		{"mime heic", models.File{Name: "a.bin", ContentType: "image/heic"}, true},
		{"mime heif upper", models.File{Name: "a.bin", ContentType: "IMAGE/HEIF"}, true},
		{"ext heic", models.File{Name: "IMG.HEIC"}, true},
		{"ext heif", models.File{Name: "img.heif"}, true},
		{"jpeg", models.File{Name: "img.jpg", ContentType: "image/jpeg"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsHEIC(tc.file))
		})
	}
}

func TestNormalize_ConvertsToJPEG(t *testing.T) {
	stubDecoder(t, func(io.Reader) (image.Image, error) {
		return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
	})

	in := models.File{Name: "IMG_0001.heic", ContentType: "image/heic", Data: fakeHEIC("heic")}
	out, err := Normalize(in)
	require.NoError(t, err)

	assert.Equal(t, "IMG_0001.jpg", out.Name)
	assert.Equal(t, "image/jpeg", out.ContentType)
	assert.NotEmpty(t, out.Data)
	// JPEG SOI marker.
	assert.Equal(t, []byte{0xff, 0xd8}, out.Data[:2])

	assert.Equal(t, "IMG_0001.heic", in.Name, "input must not be modified")
}

func TestNormalize_ProbeRejectsNonHEIC(t *testing.T) {
	stubDecoder(t, func(io.Reader) (image.Image, error) {
		t.Fatal("decoder must not run after a failed probe")
		return nil, nil
	})

	in := models.File{Name: "a.heic", Data: []byte("definitely not a heic container")}
	_, err := Normalize(in)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.NotErrorIs(t, err, ErrConversion, "probe failure must be distinguishable from conversion failure")
}

func TestNormalize_ProbeAcceptsKnownBrands(t *testing.T) {
	stubDecoder(t, func(io.Reader) (image.Image, error) {
		return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
	})

	for _, brand := range []string{"heic", "heix", "mif1", "msf1"} {
		in := models.File{Name: "a.heic", Data: fakeHEIC(brand)}
		_, err := Normalize(in)
		assert.NoError(t, err, "brand %q must pass the probe", brand)
	}
}

func TestNormalize_DecoderFailureIsConversionError(t *testing.T) {
	stubDecoder(t, func(io.Reader) (image.Image, error) {
		return nil, errors.New("codec exploded")
	})

	in := models.File{Name: "a.heic", Data: fakeHEIC("heic")}
	_, err := Normalize(in)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConversion)
	assert.Equal(t, fakeHEIC("heic"), in.Data, "original bytes must survive a failed conversion")
}
