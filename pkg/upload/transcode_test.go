package upload

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscodeRejectsGarbage(t *testing.T) {
	_, err := TranscodeHEICToJPEG([]byte("not a heic file at all"))
	assert.ErrorIs(t, err, ErrDecodeFailed)
}

func TestFlattenToRGB(t *testing.T) {
	// Fully transparent source pixel must come out white, not black.
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 0})
	src.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 10, B: 10, A: 255})

	flat := FlattenToRGB(src)

	r, g, b, a := flat.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
	assert.Equal(t, uint32(0xffff), a)

	r, _, _, _ = flat.At(1, 0).RGBA()
	assert.Equal(t, uint32(200<<8|200), r)
}

func TestReplaceExt(t *testing.T) {
	assert.Equal(t, "photo.jpg", replaceExt("photo.heic", ".jpg"))
	assert.Equal(t, "archive.tar.jpg", replaceExt("archive.tar.heic", ".jpg"))
	assert.Equal(t, "noext.jpg", replaceExt("noext", ".jpg"))
}
