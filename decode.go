package transparent

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io"

	// Register common decoders, including WebP, BMP and TIFF via x/image.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
)

var errEmptyImage = errors.New("empty image data")

// Decode reads an image from the reader, returning the decoded image and the
// detected format string ("png", "jpeg", "webp", etc.).
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// DecodeImageBytes decodes raw image bytes.
func DecodeImageBytes(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", errEmptyImage
	}
	return Decode(bytes.NewReader(data))
}

// EncodePNG writes the provided image to the writer as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
