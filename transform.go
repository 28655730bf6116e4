package transparent

import (
	"fmt"
	"image"
	"image/color"
)

// Stats summarizes a transform run.
type Stats struct {
	Width   int
	Height  int
	Matched int
}

// MakeTransparent returns a copy of img in which every near-white pixel is
// replaced by Cleared. All other pixels keep their four channels unchanged.
// The result has the same bounds as img and img itself is not modified.
func MakeTransparent(img image.Image) (*image.NRGBA, Stats, error) {
	if img == nil {
		return nil, Stats{}, fmt.Errorf("nil image provided")
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, Stats{}, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}

	out := cloneToNRGBA(img)
	matched := clearNearWhite(out)

	return out, Stats{Width: width, Height: height, Matched: matched}, nil
}

// cloneToNRGBA copies the image into a mutable non-premultiplied buffer.
// NRGBA sources are copied byte for byte so straight channel values survive,
// including the color of fully transparent pixels.
func cloneToNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)

	if s, ok := src.(*image.NRGBA); ok {
		rowLen := bounds.Dx() * 4
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			si := s.PixOffset(bounds.Min.X, y)
			di := dst.PixOffset(bounds.Min.X, y)
			copy(dst.Pix[di:di+rowLen], s.Pix[si:si+rowLen])
		}
		return dst
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.SetNRGBA(x, y, color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA))
		}
	}
	return dst
}

// clearNearWhite rewrites near-white pixels in place and returns how many
// were changed.
func clearNearWhite(img *image.NRGBA) int {
	bounds := img.Bounds()
	matched := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		offset := img.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := img.Pix[offset : offset+4 : offset+4]
			if IsNearWhite(color.NRGBA{R: px[0], G: px[1], B: px[2], A: px[3]}) {
				px[0], px[1], px[2], px[3] = Cleared.R, Cleared.G, Cleared.B, Cleared.A
				matched++
			}
			offset += 4
		}
	}

	return matched
}
