package transparent

import "image/color"

// WhiteThreshold is the channel value a pixel must exceed on red, green and
// blue to count as near white. The comparison is strict, so 240 itself is kept.
const WhiteThreshold = 240

// Cleared is the color written in place of every near-white pixel.
var Cleared = color.NRGBA{R: 255, G: 255, B: 255, A: 0}

// IsNearWhite reports whether c is near white. Alpha is ignored.
func IsNearWhite(c color.NRGBA) bool {
	return c.R > WhiteThreshold && c.G > WhiteThreshold && c.B > WhiteThreshold
}
