package transparent

import (
	"bytes"
	"fmt"
)

// MakeTransparentBytes decodes raw image bytes, clears near-white pixels and
// returns the result encoded as PNG together with the transform stats.
func MakeTransparentBytes(data []byte) ([]byte, Stats, error) {
	img, _, err := DecodeImageBytes(data)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("decode input: %w", err)
	}

	out, stats, err := MakeTransparent(img)
	if err != nil {
		return nil, Stats{}, err
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, out); err != nil {
		return nil, Stats{}, fmt.Errorf("encode output: %w", err)
	}
	return buf.Bytes(), stats, nil
}
