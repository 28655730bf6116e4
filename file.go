package transparent

import (
	"fmt"
	"os"
)

// ProcessFile reads the image at inputPath, clears its near-white pixels and
// writes the result as PNG to outputPath. Nothing is written unless the whole
// image was decoded and re-encoded.
func ProcessFile(inputPath, outputPath string) (Stats, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return Stats{}, fmt.Errorf("read input: %w", err)
	}

	out, stats, err := MakeTransparentBytes(data)
	if err != nil {
		return Stats{}, err
	}

	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return Stats{}, fmt.Errorf("write output: %w", err)
	}
	return stats, nil
}
