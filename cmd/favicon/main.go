package main

import (
	"fmt"
	"io"
	"os"

	transparent "github.com/gcslaoli/favicon-transparent"
)

// go run ./cmd/favicon
// Run from the web project root, next to the public/ directory.

const (
	inputFile  = "public/Gemini_Generated_Image_mywwkkmywwkkmyww.png"
	outputFile = "public/favicon.png"
)

func main() {
	if err := run(os.Stdout, inputFile, outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run converts input into a transparent PNG at output. An input that cannot
// be stat'ed is reported on w as not found and is not an error.
func run(w io.Writer, input, output string) error {
	// Any stat failure, not only ENOENT, counts as a missing input.
	if _, err := os.Stat(input); err != nil {
		fmt.Fprintf(w, "Error: %s not found\n", input)
		return nil
	}

	fmt.Fprintf(w, "Processing %s...\n", input)

	if _, err := transparent.ProcessFile(input, output); err != nil {
		return err
	}

	fmt.Fprintf(w, "Saved transparent image to %s\n", output)
	return nil
}
