// Package transparent turns near-white pixels of an image into fully
// transparent white and re-encodes the result as PNG. It is used to cut the
// white background out of a generated logo when producing a favicon.
//
// A pixel is near white when each of its red, green and blue channels is
// strictly greater than WhiteThreshold. Alpha does not take part in the test.
// The package works entirely in memory on non-premultiplied RGBA buffers.
package transparent
