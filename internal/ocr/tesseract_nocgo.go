//go:build !cgo

package ocr

import "image"

// Available reports whether this build can run Tesseract.
const Available = false

// Version returns an empty string without cgo.
func Version() string {
	return ""
}

// Words always fails with ErrUnavailable.
func (d WordDetector) Words(img image.Image) ([]Word, error) {
	return nil, ErrUnavailable
}
