package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// ErrUnsupportedFormat is returned for output formats with no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

const jpegQuality = 92

// encoderFor maps a format name or file extension to a bild encoder. Formats
// bild cannot write (gif, tiff) fall back to disintegration/imaging, so every
// format the loader reads can be written back.
func encoderFor(format string) (imgio.Encoder, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(format, ".")); ext {
	case "png":
		return imgio.PNGEncoder(), nil
	case "jpg", "jpeg":
		return imgio.JPEGEncoder(jpegQuality), nil
	case "bmp":
		return imgio.BMPEncoder(), nil
	default:
		f, err := imaging.FormatFromExtension(ext)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
		}
		return func(w io.Writer, img image.Image) error {
			return imaging.Encode(w, img, f)
		}, nil
	}
}

// Save writes img to path, choosing the encoder from the file extension.
func Save(img image.Image, path string) error {
	enc, err := encoderFor(filepath.Ext(path))
	if err != nil {
		return err
	}
	if err := imgio.Save(path, img, enc); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// Encode writes img to w in the named format (png, jpeg, bmp).
func Encode(w io.Writer, img image.Image, format string) error {
	enc, err := encoderFor(format)
	if err != nil {
		return err
	}
	if err := enc(w, img); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}

// EncodeBase64PNG returns img as a base64 PNG string.
func EncodeBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, "png"); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// MimeType returns the MIME type for a format name or extension.
func MimeType(format string) string {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "bmp":
		return "image/bmp"
	case "gif":
		return "image/gif"
	case "tif", "tiff":
		return "image/tiff"
	default:
		return "image/png"
	}
}
