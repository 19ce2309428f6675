package ocr

import (
	"context"
	"errors"
	"image"
	"strings"

	"github.com/ironsheep/lgtmify-mcp/internal/detection"
	"github.com/ironsheep/lgtmify-mcp/internal/layout"
)

// ErrUnavailable is returned when the binary was built without cgo.
var ErrUnavailable = errors.New("ocr unavailable: built without cgo")

// DefaultLanguage is the Tesseract language used when none is configured.
const DefaultLanguage = "eng"

// Word is one recognised word.
type Word struct {
	Text string `json:"text"`

	// Confidence is Tesseract's word confidence scaled to 0.0-1.0.
	Confidence float64 `json:"confidence"`

	// Box is relative to the image's top-left corner.
	Box image.Rectangle `json:"-"`
}

// WordDetector reports every confident word as an occluded rectangle.
type WordDetector struct {
	// Language is a Tesseract language code such as "eng".
	Language string

	// MinConfidence drops words Tesseract is unsure about (0.0-1.0).
	MinConfidence float64

	// TessdataPrefix overrides the training data directory when set.
	TessdataPrefix string
}

// Detect implements detection.Detector.
func (d WordDetector) Detect(ctx context.Context, img image.Image) ([]layout.OccludedRect, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	words, err := d.Words(img)
	if err != nil {
		return nil, err
	}
	return occludedWords(words, d.MinConfidence), nil
}

func (d WordDetector) language() string {
	if d.Language == "" {
		return DefaultLanguage
	}
	return d.Language
}

// occludedWords keeps non-blank words at or above minConfidence.
func occludedWords(words []Word, minConfidence float64) []layout.OccludedRect {
	rects := make([]layout.OccludedRect, 0, len(words))
	for _, w := range words {
		if strings.TrimSpace(w.Text) == "" || w.Confidence < minConfidence {
			continue
		}
		if w.Box.Empty() {
			continue
		}
		rects = append(rects, detection.FromRectangle(w.Box, image.Point{}))
	}
	return rects
}

var _ detection.Detector = WordDetector{}
