package detection

import (
	"context"
	"errors"
	"image"

	"github.com/ironsheep/lgtmify-mcp/internal/layout"
)

// ErrFaceDetectionUnavailable is returned by face detection in builds
// without the gocv tag.
var ErrFaceDetectionUnavailable = errors.New("face detection unavailable: build with -tags gocv")

// ErrUnknownDetector is returned when a detector name is not recognised.
var ErrUnknownDetector = errors.New("unknown detector")

// Detector finds regions of an image that the caption must not cover.
//
// Returned rectangles are relative to the image's top-left corner,
// regardless of img.Bounds().Min.
type Detector interface {
	Detect(ctx context.Context, img image.Image) ([]layout.OccludedRect, error)
}

// DetectorFunc adapts an ordinary function to Detector.
type DetectorFunc func(ctx context.Context, img image.Image) ([]layout.OccludedRect, error)

// Detect calls f(ctx, img).
func (f DetectorFunc) Detect(ctx context.Context, img image.Image) ([]layout.OccludedRect, error) {
	return f(ctx, img)
}

// Static reports the same rectangles for every image. It is used when the
// caller already knows where the faces are.
type Static []layout.OccludedRect

// Detect returns a copy of s.
func (s Static) Detect(ctx context.Context, img image.Image) ([]layout.OccludedRect, error) {
	out := make([]layout.OccludedRect, len(s))
	copy(out, s)
	return out, nil
}

type combined []Detector

// Combine runs detectors in order and concatenates their rectangles. The
// first error stops the run.
func Combine(detectors ...Detector) Detector {
	return combined(detectors)
}

func (c combined) Detect(ctx context.Context, img image.Image) ([]layout.OccludedRect, error) {
	all := make([]layout.OccludedRect, 0)
	for _, d := range c {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rects, err := d.Detect(ctx, img)
		if err != nil {
			return nil, err
		}
		all = append(all, rects...)
	}
	return all, nil
}

// FromRectangle converts a detector box to an occluded rectangle, shifting it
// so origin becomes (0, 0). As with the face boxes the original pipeline was
// built around, Max is x+width and y+height and is treated as inclusive.
func FromRectangle(r image.Rectangle, origin image.Point) layout.OccludedRect {
	r = r.Sub(origin)
	return layout.OccludedRect{
		MinX: r.Min.X,
		MinY: r.Min.Y,
		MaxX: r.Max.X,
		MaxY: r.Max.Y,
	}
}
