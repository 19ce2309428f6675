//go:build !gocv

package detection

import (
	"context"
	"image"

	"github.com/ironsheep/lgtmify-mcp/internal/layout"
)

// FaceDetectionAvailable reports whether this build can detect faces.
const FaceDetectionAvailable = false

// FaceDetector is a placeholder in builds without OpenCV.
type FaceDetector struct{}

// NewFaceDetector always fails with ErrFaceDetectionUnavailable.
func NewFaceDetector(cascadePath string) (*FaceDetector, error) {
	return nil, ErrFaceDetectionUnavailable
}

// Detect always fails with ErrFaceDetectionUnavailable.
func (d *FaceDetector) Detect(ctx context.Context, img image.Image) ([]layout.OccludedRect, error) {
	return nil, ErrFaceDetectionUnavailable
}

// Close is a no-op.
func (d *FaceDetector) Close() error {
	return nil
}
