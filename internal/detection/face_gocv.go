//go:build gocv

package detection

import (
	"context"
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"

	"github.com/ironsheep/lgtmify-mcp/internal/layout"
)

// FaceDetectionAvailable reports whether this build can detect faces.
const FaceDetectionAvailable = true

// FaceDetector finds faces with an OpenCV Haar cascade.
type FaceDetector struct {
	mu         sync.Mutex
	classifier gocv.CascadeClassifier
}

// NewFaceDetector loads the cascade XML at cascadePath.
func NewFaceDetector(cascadePath string) (*FaceDetector, error) {
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(cascadePath) {
		classifier.Close()
		return nil, fmt.Errorf("failed to load face cascade %s", cascadePath)
	}
	return &FaceDetector{classifier: classifier}, nil
}

// Detect implements Detector.
func (d *FaceDetector) Detect(ctx context.Context, img image.Image) ([]layout.OccludedRect, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image: %w", err)
	}
	defer mat.Close()

	d.mu.Lock()
	faces := d.classifier.DetectMultiScale(mat)
	d.mu.Unlock()

	// Mat coordinates already start at (0, 0).
	rects := make([]layout.OccludedRect, 0, len(faces))
	for _, f := range faces {
		rects = append(rects, FromRectangle(f, image.Point{}))
	}
	return rects, nil
}

// Close releases the classifier.
func (d *FaceDetector) Close() error {
	return d.classifier.Close()
}
