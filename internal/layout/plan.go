package layout

import (
	"context"
	"errors"
	"fmt"
)

// DefaultMaxPixels bounds width*height when Options.MaxPixels is zero.
const DefaultMaxPixels = 25_000_000

var (
	// ErrEmptyImage is returned by Plan for an image with no pixels.
	ErrEmptyImage = errors.New("layout: image has zero width or height")

	// ErrImageTooLarge is returned when width*height exceeds the pixel limit.
	ErrImageTooLarge = errors.New("layout: image exceeds the pixel limit")
)

// Result is the outcome of one planning pass.
type Result struct {
	// Region is the winning free rectangle, empty when none qualified.
	Region Rectangle `json:"region"`

	// Fallback is true when the placement spans the whole image because no
	// free rectangle qualified.
	Fallback bool `json:"fallback"`

	Placement Placement `json:"placement"`
}

// Options tunes a planning pass.
type Options struct {
	// Workers is the number of goroutines scanning rows. 1 is sequential,
	// 0 or less uses GOMAXPROCS.
	Workers int

	// MaxPixels caps width*height. 0 or less uses DefaultMaxPixels.
	MaxPixels int
}

// Plan computes the caption placement for an image with the given occluded
// rectangles.
//
// Parameters:
//   - width, height: Image dimensions in pixels. Both must be positive.
//   - occluded: Rectangles the caption must avoid, with inclusive corners.
//     Rectangles outside the image are clipped away.
//
// Returns:
//   - Result: The largest free rectangle closest to the bottom of the image
//     and the caption placement inside it. When no free rectangle is wide
//     and tall enough, Fallback is set and the placement spans the whole image.
//   - error: Non-nil if the dimensions are rejected.
//
// Plan scans sequentially and applies DefaultMaxPixels.
//
// # Errors
//
//   - Returns ErrEmptyImage if width or height is zero or negative
//   - Returns ErrImageTooLarge if width*height exceeds DefaultMaxPixels
func Plan(width, height int, occluded []OccludedRect) (Result, error) {
	return PlanWith(context.Background(), width, height, occluded, Options{Workers: 1})
}

// PlanConcurrent is Plan with the row scans spread over workers goroutines.
// workers == 1 scans sequentially.
func PlanConcurrent(ctx context.Context, width, height int, occluded []OccludedRect, workers int) (Result, error) {
	return PlanWith(ctx, width, height, occluded, Options{Workers: workers})
}

// PlanWith is Plan with explicit Options. The dimensions are checked against
// the pixel limit before any grid is allocated.
func PlanWith(ctx context.Context, width, height int, occluded []OccludedRect, opts Options) (Result, error) {
	if err := CheckSize(width, height, opts.MaxPixels); err != nil {
		return Result{}, err
	}

	hist := BuildHistograms(BuildGrid(width, height, occluded))

	var region Rectangle
	if opts.Workers == 1 {
		region = SelectBest(hist)
	} else {
		var err error
		region, err = SelectBestConcurrent(ctx, hist, opts.Workers)
		if err != nil {
			return Result{}, err
		}
	}

	return Result{
		Region:    region,
		Fallback:  region.Empty(),
		Placement: ComputePlacement(region, width, height),
	}, nil
}

// CheckSize reports whether a width x height grid may be planned under
// maxPixels. maxPixels <= 0 uses DefaultMaxPixels. The product is never
// computed, so huge dimensions cannot overflow.
func CheckSize(width, height, maxPixels int) error {
	if width <= 0 || height <= 0 {
		return ErrEmptyImage
	}
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	if width > maxPixels/height {
		return fmt.Errorf("%w: %dx%d is over %d pixels", ErrImageTooLarge, width, height, maxPixels)
	}
	return nil
}
