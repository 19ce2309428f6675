package detection

import (
	"context"
	"image"
	"math"
	"sort"

	"github.com/ironsheep/lgtmify-mcp/internal/layout"
)

// TextRegion is an area likely to contain printed text, in image coordinates.
type TextRegion struct {
	Bounds     image.Rectangle
	Confidence float64
}

// textWindows are the sliding window sizes, roughly small to large type.
var textWindows = []struct{ w, h int }{
	{100, 30},
	{150, 40},
	{200, 50},
	{80, 25},
}

// Text edge density band; the confidence peaks at textDensityPeak.
const (
	textDensityMin  = 0.05
	textDensityMax  = 0.4
	textDensityPeak = 0.2
)

// TextDetector treats text-like areas as occluded so the caption does not
// cover existing lettering. It is a heuristic: windows with moderate edge
// density and mostly horizontal structure are kept and overlapping windows
// are merged.
type TextDetector struct {
	MinConfidence float64
}

// Detect implements Detector.
func (d TextDetector) Detect(ctx context.Context, img image.Image) ([]layout.OccludedRect, error) {
	regions, err := DetectTextRegions(ctx, img, d.MinConfidence)
	if err != nil {
		return nil, err
	}

	origin := img.Bounds().Min
	rects := make([]layout.OccludedRect, 0, len(regions))
	for _, r := range regions {
		rects = append(rects, FromRectangle(r.Bounds, origin))
	}
	return rects, nil
}

// DetectTextRegions returns merged text-like regions with confidence at or
// above minConfidence, most confident first.
func DetectTextRegions(ctx context.Context, img image.Image, minConfidence float64) ([]TextRegion, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	edges := detectEdges(img)

	candidates := make([]TextRegion, 0)
	for _, ws := range textWindows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		stepX, stepY := ws.w/2, ws.h/2
		for y := 0; y <= height-ws.h; y += stepY {
			for x := 0; x <= width-ws.w; x += stepX {
				confidence := windowConfidence(edges, x, y, ws.w, ws.h)
				if confidence == 0 || confidence < minConfidence {
					continue
				}
				candidates = append(candidates, TextRegion{
					Bounds:     image.Rect(x, y, x+ws.w, y+ws.h).Add(bounds.Min),
					Confidence: math.Round(confidence*1000) / 1000,
				})
			}
		}
	}

	merged := mergeOverlapping(candidates)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Confidence > merged[j].Confidence
	})
	return merged, nil
}

// windowConfidence scores one window, or returns 0 when its edge density is
// outside the text band.
func windowConfidence(edges [][]bool, x, y, w, h int) float64 {
	count := 0
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			if edges[row][col] {
				count++
			}
		}
	}

	density := float64(count) / float64(w*h)
	if density < textDensityMin || density > textDensityMax {
		return 0
	}
	return horizontalScore(edges, x, y, w, h) * (1.0 - math.Abs(density-textDensityPeak)/textDensityPeak)
}

// horizontalScore is the share of edge runs found scanning rows rather than
// columns. Letter strokes cut across rows many times, so text scores high.
func horizontalScore(edges [][]bool, x, y, w, h int) float64 {
	rowRuns, colRuns := 0, 0

	for row := y; row < y+h; row++ {
		inRun := false
		for col := x; col < x+w; col++ {
			if edges[row][col] && !inRun {
				rowRuns++
			}
			inRun = edges[row][col]
		}
	}

	for col := x; col < x+w; col++ {
		inRun := false
		for row := y; row < y+h; row++ {
			if edges[row][col] && !inRun {
				colRuns++
			}
			inRun = edges[row][col]
		}
	}

	if rowRuns+colRuns == 0 {
		return 0
	}
	return float64(rowRuns) / float64(rowRuns+colRuns)
}

// mergeOverlapping folds each region into the first already-merged region it
// overlaps, growing that region to the union.
func mergeOverlapping(regions []TextRegion) []TextRegion {
	merged := make([]TextRegion, 0, len(regions))
	for _, r := range regions {
		folded := false
		for i := range merged {
			if r.Bounds.Overlaps(merged[i].Bounds) {
				merged[i].Bounds = merged[i].Bounds.Union(r.Bounds)
				merged[i].Confidence = math.Max(merged[i].Confidence, r.Confidence)
				folded = true
				break
			}
		}
		if !folded {
			merged = append(merged, r)
		}
	}
	return merged
}
