// Package layout finds where a caption stamp can be placed on an image without
// covering any occluded region (typically detected faces).
//
// The computation runs in four steps:
//
//  1. BuildGrid classifies every pixel as Free or Occupied.
//  2. BuildHistograms turns the grid into per-row histograms of consecutive
//     free cells ending at that row.
//  3. SelectBest runs FindLargest (maximal rectangle under a histogram, via a
//     monotonic stack) on every row and keeps the largest landscape-or-square
//     rectangle. Ties go to the later row.
//  4. ComputePlacement fits the caption's fixed aspect ratio into the winning
//     rectangle, or into the whole image when nothing qualified.
//
// Plan runs all four steps.
//
// # Coordinates
//
// Occluded rectangles use inclusive bounds. The grid samples cell (y, x) at the
// point (x+1, y+1), which shifts an occlusion's footprint up and left by one
// pixel.
//
// Rectangles returned by FindLargest use half-open spans: columns
// [MinX, MaxX) and rows [MinY, MaxY).
//
// Placement.OffsetY is the caption baseline, not its top edge.
//
// # Concurrency
//
// Every function is a pure function of its arguments. SelectBestConcurrent
// scans rows in parallel and produces the same result as SelectBest.
package layout
