package imaging

import (
	"image"
	"image/color"
	"image/draw"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/lgtmify-mcp/internal/layout"
)

// Outline colors used by DebugOverlay.
var (
	OccludedColor  = colorful.Color{R: 1, G: 0.2, B: 0.2}
	RegionColor    = colorful.Color{R: 0.2, G: 1, B: 0.2}
	PlacementColor = colorful.Color{R: 0.2, G: 0.4, B: 1}
)

// OverlayResult contains the annotated image.
type OverlayResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// DebugOverlay outlines what the layout saw and chose: occluded rectangles in
// red, the winning free region in green and the caption box in blue.
//
// Occluded rectangles are drawn with inclusive bounds, the region with its
// half-open spans, and the caption box as the Height pixels above the
// OffsetY baseline.
func DebugOverlay(img image.Image, occluded []layout.OccludedRect, region layout.Rectangle, p layout.Placement) (*OverlayResult, error) {
	bounds := img.Bounds()
	result := image.NewRGBA(bounds)
	draw.Draw(result, bounds, img, bounds.Min, draw.Src)

	for _, o := range occluded {
		strokeRect(result, image.Rect(o.MinX, o.MinY, o.MaxX+1, o.MaxY+1).Add(bounds.Min), OccludedColor)
	}
	if !region.Empty() {
		strokeRect(result, image.Rect(region.MinX, region.MinY, region.MaxX, region.MaxY).Add(bounds.Min), RegionColor)
	}
	if p.Width > 0 && p.Height > 0 {
		box := image.Rect(p.OffsetX, p.OffsetY-p.Height, p.OffsetX+p.Width, p.OffsetY)
		strokeRect(result, box.Add(bounds.Min), PlacementColor)
	}

	encoded, err := EncodeBase64PNG(result)
	if err != nil {
		return nil, err
	}

	return &OverlayResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

// strokeRect draws a 1px outline of r, clipped to img.
func strokeRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	clip := img.Bounds()
	set := func(x, y int) {
		if (image.Point{X: x, Y: y}).In(clip) {
			img.Set(x, y, c)
		}
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		set(x, r.Min.Y)
		set(x, r.Max.Y-1)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		set(r.Min.X, y)
		set(r.Max.X-1, y)
	}
}
