package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/ironsheep/lgtmify-mcp/internal/layout"
)

func decodeOverlay(t *testing.T, result *OverlayResult) image.Image {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}
	return img
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar>>8 == br>>8 && ag>>8 == bg>>8 && ab>>8 == bb>>8 && aa>>8 == ba>>8
}

func TestDebugOverlay(t *testing.T) {
	black := color.NRGBA{0, 0, 0, 255}
	img := newFilledImage(100, 100, black)
	occluded := []layout.OccludedRect{{MinX: 10, MinY: 10, MaxX: 30, MaxY: 30}}
	region := layout.Rectangle{MinX: 40, MaxX: 90, MinY: 50, MaxY: 90, Width: 50, Height: 40, Area: 2000}
	placement := layout.Placement{OffsetX: 45, OffsetY: 80, Width: 40, Height: 12, FontSize: 14}

	result, err := DebugOverlay(img, occluded, region, placement)
	if err != nil {
		t.Fatalf("DebugOverlay failed: %v", err)
	}
	if result.Width != 100 || result.Height != 100 {
		t.Errorf("dimensions: got %dx%d, want 100x100", result.Width, result.Height)
	}

	out := decodeOverlay(t, result)

	checks := []struct {
		name string
		x, y int
		want color.Color
	}{
		{"occluded top-left", 10, 10, OccludedColor},
		{"occluded inclusive bottom-right", 30, 30, OccludedColor},
		{"region top edge", 60, 50, RegionColor},
		{"region last column", 89, 70, RegionColor},
		{"caption box top", 50, 68, PlacementColor},
		{"untouched", 5, 95, black},
	}
	for _, c := range checks {
		if got := out.At(c.x, c.y); !sameColor(got, c.want) {
			t.Errorf("%s at (%d,%d): got %v, want %v", c.name, c.x, c.y, got, c.want)
		}
	}
}

func TestDebugOverlay_EmptyRegion(t *testing.T) {
	img := newFilledImage(20, 20, color.White)

	result, err := DebugOverlay(img, nil, layout.Rectangle{}, layout.Placement{})
	if err != nil {
		t.Fatalf("DebugOverlay failed: %v", err)
	}
	if result.ImageBase64 == "" {
		t.Error("ImageBase64 is empty")
	}
}
