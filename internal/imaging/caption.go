package imaging

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"sync"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/lgtmify-mcp/internal/layout"
)

// CaptionStyle describes how the caption string is drawn.
type CaptionStyle struct {
	Text        string
	Fill        color.Color
	Stroke      color.Color
	StrokeWidth int

	// Opacity of the caption layer, 0 < Opacity <= 1.
	Opacity float64

	// Font is the typeface; nil means Go Bold.
	Font *opentype.Font
}

var (
	defaultFontOnce sync.Once
	defaultFont     *opentype.Font
	defaultFontErr  error
)

// DefaultFont returns the parsed Go Bold typeface.
func DefaultFont() (*opentype.Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = opentype.Parse(gobold.TTF)
	})
	return defaultFont, defaultFontErr
}

// LoadFont parses the TrueType or OpenType file at path. An empty path
// returns DefaultFont.
func LoadFont(path string) (*opentype.Font, error) {
	if path == "" {
		return DefaultFont()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	return f, nil
}

// ParseColor parses "#rrggbb" or "#rgb".
func ParseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return c, nil
}

// DefaultCaptionStyle is white "LGTM" with a 3px black outline.
func DefaultCaptionStyle() CaptionStyle {
	return CaptionStyle{
		Text:        "LGTM",
		Fill:        color.White,
		Stroke:      color.Black,
		StrokeWidth: 3,
		Opacity:     1,
	}
}

// DrawCaption returns a copy of img with the caption drawn at p.
//
// Parameters:
//   - img: The source image. It is never modified.
//   - p: Placement from layout.ComputePlacement. The text baseline starts at
//     (p.OffsetX, p.OffsetY) relative to img's top-left corner.
//   - style: Text, colors, outline width, opacity and font. A nil Font uses
//     the embedded Go Bold face.
//
// Returns:
//   - *image.NRGBA: A new image with the same bounds as img.
//   - error: Non-nil if no font face can be built.
//
// The face is sized to p.FontSize points at 72 DPI, so one point is one
// pixel. The outline is drawn first by stamping the text at every offset
// within StrokeWidth, then the fill on top, and the whole layer is blended
// at style.Opacity. A placement with no font size, or an empty caption,
// returns an unmodified copy.
//
// # Errors
//
//   - Returns error if the default font cannot be parsed
//   - Returns error if a face cannot be created at p.FontSize
func DrawCaption(img image.Image, p layout.Placement, style CaptionStyle) (*image.NRGBA, error) {
	if p.FontSize <= 0 || style.Text == "" {
		return imaging.Clone(img), nil
	}

	typeface := style.Font
	if typeface == nil {
		var err error
		if typeface, err = DefaultFont(); err != nil {
			return nil, fmt.Errorf("failed to load default font: %w", err)
		}
	}

	face, err := opentype.NewFace(typeface, &opentype.FaceOptions{
		Size:    float64(p.FontSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	defer face.Close()

	bounds := img.Bounds()
	layer := image.NewNRGBA(bounds)
	x := bounds.Min.X + p.OffsetX
	y := bounds.Min.Y + p.OffsetY
	d := &font.Drawer{Dst: layer, Face: face}

	if style.Stroke != nil && style.StrokeWidth > 0 {
		d.Src = image.NewUniform(style.Stroke)
		r := style.StrokeWidth
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx*dx+dy*dy > r*r {
					continue
				}
				d.Dot = fixed.P(x+dx, y+dy)
				d.DrawString(style.Text)
			}
		}
	}

	fill := style.Fill
	if fill == nil {
		fill = color.White
	}
	d.Src = image.NewUniform(fill)
	d.Dot = fixed.P(x, y)
	d.DrawString(style.Text)

	opacity := style.Opacity
	if opacity <= 0 {
		opacity = 1
	}
	return imaging.Overlay(img, layer, bounds.Min, opacity), nil
}
