package layout

// Natural size of the caption at font scale 1, as fractions of the font size.
const (
	CaptionWidthFrac  = 0.85
	CaptionHeightFrac = 0.26
)

// CaptionAspect is the caption's height-to-width ratio.
const CaptionAspect = CaptionHeightFrac / CaptionWidthFrac

// Placement is the draw geometry handed to the renderer. OffsetY is the
// caption baseline.
type Placement struct {
	OffsetX  int `json:"offsetx"`
	OffsetY  int `json:"offsety"`
	Width    int `json:"width"`
	Height   int `json:"height"`
	FontSize int `json:"fontsize"`
}

// ComputePlacement fits the caption into rect, or into the whole
// imageWidth x imageHeight image when rect is empty.
//
// When rect is taller than the caption's natural shape the caption takes the
// full rect width and is centred vertically. Otherwise it takes the full rect
// height, is centred horizontally and sits on the rect's bottom edge. Every
// conversion to int truncates toward zero.
func ComputePlacement(rect Rectangle, imageWidth, imageHeight int) Placement {
	if rect.Empty() {
		rect = fullImage(imageWidth, imageHeight)
	}

	width := float64(rect.Width)
	height := float64(rect.Height)

	var p Placement
	if CaptionAspect < height/width {
		p.Width = rect.Width
		p.Height = int(CaptionAspect * width)
		p.OffsetX = rect.MinX
		p.OffsetY = int(float64(rect.MaxY) - height/2 + float64(p.Height)/2)
	} else {
		p.Height = rect.Height
		p.Width = int(CaptionWidthFrac * height / CaptionHeightFrac)
		p.OffsetX = int(float64(rect.MaxX) - width/2 - float64(p.Width)/2)
		p.OffsetY = rect.MaxY
	}
	p.FontSize = int(float64(p.Height) / CaptionWidthFrac)
	return p
}
