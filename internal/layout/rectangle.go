package layout

// Rectangle is an unobstructed region found under a histogram. Columns span
// [MinX, MaxX) and rows span [MinY, MaxY). Area is always Width * Height.
//
// The zero value is the empty result: no rectangle was found.
type Rectangle struct {
	MinX   int `json:"minx"`
	MaxX   int `json:"maxx"`
	MinY   int `json:"miny"`
	MaxY   int `json:"maxy"`
	Width  int `json:"width"`
	Height int `json:"height"`
	Area   int `json:"area"`
}

// Empty reports whether r carries no area.
func (r Rectangle) Empty() bool {
	return r.Area <= 0
}

// Landscape reports whether r is at least as wide as it is tall.
func (r Rectangle) Landscape() bool {
	return r.Width >= r.Height
}

// fullImage is the rectangle covering a whole width x height image.
func fullImage(width, height int) Rectangle {
	return Rectangle{
		MinX:   0,
		MaxX:   width,
		MinY:   0,
		MaxY:   height,
		Width:  width,
		Height: height,
		Area:   width * height,
	}
}
