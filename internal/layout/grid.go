package layout

// Cell is the occupancy state of one pixel.
type Cell uint8

const (
	// Occupied marks a pixel covered by an occluded rectangle.
	Occupied Cell = iota
	// Free marks a pixel the caption may cover.
	Free
)

// OccludedRect is a region the caption must not cover, in pixel coordinates
// with inclusive bounds.
type OccludedRect struct {
	MinX int `json:"minx" yaml:"minx"`
	MinY int `json:"miny" yaml:"miny"`
	MaxX int `json:"maxx" yaml:"maxx"`
	MaxY int `json:"maxy" yaml:"maxy"`
}

// Contains reports whether (x, y) lies inside r, bounds included.
func (r OccludedRect) Contains(x, y int) bool {
	return y >= r.MinY && y <= r.MaxY && x >= r.MinX && x <= r.MaxX
}

// Grid is a height x width occupancy matrix indexed as grid[y][x].
type Grid [][]Cell

// BuildGrid classifies every pixel of a width x height image.
//
// Cell (y, x) is sampled at (x+1, y+1) and is Occupied when any rectangle
// contains that point. A zero or negative dimension yields an empty grid.
func BuildGrid(width, height int, rects []OccludedRect) Grid {
	if width <= 0 || height <= 0 {
		return Grid{}
	}

	grid := make(Grid, height)
	for y := 0; y < height; y++ {
		row := make([]Cell, width)
		for x := 0; x < width; x++ {
			row[x] = Free
			if occluded(rects, x+1, y+1) {
				row[x] = Occupied
			}
		}
		grid[y] = row
	}
	return grid
}

// occluded stops at the first rectangle containing the sample point.
func occluded(rects []OccludedRect, px, py int) bool {
	for _, r := range rects {
		if r.Contains(px, py) {
			return true
		}
	}
	return false
}

// Width returns the number of columns, or 0 for an empty grid.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}
