package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildGrid(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		rects  []OccludedRect
		want   Grid
	}{
		{
			name:   "corner rect is sampled one pixel in",
			width:  3,
			height: 3,
			rects:  []OccludedRect{{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}},
			want: Grid{
				{Occupied, Free, Free},
				{Free, Free, Free},
				{Free, Free, Free},
			},
		},
		{
			name:   "single point rect",
			width:  4,
			height: 3,
			rects:  []OccludedRect{{MinX: 2, MinY: 2, MaxX: 2, MaxY: 2}},
			want: Grid{
				{Free, Free, Free, Free},
				{Free, Occupied, Free, Free},
				{Free, Free, Free, Free},
			},
		},
		{
			name:   "overlapping rects",
			width:  3,
			height: 2,
			rects: []OccludedRect{
				{MinX: 1, MinY: 1, MaxX: 2, MaxY: 1},
				{MinX: 2, MinY: 1, MaxX: 3, MaxY: 1},
			},
			want: Grid{
				{Occupied, Occupied, Occupied},
				{Free, Free, Free},
			},
		},
		{
			name:   "zero width",
			width:  0,
			height: 3,
			want:   Grid{},
		},
		{
			name:   "zero height",
			width:  3,
			height: 0,
			want:   Grid{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildGrid(tt.width, tt.height, tt.rects)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildGrid_NoRectsAllFree(t *testing.T) {
	grid := BuildGrid(7, 5, nil)

	assert.Equal(t, 7, grid.Width())
	assert.Equal(t, 5, grid.Height())
	for y, row := range grid {
		for x, c := range row {
			assert.Equal(t, Free, c, "cell (%d,%d)", y, x)
		}
	}
}

func TestBuildGrid_RectsOutsideImage(t *testing.T) {
	rects := []OccludedRect{
		{MinX: 10, MinY: 10, MaxX: 20, MaxY: 20},
		{MinX: -10, MinY: -10, MaxX: -1, MaxY: -1},
		{MinX: 0, MinY: 50, MaxX: 4, MaxY: 60},
		{MinX: 30, MinY: 0, MaxX: 40, MaxY: 4},
	}

	grid := BuildGrid(5, 5, rects)

	for y, row := range grid {
		for x, c := range row {
			assert.Equal(t, Free, c, "cell (%d,%d)", y, x)
		}
	}
}

func TestOccludedRect_Contains(t *testing.T) {
	r := OccludedRect{MinX: 2, MinY: 3, MaxX: 4, MaxY: 5}

	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(4, 5))
	assert.True(t, r.Contains(3, 4))
	assert.False(t, r.Contains(1, 3))
	assert.False(t, r.Contains(5, 5))
	assert.False(t, r.Contains(4, 6))
}
