package layout

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindLargest(t *testing.T) {
	tests := []struct {
		name      string
		rowIndex  int
		histogram []int
		want      Rectangle
	}{
		{
			name:      "single free run on the first row",
			rowIndex:  1,
			histogram: []int{0, 1, 1, 0},
			want:      Rectangle{MinX: 1, MaxX: 3, MinY: 0, MaxY: 1, Width: 2, Height: 1, Area: 2},
		},
		{
			name:      "wide block beats tall spike",
			rowIndex:  6,
			histogram: []int{0, 1, 1, 0, 3, 3, 5},
			want:      Rectangle{MinX: 4, MaxX: 7, MinY: 3, MaxY: 6, Width: 3, Height: 3, Area: 9},
		},
		{
			name:      "fully free row",
			rowIndex:  2,
			histogram: []int{2, 2, 2},
			want:      Rectangle{MinX: 0, MaxX: 3, MinY: 0, MaxY: 2, Width: 3, Height: 2, Area: 6},
		},
		{
			name:      "valley splits the row",
			rowIndex:  4,
			histogram: []int{4, 4, 1, 4, 4, 4},
			want:      Rectangle{MinX: 3, MaxX: 6, MinY: 0, MaxY: 4, Width: 3, Height: 4, Area: 12},
		},
		{
			name:      "first of two equal runs is kept",
			rowIndex:  1,
			histogram: []int{1, 1, 0, 1, 1},
			want:      Rectangle{MinX: 0, MaxX: 2, MinY: 0, MaxY: 1, Width: 2, Height: 1, Area: 2},
		},
		{
			name:      "fully occupied row",
			rowIndex:  3,
			histogram: []int{0, 0, 0},
			want:      Rectangle{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindLargest(tt.rowIndex, tt.histogram))
		})
	}
}

func TestFindLargest_DoesNotModifyInput(t *testing.T) {
	histogram := []int{0, 1, 1, 0}
	FindLargest(1, histogram)
	assert.Equal(t, []int{0, 1, 1, 0}, histogram)
	assert.Len(t, histogram, 4)
}

func TestFindLargest_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		width := 1 + rng.Intn(30)
		height := 1 + rng.Intn(30)
		hist := BuildHistograms(randomGrid(rng, width, height, 0.25))

		for i, row := range hist {
			rowIndex := i + 1
			got := FindLargest(rowIndex, row)

			assert.Equal(t, got.Width*got.Height, got.Area)
			assert.LessOrEqual(t, got.Area, rowIndex*len(row))
			assert.Equal(t, bruteForceArea(row), got.Area, "trial %d row %d: %v", trial, rowIndex, row)

			if got.Empty() {
				continue
			}
			assert.Equal(t, rowIndex, got.MaxY)
			assert.Equal(t, got.MaxY-got.Height, got.MinY)
			assert.Equal(t, got.MaxX-got.MinX, got.Width)
			for x := got.MinX; x < got.MaxX; x++ {
				assert.GreaterOrEqual(t, row[x], got.Height, "column %d", x)
			}
		}
	}
}

// bruteForceArea checks every column span for the largest rectangle.
func bruteForceArea(histogram []int) int {
	best := 0
	for a := range histogram {
		low := histogram[a]
		for b := a; b < len(histogram); b++ {
			if histogram[b] < low {
				low = histogram[b]
			}
			if area := low * (b - a + 1); area > best {
				best = area
			}
		}
	}
	return best
}
