package layout

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHistograms(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		want Histograms
	}{
		{
			name: "3x3 with one occupied cell",
			grid: Grid{
				{Free, Free, Free},
				{Free, Free, Occupied},
				{Free, Free, Free},
			},
			want: Histograms{
				{1, 1, 1},
				{2, 2, 0},
				{3, 3, 1},
			},
		},
		{
			name: "4x4 with a vertical wall",
			grid: Grid{
				{Free, Free, Free, Occupied},
				{Free, Free, Occupied, Free},
				{Free, Free, Occupied, Free},
				{Free, Free, Free, Free},
			},
			want: Histograms{
				{1, 1, 1, 0},
				{2, 2, 0, 1},
				{3, 3, 0, 2},
				{4, 4, 1, 3},
			},
		},
		{
			name: "built from an occluded corner",
			grid: BuildGrid(3, 3, []OccludedRect{{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}}),
			want: Histograms{
				{0, 1, 1},
				{1, 2, 2},
				{2, 3, 3},
			},
		},
		{
			name: "empty grid",
			grid: Grid{},
			want: Histograms{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildHistograms(tt.grid))
		})
	}
}

func TestBuildHistograms_MatchesFreeRuns(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	grid := randomGrid(rng, 23, 17, 0.3)

	hist := BuildHistograms(grid)

	require.Len(t, hist, grid.Height())
	for y := range grid {
		require.Len(t, hist[y], grid.Width())
		for x := range grid[y] {
			run := 0
			for yy := y; yy >= 0 && grid[yy][x] == Free; yy-- {
				run++
			}
			assert.Equal(t, run, hist[y][x], "cell (%d,%d)", y, x)
			assert.Equal(t, grid[y][x] == Occupied, hist[y][x] == 0, "cell (%d,%d)", y, x)
			assert.LessOrEqual(t, hist[y][x], grid.Height())
		}
	}
}

// randomGrid returns a width x height grid where each cell is Occupied with
// probability p.
func randomGrid(rng *rand.Rand, width, height int, p float64) Grid {
	grid := make(Grid, height)
	for y := range grid {
		grid[y] = make([]Cell, width)
		for x := range grid[y] {
			grid[y][x] = Free
			if rng.Float64() < p {
				grid[y][x] = Occupied
			}
		}
	}
	return grid
}
