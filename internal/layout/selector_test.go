package layout

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBest(t *testing.T) {
	tests := []struct {
		name string
		hist Histograms
		want Rectangle
	}{
		{
			name: "no rows",
			hist: Histograms{},
			want: Rectangle{},
		},
		{
			name: "unobstructed image keeps the tallest landscape row",
			hist: BuildHistograms(BuildGrid(4, 2, nil)),
			want: Rectangle{MinX: 0, MaxX: 4, MinY: 0, MaxY: 2, Width: 4, Height: 2, Area: 8},
		},
		{
			name: "portrait candidates are skipped",
			hist: BuildHistograms(BuildGrid(1, 3, nil)),
			want: Rectangle{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1, Width: 1, Height: 1, Area: 1},
		},
		{
			name: "later row wins a tie",
			hist: Histograms{
				{1, 1, 0, 0},
				{0, 0, 1, 1},
			},
			want: Rectangle{MinX: 2, MaxX: 4, MinY: 1, MaxY: 2, Width: 2, Height: 1, Area: 2},
		},
		{
			name: "only portrait candidates",
			hist: Histograms{
				{0},
				{2},
			},
			want: Rectangle{},
		},
		{
			name: "larger earlier row is kept",
			hist: Histograms{
				{1, 1, 1, 1},
				{0, 2, 0, 0},
			},
			want: Rectangle{MinX: 0, MaxX: 4, MinY: 0, MaxY: 1, Width: 4, Height: 1, Area: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectBest(tt.hist))
		})
	}
}

func TestSelectBest_NeverPortrait(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for trial := 0; trial < 40; trial++ {
		grid := randomGrid(rng, 1+rng.Intn(25), 1+rng.Intn(25), 0.2)
		got := SelectBest(BuildHistograms(grid))
		assert.GreaterOrEqual(t, got.Width, got.Height, "trial %d", trial)
	}
}

func TestSelectBestConcurrent_MatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 20; trial++ {
		hist := BuildHistograms(randomGrid(rng, 1+rng.Intn(40), 1+rng.Intn(40), 0.15))

		got, err := SelectBestConcurrent(context.Background(), hist, 4)
		require.NoError(t, err)
		assert.Equal(t, SelectBest(hist), got, "trial %d", trial)
	}
}

func TestSelectBestConcurrent_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SelectBestConcurrent(ctx, BuildHistograms(BuildGrid(10, 10, nil)), 2)
	assert.ErrorIs(t, err, context.Canceled)
}
