package layout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		occluded []OccludedRect
		want     Result
	}{
		{
			name:   "no occlusion uses the whole square",
			width:  100,
			height: 100,
			want: Result{
				Region:    Rectangle{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100, Width: 100, Height: 100, Area: 10000},
				Placement: Placement{OffsetX: 0, OffsetY: 65, Width: 100, Height: 30, FontSize: 35},
			},
		},
		{
			name:     "fully occluded image falls back",
			width:    1,
			height:   3,
			occluded: []OccludedRect{{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5}},
			want: Result{
				Fallback:  true,
				Placement: Placement{OffsetX: 0, OffsetY: 1, Width: 1, Height: 0, FontSize: 0},
			},
		},
		{
			name:     "face on top leaves the bottom band",
			width:    10,
			height:   10,
			occluded: []OccludedRect{{MinX: 0, MinY: 0, MaxX: 10, MaxY: 4}},
			want: Result{
				Region:    Rectangle{MinX: 0, MaxX: 10, MinY: 4, MaxY: 10, Width: 10, Height: 6, Area: 60},
				Placement: Placement{OffsetX: 0, OffsetY: 8, Width: 10, Height: 3, FontSize: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Plan(tt.width, tt.height, tt.occluded)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlan_EmptyImage(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {0, 0}, {-1, 5}} {
		_, err := Plan(dims[0], dims[1], nil)
		assert.ErrorIs(t, err, ErrEmptyImage, "dims %v", dims)
	}
}

func TestPlan_Idempotent(t *testing.T) {
	occluded := []OccludedRect{
		{MinX: 12, MinY: 8, MaxX: 30, MaxY: 33},
		{MinX: 50, MinY: 40, MaxX: 70, MaxY: 60},
	}

	first, err := Plan(80, 64, occluded)
	require.NoError(t, err)
	second, err := Plan(80, 64, occluded)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPlanConcurrent_MatchesPlan(t *testing.T) {
	occluded := []OccludedRect{
		{MinX: 5, MinY: 5, MaxX: 20, MaxY: 25},
		{MinX: 40, MinY: 10, MaxX: 55, MaxY: 30},
	}

	want, err := Plan(64, 48, occluded)
	require.NoError(t, err)

	got, err := PlanConcurrent(context.Background(), 64, 48, occluded, 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPlanWith_PixelLimit(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		height    int
		maxPixels int
		wantErr   error
	}{
		{name: "exactly at the limit", width: 10, height: 10, maxPixels: 100},
		{name: "one row over the limit", width: 10, height: 11, maxPixels: 100, wantErr: ErrImageTooLarge},
		{name: "width that would overflow the product", width: 1 << 50, height: 1 << 20, wantErr: ErrImageTooLarge},
		{name: "huge single row", width: 1125899906842624, height: 1, wantErr: ErrImageTooLarge},
		{name: "empty wins over too large", width: 1 << 50, height: 0, wantErr: ErrEmptyImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanWith(context.Background(), tt.width, tt.height, nil, Options{Workers: 1, MaxPixels: tt.maxPixels})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPlanConcurrent_RejectsHugeWidth(t *testing.T) {
	_, err := PlanConcurrent(context.Background(), 1125899906842624, 1, nil, 4)
	assert.ErrorIs(t, err, ErrImageTooLarge)
}
