package layout

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePlacement(t *testing.T) {
	tests := []struct {
		name   string
		rect   Rectangle
		width  int
		height int
		want   Placement
	}{
		{
			name:   "empty rect falls back to the whole image",
			rect:   Rectangle{},
			width:  100,
			height: 100,
			want:   Placement{OffsetX: 0, OffsetY: 65, Width: 100, Height: 30, FontSize: 35},
		},
		{
			name:   "width constrained",
			rect:   Rectangle{MaxX: 30, MaxY: 50, Width: 100, Height: 300, Area: 30000},
			width:  640,
			height: 480,
			want:   Placement{OffsetX: 0, OffsetY: -85, Width: 100, Height: 30, FontSize: 35},
		},
		{
			name:   "height constrained",
			rect:   Rectangle{MinX: 0, MaxX: 400, MinY: 0, MaxY: 100, Width: 400, Height: 100, Area: 40000},
			width:  400,
			height: 400,
			want:   Placement{OffsetX: 37, OffsetY: 100, Width: 326, Height: 100, FontSize: 117},
		},
		{
			name:   "width constrained keeps the rect's left edge",
			rect:   Rectangle{MinX: 20, MaxX: 220, MinY: 10, MaxY: 210, Width: 200, Height: 200, Area: 40000},
			width:  300,
			height: 300,
			want:   Placement{OffsetX: 20, OffsetY: 140, Width: 200, Height: 61, FontSize: 71},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputePlacement(tt.rect, tt.width, tt.height))
		})
	}
}

func TestCaptionAspect(t *testing.T) {
	assert.InDelta(t, 0.26/0.85, CaptionAspect, 1e-12)
}

func TestPlacement_JSONKeys(t *testing.T) {
	b, err := json.Marshal(Placement{OffsetX: 1, OffsetY: 2, Width: 3, Height: 4, FontSize: 5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"offsetx":1,"offsety":2,"width":3,"height":4,"fontsize":5}`, string(b))
}
