package ocr

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/lgtmify-mcp/internal/layout"
)

func TestOccludedWords(t *testing.T) {
	words := []Word{
		{Text: "LGTM", Confidence: 0.91, Box: image.Rect(10, 20, 60, 40)},
		{Text: "maybe", Confidence: 0.30, Box: image.Rect(0, 0, 5, 5)},
		{Text: "  ", Confidence: 0.99, Box: image.Rect(0, 0, 5, 5)},
		{Text: "ok", Confidence: 0.60, Box: image.Rect(70, 80, 90, 95)},
		{Text: "void", Confidence: 0.99, Box: image.Rectangle{}},
	}

	got := occludedWords(words, 0.6)
	assert.Equal(t, []layout.OccludedRect{
		{MinX: 10, MinY: 20, MaxX: 60, MaxY: 40},
		{MinX: 70, MinY: 80, MaxX: 90, MaxY: 95},
	}, got)
}

func TestOccludedWords_Empty(t *testing.T) {
	got := occludedWords(nil, 0)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestWordDetector_Language(t *testing.T) {
	assert.Equal(t, DefaultLanguage, WordDetector{}.language())
	assert.Equal(t, "deu", WordDetector{Language: "deu"}.language())
}

func TestWordDetector_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WordDetector{}.Detect(ctx, image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWordDetector_Unavailable(t *testing.T) {
	if Available {
		t.Skip("built with cgo")
	}
	_, err := WordDetector{}.Detect(context.Background(), image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	require.ErrorIs(t, err, ErrUnavailable)
}
