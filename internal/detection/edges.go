package detection

import (
	"image"
	"math"
)

// edgeThreshold is the grayscale step that counts as an edge.
const edgeThreshold = 30.0

// detectEdges marks pixels whose gray level differs from the right or lower
// neighbour by more than edgeThreshold. Border pixels are never edges.
// The result is indexed edges[y][x] relative to the image origin.
func detectEdges(img image.Image) [][]bool {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	edges := make([][]bool, height)
	for y := 0; y < height; y++ {
		edges[y] = make([]bool, width)
		if y == 0 || y == height-1 {
			continue
		}
		for x := 1; x < width-1; x++ {
			px, py := x+bounds.Min.X, y+bounds.Min.Y
			c := float64(grayValue(img, px, py))
			dx := math.Abs(c - float64(grayValue(img, px+1, py)))
			dy := math.Abs(c - float64(grayValue(img, px, py+1)))
			edges[y][x] = dx > edgeThreshold || dy > edgeThreshold
		}
	}
	return edges
}

// grayValue returns the ITU-R BT.601 luma of a pixel.
func grayValue(img image.Image, x, y int) uint8 {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(float64(r>>8)*0.299 + float64(g>>8)*0.587 + float64(b>>8)*0.114)
}
