package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/lgtmify-mcp/internal/layout"
)

// CropResult contains a cropped region encoded as base64 PNG.
type CropResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// CropRegion extracts the free region chosen by the layout, optionally scaled.
// scale <= 0 is treated as 1.
func CropRegion(img image.Image, region layout.Rectangle, scale float64) (*CropResult, error) {
	if region.Empty() {
		return nil, fmt.Errorf("invalid region: no free area to crop")
	}

	bounds := img.Bounds()
	r := image.Rect(region.MinX, region.MinY, region.MaxX, region.MaxY).Add(bounds.Min)
	if !r.In(bounds) {
		return nil, fmt.Errorf("region %v outside image bounds %v", r, bounds)
	}

	cropped := imaging.Crop(img, r)

	if scale > 0 && scale != 1.0 {
		w := int(float64(cropped.Bounds().Dx()) * scale)
		h := int(float64(cropped.Bounds().Dy()) * scale)
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("scale %v shrinks region to nothing", scale)
		}
		cropped = imaging.Resize(cropped, w, h, imaging.Lanczos)
	}

	encoded, err := EncodeBase64PNG(cropped)
	if err != nil {
		return nil, err
	}

	return &CropResult{
		Width:       cropped.Bounds().Dx(),
		Height:      cropped.Bounds().Dy(),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}
