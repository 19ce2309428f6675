// Package imaging loads, draws on and encodes the images the LGTM pipeline
// works with.
//
// Loading goes through [ImageCache], which applies EXIF orientation so every
// coordinate refers to the image as displayed. [DrawCaption] renders the
// caption at a [layout.Placement]; [DebugOverlay] and [CropRegion] produce
// base64 PNG previews for inspection.
//
// # Coordinate System
//
// All pixel coordinates are 0-based from the top-left corner of the image,
// whatever its Bounds().Min:
//   - layout.OccludedRect bounds are inclusive
//   - layout.Rectangle spans MinX..MaxX and MinY..MaxY, max exclusive
//   - layout.Placement.OffsetY is the text baseline, so the caption box
//     occupies the Height pixels above it
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. All other functions return
// new images and never modify their input.
package imaging
