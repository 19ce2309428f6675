// Package detection finds the parts of an image that a caption must not
// cover.
//
// Every detector reports [layout.OccludedRect] values relative to the image's
// top-left corner. The rectangles feed straight into [layout.Plan].
//
// # Detectors
//
//   - [Static]: rectangles known in advance, e.g. supplied by a client
//   - [TextDetector]: edge-density heuristic for existing lettering
//   - [FaceDetector]: OpenCV Haar cascade, only with the gocv build tag
//
// [Combine] chains several detectors. Word boxes from Tesseract live in the
// ocr package and satisfy the same [Detector] interface.
//
// # Coordinates
//
// Detector boxes are converted with [FromRectangle], which keeps Max as
// x+width and y+height. The layout grid treats Max as inclusive, so every
// detected box is padded by one pixel on its right and bottom edges.
package detection
