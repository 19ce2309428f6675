// Package ocr treats words recognised by Tesseract as occluded regions, so a
// caption never covers lettering already present in the image.
//
// Recognition needs cgo and a system Tesseract install with language data:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// Builds without cgo still compile; [WordDetector.Detect] then returns
// [ErrUnavailable] and [Available] is false.
package ocr
