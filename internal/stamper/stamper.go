// Package stamper runs the full LGTM pipeline: load an image, find what must
// stay visible, plan the caption, draw it and store the result.
package stamper

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ironsheep/lgtmify-mcp/internal/detection"
	"github.com/ironsheep/lgtmify-mcp/internal/imaging"
	"github.com/ironsheep/lgtmify-mcp/internal/layout"
	"github.com/ironsheep/lgtmify-mcp/internal/storage"
)

// OutputPrefix is prepended to the source file name when no output is given.
const OutputPrefix = "lgtm-"

// Outcome describes one planned or stamped image.
type Outcome struct {
	JobID     string                `json:"job_id"`
	Source    string                `json:"source,omitempty"`
	Width     int                   `json:"width"`
	Height    int                   `json:"height"`
	Occluded  []layout.OccludedRect `json:"occluded"`
	Region    layout.Rectangle      `json:"region"`
	Fallback  bool                  `json:"fallback"`
	Placement layout.Placement      `json:"placement"`

	// Location is where the stamped image was stored; empty for plans.
	Location string `json:"location,omitempty"`
}

// Stamper is safe for concurrent use.
type Stamper struct {
	cache    *imaging.ImageCache
	detector detection.Detector
	style    imaging.CaptionStyle
	sink     storage.Sink
	logger   *slog.Logger
	workers  int

	maxPixels int
}

// Option configures a Stamper.
type Option func(*Stamper)

// WithDetector sets the occlusion detector. The default finds nothing, so the
// caption goes into the lower part of the whole image.
func WithDetector(d detection.Detector) Option {
	return func(s *Stamper) { s.detector = d }
}

// WithSink sets where stamped images are stored.
func WithSink(sink storage.Sink) Option {
	return func(s *Stamper) { s.sink = sink }
}

// WithStyle sets the caption style.
func WithStyle(style imaging.CaptionStyle) Option {
	return func(s *Stamper) { s.style = style }
}

// WithCache shares an image cache with other components.
func WithCache(cache *imaging.ImageCache) Option {
	return func(s *Stamper) { s.cache = cache }
}

// WithWorkers sets the row scan concurrency; see layout.PlanConcurrent.
func WithWorkers(n int) Option {
	return func(s *Stamper) { s.workers = n }
}

// WithMaxPixels caps width*height for every plan; see layout.Options.
func WithMaxPixels(n int) Option {
	return func(s *Stamper) { s.maxPixels = n }
}

// New creates a Stamper. A nil logger discards output.
func New(logger *slog.Logger, opts ...Option) *Stamper {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Stamper{
		cache:    imaging.NewImageCache(),
		detector: detection.Static(nil),
		style:    imaging.DefaultCaptionStyle(),
		sink:     storage.FileSink{Dir: "."},
		logger:   logger,
		workers:  1,

		maxPixels: layout.DefaultMaxPixels,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cache returns the image cache used for path-based operations.
func (s *Stamper) Cache() *imaging.ImageCache {
	return s.cache
}

// Detect returns the occluded rectangles the configured detector finds.
func (s *Stamper) Detect(ctx context.Context, img image.Image) ([]layout.OccludedRect, error) {
	rects, err := s.detector.Detect(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("detection failed: %w", err)
	}
	return rects, nil
}

// Plan loads the image at path and computes where the caption goes.
func (s *Stamper) Plan(ctx context.Context, path string) (*Outcome, error) {
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	return s.PlanImage(ctx, img, path)
}

// Layout plans a caption for bare dimensions and caller-supplied occluded
// rectangles, under the configured pixel limit. workers == 0 uses the
// Stamper's own setting.
func (s *Stamper) Layout(ctx context.Context, width, height int, occluded []layout.OccludedRect, workers int) (layout.Result, error) {
	if workers == 0 {
		workers = s.workers
	}
	return layout.PlanWith(ctx, width, height, occluded, layout.Options{Workers: workers, MaxPixels: s.maxPixels})
}

// PlanImage computes where the caption goes on img. source is only recorded
// in the outcome and the log.
func (s *Stamper) PlanImage(ctx context.Context, img image.Image, source string) (*Outcome, error) {
	jobID := uuid.New().String()
	logger := s.logger.With("job", jobID)

	occluded, err := s.Detect(ctx, img)
	if err != nil {
		logger.Error("detection failed", "source", source, "error", err)
		return nil, err
	}

	bounds := img.Bounds()
	result, err := s.Layout(ctx, bounds.Dx(), bounds.Dy(), occluded, s.workers)
	if err != nil {
		return nil, fmt.Errorf("layout failed: %w", err)
	}

	logger.Debug("planned caption",
		"source", source,
		"width", bounds.Dx(),
		"height", bounds.Dy(),
		"occluded", len(occluded),
		"region_area", result.Region.Area,
		"fallback", result.Fallback,
		"font_size", result.Placement.FontSize,
	)

	return &Outcome{
		JobID:     jobID,
		Source:    source,
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		Occluded:  occluded,
		Region:    result.Region,
		Fallback:  result.Fallback,
		Placement: result.Placement,
	}, nil
}

// Compose plans and draws the caption on img without storing the result.
func (s *Stamper) Compose(ctx context.Context, img image.Image, source string) (*Outcome, *image.NRGBA, error) {
	outcome, err := s.PlanImage(ctx, img, source)
	if err != nil {
		return nil, nil, err
	}
	stamped, err := imaging.DrawCaption(img, outcome.Placement, s.style)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to draw caption: %w", err)
	}
	return outcome, stamped, nil
}

// Stamp captions the image at path and stores the result.
//
// Parameters:
//   - ctx: Cancels detection, the row scans and the sink upload.
//   - path: Source image file. It is loaded through the shared cache.
//   - output: Destination file. Empty stores the result through the sink as
//     "lgtm-<basename>", keeping the source extension and so its format.
//
// Returns:
//   - *Outcome: The plan plus Location, the sink location or output.
//   - error: Non-nil if any stage fails. Nothing is stored on error.
//
// # Errors
//
//   - Returns error if the source cannot be loaded or decoded
//   - Returns error if detection fails or the context is cancelled
//   - Returns layout.ErrImageTooLarge if the image exceeds the pixel limit
//   - Returns imaging.ErrUnsupportedFormat if the output extension has no encoder
//   - Returns error if the sink or the output file cannot be written
func (s *Stamper) Stamp(ctx context.Context, path, output string) (*Outcome, error) {
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}

	outcome, stamped, err := s.Compose(ctx, img, path)
	if err != nil {
		return nil, err
	}

	if output == "" {
		outcome.Location, err = s.sink.Put(ctx, OutputPrefix+filepath.Base(path), stamped)
	} else {
		err = imaging.Save(stamped, output)
		outcome.Location = output
	}
	if err != nil {
		return nil, fmt.Errorf("failed to store stamped image: %w", err)
	}

	s.logger.Info("stamped image", "job", outcome.JobID, "source", path, "location", outcome.Location)
	return outcome, nil
}

// StampImage captions an in-memory image and stores it through the sink
// under name.
func (s *Stamper) StampImage(ctx context.Context, img image.Image, name string) (*Outcome, *image.NRGBA, error) {
	outcome, stamped, err := s.Compose(ctx, img, name)
	if err != nil {
		return nil, nil, err
	}

	outcome.Location, err = s.sink.Put(ctx, name, stamped)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to store stamped image: %w", err)
	}

	s.logger.Info("stamped image", "job", outcome.JobID, "source", name, "location", outcome.Location)
	return outcome, stamped, nil
}
