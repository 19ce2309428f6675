package stamper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ironsheep/lgtmify-mcp/internal/config"
	"github.com/ironsheep/lgtmify-mcp/internal/detection"
	"github.com/ironsheep/lgtmify-mcp/internal/imaging"
	"github.com/ironsheep/lgtmify-mcp/internal/ocr"
	"github.com/ironsheep/lgtmify-mcp/internal/storage"
)

// FromConfig builds a Stamper and everything it needs from cfg. The returned
// closer releases detector resources.
func FromConfig(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Stamper, io.Closer, error) {
	style, err := CaptionStyle(cfg.Caption)
	if err != nil {
		return nil, nil, err
	}

	detector, closer, err := BuildDetector(cfg.Detection, logger)
	if err != nil {
		return nil, nil, err
	}

	sink, err := storage.NewSink(ctx, cfg.Output)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}

	s := New(logger,
		WithDetector(detector),
		WithStyle(style),
		WithSink(sink),
		WithWorkers(cfg.Layout.Workers),
		WithMaxPixels(cfg.Layout.MaxPixels),
	)
	return s, closer, nil
}

// CaptionStyle converts caption settings to a drawing style.
func CaptionStyle(cfg config.CaptionConfig) (imaging.CaptionStyle, error) {
	fill, err := imaging.ParseColor(cfg.Fill)
	if err != nil {
		return imaging.CaptionStyle{}, fmt.Errorf("caption fill: %w", err)
	}
	stroke, err := imaging.ParseColor(cfg.Stroke)
	if err != nil {
		return imaging.CaptionStyle{}, fmt.Errorf("caption stroke: %w", err)
	}
	font, err := imaging.LoadFont(cfg.FontPath)
	if err != nil {
		return imaging.CaptionStyle{}, err
	}

	return imaging.CaptionStyle{
		Text:        cfg.Text,
		Fill:        fill,
		Stroke:      stroke,
		StrokeWidth: cfg.StrokeWidth,
		Opacity:     cfg.Opacity,
		Font:        font,
	}, nil
}

type closers []io.Closer

func (c closers) Close() error {
	var errs []error
	for _, cl := range c {
		errs = append(errs, cl.Close())
	}
	return errors.Join(errs...)
}

// BuildDetector combines the named detectors. Detectors this build cannot
// run are skipped with a warning.
func BuildDetector(cfg config.DetectionConfig, logger *slog.Logger) (detection.Detector, io.Closer, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var (
		detectors []detection.Detector
		cls       closers
	)
	for _, name := range cfg.Detectors {
		switch name {
		case config.DetectorFaces:
			fd, err := detection.NewFaceDetector(cfg.FaceCascade)
			if errors.Is(err, detection.ErrFaceDetectionUnavailable) {
				logger.Warn("skipping detector", "detector", name, "error", err)
				continue
			}
			if err != nil {
				cls.Close()
				return nil, nil, err
			}
			detectors = append(detectors, fd)
			cls = append(cls, fd)
		case config.DetectorText:
			detectors = append(detectors, detection.TextDetector{MinConfidence: cfg.TextMinConfidence})
		case config.DetectorOCR:
			if !ocr.Available {
				logger.Warn("skipping detector", "detector", name, "error", ocr.ErrUnavailable)
				continue
			}
			detectors = append(detectors, wordDetector(cfg))
		default:
			cls.Close()
			return nil, nil, fmt.Errorf("%w: %q", detection.ErrUnknownDetector, name)
		}
		logger.Debug("enabled detector", "detector", name)
	}

	return detection.Combine(detectors...), cls, nil
}

// wordDetector maps OCR settings onto an ocr.WordDetector.
func wordDetector(cfg config.DetectionConfig) ocr.WordDetector {
	return ocr.WordDetector{
		Language:       cfg.OCRLanguage,
		MinConfidence:  cfg.OCRMinConfidence,
		TessdataPrefix: cfg.TessdataPrefix,
	}
}
