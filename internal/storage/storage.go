// Package storage writes stamped images to the local filesystem or to S3.
package storage

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/ironsheep/lgtmify-mcp/internal/config"
	"github.com/ironsheep/lgtmify-mcp/internal/imaging"
)

// Sink stores an encoded image and returns where it ended up.
type Sink interface {
	Put(ctx context.Context, name string, img image.Image) (string, error)
}

// FileSink writes images under Dir. The format follows the name's extension.
type FileSink struct {
	Dir string
}

// Put implements Sink. Absolute names ignore Dir.
func (s FileSink) Put(ctx context.Context, name string, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.Dir, name)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := imaging.Save(img, path); err != nil {
		return "", err
	}
	return path, nil
}

// NewSink returns an S3Sink when a bucket is configured and a FileSink
// otherwise.
func NewSink(ctx context.Context, cfg config.OutputConfig) (Sink, error) {
	if cfg.S3Bucket == "" {
		return FileSink{Dir: cfg.Dir}, nil
	}

	store, err := NewS3Adapter(ctx, cfg.AWSRegion, cfg.S3Bucket)
	if err != nil {
		return nil, err
	}
	return NewS3Sink(store, cfg.S3Bucket, cfg.S3Prefix, cfg.PublicURL), nil
}
