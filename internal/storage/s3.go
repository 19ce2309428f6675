package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/ironsheep/lgtmify-mcp/internal/imaging"
)

// ObjectStore is the subset of S3 the sink needs.
type ObjectStore interface {
	PutObject(ctx context.Context, key, contentType string, data []byte) error
}

// S3Adapter adapts the AWS S3 client to ObjectStore.
type S3Adapter struct {
	client *s3.Client
	bucket string
}

// NewS3Adapter loads the default AWS credential chain for region.
func NewS3Adapter(ctx context.Context, region, bucket string) (*S3Adapter, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &S3Adapter{client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

func (a *S3Adapter) PutObject(ctx context.Context, key, contentType string, data []byte) error {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &a.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	return err
}

// S3Sink uploads images under prefix with random object names.
type S3Sink struct {
	store     ObjectStore
	bucket    string
	prefix    string
	publicURL string
}

// NewS3Sink creates an S3Sink. When publicURL is empty, Put returns
// s3://bucket/key locations.
func NewS3Sink(store ObjectStore, bucket, prefix, publicURL string) *S3Sink {
	return &S3Sink{
		store:     store,
		bucket:    bucket,
		prefix:    prefix,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

// Put implements Sink. Only the extension of name is used; it picks the
// format and defaults to png.
func (s *S3Sink) Put(ctx context.Context, name string, img image.Image) (string, error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if format == "" {
		format = "png"
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return "", err
	}

	key := s.prefix + uuid.New().String() + "." + format
	if err := s.store.PutObject(ctx, key, imaging.MimeType(format), buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s", s.publicURL, key), nil
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}
