// Package config loads lgtmify settings from a YAML file with environment
// variable overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/lgtmify-mcp/internal/layout"
)

// DefaultPath is used when LGTMIFY_CONFIG is not set.
const DefaultPath = "lgtmify.yaml"

// Detector names accepted in DetectionConfig.Detectors.
const (
	DetectorFaces = "faces"
	DetectorText  = "text"
	DetectorOCR   = "ocr"
)

// Config is the complete runtime configuration.
type Config struct {
	Caption   CaptionConfig   `yaml:"caption"`
	Detection DetectionConfig `yaml:"detection"`
	Layout    LayoutConfig    `yaml:"layout"`
	Output    OutputConfig    `yaml:"output"`
	Server    ServerConfig    `yaml:"server"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel"`
}

// CaptionConfig controls how the caption is drawn.
type CaptionConfig struct {
	Text        string  `yaml:"text"`
	Fill        string  `yaml:"fill"`
	Stroke      string  `yaml:"stroke"`
	StrokeWidth int     `yaml:"strokeWidth"`
	Opacity     float64 `yaml:"opacity"`

	// FontPath is an optional TrueType/OpenType file. Empty uses Go Bold.
	FontPath string `yaml:"fontPath"`
}

// DetectionConfig selects the occlusion detectors.
type DetectionConfig struct {
	// Detectors lists detector names: faces, text, ocr.
	Detectors []string `yaml:"detectors"`

	// FaceCascade is the Haar cascade XML used by the faces detector.
	FaceCascade string `yaml:"faceCascade"`

	TextMinConfidence float64 `yaml:"textMinConfidence"`
	OCRLanguage       string  `yaml:"ocrLanguage"`
	OCRMinConfidence  float64 `yaml:"ocrMinConfidence"`

	// TessdataPrefix is the directory holding Tesseract language data.
	// Empty uses the library's default search path.
	TessdataPrefix string `yaml:"tessdataPrefix"`
}

// LayoutConfig tunes the placement search.
type LayoutConfig struct {
	// Workers is the number of goroutines scanning rows. 1 is sequential,
	// 0 uses GOMAXPROCS.
	Workers int `yaml:"workers"`

	// MaxPixels rejects images whose width*height exceeds it. 0 uses
	// layout.DefaultMaxPixels.
	MaxPixels int `yaml:"maxPixels"`
}

// OutputConfig chooses where stamped images go.
type OutputConfig struct {
	Dir string `yaml:"dir"`

	// S3Bucket switches output to S3 when set.
	S3Bucket  string `yaml:"s3Bucket"`
	S3Prefix  string `yaml:"s3Prefix"`
	AWSRegion string `yaml:"awsRegion"`

	// PublicURL, when set, is the base URL returned for stored objects.
	PublicURL string `yaml:"publicURL"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	HTTPAddr      string `yaml:"httpAddr"`
	AllowedOrigin string `yaml:"allowedOrigin"`
	MaxUploadSize string `yaml:"maxUploadSize"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Caption: CaptionConfig{
			Text:        "LGTM",
			Fill:        "#ffffff",
			Stroke:      "#000000",
			StrokeWidth: 3,
			Opacity:     1.0,
		},
		Detection: DetectionConfig{
			Detectors:         []string{DetectorFaces},
			FaceCascade:       "haarcascade_frontalface_alt.xml",
			TextMinConfidence: 0.5,
			OCRLanguage:       "eng",
			OCRMinConfidence:  0.6,
		},
		Layout: LayoutConfig{
			Workers:   1,
			MaxPixels: layout.DefaultMaxPixels,
		},
		Output: OutputConfig{
			Dir:       ".",
			S3Prefix:  "lgtm/",
			AWSRegion: "ap-northeast-1",
		},
		Server: ServerConfig{
			HTTPAddr:      ":8080",
			AllowedOrigin: "*",
			MaxUploadSize: "10M",
		},
		LogLevel: "info",
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides file values with any set environment variables.
func (c *Config) applyEnv() error {
	c.LogLevel = getEnv("LGTMIFY_LOG_LEVEL", c.LogLevel)
	c.Caption.Text = getEnv("LGTMIFY_CAPTION", c.Caption.Text)
	c.Caption.FontPath = getEnv("LGTMIFY_FONT", c.Caption.FontPath)
	c.Detection.FaceCascade = getEnv("LGTMIFY_FACE_CASCADE", c.Detection.FaceCascade)
	c.Detection.TessdataPrefix = getEnv("LGTMIFY_TESSDATA_PREFIX", c.Detection.TessdataPrefix)
	c.Output.Dir = getEnv("LGTMIFY_OUTPUT_DIR", c.Output.Dir)
	c.Output.S3Bucket = getEnv("S3_BUCKET", c.Output.S3Bucket)
	c.Output.AWSRegion = getEnv("AWS_REGION", c.Output.AWSRegion)
	c.Output.PublicURL = getEnv("LGTMIFY_PUBLIC_URL", c.Output.PublicURL)
	c.Server.HTTPAddr = getEnv("LGTMIFY_HTTP_ADDR", c.Server.HTTPAddr)
	c.Server.AllowedOrigin = getEnv("ALLOWED_ORIGIN", c.Server.AllowedOrigin)

	if v := os.Getenv("LGTMIFY_DETECTORS"); v != "" {
		c.Detection.Detectors = splitList(v)
	}
	if err := getEnvInt("LGTMIFY_WORKERS", &c.Layout.Workers); err != nil {
		return err
	}
	return getEnvInt("LGTMIFY_MAX_PIXELS", &c.Layout.MaxPixels)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Caption.Text) == "" {
		return errors.New("invalid caption text: must not be empty")
	}
	if c.Caption.StrokeWidth < 0 {
		return errors.New("invalid caption stroke width: must not be negative")
	}
	if c.Caption.Opacity <= 0 || c.Caption.Opacity > 1 {
		return fmt.Errorf("invalid caption opacity %v: must be in (0, 1]", c.Caption.Opacity)
	}
	if c.Layout.Workers < 0 {
		return errors.New("invalid layout workers: must not be negative")
	}
	if c.Layout.MaxPixels < 0 {
		return errors.New("invalid layout max pixels: must not be negative")
	}
	for _, name := range c.Detection.Detectors {
		switch name {
		case DetectorFaces, DetectorText, DetectorOCR:
		default:
			return fmt.Errorf("invalid detector %q: want %s, %s or %s", name, DetectorFaces, DetectorText, DetectorOCR)
		}
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts LogLevel for log/slog.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt parses an integer environment variable into dst when it is set.
func getEnvInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
