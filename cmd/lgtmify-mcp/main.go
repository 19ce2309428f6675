package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/lgtmify-mcp/internal/config"
	"github.com/ironsheep/lgtmify-mcp/internal/detection"
	"github.com/ironsheep/lgtmify-mcp/internal/httpapi"
	"github.com/ironsheep/lgtmify-mcp/internal/ocr"
	"github.com/ironsheep/lgtmify-mcp/internal/server"
	"github.com/ironsheep/lgtmify-mcp/internal/stamper"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Handle --version and --help before touching config
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			printVersion()
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	cfgPath := os.Getenv("LGTMIFY_CONFIG")
	if cfgPath == "" {
		cfgPath = config.DefaultPath
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lgtmify-mcp: %v\n", err)
		os.Exit(1)
	}

	// Logging goes to stderr; stdout is for MCP protocol
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Args[1:]); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, args []string) error {
	st, closer, err := stamper.FromConfig(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Debug("starting", "version", Version, "build_time", BuildTime, "commit", GitCommit)

	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "":
		return server.New(st, logger, Version).Run(ctx, os.Stdin, os.Stdout)
	case "stamp":
		if len(args) < 2 || len(args) > 3 {
			return errors.New("usage: lgtmify-mcp stamp <image> [output]")
		}
		output := ""
		if len(args) == 3 {
			output = args[2]
		}
		outcome, err := st.Stamp(ctx, args[1], output)
		if err != nil {
			return err
		}
		fmt.Println(outcome.Location)
		return nil
	case "plan":
		if len(args) != 2 {
			return errors.New("usage: lgtmify-mcp plan <image>")
		}
		outcome, err := st.Plan(ctx, args[1])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(outcome)
	case "serve-http":
		return serveHTTP(ctx, st, cfg.Server, logger)
	default:
		return fmt.Errorf("unknown command %q, see --help", cmd)
	}
}

func serveHTTP(ctx context.Context, st *stamper.Stamper, cfg config.ServerConfig, logger *slog.Logger) error {
	e := httpapi.NewServer(st, cfg, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("http server shutting down")
		return e.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func printVersion() {
	fmt.Printf("lgtmify-mcp %s\n", Version)
	fmt.Printf("  Build time: %s\n", BuildTime)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Face detection: %v\n", detection.FaceDetectionAvailable)
	if ocr.Available {
		fmt.Printf("  Tesseract: %s\n", ocr.Version())
	} else {
		fmt.Println("  Tesseract: unavailable")
	}
}

func printHelp() {
	fmt.Println("lgtmify-mcp - put an LGTM caption where it covers nothing important")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  lgtmify-mcp                       Run the MCP server on stdin/stdout")
	fmt.Println("  lgtmify-mcp stamp <image> [out]   Write lgtm-<image> (or out)")
	fmt.Println("  lgtmify-mcp plan <image>          Print the placement as JSON")
	fmt.Println("  lgtmify-mcp serve-http            Run the HTTP API")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  LGTMIFY_CONFIG=path         YAML config file (default lgtmify.yaml)")
	fmt.Println("  LGTMIFY_LOG_LEVEL=debug     Log level: debug, info, warn, error")
	fmt.Println("  LGTMIFY_DETECTORS=faces,text,ocr")
	fmt.Println("  LGTMIFY_FACE_CASCADE=path   Haar cascade XML for face detection")
	fmt.Println("  LGTMIFY_OUTPUT_DIR=dir      Where stamped images are written")
	fmt.Println("  S3_BUCKET=name              Store stamped images in S3 instead")
	fmt.Println("  LGTMIFY_HTTP_ADDR=:8080     serve-http listen address")
}
