package httpapi

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ironsheep/lgtmify-mcp/internal/imaging"
	"github.com/ironsheep/lgtmify-mcp/internal/layout"
	"github.com/ironsheep/lgtmify-mcp/internal/stamper"
)

// Handler serves the LGTM endpoints.
type Handler struct {
	stamper *stamper.Stamper
	logger  *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(st *stamper.Stamper, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{stamper: st, logger: logger}
}

// Health returns the health status of the server.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "ok",
	})
}

// LayoutRequest is the body of POST /api/layout.
type LayoutRequest struct {
	Width    int                   `json:"width"`
	Height   int                   `json:"height"`
	Occluded []layout.OccludedRect `json:"occluded"`
	Workers  int                   `json:"workers"`
}

// Layout computes a placement from dimensions and rectangles alone.
func (h *Handler) Layout(c echo.Context) error {
	var req LayoutRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	res, err := h.stamper.Layout(c.Request().Context(), req.Width, req.Height, req.Occluded, req.Workers)
	if err != nil {
		return h.planError(c, err)
	}
	return success(c, map[string]interface{}{
		"region":    res.Region,
		"fallback":  res.Fallback,
		"placement": res.Placement,
	})
}

// Plan detects occluded areas in the uploaded "image" and returns the plan.
func (h *Handler) Plan(c echo.Context) error {
	img, name, err := uploadedImage(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	outcome, err := h.stamper.PlanImage(c.Request().Context(), img, name)
	if err != nil {
		return h.planError(c, err)
	}
	return success(c, map[string]interface{}{"result": outcome})
}

// Stamp captions the uploaded "image". With ?format=png (or jpeg, bmp) the
// stamped image is returned directly; otherwise it is stored and the
// outcome, including its location, is returned.
func (h *Handler) Stamp(c echo.Context) error {
	img, name, err := uploadedImage(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()

	format := c.QueryParam("format")
	if format == "" {
		outcome, _, err := h.stamper.StampImage(ctx, img, stamper.OutputPrefix+stem(name)+".png")
		if err != nil {
			return h.planError(c, err)
		}
		return success(c, map[string]interface{}{"result": outcome})
	}

	outcome, stamped, err := h.stamper.Compose(ctx, img, name)
	if err != nil {
		return h.planError(c, err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, stamped, format); err != nil {
		if errors.Is(err, imaging.ErrUnsupportedFormat) {
			return fail(c, http.StatusBadRequest, err.Error())
		}
		return h.planError(c, err)
	}

	c.Response().Header().Set("X-Lgtm-Job", outcome.JobID)
	return c.Blob(http.StatusOK, imaging.MimeType(format), buf.Bytes())
}

// planError maps pipeline errors to responses.
func (h *Handler) planError(c echo.Context, err error) error {
	if errors.Is(err, layout.ErrEmptyImage) || errors.Is(err, layout.ErrImageTooLarge) {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	h.logger.Error("request failed", "path", c.Path(), "error", err)
	return fail(c, http.StatusInternalServerError, "internal error")
}

// uploadedImage decodes the multipart "image" field.
func uploadedImage(c echo.Context) (image.Image, string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, "", errors.New("missing image field")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to read upload: %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, "", errors.New("invalid image")
	}
	return img, filepath.Base(fh.Filename), nil
}

func stem(name string) string {
	s := strings.TrimSuffix(name, filepath.Ext(name))
	if s == "" || s == "." {
		return "upload"
	}
	return s
}
