package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/lgtmify-mcp/internal/imaging"
	"github.com/ironsheep/lgtmify-mcp/internal/layout"
	"github.com/ironsheep/lgtmify-mcp/internal/stamper"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "lgtm_plan", "lgtm_stamp").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
// A panicking tool is reported as an error so the serve loop survives.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool %s panicked: %v", name, r)
		}
	}()

	switch name {
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Pure layout, no image needed
	case "lgtm_layout":
		return s.handleLayout(ctx, args)

	// Pipeline
	case "lgtm_detect":
		return s.handleDetect(ctx, args)
	case "lgtm_plan":
		return s.handlePlan(ctx, args)
	case "lgtm_stamp":
		return s.handleStamp(ctx, args)

	// Inspection
	case "lgtm_debug_overlay":
		return s.handleDebugOverlay(ctx, args)
	case "lgtm_region_preview":
		return s.handleRegionPreview(ctx, args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type pathArgs struct {
	Path string `json:"path"`
}

func parsePathArgs(args json.RawMessage) (pathArgs, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return a, err
	}
	if a.Path == "" {
		return a, errors.New("path is required")
	}
	return a, nil
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	a, err := parsePathArgs(args)
	if err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.stamper.Cache(), a.Path)
}

type layoutArgs struct {
	Width    int                   `json:"width"`
	Height   int                   `json:"height"`
	Occluded []layout.OccludedRect `json:"occluded"`
	Workers  int                   `json:"workers"`
}

func (s *Server) handleLayout(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a layoutArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	res, err := s.stamper.Layout(ctx, a.Width, a.Height, a.Occluded, a.Workers)
	if err != nil {
		return nil, err
	}
	return res, nil
}

type detectResult struct {
	Occluded []layout.OccludedRect `json:"occluded"`
	Count    int                   `json:"count"`
}

func (s *Server) handleDetect(ctx context.Context, args json.RawMessage) (interface{}, error) {
	a, err := parsePathArgs(args)
	if err != nil {
		return nil, err
	}
	img, err := s.stamper.Cache().Load(a.Path)
	if err != nil {
		return nil, err
	}
	rects, err := s.stamper.Detect(ctx, img)
	if err != nil {
		return nil, err
	}
	return &detectResult{Occluded: rects, Count: len(rects)}, nil
}

func (s *Server) handlePlan(ctx context.Context, args json.RawMessage) (interface{}, error) {
	a, err := parsePathArgs(args)
	if err != nil {
		return nil, err
	}
	return s.stamper.Plan(ctx, a.Path)
}

type stampArgs struct {
	Path   string `json:"path"`
	Output string `json:"output"`
}

func (s *Server) handleStamp(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a stampArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	return s.stamper.Stamp(ctx, a.Path, a.Output)
}

type debugOverlayResult struct {
	Plan    *stamper.Outcome       `json:"plan"`
	Overlay *imaging.OverlayResult `json:"overlay"`
}

func (s *Server) handleDebugOverlay(ctx context.Context, args json.RawMessage) (interface{}, error) {
	a, err := parsePathArgs(args)
	if err != nil {
		return nil, err
	}
	img, err := s.stamper.Cache().Load(a.Path)
	if err != nil {
		return nil, err
	}
	plan, err := s.stamper.PlanImage(ctx, img, a.Path)
	if err != nil {
		return nil, err
	}
	overlay, err := imaging.DebugOverlay(img, plan.Occluded, plan.Region, plan.Placement)
	if err != nil {
		return nil, err
	}
	return &debugOverlayResult{Plan: plan, Overlay: overlay}, nil
}

type regionPreviewArgs struct {
	Path  string  `json:"path"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleRegionPreview(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a regionPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.stamper.Cache().Load(a.Path)
	if err != nil {
		return nil, err
	}
	plan, err := s.stamper.PlanImage(ctx, img, a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.CropRegion(img, plan.Region, a.Scale)
}
