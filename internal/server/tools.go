package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file, after EXIF orientation is applied.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "lgtm_layout",
			Description: "Compute the largest free landscape region and the LGTM caption placement for an image of the given size with the given occluded rectangles. Rectangle bounds are inclusive. No image is read.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Image width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Image height in pixels",
					},
					"occluded": map[string]interface{}{
						"type":        "array",
						"description": "Areas the caption must avoid",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"minx": map[string]interface{}{"type": "integer"},
								"miny": map[string]interface{}{"type": "integer"},
								"maxx": map[string]interface{}{"type": "integer"},
								"maxy": map[string]interface{}{"type": "integer"},
							},
							"required": []string{"minx", "miny", "maxx", "maxy"},
						},
					},
					"workers": map[string]interface{}{
						"type":        "integer",
						"description": "Goroutines scanning rows. Default 1, 0 or less uses all CPUs",
						"default":     1,
					},
				},
				"required": []string{"width", "height"},
			},
		},
		{
			Name:        "lgtm_detect",
			Description: "Run the configured detectors (faces, text, ocr) and return the occluded rectangles they report.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "lgtm_plan",
			Description: "Detect occluded areas in an image and return the chosen free region and caption placement without drawing anything.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "lgtm_stamp",
			Description: "Draw the LGTM caption onto an image and store the result. Without output the image is stored as lgtm-<name> in the configured output location.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Optional output file path (.png, .jpg or .bmp)",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "lgtm_debug_overlay",
			Description: "Return the plan plus a base64 PNG with occluded areas outlined in red, the free region in green and the caption box in blue.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "lgtm_region_preview",
			Description: "Crop the free region chosen for the caption and return it as base64 PNG. Fails when no region qualified.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
