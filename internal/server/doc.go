// Package server implements the MCP (Model Context Protocol) server for the
// LGTM caption tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_dimensions: Width and height of an image file
//   - lgtm_layout: Placement from dimensions and occluded rectangles alone
//   - lgtm_detect: Occluded rectangles found by the configured detectors
//   - lgtm_plan: Detection plus placement for an image file
//   - lgtm_stamp: Draw the caption and store the result
//   - lgtm_debug_overlay: Plan with an annotated preview image
//   - lgtm_region_preview: Crop of the chosen free region
//
// Images are cached by path for the lifetime of the process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(st, logger, version)
//	if err := srv.Run(ctx, os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
package server
