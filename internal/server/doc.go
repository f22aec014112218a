// Package server implements the MCP (Model Context Protocol) server for the
// grid removal tools.
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
//   - image_load: Load an image and report its metadata
//   - image_detect_grid: Find the reference grid rows and columns
//   - image_grid_preview: Highlight the grid that would be removed
//   - image_remove_grid: Erase the grid and heal the curves it cut
//
// The grid tools accept the same keys as the JSON config file
// (close_distance, foreground_color, preview_color, dark_threshold,
// min_line_coverage). Per-call values override the server's config for that
// call only.
//
// # Image Caching
//
// Source images are cached by path for the lifetime of the process. Writing
// a healed image evicts its output path so the next load sees the new file.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// Arguments are validated before any image work starts.
//
// # Usage
//
//	cfg, err := config.FromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv := server.New(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
