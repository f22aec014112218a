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

func linesProperty(axis string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "integer"},
		"description": "Optional " + axis + " of grid lines in image coordinates. If rows and cols are both omitted the grid is detected.",
	}
}

func detectionProperties() map[string]interface{} {
	return map[string]interface{}{
		"dark_threshold": map[string]interface{}{
			"type":        "integer",
			"description": "Gray level (0-255) below which a pixel counts as dark. Default 128",
			"minimum":     0,
			"maximum":     255,
		},
		"min_line_coverage": map[string]interface{}{
			"type":        "number",
			"description": "Fraction (0-1] of dark pixels a row or column needs to be a grid line. Default 0.6",
		},
	}
}

func withProperties(base map[string]interface{}, extra ...map[string]interface{}) map[string]interface{} {
	for _, props := range extra {
		for k, v := range props {
			base[k] = v
		}
	}
	return base
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, color depth and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_detect_grid",
			Description: "Find the horizontal and vertical reference grid lines in a plot. Returns the line coordinates, their mean spacing and a confidence score.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(map[string]interface{}{
					"path": pathProperty(),
				}, detectionProperties()),
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_grid_preview",
			Description: "Render a grayscale copy of the image with the grid lines that would be removed painted in a highlight color. Returns base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(map[string]interface{}{
					"path": pathProperty(),
					"rows": linesProperty("y coordinates"),
					"cols": linesProperty("x coordinates"),
					"preview_color": map[string]interface{}{
						"type":        "string",
						"description": "Hex color for the highlighted lines. Default #FF0000",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Optional area to return, {x1, y1, x2, y2} with x2 and y2 exclusive. Default is the whole image",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"required": []string{"x1", "y1", "x2", "y2"},
					},
				}, detectionProperties()),
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_remove_grid",
			Description: "Erase the reference grid from a plot and reconnect the curves the grid lines cut. Writes the result to output_path, or returns it as base64-encoded PNG when output_path is omitted.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(map[string]interface{}{
					"path": pathProperty(),
					"rows": linesProperty("y coordinates"),
					"cols": linesProperty("x coordinates"),
					"close_distance": map[string]interface{}{
						"type":        "number",
						"description": "Gaps whose two sides lie closer than this many pixels are reconnected. Default 10",
					},
					"foreground_color": map[string]interface{}{
						"type":        "string",
						"description": "Hex color painted into reconnected pixels. Default #000000",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional absolute path for the healed image; the extension selects the format (png, jpg, gif, bmp, tif)",
					},
				}, detectionProperties()),
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
