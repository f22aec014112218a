package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/ironsheep/grid-heal-mcp/internal/config"
	"github.com/ironsheep/grid-heal-mcp/internal/detection"
	"github.com/ironsheep/grid-heal-mcp/internal/healer"
	"github.com/ironsheep/grid-heal-mcp/internal/imaging"
	"github.com/ironsheep/grid-heal-mcp/internal/removal"
)

// errPathRequired is returned by every tool called without a path.
var errPathRequired = errors.New("path is required")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_remove_grid").
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
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
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
//
// Each handler unmarshals and validates its arguments, merges any config
// overrides over the server defaults, and only then touches the image. No
// user input reaches the healer unchecked.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_detect_grid":
		return s.handleImageDetectGrid(args)
	case "image_grid_preview":
		return s.handleImageGridPreview(args)
	case "image_remove_grid":
		return s.handleImageRemoveGrid(args)
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
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return errPathRequired
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// settings merges per-call overrides over the server config and validates
// the result.
func (s *Server) settings(override config.GridRemoval) (*config.GridRemoval, error) {
	cfg := s.config.Merge(&override)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *Server) load(path string) (image.Image, error) {
	if path == "" {
		return nil, errPathRequired
	}
	return s.cache.Load(path)
}

// samePath reports whether a and b name the same file once cleaned and made
// absolute.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// gridLines returns the caller's lines when either axis was supplied and
// detects them otherwise.
func gridLines(img image.Image, rows, cols []int, cfg *config.GridRemoval) (*detection.GridLines, error) {
	if rows == nil && cols == nil {
		return detection.DetectGridLines(img, cfg.GetDarkThreshold(), cfg.GetMinLineCoverage())
	}
	if rows == nil {
		rows = []int{}
	}
	if cols == nil {
		cols = []int{}
	}
	return &detection.GridLines{Rows: rows, Cols: cols}, nil
}

// === Image Information ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errPathRequired
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// === Grid Detection ===

type imageDetectGridArgs struct {
	Path string `json:"path"`
	config.GridRemoval
}

type detectGridResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	*detection.GridLines
}

func (s *Server) handleImageDetectGrid(args json.RawMessage) (interface{}, error) {
	var a imageDetectGridArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	cfg, err := s.settings(a.GridRemoval)
	if err != nil {
		return nil, err
	}
	img, err := s.load(a.Path)
	if err != nil {
		return nil, err
	}

	lines, err := detection.DetectGridLines(img, cfg.GetDarkThreshold(), cfg.GetMinLineCoverage())
	if err != nil {
		return nil, err
	}
	return &detectGridResult{
		Width:     img.Bounds().Dx(),
		Height:    img.Bounds().Dy(),
		GridLines: lines,
	}, nil
}

// === Grid Preview ===

type imageGridPreviewArgs struct {
	Path   string          `json:"path"`
	Rows   []int           `json:"rows"`
	Cols   []int           `json:"cols"`
	Scale  float64         `json:"scale"`
	Region *imaging.Region `json:"region"`
	config.GridRemoval
}

func (s *Server) handleImageGridPreview(args json.RawMessage) (interface{}, error) {
	var a imageGridPreviewArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	cfg, err := s.settings(a.GridRemoval)
	if err != nil {
		return nil, err
	}
	img, err := s.load(a.Path)
	if err != nil {
		return nil, err
	}

	lines, err := gridLines(img, a.Rows, a.Cols, cfg)
	if err != nil {
		return nil, err
	}
	return imaging.GridPreview(img, lines.Rows, lines.Cols, cfg.GetPreviewColor(), a.Scale, a.Region)
}

// === Grid Removal ===

type imageRemoveGridArgs struct {
	Path       string `json:"path"`
	Rows       []int  `json:"rows"`
	Cols       []int  `json:"cols"`
	OutputPath string `json:"output_path"`
	config.GridRemoval
}

type removeGridResult struct {
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Rows        []int         `json:"rows"`
	Cols        []int         `json:"cols"`
	Stats       removal.Stats `json:"stats"`
	OutputPath  string        `json:"output_path,omitempty"`
	ImageBase64 string        `json:"image_base64,omitempty"`
	MimeType    string        `json:"mime_type,omitempty"`
}

func (s *Server) handleImageRemoveGrid(args json.RawMessage) (interface{}, error) {
	var a imageRemoveGridArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	cfg, err := s.settings(a.GridRemoval)
	if err != nil {
		return nil, err
	}
	if a.OutputPath != "" && samePath(a.OutputPath, a.Path) {
		return nil, fmt.Errorf("output_path must differ from path")
	}
	img, err := s.load(a.Path)
	if err != nil {
		return nil, err
	}

	lines, err := gridLines(img, a.Rows, a.Cols, cfg)
	if err != nil {
		return nil, err
	}

	var logger healer.Logger
	if s.debug != nil {
		logger = s.debug
	}
	res, err := removal.Remove(img, lines, cfg, logger)
	if err != nil {
		return nil, err
	}

	out := &removeGridResult{
		Width:  res.Image.Bounds().Dx(),
		Height: res.Image.Bounds().Dy(),
		Rows:   res.Lines.Rows,
		Cols:   res.Lines.Cols,
		Stats:  res.Stats,
	}

	if a.OutputPath != "" {
		if err := imaging.Save(res.Image, a.OutputPath); err != nil {
			return nil, err
		}
		s.cache.Evict(a.OutputPath)
		out.OutputPath = a.OutputPath
		return out, nil
	}

	encoded, err := imaging.EncodePNGBase64(res.Image)
	if err != nil {
		return nil, err
	}
	out.ImageBase64 = encoded
	out.MimeType = "image/png"
	return out, nil
}
