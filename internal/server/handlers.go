package server

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/ironsheep/imgprep/internal/imaging"
)

// JSON-RPC error codes used by the server.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeToolFailed     = -32000
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_thumbnail").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments jsoniter.RawMessage `json:"arguments"`
}

// ErrorData is the payload of a -32000 response. It carries the categorized
// failure from the imaging package across the process boundary.
type ErrorData struct {
	// Kind is the failure category, e.g. "DecodeError".
	Kind string `json:"kind"`

	// Message is the human readable description.
	Message string `json:"message"`

	// Path is the file the failing call was given.
	Path string `json:"path,omitempty"`

	// Cause is the low-level OS or codec error text, if any.
	Cause string `json:"cause,omitempty"`
}

// invalidArgsError marks a call rejected at the boundary before the core ran.
type invalidArgsError struct {
	err error
}

func (e *invalidArgsError) Error() string { return e.err.Error() }
func (e *invalidArgsError) Unwrap() error { return e.err }

func invalidArgs(format string, a ...interface{}) error {
	return &invalidArgsError{err: fmt.Errorf(format, a...)}
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Arguments rejected at the boundary return -32602. Failures inside the
// imaging core return -32000 with ErrorData attached.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	elapsed := time.Since(start)

	if err != nil {
		var argErr *invalidArgsError
		if errors.As(err, &argErr) {
			s.logger.Debug("tool call rejected",
				zap.String("tool", params.Name),
				zap.Error(err))
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}

		data := toErrorData(err)
		s.logger.Debug("tool call failed",
			zap.String("tool", params.Name),
			zap.String("kind", data.Kind),
			zap.String("path", data.Path),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", data)
	}

	s.logger.Debug("tool call succeeded",
		zap.String("tool", params.Name),
		zap.Duration("elapsed", elapsed))

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
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies defaults and rejects invalid values
//  3. Calls the imaging core
//  4. Returns the result or error
func (s *Server) executeTool(name string, args jsoniter.RawMessage) (interface{}, error) {
	switch name {
	case toolThumbnail:
		return s.handleImageThumbnail(args)
	case toolDimensions:
		return s.handleImageDimensions(args)
	case toolFingerprint:
		return s.handleImageFingerprint(args)
	default:
		return nil, invalidArgs("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message string, data interface{}) *MCPResponse {
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

// toErrorData flattens an error into the wire payload.
func toErrorData(err error) ErrorData {
	var ie *imaging.Error
	if errors.As(err, &ie) {
		return ErrorData{
			Kind:    ie.Kind.String(),
			Message: ie.Message(),
			Path:    ie.Path,
			Cause:   ie.Cause(),
		}
	}
	return ErrorData{
		Kind:    "InternalError",
		Message: err.Error(),
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

func decodeArgs(args jsoniter.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return invalidArgs("missing arguments")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return invalidArgs("invalid arguments: %v", err)
	}
	return nil
}

func requirePath(path string) error {
	if path == "" {
		return invalidArgs("path is required")
	}
	return nil
}

// === Thumbnail ===

type imageThumbnailArgs struct {
	Path      string `json:"path"`
	MaxWidth  *int   `json:"max_width"`
	MaxHeight *int   `json:"max_height"`
}

// ThumbnailResult is the payload of a successful image_thumbnail call.
type ThumbnailResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	MimeType    string `json:"mime_type"`
	SizeBytes   int    `json:"size_bytes"`
	ImageBase64 string `json:"image_base64"`
}

func (s *Server) handleImageThumbnail(args jsoniter.RawMessage) (interface{}, error) {
	var a imageThumbnailArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath(a.Path); err != nil {
		return nil, err
	}

	maxWidth, err := s.bound("max_width", a.MaxWidth, s.cfg.ThumbnailWidth)
	if err != nil {
		return nil, err
	}
	maxHeight, err := s.bound("max_height", a.MaxHeight, s.cfg.ThumbnailHeight)
	if err != nil {
		return nil, err
	}

	data, err := imaging.CreateThumbnail(a.Path, uint(maxWidth), uint(maxHeight))
	if err != nil {
		return nil, err
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to read thumbnail header: %w", err)
	}

	return &ThumbnailResult{
		Width:       cfg.Width,
		Height:      cfg.Height,
		MimeType:    imaging.ThumbnailMimeType,
		SizeBytes:   len(data),
		ImageBase64: base64.StdEncoding.EncodeToString(data),
	}, nil
}

// bound applies the default for an omitted bound and rejects values the core
// would turn into a degenerate thumbnail.
func (s *Server) bound(name string, v *int, def int) (int, error) {
	if v == nil {
		return def, nil
	}
	if *v <= 0 {
		return 0, invalidArgs("%s must be positive, got %d", name, *v)
	}
	if s.cfg.MaxBound > 0 && *v > s.cfg.MaxBound {
		return 0, invalidArgs("%s must be at most %d, got %d", name, s.cfg.MaxBound, *v)
	}
	return *v, nil
}

// === Dimensions ===

func (s *Server) handleImageDimensions(args jsoniter.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath(a.Path); err != nil {
		return nil, err
	}
	dims, err := imaging.GetDimensions(a.Path)
	if err != nil {
		return nil, err
	}
	return &dims, nil
}

// === Fingerprint ===

// FingerprintResult is the payload of a successful image_fingerprint call.
type FingerprintResult struct {
	Fingerprint string `json:"fingerprint"`
	Algorithm   string `json:"algorithm"`
}

func (s *Server) handleImageFingerprint(args jsoniter.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath(a.Path); err != nil {
		return nil, err
	}
	fp, err := imaging.Fingerprint(a.Path)
	if err != nil {
		return nil, err
	}
	return &FingerprintResult{
		Fingerprint: fp,
		Algorithm:   imaging.FingerprintAlgorithm,
	}, nil
}
