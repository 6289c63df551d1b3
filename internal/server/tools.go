package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

const (
	toolThumbnail   = "image_thumbnail"
	toolDimensions  = "image_dimensions"
	toolFingerprint = "image_fingerprint"
)

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the file",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        toolThumbnail,
			Description: "Shrink an image to fit inside max_width x max_height, preserving aspect ratio, and return it as base64-encoded PNG. Images that already fit are not enlarged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"max_width": map[string]interface{}{
						"type":        "integer",
						"minimum":     1,
						"description": "Largest allowed thumbnail width in pixels. Defaults to the server's configured thumbnail width",
					},
					"max_height": map[string]interface{}{
						"type":        "integer",
						"minimum":     1,
						"description": "Largest allowed thumbnail height in pixels. Defaults to the server's configured thumbnail height",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        toolDimensions,
			Description: "Get the width and height of an image file from its header, without decoding pixel data.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        toolFingerprint,
			Description: "Compute a fast XXH64 fingerprint of a file's raw bytes, returned as 16 lowercase hex digits. Any file type is accepted. Not collision resistant.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
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
