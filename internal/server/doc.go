// Package server implements the MCP (Model Context Protocol) server that
// exposes the imgprep primitives to a host orchestration layer.
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
//   - image_thumbnail: bounded, aspect-preserving PNG thumbnail (base64)
//   - image_dimensions: width and height read from the image header
//   - image_fingerprint: XXH64 hex digest of the file's raw bytes
//
// # Error Handling
//
// Tool failures are returned as JSON-RPC error responses:
//   - -32602: the arguments were rejected before any file was touched
//     (missing path, non-positive or oversized thumbnail bounds)
//   - -32000: the imaging core failed; data is an ErrorData object with the
//     failure kind (OpenError, DecodeError, EncodeError, DimensionReadError,
//     ReadError), a message, the path and the low-level cause
//
// # Usage
//
//	srv := server.New(server.DefaultConfig(), logger)
//	if err := srv.Run(); err != nil {
//	    logger.Fatal("server error", zap.Error(err))
//	}
//
// The server holds no per-image state: every call goes straight to the
// imaging package and nothing is cached between calls.
package server
