// Package imaging provides the image preprocessing primitives behind imgprep.
//
// Three independent operations are exported:
//   - CreateThumbnail: decode, shrink to a bounding box, encode as PNG
//   - GetDimensions: read width and height from the container header
//   - Fingerprint: XXH64 digest of a file's raw bytes as hex
//
// # Thread Safety
//
// Every function is a pure function of its arguments and the filesystem.
// There is no cache, no package state and no setup, so any number of calls
// may run concurrently. Each call owns its buffers and releases them on return.
// Calls cannot be cancelled; a caller that needs a deadline must run the call
// on its own goroutine and discard the result.
//
// # Supported Formats
//
// PNG, JPEG, GIF, BMP, TIFF and WebP are decoded. The format is always
// detected from the content, never from the file extension. Thumbnails are
// always PNG (lossless, keeps transparency).
//
// # Error Handling
//
// Every failure is returned as *Error carrying a Kind, the path and the
// low-level cause:
//   - KindOpen: the path could not be opened
//   - KindDecode: the content is not a supported image
//   - KindEncode: the thumbnail could not be encoded
//   - KindDimensionRead: the header could not be parsed
//   - KindRead: the file could not be read for fingerprinting
//
// Use errors.Is with ErrOpen, ErrDecode, etc., or KindOf, to branch on the
// kind. No operation panics, retries, or returns partial output on failure.
package imaging
