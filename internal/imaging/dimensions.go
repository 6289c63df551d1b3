package imaging

import (
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Dimensions is the pixel size of an image as stored in its container.
type Dimensions struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`
}

// GetDimensions returns the width and height of the image at path.
//
// Only the container header is parsed: every registered codec (PNG, JPEG,
// GIF, BMP, TIFF, WebP) exposes its size through image.DecodeConfig, so
// memory use does not depend on the image resolution. The result matches
// the bounds of a full decode.
//
// # Errors
//
//   - KindOpen if the file cannot be opened
//   - KindDimensionRead if the header is corrupt or the format unknown
func GetDimensions(path string) (Dimensions, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dimensions{}, newError(KindOpen, "open image", path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Dimensions{}, newError(KindDimensionRead, "read dimensions of", path, err)
	}

	return Dimensions{
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
