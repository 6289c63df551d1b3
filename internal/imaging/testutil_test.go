package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// newFilledImage returns a width x height NRGBA image filled with c.
func newFilledImage(width, height int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

// encodeAs encodes img in the named container format.
func encodeAs(t *testing.T, img image.Image, format string) []byte {
	t.Helper()
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80})
	case "gif":
		err = gif.Encode(&buf, img, nil)
	case "bmp":
		err = bmp.Encode(&buf, img)
	case "tiff":
		err = tiff.Encode(&buf, img, nil)
	default:
		t.Fatalf("unknown format %q", format)
	}
	if err != nil {
		t.Fatalf("failed to encode %s: %v", format, err)
	}
	return buf.Bytes()
}

// readTestdata returns the bytes of a checked-in fixture. WebP has no encoder
// in the image packages, so WebP sources come from testdata.
func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", name, err)
	}
	return data
}

// offsetFrameGIF encodes a GIF whose logical screen is screenW x screenH and
// whose only frame covers frame, filled with c.
func offsetFrameGIF(t *testing.T, screenW, screenH int, frame image.Rectangle, c color.Color) []byte {
	t.Helper()
	img := image.NewPaletted(frame, color.Palette{c})
	var buf bytes.Buffer
	err := gif.EncodeAll(&buf, &gif.GIF{
		Image: []*image.Paletted{img},
		Delay: []int{0},
		Config: image.Config{
			ColorModel: img.Palette,
			Width:      screenW,
			Height:     screenH,
		},
	})
	if err != nil {
		t.Fatalf("failed to encode offset gif: %v", err)
	}
	return buf.Bytes()
}

// writeFile writes data to name inside a per-test temp dir and returns the path.
func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// createTestImage writes a solid PNG of the given size and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	return writeFile(t, "test-image.png", encodeAs(t, newFilledImage(width, height, c), "png"))
}
