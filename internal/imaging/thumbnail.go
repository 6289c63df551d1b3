package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

// ThumbnailMimeType is the container every thumbnail is encoded in.
const ThumbnailMimeType = "image/png"

// thumbnailFilter trades fidelity for speed: the triangle filter has a
// support of 1 where Lanczos has 3.
var thumbnailFilter = imaging.Linear

// CreateThumbnail decodes the image at path, shrinks it to fit inside
// maxWidth x maxHeight and returns it PNG-encoded.
//
// The format is detected from the file content, not its extension. The aspect
// ratio is preserved and the image is never enlarged: a source that already
// fits is re-encoded at its own size. A bound of 0 produces a degenerate
// raster that cannot be encoded, so callers should reject 0 before calling.
//
// # Errors
//
// All failures are *Error:
//   - KindOpen if the file cannot be opened
//   - KindDecode if the content is not a supported image
//   - KindEncode if the resized raster cannot be written as PNG
//
// No bytes are returned alongside an error.
func CreateThumbnail(path string, maxWidth, maxHeight uint) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newError(KindOpen, "open image", path, err)
	}
	defer f.Close()

	src, err := decodeImage(f)
	if err != nil {
		return nil, newError(KindDecode, "decode image", path, describeDecodeFailure(f, err))
	}

	bounds := src.Bounds()
	w, h := FitDimensions(bounds.Dx(), bounds.Dy(), clampBound(maxWidth), clampBound(maxHeight))

	var thumb image.Image
	switch {
	case w == 0 || h == 0:
		thumb = image.NewNRGBA(image.Rect(0, 0, w, h))
	case w == bounds.Dx() && h == bounds.Dy():
		thumb = src
	default:
		thumb = imaging.Resize(src, w, h, thumbnailFilter)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.PNG, imaging.PNGCompressionLevel(png.BestSpeed)); err != nil {
		return nil, newError(KindEncode, "encode thumbnail", path, err)
	}
	return buf.Bytes(), nil
}

// FitDimensions returns the largest size that fits inside maxWidth x
// maxHeight with the aspect ratio of srcWidth x srcHeight.
//
// The scale factor is min(maxWidth/srcWidth, maxHeight/srcHeight), capped at
// 1 and floored, so neither bound is ever exceeded. A positive bound never
// shrinks an axis below one pixel; a zero bound yields 0 on that axis only.
func FitDimensions(srcWidth, srcHeight, maxWidth, maxHeight int) (int, int) {
	if srcWidth <= 0 || srcHeight <= 0 {
		return 0, 0
	}
	if maxWidth < 0 {
		maxWidth = 0
	}
	if maxHeight < 0 {
		maxHeight = 0
	}
	if srcWidth <= maxWidth && srcHeight <= maxHeight {
		return srcWidth, srcHeight
	}

	sw, sh := int64(srcWidth), int64(srcHeight)
	mw, mh := int64(maxWidth), int64(maxHeight)

	var w, h int64
	if mw*sh <= mh*sw {
		// width is the binding bound
		w = mw
		h = sh * mw / sw
		if h == 0 && mh > 0 {
			h = 1
		}
	} else {
		h = mh
		w = sw * mh / sh
		if w == 0 && mw > 0 {
			w = 1
		}
	}
	return int(w), int(h)
}

// decodeImage decodes r and places the result on a canvas of the size the
// container header declares. A GIF frame smaller than, or offset inside, the
// logical screen keeps its position, so the decoded bounds always match
// GetDimensions.
func decodeImage(r io.ReadSeeker) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return nil, err
	}

	screen := image.Rect(0, 0, cfg.Width, cfg.Height)
	if img.Bounds() == screen {
		return img, nil
	}
	canvas := image.NewNRGBA(screen)
	draw.Draw(canvas, img.Bounds(), img, img.Bounds().Min, draw.Src)
	return canvas, nil
}

// clampBound keeps a bound representable as int; anything above MaxInt32
// is already larger than any raster the codecs will decode.
func clampBound(v uint) int {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

// describeDecodeFailure adds the sniffed content type to a codec error so a
// caller can tell "not an image" apart from "corrupt image".
func describeDecodeFailure(f io.ReadSeeker, err error) error {
	if _, serr := f.Seek(0, io.SeekStart); serr != nil {
		return err
	}
	mt, derr := mimetype.DetectReader(f)
	if derr != nil {
		return err
	}
	return fmt.Errorf("%w (detected content type %s)", err, mt.String())
}
