package pdfdoc

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"sync/atomic"

	"github.com/jung-kurt/gofpdf"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// imageSeq makes registered image names unique across a document.
var imageSeq uint64

// Image draws the image file at path with its top-left corner at the
// fractional position (x, y) and the given fractional width and height.
// A zero width or height keeps the image's aspect ratio.
func (c *Canvas) Image(path string, x, y, w, h float64) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()
	return c.ImageReader(f, x, y, w, h)
}

// ImageReader draws an image read from r, like Image. JPEG, PNG, and GIF
// are embedded directly; BMP, TIFF, and WebP are decoded and re-encoded
// as PNG first.
func (c *Canvas) ImageReader(r io.Reader, x, y, w, h float64) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decoding image: %w", err)
	}

	switch format {
	case "jpeg", "png", "gif":
	default:
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("decoding %s image: %w", format, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("converting %s image: %w", format, err)
		}
		data = buf.Bytes()
		format = "png"
	}

	name := fmt.Sprintf("img%d", atomic.AddUint64(&imageSeq, 1))
	opts := gofpdf.ImageOptions{ImageType: format}
	info := c.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if c.pdf.Err() {
		return fmt.Errorf("registering image: %w", c.pdf.Error())
	}

	wPt := w * c.w
	hPt := h * c.h
	if wPt == 0 && hPt == 0 {
		wPt = info.Width()
		hPt = info.Height()
	} else if wPt == 0 {
		wPt = hPt * info.Width() / info.Height()
	} else if hPt == 0 {
		hPt = wPt * info.Height() / info.Width()
	}

	c.pdf.ImageOptions(name, c.X(x), c.Y(y), wPt, hPt, false, opts, 0, "")
	if c.pdf.Err() {
		return fmt.Errorf("placing image: %w", c.pdf.Error())
	}
	return nil
}
