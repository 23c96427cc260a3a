package pdfdoc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// ErrNotSupported is returned by Load. Reading text back out of a PDF
// needs a dedicated extraction tool.
var ErrNotSupported = errors.New("pdfdoc: loading pdf files is not supported")

// Default layout for plain-text dumps, in points.
const (
	textMargin      = 50.0
	textLineAdvance = 14.0
	textFontSize    = 11.0
)

type textOptions struct {
	title       string
	size        PageSize
	orientation Orientation
	margin      float64
}

// TextOption adjusts how SaveText lays out its pages.
type TextOption func(*textOptions)

// WithTitle sets the PDF document title.
func WithTitle(title string) TextOption {
	return func(o *textOptions) { o.title = title }
}

// WithTextPageSize sets the page size and orientation.
func WithTextPageSize(size PageSize, orientation Orientation) TextOption {
	return func(o *textOptions) {
		o.size = size
		o.orientation = orientation
	}
}

// WithMargin sets the page margin in points.
func WithMargin(pts float64) TextOption {
	return func(o *textOptions) { o.margin = pts }
}

// SaveText writes the lines read from r as a plain monospaced PDF at
// dir/name.pdf, breaking pages as needed, and returns the full path.
func SaveText(r io.Reader, dir, name string, opts ...TextOption) (string, error) {
	o := textOptions{
		size:   Letter,
		margin: textMargin,
	}
	for _, opt := range opts {
		opt(&o)
	}

	full, err := fullPath(dir, name)
	if err != nil {
		return "", err
	}

	wPt := o.size.Width(o.orientation) * pointsPerInch
	hPt := o.size.Height(o.orientation) * pointsPerInch

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: wPt, Ht: hPt},
	})
	if o.title != "" {
		pdf.SetTitle(o.title, true)
	}
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Courier", "", textFontSize)

	bottom := hPt - o.margin
	y := bottom // forces a page on the first line

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if y >= bottom {
			pdf.AddPage()
			y = o.margin
		}
		pdf.Text(o.margin, y, sc.Text())
		y += textLineAdvance
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("reading text: %w", err)
	}

	if pdf.PageCount() == 0 {
		pdf.AddPage()
	}

	if pdf.Err() {
		return "", fmt.Errorf("rendering pdf: %w", pdf.Error())
	}
	if err := pdf.OutputFileAndClose(full); err != nil {
		return "", fmt.Errorf("writing pdf: %w", err)
	}

	return full, nil
}

// SaveString writes s as a plain-text PDF, like SaveText.
func SaveString(s, dir, name string, opts ...TextOption) (string, error) {
	return SaveText(strings.NewReader(s), dir, name, opts...)
}

// Load always fails with ErrNotSupported.
func Load(path string) error {
	return fmt.Errorf("loading %s: %w", path, ErrNotSupported)
}
