package pdfdoc

import "github.com/jung-kurt/gofpdf"

// Align positions text relative to its anchor point.
type Align int

const (
	// AlignLeft anchors text at its left edge.
	AlignLeft Align = iota
	// AlignCenter anchors text at its center.
	AlignCenter
	// AlignRight anchors text at its right edge.
	AlignRight
)

// TextStyle configures a single Text call. Zero values fall back to
// Helvetica, regular, 12pt, black, left-aligned.
type TextStyle struct {
	Font  string
	Style string
	Size  float64
	Color Color
	Align Align
}

// Canvas draws onto one page. Coordinates are fractions of the page with
// the origin at the bottom-left corner; the canvas converts them to the
// renderer's top-left point coordinates.
type Canvas struct {
	pdf  *gofpdf.Fpdf
	cfg  Config
	w, h float64
}

// Config returns the document configuration the canvas draws under.
func (c *Canvas) Config() Config { return c.cfg }

// Width returns the page width in points.
func (c *Canvas) Width() float64 { return c.w }

// Height returns the page height in points.
func (c *Canvas) Height() float64 { return c.h }

// X converts a width fraction to points.
func (c *Canvas) X(frac float64) float64 { return frac * c.w }

// Y converts a bottom-origin height fraction to top-origin points.
func (c *Canvas) Y(frac float64) float64 { return c.h * (1 - frac) }

// Text draws a string anchored at the fractional position (x, y).
func (c *Canvas) Text(x, y float64, s string, style TextStyle) {
	font := style.Font
	if font == "" {
		font = "Helvetica"
	}
	size := style.Size
	if size == 0 {
		size = 12
	}

	c.pdf.SetFont(font, style.Style, size)
	c.pdf.SetTextColor(int(style.Color.R), int(style.Color.G), int(style.Color.B))

	xPt := c.X(x)
	switch style.Align {
	case AlignCenter:
		xPt -= c.pdf.GetStringWidth(s) / 2
	case AlignRight:
		xPt -= c.pdf.GetStringWidth(s)
	}

	c.pdf.Text(xPt, c.Y(y), s)
}

// Line draws a straight line between two fractional positions.
func (c *Canvas) Line(x1, y1, x2, y2 float64, color Color, width float64) {
	c.pdf.SetDrawColor(int(color.R), int(color.G), int(color.B))
	c.pdf.SetLineWidth(width)
	c.pdf.Line(c.X(x1), c.Y(y1), c.X(x2), c.Y(y2))
}

// Rect draws an unfilled rectangle with corners at the two fractional
// positions.
func (c *Canvas) Rect(x1, y1, x2, y2 float64, color Color, width float64) {
	c.pdf.SetDrawColor(int(color.R), int(color.G), int(color.B))
	c.pdf.SetLineWidth(width)
	c.pdf.Rect(c.X(x1), c.Y(y2), c.X(x2)-c.X(x1), c.Y(y1)-c.Y(y2), "D")
}

// Raw exposes the underlying renderer for drawing the canvas does not
// cover. Positions passed to it are top-origin points.
func (c *Canvas) Raw() *gofpdf.Fpdf { return c.pdf }
