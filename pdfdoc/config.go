package pdfdoc

// HeaderFunc renders a page header. displayName is the page name with any
// continuation suffix applied; printName reports whether the header should
// show it.
type HeaderFunc func(c *Canvas, p *Page, displayName string, printName bool)

// FooterFunc renders a page footer.
type FooterFunc func(c *Canvas, p *Page)

// Config holds the layout settings used when creating and rendering pages.
// Margins and heights are fractions of the page; the origin for fractions
// is the bottom-left corner.
type Config struct {
	Size        PageSize
	Orientation Orientation
	Colors      Colors

	// Margins is (left, right, top, bottom) as page fractions. Note that
	// right and top are positions, not distances from the edge: a right
	// margin of 0.93 means content ends at 93% of the page width.
	Margins [4]float64

	// LineHeight and RowHeight override the page-size defaults when
	// non-zero.
	LineHeight float64
	RowHeight  float64

	Header HeaderFunc
	Footer FooterFunc
}

// DefaultConfig returns a Config with the size's default margins and
// heights, and black title and page number colors.
func DefaultConfig(size PageSize, o Orientation) Config {
	l, r, t, b := size.Margins()
	return Config{
		Size:        size,
		Orientation: o,
		Margins:     [4]float64{l, r, t, b},
	}
}

// LeftMargin returns the left margin fraction.
func (c Config) LeftMargin() float64 { return c.Margins[0] }

// RightMargin returns the right margin position fraction.
func (c Config) RightMargin() float64 { return c.Margins[1] }

// TopMargin returns the top margin position fraction.
func (c Config) TopMargin() float64 { return c.Margins[2] }

// BottomMargin returns the bottom margin fraction.
func (c Config) BottomMargin() float64 { return c.Margins[3] }

// ContentWidth returns the usable width fraction between the margins.
func (c Config) ContentWidth() float64 { return c.RightMargin() - c.LeftMargin() }

// ContentHeight returns the usable height fraction between the margins.
func (c Config) ContentHeight() float64 { return c.TopMargin() - c.BottomMargin() }

// PageDimensions returns the oriented page (width, height) in inches.
func (c Config) PageDimensions() (float64, float64) {
	return c.Size.Width(c.Orientation), c.Size.Height(c.Orientation)
}

// lineHeight returns the effective line height fraction.
func (c Config) lineHeight() float64 {
	if c.LineHeight > 0 {
		return c.LineHeight
	}
	return c.Size.LineHeight()
}

// rowHeight returns the effective row height fraction.
func (c Config) rowHeight() float64 {
	if c.RowHeight > 0 {
		return c.RowHeight
	}
	return c.Size.RowHeight()
}
