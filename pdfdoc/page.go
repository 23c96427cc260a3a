package pdfdoc

// Page is a document page and its bookkeeping state. Content is queued
// with Draw and rendered when the document is saved, so pagination can be
// computed before anything touches the PDF.
type Page struct {
	// Name is the page's display name, used in the header and the TOC.
	Name string

	IncludeHeader      bool
	IncludeFooter      bool
	IncludeInNumbering bool
	PrintName          bool
	IncludeInIndex     bool

	// DisplayedNumber is the 1-based number printed on the page, assigned
	// during renumbering. Zero until then, and stays zero for pages
	// excluded from numbering.
	DisplayedNumber int

	// PageIndex is the page's final 0-based position in the output,
	// counting inserted TOC pages. Assigned during renumbering.
	PageIndex int

	// ContinuationText is appended to the names of continuation pages
	// created from this page.
	ContinuationText string

	// Parent is set on continuation pages.
	Parent *Page

	// TOCRect is the clickable area of this page's TOC entry, in points
	// with the origin at the bottom-left (left x, bottom y, right x,
	// top y). Set while the TOC is rendered.
	TOCRect [4]float64

	ops []func(*Canvas)
	doc *Document
}

// PageOption adjusts a new page's settings.
type PageOption func(*Page)

// WithoutHeader disables the header callback for the page.
func WithoutHeader() PageOption {
	return func(p *Page) { p.IncludeHeader = false }
}

// WithoutFooter disables the footer callback for the page.
func WithoutFooter() PageOption {
	return func(p *Page) { p.IncludeFooter = false }
}

// ExcludeFromNumbering leaves the page out of displayed page numbering.
func ExcludeFromNumbering() PageOption {
	return func(p *Page) { p.IncludeInNumbering = false }
}

// WithoutName suppresses the page name in the header.
func WithoutName() PageOption {
	return func(p *Page) { p.PrintName = false }
}

// ExcludeFromIndex leaves the page out of the table of contents.
func ExcludeFromIndex() PageOption {
	return func(p *Page) { p.IncludeInIndex = false }
}

// WithContinuationText sets the suffix appended to the display names of
// continuation pages created from this page.
func WithContinuationText(s string) PageOption {
	return func(p *Page) { p.ContinuationText = s }
}

// Draw queues a drawing function to run when the page is rendered.
func (p *Page) Draw(fn func(*Canvas)) {
	p.ops = append(p.ops, fn)
}

// DisplayName returns the page name with the parent's continuation text
// appended for continuation pages.
func (p *Page) DisplayName() string {
	if p.Parent != nil && p.Parent.ContinuationText != "" {
		return p.Name + " " + p.Parent.ContinuationText
	}
	return p.Name
}

// tocEntries collects up to max indexed pages starting at start, returning
// the entries and the position to resume scanning from.
func tocEntries(pages []*Page, start, max int) ([]*Page, int) {
	var entries []*Page
	i := start
	for i < len(pages) && len(entries) < max {
		if pages[i].IncludeInIndex {
			entries = append(entries, pages[i])
		}
		i++
	}
	return entries, i
}
