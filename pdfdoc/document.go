package pdfdoc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// ErrEmptyDocument is returned when saving a document with no pages.
var ErrEmptyDocument = errors.New("document has no pages")

// TOCPage is a rendered table-of-contents page and the entries it lists.
// Its Page carries the header/footer settings and final numbering like any
// content page.
type TOCPage struct {
	Page    *Page
	Entries []*Page
}

// Document assembles named pages into a single PDF with page numbering
// and an optional clickable table of contents.
type Document struct {
	Title string

	cfg                Config
	pageCountBeforeTOC int
	pages              []*Page
	tocPages           []*TOCPage

	// Vertical start of the entry list on the first and on subsequent
	// TOC pages, as page fractions. The first page sits lower to leave
	// room for the title.
	tocFirstTopY float64
	tocLaterTopY float64
}

// NewDocument creates a document with the given title and layout.
// pageCountBeforeTOC is how many content pages precede the table of
// contents in the final output (a cover page, typically).
func NewDocument(title string, cfg Config, pageCountBeforeTOC int) *Document {
	return &Document{
		Title:              title,
		cfg:                cfg,
		pageCountBeforeTOC: pageCountBeforeTOC,
		tocFirstTopY:       0.82,
		tocLaterTopY:       0.94,
	}
}

// Config returns the document's layout configuration.
func (d *Document) Config() Config { return d.cfg }

// Pages returns the content pages in creation order.
func (d *Document) Pages() []*Page { return d.pages }

// TOCPages returns the table-of-contents pages built by BuildTOC.
func (d *Document) TOCPages() []*TOCPage { return d.tocPages }

// PageCountBeforeTOC returns the number of content pages that precede the
// table of contents.
func (d *Document) PageCountBeforeTOC() int { return d.pageCountBeforeTOC }

// SetPageCountBeforeTOC changes where the table of contents is inserted.
func (d *Document) SetPageCountBeforeTOC(n int) { d.pageCountBeforeTOC = n }

// NewPage creates and registers a content page. Pages default to having a
// header, a footer, a page number, a printed name, and a TOC entry;
// options switch these off.
func (d *Document) NewPage(name string, opts ...PageOption) *Page {
	p := &Page{
		Name:               name,
		IncludeHeader:      true,
		IncludeFooter:      true,
		IncludeInNumbering: true,
		PrintName:          true,
		IncludeInIndex:     true,
		doc:                d,
	}
	for _, opt := range opts {
		opt(p)
	}
	d.pages = append(d.pages, p)
	return p
}

// NewContinuationPage creates a page that continues another: it inherits
// the parent's settings, shows the parent's continuation text after the
// name, and never gets its own TOC entry.
func (d *Document) NewContinuationPage(parent *Page) *Page {
	p := d.NewPage(parent.Name, ExcludeFromIndex())
	p.IncludeHeader = parent.IncludeHeader
	p.IncludeFooter = parent.IncludeFooter
	p.IncludeInNumbering = parent.IncludeInNumbering
	p.PrintName = true
	p.Parent = parent
	return p
}

// tocFirstCapacity returns how many entries fit on the first TOC page.
func (d *Document) tocFirstCapacity() int {
	n := int((d.tocFirstTopY - d.cfg.BottomMargin()) / d.cfg.lineHeight())
	if n < 1 {
		n = 1
	}
	return n
}

// tocLaterCapacity returns how many entries fit on subsequent TOC pages.
func (d *Document) tocLaterCapacity() int {
	n := int((d.tocLaterTopY - d.cfg.BottomMargin()) / d.cfg.lineHeight())
	if n < 1 {
		n = 1
	}
	return n
}

// BuildTOC paginates the indexed pages into TOC pages and renumbers the
// document. Calling it again rebuilds from scratch. With no indexed pages
// it only renumbers.
func (d *Document) BuildTOC() {
	d.tocPages = nil

	total := 0
	for _, p := range d.pages {
		if p.IncludeInIndex {
			total++
		}
	}

	start := 0
	included := 0
	first := true
	for included < total {
		capacity := d.tocLaterCapacity()
		if first {
			capacity = d.tocFirstCapacity()
		}

		entries, next := tocEntries(d.pages, start, capacity)
		if len(entries) == 0 {
			break
		}

		page := &Page{
			Name:               "Contents",
			IncludeHeader:      true,
			IncludeFooter:      true,
			IncludeInNumbering: true,
			PrintName:          !first,
			doc:                d,
		}
		d.tocPages = append(d.tocPages, &TOCPage{Page: page, Entries: entries})

		start = next
		included += len(entries)
		first = false
	}

	d.renumber()
}

// renumber assigns final page indices and displayed page numbers across
// content and TOC pages. TOC pages are inserted after pageCountBeforeTOC
// content pages, or at the end if there are fewer pages than that.
func (d *Document) renumber() {
	displayed := 0
	idx := 0
	inserted := false

	insertTOC := func() {
		for _, tp := range d.tocPages {
			tp.Page.PageIndex = idx
			idx++
			displayed++
			tp.Page.DisplayedNumber = displayed
		}
		inserted = true
	}

	for _, p := range d.pages {
		if !inserted && idx >= d.pageCountBeforeTOC {
			insertTOC()
		}

		p.PageIndex = idx
		if p.IncludeInNumbering {
			displayed++
			p.DisplayedNumber = displayed
		} else {
			p.DisplayedNumber = 0
		}
		idx++
	}

	if !inserted {
		insertTOC()
	}
}

// fullPath ensures dir exists and returns the full .pdf path.
func fullPath(dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return filepath.Join(dir, name+".pdf"), nil
}

// Save renders the document to dir/name.pdf and returns the full path.
// The final page order is the content pages before the TOC, the TOC
// pages, then the remaining content pages.
func (d *Document) Save(dir, name string) (string, error) {
	if len(d.pages) == 0 {
		return "", ErrEmptyDocument
	}

	d.renumber()

	full, err := fullPath(dir, name)
	if err != nil {
		return "", err
	}

	wIn, hIn := d.cfg.PageDimensions()
	wPt, hPt := wIn*pointsPerInch, hIn*pointsPerInch

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: wPt, Ht: hPt},
	})
	pdf.SetTitle(d.Title, true)
	pdf.SetAutoPageBreak(false, 0)

	// One internal link per TOC entry, resolved to the entry's final page
	// before any page is drawn.
	links := make(map[*Page]int)
	for _, tp := range d.tocPages {
		for _, entry := range tp.Entries {
			id := pdf.AddLink()
			pdf.SetLink(id, 0, entry.PageIndex+1)
			links[entry] = id
		}
	}

	before := d.pageCountBeforeTOC
	if before < 0 {
		before = 0
	}
	if before > len(d.pages) {
		before = len(d.pages)
	}

	for _, p := range d.pages[:before] {
		d.renderPage(pdf, p, wPt, hPt)
	}
	for i, tp := range d.tocPages {
		d.renderTOCPage(pdf, tp, links, i == 0, wPt, hPt)
	}
	for _, p := range d.pages[before:] {
		d.renderPage(pdf, p, wPt, hPt)
	}

	if pdf.Err() {
		return "", fmt.Errorf("rendering pdf: %w", pdf.Error())
	}
	if err := pdf.OutputFileAndClose(full); err != nil {
		return "", fmt.Errorf("writing pdf: %w", err)
	}

	return full, nil
}

// renderPage draws one content page: header, footer, queued content, and
// the page number overlay.
func (d *Document) renderPage(pdf *gofpdf.Fpdf, p *Page, wPt, hPt float64) {
	pdf.AddPage()
	c := &Canvas{pdf: pdf, cfg: d.cfg, w: wPt, h: hPt}

	if p.IncludeHeader && d.cfg.Header != nil {
		d.cfg.Header(c, p, p.DisplayName(), p.PrintName)
	}
	if p.IncludeFooter && d.cfg.Footer != nil {
		d.cfg.Footer(c, p)
	}

	for _, op := range p.ops {
		op(c)
	}

	if p.IncludeInNumbering {
		d.drawPageNumber(c, p.DisplayedNumber)
	}
}

// Vertical position of the page number overlay, as a page fraction.
const pageNumberY = 0.93

// drawPageNumber draws "Page N" right-aligned at the right margin.
func (d *Document) drawPageNumber(c *Canvas, n int) {
	c.Text(d.cfg.RightMargin(), pageNumberY, "Page "+strconv.Itoa(n), TextStyle{
		Style: "B",
		Size:  9,
		Color: d.cfg.Colors.PageNum,
		Align: AlignRight,
	})
}

// renderTOCPage draws one table-of-contents page: the title block on the
// first page, one leader-dot line per entry with a clickable link, and a
// vertical accent rule.
func (d *Document) renderTOCPage(pdf *gofpdf.Fpdf, tp *TOCPage, links map[*Page]int, isFirst bool, wPt, hPt float64) {
	pdf.AddPage()
	c := &Canvas{pdf: pdf, cfg: d.cfg, w: wPt, h: hPt}
	p := tp.Page

	if p.IncludeHeader && d.cfg.Header != nil {
		d.cfg.Header(c, p, p.Name, p.PrintName)
	}
	if p.IncludeFooter && d.cfg.Footer != nil {
		d.cfg.Footer(c, p)
	}

	title := d.cfg.Colors.Title
	lineH := d.cfg.lineHeight() * hPt

	// Entry columns in points: names start at 20% of the width, numbers
	// end at 80%. All y values below are measured from the bottom edge
	// and flipped only when handed to gofpdf.
	nameX := 0.2 * wPt
	numX := 0.8 * wPt
	topMargin := d.cfg.TopMargin() * hPt

	pdf.SetFont("Courier", "", 10)
	dotWidth := pdf.GetStringWidth(".")
	pageCountStr := strconv.Itoa(len(d.pages))
	numBuffer := 10.0 + float64(len(pageCountStr)-1)*5.0
	maxDotWidth := (numX - nameX) - numBuffer
	dotEndX := numX - numBuffer

	var yB float64
	if isFirst {
		pdf.SetTextColor(int(title.R), int(title.G), int(title.B))
		pdf.SetFont("Helvetica", "B", 18)
		titleY := topMargin - 15
		const titleText = "Table of Contents"
		titleWidth := pdf.GetStringWidth(titleText)
		titleX := wPt/2 - titleWidth/2
		pdf.Text(titleX, hPt-titleY, titleText)

		pdf.SetDrawColor(int(title.R), int(title.G), int(title.B))
		pdf.SetLineWidth(1)
		underlineY := titleY - 5
		pdf.Line(titleX, hPt-underlineY, titleX+titleWidth, hPt-underlineY)

		yB = d.tocFirstTopY * hPt
	} else {
		yB = d.tocLaterTopY * hPt
	}

	initialY := yB + lineH - 9

	for _, entry := range tp.Entries {
		const linkHeight = 14.0

		pdf.SetFont("Helvetica", "", 12)
		nameWidth := pdf.GetStringWidth(entry.Name) + 4

		// Leader dots, right-aligned against the page number column.
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Courier", "", 10)
		dotCount := int((maxDotWidth - nameWidth) / dotWidth)
		if dotCount > 0 {
			dots := dotString(dotCount)
			pdf.Text(dotEndX-pdf.GetStringWidth(dots), hPt-yB, dots)
		}

		pdf.SetTextColor(0, 0, 255)
		pdf.SetFont("Helvetica", "", 12)
		pdf.Text(nameX, hPt-yB, entry.Name)

		pdf.SetFont("Helvetica", "B", 12)
		numStr := strconv.Itoa(entry.DisplayedNumber)
		pdf.Text(numX-pdf.GetStringWidth(numStr), hPt-yB, numStr)

		entry.TOCRect = [4]float64{nameX, yB - 2, numX, yB + linkHeight}
		pdf.Link(nameX, hPt-(yB+linkHeight), numX-nameX, linkHeight+2, links[entry])

		yB -= lineH
	}

	endY := initialY - float64(len(tp.Entries))*lineH + 8

	pdf.SetDrawColor(int(title.R), int(title.G), int(title.B))
	pdf.SetLineWidth(1)
	vertX := nameX - 10
	pdf.Line(vertX, hPt-initialY, vertX, hPt-endY)

	d.drawPageNumber(c, p.DisplayedNumber)
}

// dotString builds a leader-dot run of n dots.
func dotString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '.'
	}
	return string(b)
}
