package pdfdoc

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// span is a run of text with one font style applied.
type span struct {
	text  string
	style string
	brk   bool
}

// parseSpans parses a small inline-HTML subset (b, strong, i, em, u, br)
// into styled runs. Unknown tags contribute their text unstyled.
func parseSpans(s string) ([]span, error) {
	nodes, err := html.ParseFragment(strings.NewReader(s), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return nil, err
	}

	var spans []span
	var walk func(n *html.Node, bold, italic, underline bool)
	walk = func(n *html.Node, bold, italic, underline bool) {
		switch n.Type {
		case html.TextNode:
			if n.Data != "" {
				spans = append(spans, span{text: n.Data, style: styleString(bold, italic, underline)})
			}
			return
		case html.ElementNode:
			switch n.Data {
			case "b", "strong":
				bold = true
			case "i", "em":
				italic = true
			case "u":
				underline = true
			case "br":
				spans = append(spans, span{brk: true})
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, bold, italic, underline)
		}
	}
	for _, n := range nodes {
		walk(n, false, false, false)
	}

	return spans, nil
}

// styleString builds the renderer style flags for the given attributes.
func styleString(bold, italic, underline bool) string {
	var b strings.Builder
	if bold {
		b.WriteByte('B')
	}
	if italic {
		b.WriteByte('I')
	}
	if underline {
		b.WriteByte('U')
	}
	return b.String()
}

// Markup flows inline-HTML text (b, strong, i, em, u, br) into the column
// starting at the fractional position (x, y) and ending at the right
// margin. Text wraps at the column edge and returns an error only for
// unparseable markup.
func (c *Canvas) Markup(x, y float64, s string, base TextStyle) error {
	spans, err := parseSpans(s)
	if err != nil {
		return err
	}

	font := base.Font
	if font == "" {
		font = "Helvetica"
	}
	size := base.Size
	if size == 0 {
		size = 12
	}
	lineH := size * 1.3

	c.pdf.SetTextColor(int(base.Color.R), int(base.Color.G), int(base.Color.B))

	// The flow below moves the renderer's margins; put them back so later
	// Write/Ln calls on the same document are unaffected.
	prevLeft, _, prevRight, _ := c.pdf.GetMargins()
	defer func() {
		c.pdf.SetLeftMargin(prevLeft)
		c.pdf.SetRightMargin(prevRight)
	}()

	c.pdf.SetLeftMargin(c.X(x))
	c.pdf.SetRightMargin(c.w - c.X(c.cfg.RightMargin()))
	c.pdf.SetXY(c.X(x), c.Y(y))

	for _, sp := range spans {
		if sp.brk {
			c.pdf.Ln(lineH)
			continue
		}
		style := base.Style
		if sp.style != "" {
			style = sp.style
		}
		c.pdf.SetFont(font, style, size)
		c.pdf.Write(lineH, sp.text)
	}

	return nil
}
