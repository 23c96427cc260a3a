package pdfdoc

import (
	"testing"

	"github.com/jung-kurt/gofpdf"
)

func TestParseSpans(t *testing.T) {
	spans, err := parseSpans("plain <b>bold</b> and <i>italic <u>nested</u></i><br/>next")
	if err != nil {
		t.Fatalf("parseSpans() error: %v", err)
	}

	want := []span{
		{text: "plain ", style: ""},
		{text: "bold", style: "B"},
		{text: " and ", style: ""},
		{text: "italic ", style: "I"},
		{text: "nested", style: "IU"},
		{brk: true},
		{text: "next", style: ""},
	}

	if len(spans) != len(want) {
		t.Fatalf("got %d spans, want %d: %+v", len(spans), len(want), spans)
	}
	for i, sp := range spans {
		if sp != want[i] {
			t.Errorf("span %d = %+v, want %+v", i, sp, want[i])
		}
	}
}

func TestParseSpansPlainText(t *testing.T) {
	spans, err := parseSpans("no markup at all")
	if err != nil {
		t.Fatalf("parseSpans() error: %v", err)
	}
	if len(spans) != 1 || spans[0].text != "no markup at all" || spans[0].style != "" {
		t.Fatalf("spans = %+v", spans)
	}
}

func TestMarkupRestoresMargins(t *testing.T) {
	cfg := DefaultConfig(Letter, Portrait)
	w, h := cfg.PageDimensions()
	wPt, hPt := w*pointsPerInch, h*pointsPerInch

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: wPt, Ht: hPt},
	})
	pdf.AddPage()
	left, _, right, _ := pdf.GetMargins()

	c := &Canvas{pdf: pdf, cfg: cfg, w: wPt, h: hPt}
	if err := c.Markup(0.3, 0.5, "some <b>flowed</b> text", TextStyle{Size: 12}); err != nil {
		t.Fatalf("Markup() error: %v", err)
	}

	gotLeft, _, gotRight, _ := pdf.GetMargins()
	if gotLeft != left || gotRight != right {
		t.Errorf("margins after Markup = %v, %v, want %v, %v", gotLeft, gotRight, left, right)
	}
}

func TestParseSpansStrongEm(t *testing.T) {
	spans, err := parseSpans("<strong>a</strong><em>b</em>")
	if err != nil {
		t.Fatalf("parseSpans() error: %v", err)
	}
	if len(spans) != 2 || spans[0].style != "B" || spans[1].style != "I" {
		t.Fatalf("spans = %+v", spans)
	}
}
