// Package pdfdoc builds PDF documents and saves plain text to PDF.
//
// # Report building
//
// A [Document] is a sequence of named pages with deferred drawing. Pages
// are declared first, content is queued as draw functions, and the final
// PDF is rendered in one pass so page numbers and the table of contents
// can be computed before anything is drawn:
//
//	cfg := pdfdoc.DefaultConfig(pdfdoc.Letter, pdfdoc.Portrait)
//	doc := pdfdoc.NewDocument("Q3 Report", cfg, 1)
//
//	doc.NewPage("Cover", pdfdoc.ExcludeFromIndex(), pdfdoc.ExcludeFromNumbering())
//	results := doc.NewPage("Results")
//	results.Draw(func(c *pdfdoc.Canvas) {
//	    c.Text(0.1, 0.8, "All green.", pdfdoc.TextStyle{Size: 14})
//	})
//
//	doc.BuildTOC()
//	path, err := doc.Save("out", "report")
//
// BuildTOC paginates the indexed pages into as many Contents pages as
// needed and Save inserts them after PageCountBeforeTOC content pages.
// Each entry is a clickable link to its page. Coordinates given to the
// [Canvas] are page fractions with the origin at the bottom-left corner.
//
// # Plain text
//
// [SaveText] and [SaveString] write line-oriented text across as many
// pages as needed. [Load] always fails with [ErrNotSupported]: this
// package writes PDFs, it does not parse them.
package pdfdoc
