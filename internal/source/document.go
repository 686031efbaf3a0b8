// Package source provides the PDF-backed page/token provider consumed by the
// schedule extractor. It is the only part of the program that touches the
// document file; everything downstream works on in-memory tokens.
package source

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/ganttscope/schedextract/internal/schedule"
)

// defaultTokenHeight approximates glyph height when the PDF does not carry a
// usable font size for a fragment.
const defaultTokenHeight = 12.0

// Document is an open schedule PDF exposing per-page plain text and
// positioned tokens.
type Document struct {
	path   string
	file   *os.File
	reader *pdf.Reader
}

// Open validates and opens a schedule PDF. This is the one place a hard
// failure is allowed to propagate: an unreadable or structurally broken
// document cannot be extracted from, while everything after a successful
// open degrades to diagnostics instead of errors.
func Open(path string, maxFileSize int64) (*Document, error) {
	if err := ValidateFile(path, maxFileSize); err != nil {
		return nil, err
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open PDF %s: %w", path, err)
	}

	return &Document{path: path, file: f, reader: reader}, nil
}

// Close releases the underlying file.
func (d *Document) Close() error {
	return d.file.Close()
}

// Path returns the document's file path.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.reader.NumPage()
}

// PageText returns the plain reading-order text of one page. A page the
// library cannot render yields empty text, not an error: a single broken
// page must not abort document processing.
func (d *Document) PageText(page int) (string, error) {
	p, err := d.page(page)
	if err != nil {
		return "", err
	}
	text, err := safePlainText(p)
	if err != nil {
		return "", nil
	}
	return text, nil
}

// PageTokens returns the positioned text fragments of one page. Fragment
// height falls back to the font size, and to defaultTokenHeight when the
// font size is missing, matching how the underlying library reports text.
func (d *Document) PageTokens(page int) ([]schedule.Token, error) {
	p, err := d.page(page)
	if err != nil {
		return nil, err
	}

	content := safeContent(p)
	tokens := make([]schedule.Token, 0, len(content))
	for _, t := range content {
		height := t.FontSize
		if height == 0 {
			height = defaultTokenHeight
		}
		tokens = append(tokens, schedule.Token{
			Text: t.S,
			BBox: schedule.BBox{
				X0: t.X,
				Y0: t.Y,
				X1: t.X + t.W,
				Y1: t.Y + height,
			},
			Page: page,
		})
	}
	return tokens, nil
}

func (d *Document) page(page int) (pdf.Page, error) {
	if page < 1 || page > d.reader.NumPage() {
		return pdf.Page{}, fmt.Errorf("invalid page number %d (document has %d pages)", page, d.reader.NumPage())
	}
	p := d.reader.Page(page)
	if p.V.IsNull() {
		return pdf.Page{}, fmt.Errorf("page %d has no content object", page)
	}
	return p, nil
}

// safePlainText guards against panics in the PDF library on malformed
// content streams.
func safePlainText(p pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("text extraction panic: %v", r)
		}
	}()
	return p.GetPlainText(nil)
}

// safeContent guards Content() the same way; a malformed page yields no
// tokens rather than a crash.
func safeContent(p pdf.Page) (texts []pdf.Text) {
	defer func() {
		if r := recover(); r != nil {
			texts = nil
		}
	}()
	return p.Content().Text
}
