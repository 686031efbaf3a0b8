package schedule

import (
	"fmt"
	"log"
	"strings"
)

// PageSource hands back one page's content at a time. Pages are numbered
// 1..PageCount(). The source is assumed to return an entire page
// synchronously; the extractor does no I/O of its own.
type PageSource interface {
	PageCount() int
	// PageText returns the page's plain reading-order text, used for
	// section-heading detection.
	PageText(page int) (string, error)
	// PageTokens returns the page's positioned text fragments, used for row
	// reconstruction.
	PageTokens(page int) ([]Token, error)
}

// Options are the empirically tuned layout tolerances. They have no
// principled derivation and vary per document family, which is why they are
// configuration rather than constants.
type Options struct {
	// RowTolerance is the maximum vertical-center drift for tokens sharing
	// one visual row.
	RowTolerance float64
	// JoinTolerance is the maximum distance between a date-row (after offset
	// correction) and the identifier-row it joins to.
	JoinTolerance float64
	// OffsetBound caps which nearest-row distances contribute to the
	// per-page offset estimate.
	OffsetBound float64
}

// DefaultOptions returns tolerances that work for the schedule layouts this
// extractor was tuned on.
func DefaultOptions() Options {
	return Options{
		RowTolerance:  2.0,
		JoinTolerance: 6.0,
		OffsetBound:   30.0,
	}
}

// maxSampleLines caps the early-page row samples kept for diagnostics.
const maxSampleLines = 20

// Result is the outcome of one document extraction.
type Result struct {
	Records     []Record
	Counters    Counters
	TotalPages  int
	SampleLines []string
}

// Extractor turns a paginated token source into schedule records. One
// extractor may be reused across documents; all per-document state lives in
// the Extract call.
type Extractor struct {
	opts   Options
	logger *log.Logger
}

// NewExtractor creates an extractor with the given layout tolerances. The
// logger may be nil to silence per-page diagnostics.
func NewExtractor(opts Options, logger *log.Logger) *Extractor {
	return &Extractor{opts: opts, logger: logger}
}

// Extract processes every page of the document strictly in order, threading
// the major-group and package context across page boundaries, and returns
// the deduplicated, deterministically ordered record set. Data-quality
// problems (malformed tokens, unmatched rows, inverted date pairs) are
// counted, never raised; only a page the source cannot deliver is an error.
func (e *Extractor) Extract(src PageSource) (*Result, error) {
	total := src.PageCount()
	res := &Result{TotalPages: total}
	ctx := NewContext()

	var records []Record
	for page := 1; page <= total; page++ {
		pageRecords, counters, err := e.extractPage(src, &ctx, page, total, res)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		records = append(records, pageRecords...)
		res.Counters.Add(counters)
	}

	final, dupes := Finalize(records)
	res.Records = final
	res.Counters.DuplicatesDropped = dupes
	res.Counters.RecordsEmitted = len(final)

	if e.logger != nil {
		e.logger.Printf("extraction complete: %s", res.Counters)
	}
	return res, nil
}

// extractPage runs the per-page pipeline: headings first over the plain
// text, then row building, classification, joining and assembly. The page is
// indivisible because the join needs the complete identifier-row and
// date-row sets to learn the page offset.
func (e *Extractor) extractPage(src PageSource, ctx *Context, page, total int, res *Result) ([]Record, Counters, error) {
	var c Counters
	c.Pages = 1

	text, err := src.PageText(page)
	if err != nil {
		return nil, c, fmt.Errorf("read page text: %w", err)
	}
	c.HeadingRows += applyHeadings(ctx, text)

	raw, err := src.PageTokens(page)
	if err != nil {
		return nil, c, fmt.Errorf("read page tokens: %w", err)
	}
	tokens := normalizeTokens(raw)

	rows := BuildRows(tokens, e.opts.RowTolerance)
	c.RowsSeen = len(rows)

	var ids []IdentifierRow
	var dateRows []DateRow
	for _, row := range rows {
		if len(res.SampleLines) < maxSampleLines {
			res.SampleLines = append(res.SampleLines, row.Text())
		}
		cr := ClassifyRow(row)
		if cr.Header {
			c.HeaderRows++
			continue
		}
		if cr.Identifier != nil {
			ids = append(ids, *cr.Identifier)
			c.IdentifierRows++
		}
		if cr.Dates != nil {
			dateRows = append(dateRows, *cr.Dates)
			c.DateRows++
		}
	}

	pairs, unmatched := JoinRows(ids, dateRows, e.opts.JoinTolerance, e.opts.OffsetBound)
	c.Joined = len(pairs)
	c.UnmatchedDateRows = unmatched

	var records []Record
	for _, pair := range pairs {
		rec, ok := AssembleRecord(ctx, pair, page, total)
		if !ok {
			c.InvalidPairs++
			continue
		}
		records = append(records, rec)
	}

	if e.logger != nil {
		e.logger.Printf("page %d/%d: rows=%d ids=%d dates=%d joined=%d unmatched=%d",
			page, total, c.RowsSeen, c.IdentifierRows, c.DateRows, c.Joined, c.UnmatchedDateRows)
	}
	return records, c, nil
}

// applyHeadings scans the page's plain text lines for section headings and
// applies them to the context in line order. Headings are applied before the
// page's data rows, matching how schedule printers place group banners above
// the activities they cover. Returns the number of heading lines seen.
func applyHeadings(ctx *Context, text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(NormalizeText(line))
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		for _, mg := range majorGroupPrefixes {
			if strings.HasPrefix(lower, mg.prefix) {
				ctx.ApplyHeading(mg.label)
				count++
				break
			}
		}
	}
	return count
}

// normalizeTokens canonicalizes token text and drops tokens that are empty
// once the invisible characters are gone.
func normalizeTokens(raw []Token) []Token {
	out := make([]Token, 0, len(raw))
	for _, t := range raw {
		t.Text = strings.TrimSpace(NormalizeText(t.Text))
		if t.Text == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}
