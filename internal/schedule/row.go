package schedule

import (
	"math"
	"sort"
	"strings"
)

// Row is a cluster of tokens believed to share one visual line, ordered by
// horizontal position. Rows only live for the duration of page processing.
type Row struct {
	Tokens []Token
	YMid   float64
	XMin   float64
}

// Text returns the row text with tokens joined by single spaces.
func (r Row) Text() string {
	parts := make([]string, 0, len(r.Tokens))
	for _, t := range r.Tokens {
		if t.Text != "" {
			parts = append(parts, t.Text)
		}
	}
	return strings.Join(parts, " ")
}

// BuildRows groups one page's tokens into visual rows. Tokens are sorted
// top-to-bottom then left-to-right and swept in that order; a new row starts
// when a token's vertical center drifts from the current row's center by more
// than tolerance. The tolerance has to absorb font-rendering jitter on a
// single rendered line without merging adjacent table lines.
func BuildRows(tokens []Token, tolerance float64) []Row {
	if len(tokens) == 0 {
		return nil
	}

	sorted := make([]Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		yi, yj := sorted[i].BBox.YMid(), sorted[j].BBox.YMid()
		if yi != yj {
			return yi > yj // page coordinates grow upward; top of page first
		}
		return sorted[i].BBox.X0 < sorted[j].BBox.X0
	})

	var rows []Row
	var cur []Token
	lo, hi := sorted[0].BBox.Y0, sorted[0].BBox.Y1

	flush := func() {
		if len(cur) == 0 {
			return
		}
		row := buildRow(cur, lo, hi)
		rows = append(rows, row)
		cur = nil
	}

	for i, tok := range sorted {
		if i == 0 {
			cur = append(cur, tok)
			continue
		}
		center := (lo + hi) / 2
		if math.Abs(tok.BBox.YMid()-center) > tolerance {
			flush()
			lo, hi = tok.BBox.Y0, tok.BBox.Y1
			cur = append(cur, tok)
			continue
		}
		lo = math.Min(lo, tok.BBox.Y0)
		hi = math.Max(hi, tok.BBox.Y1)
		cur = append(cur, tok)
	}
	flush()

	return rows
}

// buildRow orders the cluster by X and derives YMid from the union of the
// token vertical extents rather than the mean token center, so mixed font
// heights inside one line do not skew the row position.
func buildRow(tokens []Token, lo, hi float64) Row {
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].BBox.X0 < tokens[j].BBox.X0
	})
	xmin := tokens[0].BBox.X0
	for _, t := range tokens {
		if t.BBox.X0 < xmin {
			xmin = t.BBox.X0
		}
	}
	return Row{
		Tokens: tokens,
		YMid:   (lo + hi) / 2,
		XMin:   xmin,
	}
}
