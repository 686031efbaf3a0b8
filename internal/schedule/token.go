package schedule

// BBox is a rectangle in page coordinates (origin bottom-left, as rendered
// by the PDF content stream).
type BBox struct {
	X0 float64
	Y0 float64
	X1 float64
	Y1 float64
}

// YMid returns the vertical center of the box.
func (b BBox) YMid() float64 {
	return (b.Y0 + b.Y1) / 2
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Token is a single positioned text fragment from one page. Tokens are
// produced once per page by the token source and never mutated.
type Token struct {
	Text string
	BBox BBox
	Page int
}

// invisible runes that PDF generators sneak into table cells. They break
// prefix matching and date recognition if left in place. Written as escapes
// because the glyphs render as nothing (and a literal BOM is not even legal
// mid-file).
var invisibleRunes = map[rune]bool{
	'\u200b': true, // zero width space
	'\u200c': true, // zero width non-joiner
	'\u200d': true, // zero width joiner
	'\u2060': true, // word joiner
	'\ufeff': true, // BOM / zero width no-break space
	'\u00ad': true, // soft hyphen
	'\u00a0': true, // no-break space
}

// hyphen glyph variants collapsed to the canonical ASCII hyphen so the date
// matcher only ever sees one separator form.
var hyphenRunes = map[rune]bool{
	'‐': true, // hyphen
	'‑': true, // non-breaking hyphen
	'‒': true, // figure dash
	'–': true, // en dash
	'—': true, // em dash
	'―': true, // horizontal bar
	'−': true, // minus sign
}

// NormalizeText canonicalizes raw token text: invisible characters are
// removed and every hyphen-like glyph becomes '-'. The function is pure and
// idempotent.
func NormalizeText(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case invisibleRunes[r]:
			// dropped
		case hyphenRunes[r]:
			out = append(out, '-')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
