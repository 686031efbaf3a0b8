package schedule

import (
	"regexp"
	"strings"
)

var (
	// Activity and package identifiers: letters followed by digits, e.g.
	// DD1050, MS1010, S01. Package codes are the narrow single-letter form.
	identifierPattern = regexp.MustCompile(`^[A-Za-z]+\d{2,7}$`)
	packagePattern    = regexp.MustCompile(`^[A-Z]\d{2,3}$`)
)

// table-header phrases and page-furniture labels that mark a row as layout
// chrome rather than data. "month" is a prefix so calendar banners like
// "Months" are caught too; "page" and "-1" must be a whole leading token or
// they would swallow data values.
var (
	headerPhrases     = []string{"activity id"}
	furniturePrefixes = []string{"month"}
	furnitureWords    = map[string]bool{"page": true, "-1": true}
)

// majorGroupPrefixes maps leading row text (lowercased) to the section label
// carried forward as context. Prefix matching tolerates truncated headings.
var majorGroupPrefixes = []struct {
	prefix string
	label  string
}{
	{"detailed en", "Detailed Engineering Design"},
	{"procurement", "Procurement"},
	{"employer revi", "Employer Review and Approval"},
	{"main mile", "Main Milestones"},
}

// maxIdentifierScan bounds how deep into a row the identifier may sit.
const maxIdentifierScan = 6

// IdentifierRow is a row carrying an activity or package code plus its
// description text.
type IdentifierRow struct {
	YMid        float64
	Identifier  string
	Description string
	RawText     string
}

// DateRow is a row carrying at least two reconstructed dates.
type DateRow struct {
	YMid    float64
	Dates   []ReconstructedDate
	RawText string
}

// Start returns the start date of the row: the second-to-last date found.
// Rows may carry earlier non-schedule dates, so the last two win.
func (d DateRow) Start() ReconstructedDate {
	return d.Dates[len(d.Dates)-2]
}

// Finish returns the finish date of the row: the last date found.
func (d DateRow) Finish() ReconstructedDate {
	return d.Dates[len(d.Dates)-1]
}

// ClassifiedRow is the classification outcome for one row. The facets are
// independent: a narrow layout can make one row both an identifier-row and a
// date-row, and heading text can share a page with data rows.
type ClassifiedRow struct {
	Row        Row
	Header     bool
	Heading    string // mapped major-group label, empty when none
	Identifier *IdentifierRow
	Dates      *DateRow
}

// ClassifyRow inspects one built row and reports every classification facet
// that applies. It never mutates context; callers apply heading and package
// effects in document order.
func ClassifyRow(row Row) ClassifiedRow {
	out := ClassifiedRow{Row: row}

	out.Heading = matchMajorGroup(row)
	if isHeaderRow(row) {
		out.Header = true
		return out
	}

	dates := ReconstructDates(row.Tokens)
	if len(dates) >= 2 {
		out.Dates = &DateRow{
			YMid:    row.YMid,
			Dates:   dates,
			RawText: row.Text(),
		}
	}

	if id, desc, ok := findIdentifier(row, dates); ok {
		out.Identifier = &IdentifierRow{
			YMid:        row.YMid,
			Identifier:  id,
			Description: desc,
			RawText:     row.Text(),
		}
	}

	return out
}

// IsPackageCode reports whether an identifier is a package summary code
// (single letter + two or three digits, e.g. S01, A10).
func IsPackageCode(id string) bool {
	return packagePattern.MatchString(id)
}

// isHeaderRow matches known table-header phrases over the first tokens and
// page-furniture labels on the first token.
func isHeaderRow(row Row) bool {
	if len(row.Tokens) == 0 {
		return true
	}
	first := strings.ToLower(row.Tokens[0].Text)
	if furnitureWords[first] {
		return true
	}
	for _, p := range furniturePrefixes {
		if strings.HasPrefix(first, p) {
			return true
		}
	}
	limit := 3
	if len(row.Tokens) < limit {
		limit = len(row.Tokens)
	}
	parts := make([]string, 0, limit)
	for _, t := range row.Tokens[:limit] {
		parts = append(parts, strings.ToLower(t.Text))
	}
	lead := strings.Join(parts, " ")
	for _, phrase := range headerPhrases {
		if strings.HasPrefix(lead, phrase) {
			return true
		}
	}
	return false
}

// matchMajorGroup returns the section label when the row's leading text
// matches a known heading prefix.
func matchMajorGroup(row Row) string {
	lead := strings.ToLower(row.Text())
	for _, mg := range majorGroupPrefixes {
		if strings.HasPrefix(lead, mg.prefix) {
			return mg.label
		}
	}
	return ""
}

// findIdentifier scans the leading tokens for an identifier that is not
// itself a date token. The description is everything between the identifier
// and the first reconstructed date, or the rest of the row when the row
// carries no dates.
func findIdentifier(row Row, dates []ReconstructedDate) (id, desc string, ok bool) {
	limit := maxIdentifierScan
	if len(row.Tokens) < limit {
		limit = len(row.Tokens)
	}
	for i := 0; i < limit; i++ {
		text := row.Tokens[i].Text
		if !identifierPattern.MatchString(text) {
			continue
		}
		if _, isDate := matchSingle(text, i); isDate {
			continue
		}
		end := len(row.Tokens)
		for _, d := range dates {
			if d.TokenIndex > i {
				end = d.TokenIndex
				break
			}
		}
		parts := make([]string, 0, end-i-1)
		for _, t := range row.Tokens[i+1 : end] {
			if t.Text != "" {
				parts = append(parts, t.Text)
			}
		}
		return strings.ToUpper(text), strings.Join(parts, " "), true
	}
	return "", "", false
}
