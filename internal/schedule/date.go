package schedule

import (
	"regexp"
	"time"
)

// provisionalMarker is the glyph schedule printers append to tentative
// (forecast) dates.
const provisionalMarker = "*"

var (
	singleDatePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})(\*?)$`)
	yearPattern       = regexp.MustCompile(`^\d{4}$`)
	twoDigitPattern   = regexp.MustCompile(`^\d{2}$`)
)

// ReconstructedDate is a calendar date recovered from one or more tokens.
// TokenIndex is the index of the first token the date was built from, used
// downstream to split the description span and to order dates within a row.
type ReconstructedDate struct {
	Date        time.Time
	Provisional bool
	TokenIndex  int
}

// ReconstructDates scans a row's tokens in order and extracts every
// recognizable date. Two forms are supported: a single YYYY-MM-DD token with
// an optional trailing marker, and the same date split across five tokens
// (year, hyphen, month, hyphen, day) with an optional standalone marker
// token. Split matches consume all their tokens so sub-sequences are never
// re-matched. Values that fail calendar validation are rejected outright.
func ReconstructDates(tokens []Token) []ReconstructedDate {
	var dates []ReconstructedDate

	for i := 0; i < len(tokens); i++ {
		if d, ok := matchSingle(tokens[i].Text, i); ok {
			dates = append(dates, d)
			continue
		}
		if d, consumed, ok := matchSplit(tokens, i); ok {
			dates = append(dates, d)
			i += consumed - 1
		}
	}

	return dates
}

// matchSingle recognizes a whole date carried in one token.
func matchSingle(text string, index int) (ReconstructedDate, bool) {
	m := singleDatePattern.FindStringSubmatch(text)
	if m == nil {
		return ReconstructedDate{}, false
	}
	d, err := parseCalendarDate(m[1] + "-" + m[2] + "-" + m[3])
	if err != nil {
		return ReconstructedDate{}, false
	}
	return ReconstructedDate{
		Date:        d,
		Provisional: m[4] == provisionalMarker,
		TokenIndex:  index,
	}, true
}

// matchSplit recognizes a date spread across consecutive tokens starting at
// position i: YYYY, "-", MM, "-", DD, then optionally a lone marker token.
// Returns the date and the number of tokens consumed.
func matchSplit(tokens []Token, i int) (ReconstructedDate, int, bool) {
	if i+5 > len(tokens) {
		return ReconstructedDate{}, 0, false
	}
	if !yearPattern.MatchString(tokens[i].Text) ||
		tokens[i+1].Text != "-" ||
		!twoDigitPattern.MatchString(tokens[i+2].Text) ||
		tokens[i+3].Text != "-" ||
		!twoDigitPattern.MatchString(tokens[i+4].Text) {
		return ReconstructedDate{}, 0, false
	}

	d, err := parseCalendarDate(tokens[i].Text + "-" + tokens[i+2].Text + "-" + tokens[i+4].Text)
	if err != nil {
		return ReconstructedDate{}, 0, false
	}

	consumed := 5
	provisional := false
	if i+5 < len(tokens) && tokens[i+5].Text == provisionalMarker {
		provisional = true
		consumed = 6
	}

	return ReconstructedDate{
		Date:        d,
		Provisional: provisional,
		TokenIndex:  i,
	}, consumed, true
}

// parseCalendarDate validates the value as a real calendar date; time.Parse
// rejects out-of-range months and days instead of coercing them.
func parseCalendarDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
