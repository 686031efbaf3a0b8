package schedule

import "fmt"

// Counters are the extraction-quality diagnostics. Data-quality problems
// never raise errors; callers observe under- or over-extraction through
// these counts instead.
type Counters struct {
	Pages          int
	RowsSeen       int
	HeaderRows     int
	HeadingRows    int
	IdentifierRows int
	DateRows       int

	Joined            int
	UnmatchedDateRows int
	InvalidPairs      int

	DuplicatesDropped int
	RecordsEmitted    int
}

// Add accumulates another set of counters, used to fold per-page counts into
// the document total.
func (c *Counters) Add(other Counters) {
	c.Pages += other.Pages
	c.RowsSeen += other.RowsSeen
	c.HeaderRows += other.HeaderRows
	c.HeadingRows += other.HeadingRows
	c.IdentifierRows += other.IdentifierRows
	c.DateRows += other.DateRows
	c.Joined += other.Joined
	c.UnmatchedDateRows += other.UnmatchedDateRows
	c.InvalidPairs += other.InvalidPairs
	c.DuplicatesDropped += other.DuplicatesDropped
	c.RecordsEmitted += other.RecordsEmitted
}

// String renders the counters in a single diagnostic line.
func (c Counters) String() string {
	return fmt.Sprintf(
		"pages=%d rows=%d headers=%d headings=%d identifier_rows=%d date_rows=%d "+
			"joined=%d unmatched_date_rows=%d invalid_pairs=%d duplicates=%d records=%d",
		c.Pages, c.RowsSeen, c.HeaderRows, c.HeadingRows, c.IdentifierRows, c.DateRows,
		c.Joined, c.UnmatchedDateRows, c.InvalidPairs, c.DuplicatesDropped, c.RecordsEmitted,
	)
}
