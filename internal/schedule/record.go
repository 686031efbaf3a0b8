package schedule

import "time"

// Record is one extracted schedule activity, the unit of output. Records are
// uniquely identified by (ActivityID, Start, Finish).
type Record struct {
	MajorGroup  string
	PackageCode string // empty when no package summary row has been seen yet
	PackageName string

	ActivityID   string
	ActivityName string
	WorkType     string

	Start        time.Time
	Finish       time.Time
	DurationDays int
	IsMilestone  bool

	SourcePage int
	PDFPages   int

	StartProvisional  bool
	FinishProvisional bool
}

// Key identifies a record for deduplication.
type Key struct {
	ActivityID string
	Start      time.Time
	Finish     time.Time
}

// Key returns the record's deduplication key.
func (r Record) Key() Key {
	return Key{ActivityID: r.ActivityID, Start: r.Start, Finish: r.Finish}
}
