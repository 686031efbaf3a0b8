// Package export writes the extracted record set as CSV with a stable
// column contract.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ganttscope/schedextract/internal/schedule"
)

// Headers is the published column set. It is always written, even for an
// empty record set: an empty-but-valid output is an expected state for
// downstream consumers, not an error.
var Headers = []string{
	"major_group",
	"package_code",
	"package_name",
	"activity_id",
	"activity_name",
	"work_type",
	"start",
	"finish",
	"duration_days",
	"is_milestone",
	"source_page",
	"pdf_pages",
	"start_star",
	"finish_star",
}

const dateLayout = "2006-01-02"

// WriteRecords writes the header row followed by one row per record.
func WriteRecords(w io.Writer, records []schedule.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(recordFields(r)); err != nil {
			return fmt.Errorf("write record %s: %w", r.ActivityID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the record set to path, creating parent directories as
// needed.
func WriteFile(path string, records []schedule.Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := WriteRecords(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func recordFields(r schedule.Record) []string {
	return []string{
		r.MajorGroup,
		r.PackageCode,
		r.PackageName,
		r.ActivityID,
		r.ActivityName,
		r.WorkType,
		formatDate(r.Start),
		formatDate(r.Finish),
		strconv.Itoa(r.DurationDays),
		strconv.FormatBool(r.IsMilestone),
		strconv.Itoa(r.SourcePage),
		strconv.Itoa(r.PDFPages),
		strconv.FormatBool(r.StartProvisional),
		strconv.FormatBool(r.FinishProvisional),
	}
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
