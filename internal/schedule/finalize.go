package schedule

import "sort"

// Finalize de-duplicates and orders assembled records. Duplicate keys keep
// the first record seen in document order. The sort order (package code,
// start, finish, identifier, with records lacking a package code after all
// that have one) is a published contract of the output, not an incidental
// default. Returns the surviving records and the number of duplicates
// dropped.
func Finalize(records []Record) ([]Record, int) {
	seen := make(map[Key]bool, len(records))
	out := make([]Record, 0, len(records))
	dropped := 0
	for _, r := range records {
		k := r.Key()
		if seen[k] {
			dropped++
			continue
		}
		seen[k] = true
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := comparePackageCodes(a.PackageCode, b.PackageCode); c != 0 {
			return c < 0
		}
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if !a.Finish.Equal(b.Finish) {
			return a.Finish.Before(b.Finish)
		}
		return a.ActivityID < b.ActivityID
	})

	return out, dropped
}

// comparePackageCodes orders codes ascending with absent codes after all
// present ones.
func comparePackageCodes(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	case a < b:
		return -1
	default:
		return 1
	}
}
