package schedule

import (
	"math"
	"sort"
)

// Pair is a date-row matched to its most plausible identifier-row.
type Pair struct {
	Identifier IdentifierRow
	Dates      DateRow
	Distance   float64
}

// JoinRows pairs each date-row with an identifier-row by vertical proximity.
//
// The identifier/description column and the date columns of one activity are
// not guaranteed to share a rendered line; some generators emit them as
// separate line groups with a systematic vertical shift. The join first
// learns that shift: for every date-row it takes the signed distance to its
// nearest identifier-row, discards distances beyond offsetBound, and uses the
// median of the rest as the page offset (median rather than mean, so a few
// mismatches cannot drag the estimate). Each date-row is then matched to the
// identifier-row closest to yMid+offset; anything farther than joinTolerance
// stays unmatched. When two date-rows claim the same identifier-row, the
// closer one wins and the loser is dropped.
//
// The function is pure: callers own the counters and the ordering of the
// returned pairs (top of page first).
func JoinRows(ids []IdentifierRow, dates []DateRow, joinTolerance, offsetBound float64) (pairs []Pair, unmatched int) {
	if len(ids) == 0 || len(dates) == 0 {
		return nil, len(dates)
	}

	sortedIDs := make([]IdentifierRow, len(ids))
	copy(sortedIDs, ids)
	sort.SliceStable(sortedIDs, func(i, j int) bool {
		return sortedIDs[i].YMid < sortedIDs[j].YMid
	})

	offset := estimateOffset(sortedIDs, dates, offsetBound)

	// Nearest-neighbor assignment with collision resolution: best claim per
	// identifier-row wins. A full bipartite matching would be stricter, but
	// offset-corrected nearest-neighbor is the compatibility contract.
	type claim struct {
		date DateRow
		dist float64
	}
	best := make(map[int]claim)

	for _, d := range dates {
		target := d.YMid + offset
		idx, dist := nearestIdentifier(sortedIDs, target)
		if dist > joinTolerance {
			unmatched++
			continue
		}
		if prev, taken := best[idx]; taken {
			if dist >= prev.dist {
				unmatched++
				continue
			}
			unmatched++ // previous claimant loses
		}
		best[idx] = claim{date: d, dist: dist}
	}

	for idx, c := range best {
		pairs = append(pairs, Pair{
			Identifier: sortedIDs[idx],
			Dates:      c.date,
			Distance:   c.dist,
		})
	}
	// Reading order: top of page first so package context updates apply to
	// the rows below them.
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Identifier.YMid > pairs[j].Identifier.YMid
	})

	return pairs, unmatched
}

// estimateOffset computes the page-level vertical shift between the date
// column and the identifier column.
func estimateOffset(sortedIDs []IdentifierRow, dates []DateRow, offsetBound float64) float64 {
	var diffs []float64
	for _, d := range dates {
		idx, dist := nearestIdentifier(sortedIDs, d.YMid)
		if dist <= offsetBound {
			diffs = append(diffs, sortedIDs[idx].YMid-d.YMid)
		}
	}
	if len(diffs) == 0 {
		return 0
	}
	return median(diffs)
}

// nearestIdentifier finds the identifier-row whose yMid is closest to target.
// sortedIDs must be ordered by ascending YMid.
func nearestIdentifier(sortedIDs []IdentifierRow, target float64) (int, float64) {
	i := sort.Search(len(sortedIDs), func(i int) bool {
		return sortedIDs[i].YMid >= target
	})
	bestIdx := -1
	bestDist := math.Inf(1)
	for _, j := range []int{i - 1, i} {
		if j < 0 || j >= len(sortedIDs) {
			continue
		}
		if d := math.Abs(sortedIDs[j].YMid - target); d < bestDist {
			bestDist = d
			bestIdx = j
		}
	}
	return bestIdx, bestDist
}

func median(v []float64) float64 {
	s := make([]float64, len(v))
	copy(s, v)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}
