package schedule

import (
	"regexp"
	"strings"
)

// Work-type labels derived from activity descriptions.
const (
	WorkTypeMilestone = "Milestone"
	WorkTypeOther     = "Other"
)

// workTypeRules maps description patterns to labels. Order matters: the
// first matching rule wins, so more specific phrases come before the generic
// ones they contain.
var workTypeRules = []struct {
	label   string
	pattern *regexp.Regexp
}{
	{"Pile diagram", regexp.MustCompile(`\bpile\s+diagram\b`)},
	{"Issue pile drawing", regexp.MustCompile(`\bissue\s+pile\s+drawing\b`)},
	{"Issue DED drawing", regexp.MustCompile(`\bissue\s+ded\s+drawing\b`)},
	{"Other professional drawings", regexp.MustCompile(`\bother\s+professional\s+drawings\b`)},
	{"Professional drawings", regexp.MustCompile(`\bprofessional\s+drawings\b`)},
}

// milestoneIDPrefix marks milestone activities by identifier convention.
const milestoneIDPrefix = "MS"

// InferWorkType classifies a description into a work-type label. Rows whose
// identifier carries the milestone prefix and match no rule default to
// Milestone; everything else falls through to Other.
func InferWorkType(description, identifier string) string {
	s := strings.ToLower(description)
	for _, rule := range workTypeRules {
		if rule.pattern.MatchString(s) {
			return rule.label
		}
	}
	if strings.HasPrefix(identifier, milestoneIDPrefix) {
		return WorkTypeMilestone
	}
	return WorkTypeOther
}
