package validation

import "fmt"

// Report wraps a violation list with the derived validity flag and a short
// human-readable summary for CLI and HTTP consumers.
type Report struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`
	Summary    string      `json:"summary"`
}

// NewReport builds a report from a violation list. A layout is valid iff
// the list is empty.
func NewReport(violations []Violation) *Report {
	counts := map[Kind]int{}
	for _, v := range violations {
		counts[v.Kind]++
	}
	if violations == nil {
		violations = []Violation{}
	}
	return &Report{
		Valid:      len(violations) == 0,
		Violations: violations,
		Summary: fmt.Sprintf("%d boundary, %d plaza, %d spacing, %d neighbor",
			counts[KindBoundary], counts[KindPlaza], counts[KindSpacing], counts[KindNeighbor]),
	}
}
