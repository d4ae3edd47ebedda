// Package score ranks candidate layouts by a single fitness number
// combining covered area, rule violations, and building count.
package score

import "github.com/ParixJ/Site-generator/pkg/layout"

// Score computes the fitness of a candidate layout given its violation
// count. Pure function.
func Score(buildings []layout.Building, violationCount int) float64 {
	area := 0.0
	for _, b := range buildings {
		area += b.Rect().Area()
	}
	return AreaWeight*area - ViolationPenalty*float64(violationCount) + CountBonus*float64(len(buildings))
}
