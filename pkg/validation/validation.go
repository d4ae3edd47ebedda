package validation

import (
	"fmt"
	"math"

	"github.com/ParixJ/Site-generator/pkg/geo"
	"github.com/ParixJ/Site-generator/pkg/layout"
	"github.com/ParixJ/Site-generator/pkg/spec"
)

// Kind indicates which geometric rule a violation breaks.
type Kind string

const (
	KindBoundary Kind = "boundary"
	KindPlaza    Kind = "plaza"
	KindSpacing  Kind = "spacing"
	KindNeighbor Kind = "neighbor"
)

// Violation is a single rule breach found in a candidate layout. Index is
// the offending building's position in the layout sequence; OtherIndex is
// set only for spacing violations (the later of the two buildings). Gap is
// the measured distance for spacing violations, rounded to one decimal.
type Violation struct {
	Kind       Kind    `json:"kind"`
	Index      int     `json:"index"`
	OtherIndex int     `json:"other_index,omitempty"`
	Gap        float64 `json:"gap"`
	Message    string  `json:"message"`
}

// Check runs all geometric rules against a candidate layout and returns the
// violations in deterministic order: for each building index ascending,
// boundary, then plaza overlap, then spacing against every later building,
// then the Type A neighbor rule. Pure function; the layout is not mutated.
func Check(s *spec.SiteSpec, buildings []layout.Building) []Violation {
	var violations []Violation

	site := s.SiteRect()
	plaza := s.PlazaRect()

	for i, b := range buildings {
		r := b.Rect()

		if !geo.WithinBounds(r, site, s.Rules.BoundaryClearance) {
			violations = append(violations, Violation{
				Kind:    KindBoundary,
				Index:   i,
				Message: fmt.Sprintf("building %d breaches the %g-unit boundary clearance", i, s.Rules.BoundaryClearance),
			})
		}

		if geo.Overlaps(r, plaza) {
			violations = append(violations, Violation{
				Kind:    KindPlaza,
				Index:   i,
				Message: fmt.Sprintf("building %d overlaps the plaza", i),
			})
		}

		for j := i + 1; j < len(buildings); j++ {
			gap := geo.Gap(r, buildings[j].Rect())
			if gap < s.Rules.MinSpacing {
				rounded := math.Round(gap*10) / 10
				violations = append(violations, Violation{
					Kind:       KindSpacing,
					Index:      i,
					OtherIndex: j,
					Gap:        rounded,
					Message:    fmt.Sprintf("buildings %d and %d are %.1f units apart, need %g", i, j, rounded, s.Rules.MinSpacing),
				})
			}
		}

		if b.Typology == spec.TypeA && !hasNeighbor(s, buildings, i) {
			violations = append(violations, Violation{
				Kind:    KindNeighbor,
				Index:   i,
				Message: fmt.Sprintf("building %d has no %s neighbor within %g units", i, spec.TypeB, s.Rules.NeighborRadius),
			})
		}
	}
	return violations
}

// hasNeighbor reports whether any Type B building lies within the neighbor
// radius of building i. The scan short-circuits on the first match.
func hasNeighbor(s *spec.SiteSpec, buildings []layout.Building, i int) bool {
	r := buildings[i].Rect()
	for k, other := range buildings {
		if k == i || other.Typology != spec.TypeB {
			continue
		}
		if geo.Gap(r, other.Rect()) <= s.Rules.NeighborRadius {
			return true
		}
	}
	return false
}
