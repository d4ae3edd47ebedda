package layout

import (
	"math/rand"

	"github.com/ParixJ/Site-generator/pkg/geo"
	"github.com/ParixJ/Site-generator/pkg/spec"
)

// ColumnOffsets precomputes the usable column x-offsets for the
// column-aligned strategy: evenly spaced across the clearance-inset
// horizontal range by (average template width + minimum spacing), dropping
// any column whose Type-A-width footprint would cross the plaza
// horizontally.
func ColumnOffsets(s *spec.SiteSpec) []float64 {
	clearance := s.Rules.BoundaryClearance
	step := (s.Templates.A.Width+s.Templates.B.Width)/2 + s.Rules.MinSpacing
	plaza := s.PlazaRect()
	wideTpl := s.Templates.A.Width

	var cols []float64
	for x := clearance; x <= s.Site.Width-clearance; x += step {
		// Strict horizontal intersection with the plaza; touching is fine.
		if x < plaza.Right() && x+wideTpl > plaza.X {
			continue
		}
		cols = append(cols, x)
	}
	return cols
}

// PlaceColumns generates one candidate by assigning buildings to vertical
// columns in round-robin order. Each column visit gets a bounded number of
// random y draws; a building may visit up to 2 x numColumns columns before
// its budget is exhausted. Exhaustion aborts the whole generation exactly as
// in PlaceRandom, returning the partial layout.
//
// A site with zero usable columns yields an empty (vacuously valid) layout.
func PlaceColumns(s *spec.SiteSpec, target int, rng *rand.Rand) Candidate {
	cand := newCandidate(StrategyColumns)

	cols := ColumnOffsets(s)
	if len(cols) == 0 {
		return cand
	}

	inner := s.SiteRect().Inset(s.Rules.BoundaryClearance)
	colIdx := 0

	for _, tpl := range typologySequence(s, target, rng) {
		placed := false
		for visit := 0; visit < 2*len(cols) && !placed; visit++ {
			x := cols[colIdx%len(cols)]
			colIdx++
			for attempt := 0; attempt < s.Search.ColumnYAttempts; attempt++ {
				y := inner.Y + rng.Float64()*inner.H
				r := geo.R(x, y, tpl.Width, tpl.Height)
				if !fits(s, r, cand.Buildings) {
					continue
				}
				cand.Buildings = append(cand.Buildings, Building{
					Typology: tpl.Typology,
					X:        x,
					Y:        y,
					Width:    tpl.Width,
					Height:   tpl.Height,
					Color:    tpl.Color,
				})
				placed = true
				break
			}
		}
		if !placed {
			break
		}
	}
	return cand
}
