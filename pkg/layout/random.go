package layout

import (
	"math/rand"

	"github.com/ParixJ/Site-generator/pkg/geo"
	"github.com/ParixJ/Site-generator/pkg/spec"
)

// PlaceRandom generates one candidate by drawing uniformly random positions
// inside the clearance-inset site for each building in a shuffled typology
// sequence. Each building gets a bounded number of draws; the first draw
// that clears the plaza, the boundary, and the spacing rule is accepted.
//
// When a building exhausts its draw budget the whole generation aborts and
// the partial layout is returned as-is. Callers must tolerate candidates
// with fewer buildings than requested.
func PlaceRandom(s *spec.SiteSpec, target int, rng *rand.Rand) Candidate {
	cand := newCandidate(StrategyRandom)
	inner := s.SiteRect().Inset(s.Rules.BoundaryClearance)

	for _, tpl := range typologySequence(s, target, rng) {
		placed := false
		for attempt := 0; attempt < s.Search.PlacementAttempts; attempt++ {
			x := inner.X + rng.Float64()*inner.W
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
		if !placed {
			break
		}
	}
	return cand
}
