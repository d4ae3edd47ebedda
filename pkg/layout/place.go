// Package layout generates candidate building placements for a site. The
// two strategies are stochastic and greedy: they never backtrack, and a
// building that exhausts its attempt budget aborts the rest of the
// generation, leaving a partial layout. Callers compensate by generating
// many candidates and ranking them.
package layout

import (
	"fmt"
	"math/rand"

	"github.com/ParixJ/Site-generator/pkg/spec"
)

// Place runs the named strategy once and returns its candidate layout.
func Place(strategy Strategy, s *spec.SiteSpec, target int, rng *rand.Rand) (Candidate, error) {
	switch strategy {
	case StrategyRandom:
		return PlaceRandom(s, target, rng), nil
	case StrategyColumns:
		return PlaceColumns(s, target, rng), nil
	default:
		return Candidate{}, fmt.Errorf("unknown placement strategy %q", strategy)
	}
}
