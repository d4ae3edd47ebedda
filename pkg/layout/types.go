package layout

import (
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/ParixJ/Site-generator/pkg/geo"
	"github.com/ParixJ/Site-generator/pkg/spec"
)

// Strategy names a placement algorithm.
type Strategy string

const (
	StrategyRandom  Strategy = "random"
	StrategyColumns Strategy = "column-aligned"
)

// Building is one placed building within a candidate layout. (X, Y) is the
// top-left corner in site coordinates.
type Building struct {
	Typology spec.Typology `json:"typology"`
	X        float64       `json:"x"`
	Y        float64       `json:"y"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Color    string        `json:"color"`
}

// Rect returns the building footprint.
func (b Building) Rect() geo.Rect {
	return geo.R(b.X, b.Y, b.Width, b.Height)
}

// Candidate is one full placement attempt: the ordered sequence of buildings
// produced by a single strategy invocation. It may hold fewer buildings than
// requested when the strategy ran out of placement attempts.
type Candidate struct {
	ID        string     `json:"id"`
	Strategy  Strategy   `json:"strategy"`
	Buildings []Building `json:"buildings"`
}

// TotalArea returns the summed footprint area of all buildings.
func (c Candidate) TotalArea() float64 {
	total := 0.0
	for _, b := range c.Buildings {
		total += b.Rect().Area()
	}
	return total
}

// newCandidate allocates an empty candidate for one strategy run.
func newCandidate(strategy Strategy) Candidate {
	return Candidate{
		ID:        uuid.NewString(),
		Strategy:  strategy,
		Buildings: []Building{},
	}
}

// MixFor returns the typology split for a target building count:
// ceil(40%) Type A, remainder Type B.
func MixFor(target int) (numA, numB int) {
	if target <= 0 {
		return 0, 0
	}
	numA = int(math.Ceil(float64(target) * 0.4))
	return numA, target - numA
}

// typologySequence builds the attempt-order template sequence for a target
// count: the fixed A/B mix, shuffled uniformly. The shuffle decides only the
// order in which buildings are attempted, never their final positions.
func typologySequence(s *spec.SiteSpec, target int, rng *rand.Rand) []spec.Template {
	numA, numB := MixFor(target)
	seq := make([]spec.Template, 0, target)
	for i := 0; i < numA; i++ {
		seq = append(seq, s.Templates.A)
	}
	for i := 0; i < numB; i++ {
		seq = append(seq, s.Templates.B)
	}
	rng.Shuffle(len(seq), func(i, j int) {
		seq[i], seq[j] = seq[j], seq[i]
	})
	return seq
}

// fits reports whether a footprint clears the plaza, the site boundary, and
// the minimum spacing to every already-placed building.
func fits(s *spec.SiteSpec, r geo.Rect, placed []Building) bool {
	if geo.Overlaps(r, s.PlazaRect()) {
		return false
	}
	if !geo.WithinBounds(r, s.SiteRect(), s.Rules.BoundaryClearance) {
		return false
	}
	for _, b := range placed {
		if geo.Gap(r, b.Rect()) < s.Rules.MinSpacing {
			return false
		}
	}
	return true
}
