// Package selector runs a placement strategy many times and keeps the
// best-scoring candidates. The strategies are greedy and never backtrack;
// over-generating and filtering by score is what compensates for that.
package selector

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/ParixJ/Site-generator/pkg/layout"
	"github.com/ParixJ/Site-generator/pkg/score"
	"github.com/ParixJ/Site-generator/pkg/spec"
	"github.com/ParixJ/Site-generator/pkg/validation"
)

// Config selects the strategy and target building count for one generation
// run. Callers bound TargetCount to [MinTargetCount, MaxBuildings] before
// calling Generate.
type Config struct {
	Strategy    layout.Strategy `json:"strategy"`
	TargetCount int             `json:"target_count"`
}

// Stats summarizes a ranked layout for display.
type Stats struct {
	TypeACount    int     `json:"type_a_count"`
	TypeBCount    int     `json:"type_b_count"`
	BuildingCount int     `json:"building_count"`
	TotalArea     float64 `json:"total_area"`
	IsValid       bool    `json:"is_valid"`
}

// RankedLayout is one candidate that survived selection, with its
// validation report, score, derived stats, and 1-based display rank.
// Attempt is the candidate's index in raw generation order; score ties keep
// that order, so within a tie Attempt ascends.
type RankedLayout struct {
	layout.Candidate
	Report      *validation.Report `json:"report"`
	Score       float64            `json:"score"`
	Stats       Stats              `json:"stats"`
	DisplayRank int                `json:"display_rank"`
	Attempt     int                `json:"attempt"`
}

// Generate runs the configured strategy once per raw attempt
// (num_candidates x attempts_per_candidate), validates and scores every
// candidate, and returns the top candidates sorted best-first. The sort is
// stable, so exact score ties keep generation order. Partial and invalid
// layouts are ordinary results; they lose on score, never error.
func Generate(s *spec.SiteSpec, cfg Config, rng *rand.Rand) ([]RankedLayout, error) {
	attempts := s.Search.NumCandidates * s.Search.AttemptsPerCandidate

	raw := make([]RankedLayout, 0, attempts)
	for i := 0; i < attempts; i++ {
		cand, err := layout.Place(cfg.Strategy, s, cfg.TargetCount, rng)
		if err != nil {
			return nil, fmt.Errorf("attempt %d: %w", i, err)
		}
		violations := validation.Check(s, cand.Buildings)
		raw = append(raw, RankedLayout{
			Candidate: cand,
			Report:    validation.NewReport(violations),
			Score:     score.Score(cand.Buildings, len(violations)),
			Attempt:   i,
		})
	}

	sort.SliceStable(raw, func(i, j int) bool {
		return raw[i].Score > raw[j].Score
	})

	keep := s.Search.NumCandidates
	if keep > len(raw) {
		keep = len(raw)
	}
	ranked := raw[:keep]
	for i := range ranked {
		ranked[i].Stats = StatsFor(ranked[i].Candidate, ranked[i].Report.Violations)
		ranked[i].DisplayRank = i + 1
	}
	return ranked, nil
}

// StatsFor derives display statistics for a candidate and its violations.
func StatsFor(c layout.Candidate, violations []validation.Violation) Stats {
	st := Stats{
		BuildingCount: len(c.Buildings),
		TotalArea:     c.TotalArea(),
		IsValid:       len(violations) == 0,
	}
	for _, b := range c.Buildings {
		switch b.Typology {
		case spec.TypeA:
			st.TypeACount++
		case spec.TypeB:
			st.TypeBCount++
		}
	}
	return st
}

// Select returns the ranked layout at the given zero-based index. Pure
// lookup with no recomputation; switching the highlighted candidate in a
// viewer goes through here.
func Select(layouts []RankedLayout, index int) (RankedLayout, error) {
	if index < 0 || index >= len(layouts) {
		return RankedLayout{}, fmt.Errorf("candidate index %d out of range [0, %d)", index, len(layouts))
	}
	return layouts[index], nil
}
