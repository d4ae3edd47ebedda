package selector

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ParixJ/Site-generator/pkg/layout"
	"github.com/ParixJ/Site-generator/pkg/spec"
)

func generateFixture(t *testing.T, s *spec.SiteSpec, strategy layout.Strategy, target int, seed int64) []RankedLayout {
	t.Helper()
	layouts, err := Generate(s, Config{Strategy: strategy, TargetCount: target}, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return layouts
}

func TestGenerateReturnsAtMostConfigured(t *testing.T) {
	s := spec.Default()
	layouts := generateFixture(t, s, layout.StrategyRandom, 6, 1)

	assert.LessOrEqual(t, len(layouts), s.Search.NumCandidates)
	assert.NotEmpty(t, layouts)
}

func TestGenerateSortedByScoreDescending(t *testing.T) {
	layouts := generateFixture(t, spec.Default(), layout.StrategyRandom, 6, 2)

	for i := 1; i < len(layouts); i++ {
		assert.GreaterOrEqual(t, layouts[i-1].Score, layouts[i].Score,
			"layouts must be sorted best-first")
	}
}

func TestGenerateAssignsDisplayRanks(t *testing.T) {
	layouts := generateFixture(t, spec.Default(), layout.StrategyColumns, 6, 3)

	for i, l := range layouts {
		assert.Equal(t, i+1, l.DisplayRank)
	}
}

func TestGenerateStatsConsistent(t *testing.T) {
	layouts := generateFixture(t, spec.Default(), layout.StrategyRandom, 6, 4)

	for _, l := range layouts {
		assert.Equal(t, len(l.Buildings), l.Stats.BuildingCount)
		assert.Equal(t, l.Stats.BuildingCount, l.Stats.TypeACount+l.Stats.TypeBCount)
		require.NotNil(t, l.Report)
		assert.Equal(t, l.Stats.IsValid, l.Report.Valid)
		assert.Equal(t, l.Stats.IsValid, len(l.Report.Violations) == 0)
		assert.NotEmpty(t, l.Report.Summary)
		assert.InDelta(t, l.Candidate.TotalArea(), l.Stats.TotalArea, 1e-9)
	}
}

func TestGenerateAtMaxBuildings(t *testing.T) {
	s := spec.Default()
	max := s.MaxBuildings()
	layouts := generateFixture(t, s, layout.StrategyRandom, max, 5)

	assert.LessOrEqual(t, len(layouts), s.Search.NumCandidates)
	for _, l := range layouts {
		assert.LessOrEqual(t, l.Stats.BuildingCount, max)
	}
}

func TestGenerateDegenerateColumnSite(t *testing.T) {
	// Plaza spans the full width: no usable columns, so every candidate is
	// empty and vacuously valid.
	s := spec.Default()
	s.Site = spec.SiteDef{Width: 60, Height: 140}
	s.Plaza = spec.PlazaDef{Width: 60, Height: 40}
	require.NoError(t, s.Validate())

	layouts := generateFixture(t, s, layout.StrategyColumns, 6, 6)

	require.NotEmpty(t, layouts)
	for _, l := range layouts {
		assert.Zero(t, l.Stats.BuildingCount)
		assert.Empty(t, l.Report.Violations)
		assert.True(t, l.Report.Valid)
		assert.True(t, l.Stats.IsValid)
	}
}

func TestGenerateKeepsGenerationOrderOnTies(t *testing.T) {
	// With no usable columns every one of the 18 raw attempts yields an
	// empty candidate scoring 0; the stable sort must keep them in
	// generation order, so the kept layouts are the first attempts.
	s := spec.Default()
	s.Site = spec.SiteDef{Width: 60, Height: 140}
	s.Plaza = spec.PlazaDef{Width: 60, Height: 40}
	require.NoError(t, s.Validate())

	layouts := generateFixture(t, s, layout.StrategyColumns, 6, 9)

	require.Len(t, layouts, s.Search.NumCandidates)
	for i, l := range layouts {
		assert.Equal(t, i, l.Attempt, "tied scores must preserve generation order")
	}
}

func TestGenerateTiedScoresAscendByAttempt(t *testing.T) {
	layouts := generateFixture(t, spec.Default(), layout.StrategyRandom, 6, 10)

	for i := 1; i < len(layouts); i++ {
		if layouts[i-1].Score == layouts[i].Score {
			assert.Less(t, layouts[i-1].Attempt, layouts[i].Attempt,
				"equal scores must keep generation order")
		}
	}
}

func TestGenerateUnknownStrategy(t *testing.T) {
	_, err := Generate(spec.Default(), Config{Strategy: "spiral", TargetCount: 6},
		rand.New(rand.NewSource(1)))
	require.Error(t, err)
}

func TestSelectIsPureLookup(t *testing.T) {
	layouts := generateFixture(t, spec.Default(), layout.StrategyRandom, 6, 7)
	require.NotEmpty(t, layouts)

	first, err := Select(layouts, 0)
	require.NoError(t, err)
	again, err := Select(layouts, 0)
	require.NoError(t, err)

	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, first.Score, again.Score)
	assert.Equal(t, 1, first.DisplayRank, "selection must not disturb ranking")
}

func TestSelectOutOfRange(t *testing.T) {
	layouts := generateFixture(t, spec.Default(), layout.StrategyRandom, 6, 8)

	_, err := Select(layouts, -1)
	assert.Error(t, err)
	_, err = Select(layouts, len(layouts))
	assert.Error(t, err)
}

func TestStatsForCountsTypologies(t *testing.T) {
	c := layout.Candidate{
		Buildings: []layout.Building{
			{Typology: spec.TypeA, Width: 30, Height: 20},
			{Typology: spec.TypeA, Width: 30, Height: 20},
			{Typology: spec.TypeB, Width: 20, Height: 20},
		},
	}

	st := StatsFor(c, nil)
	assert.Equal(t, 2, st.TypeACount)
	assert.Equal(t, 1, st.TypeBCount)
	assert.Equal(t, 3, st.BuildingCount)
	assert.InDelta(t, 1600.0, st.TotalArea, 1e-9)
	assert.True(t, st.IsValid)
}
