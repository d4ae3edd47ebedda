package spec

import (
	"math"

	"github.com/ParixJ/Site-generator/pkg/geo"
)

// Typology identifies one of the two fixed building templates.
type Typology string

const (
	TypeA Typology = "type_a"
	TypeB Typology = "type_b"
)

// Template is an immutable building footprint variant. Color is carried
// for renderers and has no effect on placement or validation.
type Template struct {
	Typology Typology `yaml:"typology" json:"typology"`
	Width    float64  `yaml:"width" json:"width"`
	Height   float64  `yaml:"height" json:"height"`
	Color    string   `yaml:"color" json:"color"`
}

// SiteSpec is the top-level configuration for a site layout run. It is
// treated as immutable once loaded; every core operation takes it as an
// explicit argument so distinct sites can be exercised side by side.
type SiteSpec struct {
	SpecVersion string       `yaml:"spec_version" json:"spec_version"`
	Site        SiteDef      `yaml:"site" json:"site"`
	Plaza       PlazaDef     `yaml:"plaza" json:"plaza"`
	Rules       RulesDef     `yaml:"rules" json:"rules"`
	Search      SearchDef    `yaml:"search" json:"search"`
	Templates   TemplatesDef `yaml:"templates" json:"templates"`
}

// SiteDef is the bounding rectangle all buildings must stay inside.
type SiteDef struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// PlazaDef is the exclusion zone, always centered on the site.
type PlazaDef struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// RulesDef holds the geometric constraints applied to every layout.
type RulesDef struct {
	BoundaryClearance float64 `yaml:"boundary_clearance" json:"boundary_clearance"`
	MinSpacing        float64 `yaml:"min_spacing" json:"min_spacing"`
	NeighborRadius    float64 `yaml:"neighbor_radius" json:"neighbor_radius"`
}

// SearchDef holds the stochastic search budgets and selection settings.
type SearchDef struct {
	PlacementAttempts    int `yaml:"placement_attempts" json:"placement_attempts"`
	ColumnYAttempts      int `yaml:"column_y_attempts" json:"column_y_attempts"`
	NumCandidates        int `yaml:"num_candidates" json:"num_candidates"`
	AttemptsPerCandidate int `yaml:"attempts_per_candidate" json:"attempts_per_candidate"`
	MinTargetCount       int `yaml:"min_target_count" json:"min_target_count"`
}

// TemplatesDef holds the two building typologies.
type TemplatesDef struct {
	A Template `yaml:"a" json:"a"`
	B Template `yaml:"b" json:"b"`
}

// SiteRect returns the site as a rectangle at the origin.
func (s *SiteSpec) SiteRect() geo.Rect {
	return geo.R(0, 0, s.Site.Width, s.Site.Height)
}

// PlazaRect returns the exclusion zone rectangle, centered on the site.
func (s *SiteSpec) PlazaRect() geo.Rect {
	return geo.R(
		(s.Site.Width-s.Plaza.Width)/2,
		(s.Site.Height-s.Plaza.Height)/2,
		s.Plaza.Width,
		s.Plaza.Height,
	)
}

// TemplateFor returns the template for the given typology.
func (s *SiteSpec) TemplateFor(t Typology) Template {
	if t == TypeA {
		return s.Templates.A
	}
	return s.Templates.B
}

// MaxBuildings derives an upper bound on the target building count from the
// site geometry: the clearance-inset site area minus the plaza area, divided
// by the average per-building footprint-plus-spacing cell, scaled by a 0.6
// safety factor and floored.
func (s *SiteSpec) MaxBuildings() int {
	inner := s.SiteRect().Inset(s.Rules.BoundaryClearance)
	usable := inner.Area() - s.PlazaRect().Area()
	if usable <= 0 {
		return 0
	}
	avgWidth := (s.Templates.A.Width + s.Templates.B.Width) / 2
	avgHeight := (s.Templates.A.Height + s.Templates.B.Height) / 2
	cell := (avgWidth + s.Rules.MinSpacing) * (avgHeight + s.Rules.MinSpacing)
	if cell <= 0 {
		return 0
	}
	return int(math.Floor(usable / cell * 0.6))
}
