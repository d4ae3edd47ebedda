package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default returns the reference site configuration: a 200x140 site with a
// centered 40x40 plaza, 10 units of boundary clearance, 15 units of minimum
// spacing, and a 60-unit neighbor radius between the two typologies.
func Default() *SiteSpec {
	return &SiteSpec{
		SpecVersion: "0.1.0",
		Site:        SiteDef{Width: 200, Height: 140},
		Plaza:       PlazaDef{Width: 40, Height: 40},
		Rules: RulesDef{
			BoundaryClearance: 10,
			MinSpacing:        15,
			NeighborRadius:    60,
		},
		Search: SearchDef{
			PlacementAttempts:    100,
			ColumnYAttempts:      20,
			NumCandidates:        6,
			AttemptsPerCandidate: 3,
			MinTargetCount:       6,
		},
		Templates: TemplatesDef{
			A: Template{Typology: TypeA, Width: 30, Height: 20, Color: "#4a90d9"},
			B: Template{Typology: TypeB, Width: 20, Height: 20, Color: "#d97a4a"},
		},
	}
}

// Load reads a site spec from a YAML file.
func Load(path string) (*SiteSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	var s SiteSpec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid spec %s: %w", path, err)
	}
	return &s, nil
}

// LoadProject loads a site spec from a project directory. It looks for
// site.yaml in the given directory and falls back to the default spec when
// the file does not exist.
func LoadProject(projectDir string) (*SiteSpec, error) {
	specPath := filepath.Join(projectDir, "site.yaml")
	if _, err := os.Stat(specPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(specPath)
}

// Validate checks that the spec describes a workable site: positive
// dimensions, a plaza that fits inside the site, and positive search budgets.
func (s *SiteSpec) Validate() error {
	if s.Site.Width <= 0 || s.Site.Height <= 0 {
		return fmt.Errorf("site dimensions must be positive, got %gx%g", s.Site.Width, s.Site.Height)
	}
	if s.Plaza.Width < 0 || s.Plaza.Height < 0 {
		return fmt.Errorf("plaza dimensions must be non-negative, got %gx%g", s.Plaza.Width, s.Plaza.Height)
	}
	if s.Plaza.Width > s.Site.Width || s.Plaza.Height > s.Site.Height {
		return fmt.Errorf("plaza %gx%g does not fit inside site %gx%g",
			s.Plaza.Width, s.Plaza.Height, s.Site.Width, s.Site.Height)
	}
	if s.Rules.BoundaryClearance < 0 || s.Rules.MinSpacing < 0 || s.Rules.NeighborRadius < 0 {
		return fmt.Errorf("rules must be non-negative: clearance %g, spacing %g, neighbor radius %g",
			s.Rules.BoundaryClearance, s.Rules.MinSpacing, s.Rules.NeighborRadius)
	}
	if s.Site.Width <= 2*s.Rules.BoundaryClearance || s.Site.Height <= 2*s.Rules.BoundaryClearance {
		return fmt.Errorf("boundary clearance %g leaves no usable area on a %gx%g site",
			s.Rules.BoundaryClearance, s.Site.Width, s.Site.Height)
	}
	for _, tpl := range []Template{s.Templates.A, s.Templates.B} {
		if tpl.Width <= 0 || tpl.Height <= 0 {
			return fmt.Errorf("template %s dimensions must be positive, got %gx%g",
				tpl.Typology, tpl.Width, tpl.Height)
		}
	}
	if s.Search.PlacementAttempts <= 0 || s.Search.ColumnYAttempts <= 0 {
		return fmt.Errorf("placement attempt budgets must be positive")
	}
	if s.Search.NumCandidates <= 0 || s.Search.AttemptsPerCandidate <= 0 {
		return fmt.Errorf("candidate selection settings must be positive")
	}
	if s.Search.MinTargetCount <= 0 {
		return fmt.Errorf("min target count must be positive, got %d", s.Search.MinTargetCount)
	}
	return nil
}
