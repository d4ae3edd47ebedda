package spec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/ParixJ/Site-generator/pkg/geo"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default spec should validate: %v", err)
	}
}

func TestMaxBuildingsReferenceSite(t *testing.T) {
	// 180x120 inset minus 40x40 plaza = 20000 usable; cell (25+15)x(20+15)
	// = 1400; floor(20000/1400 * 0.6) = 8.
	if got := Default().MaxBuildings(); got != 8 {
		t.Errorf("expected max buildings 8 for the reference site, got %d", got)
	}
}

func TestPlazaCentered(t *testing.T) {
	got := Default().PlazaRect()
	want := geo.R(80, 50, 40, 40)
	if got != want {
		t.Errorf("plaza rect: expected %v, got %v", want, got)
	}
}

func TestTemplateFor(t *testing.T) {
	s := Default()
	if tpl := s.TemplateFor(TypeA); tpl.Width != 30 || tpl.Height != 20 {
		t.Errorf("type A template: got %gx%g", tpl.Width, tpl.Height)
	}
	if tpl := s.TemplateFor(TypeB); tpl.Width != 20 || tpl.Height != 20 {
		t.Errorf("type B template: got %gx%g", tpl.Width, tpl.Height)
	}
}

func TestLoadProjectRoundTrip(t *testing.T) {
	dir := t.TempDir()
	data, err := yaml.Marshal(Default())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "site.yaml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("loading written spec: %v", err)
	}
	if diff := cmp.Diff(Default(), loaded); diff != "" {
		t.Errorf("loaded spec differs (-want +got):\n%s", diff)
	}
}

func TestLoadProjectFallsBackToDefault(t *testing.T) {
	loaded, err := LoadProject(t.TempDir())
	if err != nil {
		t.Fatalf("empty project dir should fall back: %v", err)
	}
	if diff := cmp.Diff(Default(), loaded); diff != "" {
		t.Errorf("fallback spec differs (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsInvalidSpec(t *testing.T) {
	dir := t.TempDir()
	bad := Default()
	bad.Plaza.Width = 500 // wider than the site
	data, err := yaml.Marshal(bad)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "site.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected oversized plaza to be rejected")
	}
}

func TestValidateRejectsBadGeometry(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SiteSpec)
	}{
		{"zero site", func(s *SiteSpec) { s.Site.Width = 0 }},
		{"plaza too wide", func(s *SiteSpec) { s.Plaza.Width = s.Site.Width + 1 }},
		{"clearance eats the site", func(s *SiteSpec) { s.Rules.BoundaryClearance = 100 }},
		{"negative spacing", func(s *SiteSpec) { s.Rules.MinSpacing = -1 }},
		{"zero template", func(s *SiteSpec) { s.Templates.A.Width = 0 }},
		{"zero attempts", func(s *SiteSpec) { s.Search.PlacementAttempts = 0 }},
		{"zero min target", func(s *SiteSpec) { s.Search.MinTargetCount = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Default()
			tc.mutate(s)
			if err := s.Validate(); err == nil {
				t.Errorf("expected %s to fail validation", tc.name)
			}
		})
	}
}
