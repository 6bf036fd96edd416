package canonical

import "testing"

func validPackage() *Package {
	return &Package{
		Name:    "commit-rules",
		Version: "1.2.0",
		Author:  "ada",
		Subtype: SubtypeRule,
		Title:   "Commit Rules",
		Body:    "Write imperative subjects.",
		Attributes: Attributes{
			Description: "Commit message conventions",
			Globs:       []string{"**/*.go"},
			Inclusion:   InclusionAlways,
		},
	}
}

func TestValidate_ValidPackage(t *testing.T) {
	result, err := Validate(validPackage())
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues: %+v", result.Issues)
	}
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Package)
		wantPath string
	}{
		{
			"unknown subtype",
			func(p *Package) { p.Subtype = Subtype("gizmo") },
			"/subtype",
		},
		{
			"invalid inclusion",
			func(p *Package) { p.Attributes.Inclusion = Inclusion("sometimes") },
			"/attributes/inclusion",
		},
		{
			"invalid semver",
			func(p *Package) { p.Version = "latest" },
			"/version",
		},
		{
			"missing name",
			func(p *Package) { p.Name = "" },
			"/name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := validPackage()
			tt.mutate(pkg)

			result, err := Validate(pkg)
			if err != nil {
				t.Fatalf("Validate error: %v", err)
			}
			if result.Valid {
				t.Fatal("expected violations, got valid")
			}

			found := false
			for _, issue := range result.Issues {
				if issue.Path == tt.wantPath {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue at %s; got %+v", tt.wantPath, result.Issues)
			}
		})
	}
}

func TestValidate_NeverFatalForViolations(t *testing.T) {
	pkg := &Package{Subtype: Subtype("nonsense")}
	result, err := Validate(pkg)
	if err != nil {
		t.Fatalf("violations must not surface as errors: %v", err)
	}
	if result.Valid {
		t.Error("expected violations")
	}
}

func TestParseSubtype(t *testing.T) {
	tests := []struct {
		in   string
		want Subtype
		ok   bool
	}{
		{"rule", SubtypeRule, true},
		{"slash-command", SubtypeSlashCommand, true},
		{"chatmode", SubtypeChatmode, true},
		{"gizmo", SubtypeRule, false},
		{"", SubtypeRule, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSubtype(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseSubtype(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNewPackage_AppliesSeed(t *testing.T) {
	seed := Seed{ID: "pkg_1", Name: "seeded", Version: "0.1.0", Author: "ada", Tags: []string{"go"}}
	pkg := NewPackage(seed)

	if pkg.ID != "pkg_1" || pkg.Name != "seeded" || pkg.Version != "0.1.0" || pkg.Author != "ada" {
		t.Errorf("seed not applied: %+v", pkg)
	}
	if pkg.Subtype != SubtypeRule {
		t.Errorf("Subtype = %q, want rule default", pkg.Subtype)
	}
}
