package convert

import (
	"strings"
	"testing"

	"github.com/agentpack-dev/agentpack/internal/canonical"
)

func TestParseKiro(t *testing.T) {
	doc := "---\ninclusion: fileMatch\nfileMatchPattern: 'src/**/*.ts'\n---\n\n# Steering\n\nGuidance.\n"

	pkg, err := Parse(FormatKiro, doc, canonical.Seed{Name: "steering"})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if pkg.Attributes.Inclusion != canonical.InclusionFileMatch {
		t.Errorf("Inclusion = %q, want fileMatch", pkg.Attributes.Inclusion)
	}
	if got := pkg.Extra["fileMatchPattern"]; got != "src/**/*.ts" {
		t.Errorf("Extra[fileMatchPattern] = %v", got)
	}
}

func TestSerializeKiro_InclusionPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		attribute canonical.Inclusion
		option    canonical.Inclusion
		want      string
	}{
		{"default when nothing set", "", "", "inclusion: always"},
		{"attribute wins over default", canonical.InclusionManual, "", "inclusion: manual"},
		{"option wins over attribute", canonical.InclusionManual, canonical.InclusionFileMatch, "inclusion: fileMatch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := &canonical.Package{
				Name:       "steer",
				Subtype:    canonical.SubtypeRule,
				Body:       "Body.",
				Attributes: canonical.Attributes{Inclusion: tt.attribute},
			}

			out, err := Serialize(FormatKiro, pkg, Options{Kiro: KiroOptions{Inclusion: tt.option}})
			if err != nil {
				t.Fatalf("Serialize error: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestKiroRoundTrip_ExtraSurvives(t *testing.T) {
	doc := "---\ninclusion: fileMatch\nfileMatchPattern: 'src/**'\n---\n\nBody.\n"

	pkg, err := Parse(FormatKiro, doc, canonical.Seed{})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	out, err := Serialize(FormatKiro, pkg, Options{})
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}

	back, err := Parse(FormatKiro, out, canonical.Seed{})
	if err != nil {
		t.Fatalf("reparse error: %v", err)
	}
	if back.Attributes.Inclusion != canonical.InclusionFileMatch {
		t.Errorf("Inclusion = %q, want fileMatch", back.Attributes.Inclusion)
	}
	if got := back.Extra["fileMatchPattern"]; got != "src/**" {
		t.Errorf("Extra[fileMatchPattern] = %v, want src/**", got)
	}
}
