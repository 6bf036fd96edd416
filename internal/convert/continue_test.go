package convert

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/agentpack-dev/agentpack/internal/canonical"
)

func TestParseContinue(t *testing.T) {
	doc := `{
  "name": "go-style",
  "description": "Go style rules",
  "rules": "# Go Style\n\nUse gofmt."
}`

	pkg, err := Parse(FormatContinue, doc, canonical.Seed{})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if pkg.Name != "go-style" {
		t.Errorf("Name = %q, want %q", pkg.Name, "go-style")
	}
	if pkg.Attributes.Description != "Go style rules" {
		t.Errorf("Description = %q", pkg.Attributes.Description)
	}
	if pkg.Title != "Go Style" {
		t.Errorf("Title = %q, want %q", pkg.Title, "Go Style")
	}
	if pkg.Body != "Use gofmt." {
		t.Errorf("Body = %q", pkg.Body)
	}
}

func TestParseContinue_RulesArray(t *testing.T) {
	doc := `{"name": "multi", "rules": ["First rule.", "Second rule."]}`

	pkg, err := Parse(FormatContinue, doc, canonical.Seed{})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if pkg.Body != "First rule.\n\nSecond rule." {
		t.Errorf("Body = %q", pkg.Body)
	}
}

func TestParseContinue_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"empty", "", ErrEmptyDocument},
		{"invalid json", "{not json", ErrMalformedDocument},
		{"null document", "null", ErrMalformedDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(FormatContinue, tt.content, canonical.Seed{})
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSerializeContinue_ValidJSON(t *testing.T) {
	pkg := &canonical.Package{
		Name:    "emit-json",
		Subtype: canonical.SubtypeRule,
		Title:   "Emit JSON",
		Body:    "Whole document is JSON.",
		Attributes: canonical.Attributes{
			Description: "JSON envelope",
		},
	}

	out, err := Serialize(FormatContinue, pkg, Options{})
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if decoded["name"] != "emit-json" {
		t.Errorf("name = %v", decoded["name"])
	}
	if decoded["description"] != "JSON envelope" {
		t.Errorf("description = %v", decoded["description"])
	}
}

func TestContinueRoundTrip(t *testing.T) {
	doc := `{"name": "rt", "description": "desc", "rules": "# Title\n\nBody text."}`
	seed := canonical.Seed{Version: "1.0.0"}

	pkg, err := Parse(FormatContinue, doc, seed)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	out, err := Serialize(FormatContinue, pkg, Options{})
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}

	back, err := Parse(FormatContinue, out, seed)
	if err != nil {
		t.Fatalf("reparse error: %v", err)
	}

	if back.Name != "rt" || back.Title != "Title" || back.Body != "Body text." {
		t.Errorf("round trip changed document: %+v", back)
	}
	if back.Attributes.Description != "desc" {
		t.Errorf("Description = %q", back.Attributes.Description)
	}
}
