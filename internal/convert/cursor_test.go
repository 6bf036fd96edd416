package convert

import (
	"strings"
	"testing"

	"github.com/agentpack-dev/agentpack/internal/canonical"
)

const cursorRuleDoc = `---
description: TypeScript conventions
globs:
  - '**/*.ts'
alwaysApply: false
---

# TypeScript Rules

Prefer explicit return types.
`

func TestParseCursor(t *testing.T) {
	pkg, err := Parse(FormatCursor, cursorRuleDoc, canonical.Seed{Name: "ts-rules"})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if pkg.Name != "ts-rules" {
		t.Errorf("Name = %q, want %q", pkg.Name, "ts-rules")
	}
	if pkg.Attributes.Description != "TypeScript conventions" {
		t.Errorf("Description = %q", pkg.Attributes.Description)
	}
	if got, want := pkg.Attributes.Globs, []string{"**/*.ts"}; !equalStrings(got, want) {
		t.Errorf("Globs = %v, want %v", got, want)
	}
	if pkg.Attributes.AlwaysApply == nil || *pkg.Attributes.AlwaysApply {
		t.Errorf("AlwaysApply = %v, want false", pkg.Attributes.AlwaysApply)
	}
	if pkg.Title != "TypeScript Rules" {
		t.Errorf("Title = %q", pkg.Title)
	}
}

func TestParseCursor_AbsentAlwaysApplyStaysAbsent(t *testing.T) {
	doc := "---\ndescription: minimal\n---\n\nBody.\n"
	pkg, err := Parse(FormatCursor, doc, canonical.Seed{})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if pkg.Attributes.AlwaysApply != nil {
		t.Errorf("AlwaysApply = %v, want nil (absent)", *pkg.Attributes.AlwaysApply)
	}
}

// Serializing to Cursor must not emit Claude-only attributes; the loss is
// intentional for cross-format conversion.
func TestSerializeCursor_OmitsForeignAttributes(t *testing.T) {
	pkg := &canonical.Package{
		Name:    "mixed",
		Subtype: canonical.SubtypeRule,
		Body:    "Body.",
		Attributes: canonical.Attributes{
			Description:  "Mixed attributes",
			AllowedTools: []string{"Read", "Write"},
			Model:        "opus",
		},
	}

	out, err := Serialize(FormatCursor, pkg, Options{})
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
	if strings.Contains(out, "allowed-tools") || strings.Contains(out, "allowedTools") {
		t.Errorf("cursor output leaked allowed-tools:\n%s", out)
	}
	if strings.Contains(out, "model") {
		t.Errorf("cursor output leaked model:\n%s", out)
	}
	if !strings.Contains(out, "description: Mixed attributes") {
		t.Errorf("cursor output missing description:\n%s", out)
	}
}

// toCursor(fromCursor(toCursor(pkg))) must equal toCursor(pkg) when the
// package only uses Cursor's attribute set.
func TestCursorIdempotence(t *testing.T) {
	always := true
	pkg := &canonical.Package{
		Name:    "idempotent",
		Subtype: canonical.SubtypeRule,
		Title:   "Idempotent Rule",
		Body:    "Same bytes every time.",
		Attributes: canonical.Attributes{
			Description: "Stability check",
			Globs:       []string{"src/**/*.go", "cmd/**/*.go"},
			AlwaysApply: &always,
		},
	}

	first, err := Serialize(FormatCursor, pkg, Options{})
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}

	reparsed, err := Parse(FormatCursor, first, canonical.Seed{Name: pkg.Name})
	if err != nil {
		t.Fatalf("reparse error: %v", err)
	}

	second, err := Serialize(FormatCursor, reparsed, Options{})
	if err != nil {
		t.Fatalf("second Serialize error: %v", err)
	}

	if first != second {
		t.Errorf("serialization is not idempotent:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

// A Cursor document converted to Claude and back preserves globs and
// alwaysApply exactly; allowed-tools, absent in the original, stays absent.
func TestCursorThroughClaudeRoundTrip(t *testing.T) {
	doc := "---\nglobs:\n  - '**/*.ts'\nalwaysApply: false\n---\n\n# Rule\n\nBody.\n"
	seed := canonical.Seed{Name: "via-claude"}

	pkg, err := Parse(FormatCursor, doc, seed)
	if err != nil {
		t.Fatalf("Parse cursor error: %v", err)
	}

	// Serializing to Claude reads the canonical package without mutating
	// it; Claude's envelope omits globs/alwaysApply, but the pivot keeps
	// them for the next serialization.
	asClaude, err := Serialize(FormatClaude, pkg, Options{})
	if err != nil {
		t.Fatalf("Serialize claude error: %v", err)
	}
	if strings.Contains(asClaude, "allowed-tools") {
		t.Errorf("allowed-tools appeared out of nowhere:\n%s", asClaude)
	}
	if strings.Contains(asClaude, "globs") {
		t.Errorf("claude output leaked globs:\n%s", asClaude)
	}

	backOut, err := Serialize(FormatCursor, pkg, Options{})
	if err != nil {
		t.Fatalf("Serialize cursor error: %v", err)
	}

	back, err := Parse(FormatCursor, backOut, seed)
	if err != nil {
		t.Fatalf("reparse cursor error: %v", err)
	}

	if got, want := back.Attributes.Globs, []string{"**/*.ts"}; !equalStrings(got, want) {
		t.Errorf("Globs = %v, want %v", got, want)
	}
	if back.Attributes.AlwaysApply == nil || *back.Attributes.AlwaysApply {
		t.Errorf("AlwaysApply = %v, want false", back.Attributes.AlwaysApply)
	}
	if len(back.Attributes.AllowedTools) != 0 {
		t.Errorf("AllowedTools = %v, want absent", back.Attributes.AllowedTools)
	}
}
