package convert

import (
	"fmt"
	"strings"

	"github.com/agentpack-dev/agentpack/internal/canonical"
)

// Format identifies a supported tool format.
type Format string

// Format constants for all supported tool formats.
const (
	FormatClaude   Format = "claude"
	FormatCursor   Format = "cursor"
	FormatWindsurf Format = "windsurf"
	FormatContinue Format = "continue"
	FormatCopilot  Format = "copilot"
	FormatKiro     Format = "kiro"
	FormatAgentsMD Format = "agents-md"
	FormatRuler    Format = "ruler"
)

// AllFormats returns all supported formats.
func AllFormats() []Format {
	return []Format{
		FormatClaude,
		FormatCursor,
		FormatWindsurf,
		FormatContinue,
		FormatCopilot,
		FormatKiro,
		FormatAgentsMD,
		FormatRuler,
	}
}

// ParseFormat converts a string to a Format, returning false if invalid.
// Common aliases ("agentsmd", "agents.md") are accepted.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(s) {
	case "claude":
		return FormatClaude, true
	case "cursor":
		return FormatCursor, true
	case "windsurf":
		return FormatWindsurf, true
	case "continue":
		return FormatContinue, true
	case "copilot":
		return FormatCopilot, true
	case "kiro":
		return FormatKiro, true
	case "agents-md", "agentsmd", "agents.md":
		return FormatAgentsMD, true
	case "ruler":
		return FormatRuler, true
	default:
		return "", false
	}
}

// KiroOptions carries Kiro-specific serialization options.
type KiroOptions struct {
	// Inclusion controls when the steering file is injected. When empty,
	// the serializer falls back to the package attribute, then "always".
	Inclusion canonical.Inclusion
}

// Options carries format-specific serialization options. The zero value is
// valid for every format.
type Options struct {
	Kiro KiroOptions
}

// adapter pairs the parse and serialize operations for one format.
// Serializers are total: they cannot fail for a valid package.
type adapter struct {
	parse     func(content string, seed canonical.Seed) (*canonical.Package, error)
	serialize func(pkg *canonical.Package, opts Options) string
}

// formatRegistry is the dispatch table, one record per format. Adding a
// format means adding one entry here plus its adapter file.
var formatRegistry = map[Format]adapter{
	FormatClaude:   {parse: parseClaude, serialize: serializeClaude},
	FormatCursor:   {parse: parseCursor, serialize: serializeCursor},
	FormatWindsurf: {parse: parseWindsurf, serialize: serializeWindsurf},
	FormatContinue: {parse: parseContinue, serialize: serializeContinue},
	FormatCopilot:  {parse: parseCopilot, serialize: serializeCopilot},
	FormatKiro:     {parse: parseKiro, serialize: serializeKiro},
	FormatAgentsMD: {parse: parseAgentsMD, serialize: serializeAgentsMD},
	FormatRuler:    {parse: parseRuler, serialize: serializeRuler},
}

// Parse converts raw document content in the given format into a canonical
// package, seeded with caller-supplied publish metadata.
func Parse(format Format, content string, seed canonical.Seed) (*canonical.Package, error) {
	a, ok := formatRegistry[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w (format %s)", ErrEmptyDocument, format)
	}

	pkg, err := a.parse(content, seed)
	if err != nil {
		return nil, err
	}
	pkg.Format = string(format)
	return pkg, nil
}

// Serialize renders a canonical package into the given format. The only
// possible failure is an unknown format identifier.
func Serialize(format Format, pkg *canonical.Package, opts Options) (string, error) {
	a, ok := formatRegistry[format]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return a.serialize(pkg, opts), nil
}
