// Package detect infers a document's source format from its path and
// content. It implements the detector contract the conversion engine
// consumes: a known format identifier, or false when nothing matches.
package detect

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/agentpack-dev/agentpack/internal/convert"
)

// pathMarkers maps a directory segment to the format that owns it.
var pathMarkers = map[string]convert.Format{
	".claude":   convert.FormatClaude,
	".cursor":   convert.FormatCursor,
	".windsurf": convert.FormatWindsurf,
	".continue": convert.FormatContinue,
	".github":   convert.FormatCopilot,
	".kiro":     convert.FormatKiro,
	".ruler":    convert.FormatRuler,
}

// frontmatterMarkers maps a frontmatter key to the format whose vocabulary
// it belongs to. Checked in a fixed order so detection is deterministic.
var frontmatterMarkers = []struct {
	key    string
	format convert.Format
}{
	{"alwaysApply", convert.FormatCursor},
	{"globs", convert.FormatCursor},
	{"allowed-tools", convert.FormatClaude},
	{"model", convert.FormatClaude},
	{"inclusion", convert.FormatKiro},
}

// Detect returns the source format for a document, or false when the
// format cannot be determined. Path conventions are checked before content
// heuristics: an extension or directory marker is a stronger signal than
// envelope vocabulary.
func Detect(path, content string) (convert.Format, bool) {
	if f, ok := detectByPath(path); ok {
		return f, true
	}
	return detectByContent(content)
}

func detectByPath(path string) (convert.Format, bool) {
	if path == "" {
		return "", false
	}

	base := strings.ToLower(filepath.Base(path))
	switch {
	case base == "agents.md":
		return convert.FormatAgentsMD, true
	case base == "copilot-instructions.md", strings.HasSuffix(base, ".instructions.md"):
		return convert.FormatCopilot, true
	case strings.HasSuffix(base, ".mdc"):
		return convert.FormatCursor, true
	}

	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if f, ok := pathMarkers[strings.ToLower(segment)]; ok {
			return f, true
		}
	}

	return "", false
}

func detectByContent(content string) (convert.Format, bool) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", false
	}

	if strings.HasPrefix(trimmed, "<!-- Package:") {
		return convert.FormatRuler, true
	}

	if strings.HasPrefix(trimmed, "{") {
		var probe map[string]any
		if json.Unmarshal([]byte(trimmed), &probe) == nil {
			return convert.FormatContinue, true
		}
		return "", false
	}

	if strings.HasPrefix(trimmed, "---") {
		return detectFrontmatter(trimmed)
	}

	return "", false
}

// detectFrontmatter scans frontmatter keys for format-specific vocabulary.
// A frontmatter block that matches no known vocabulary defaults to
// Windsurf, the least constrained frontmatter format.
func detectFrontmatter(content string) (convert.Format, bool) {
	body, ok := strings.CutPrefix(content, "---")
	if !ok {
		return "", false
	}
	block, _, ok := strings.Cut(body, "\n---")
	if !ok {
		return "", false
	}

	for _, marker := range frontmatterMarkers {
		for _, line := range strings.Split(block, "\n") {
			key, _, found := strings.Cut(line, ":")
			if found && strings.TrimSpace(key) == marker.key {
				return marker.format, true
			}
		}
	}

	return convert.FormatWindsurf, true
}
