package convert

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/agentpack-dev/agentpack/internal/canonical"
)

// Ruler envelope: package metadata embedded as leading HTML comments
// (<!-- Key: value -->) over a plain markdown body. This format never
// carries YAML frontmatter — serializeRuler must not emit a --- line, and
// other components rely on that guarantee.

// rulerCommentRe matches one metadata comment line. Keys are matched
// case-insensitively and values are trimmed.
var rulerCommentRe = regexp.MustCompile(`^<!--\s*([A-Za-z][A-Za-z-]*)\s*:\s*(.*?)\s*-->\s*$`)

func parseRuler(content string, seed canonical.Seed) (*canonical.Package, error) {
	pkg := canonical.NewPackage(seed)

	lines := strings.Split(content, "\n")
	consumed := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" && consumed > 0 {
			// Blank lines between or after the comment block belong to
			// the envelope, not the body.
			consumed++
			continue
		}

		m := rulerCommentRe.FindStringSubmatch(line)
		if m == nil {
			break
		}
		consumed++

		key, value := strings.ToLower(m[1]), m[2]
		switch key {
		case "package":
			if value != "" {
				pkg.Name = value
			}
		case "author":
			if value != "" {
				pkg.Author = value
			}
		case "description":
			pkg.Attributes.Description = value
		case "subtype", "type":
			pkg.Subtype, _ = canonical.ParseSubtype(value)
		default:
			if pkg.Extra == nil {
				pkg.Extra = map[string]any{}
			}
			pkg.Extra[key] = value
		}
	}

	rest := strings.Join(lines[consumed:], "\n")
	pkg.Title, pkg.Body = splitDocument(rest)
	return pkg, nil
}

func serializeRuler(pkg *canonical.Package, _ Options) string {
	var b strings.Builder

	// The three identity comments are always present, even when empty, so
	// consumers can rely on their position.
	fmt.Fprintf(&b, "<!-- Package: %s -->\n", pkg.Name)
	fmt.Fprintf(&b, "<!-- Author: %s -->\n", pkg.Author)
	fmt.Fprintf(&b, "<!-- Description: %s -->\n", pkg.Attributes.Description)

	if pkg.Format == string(FormatRuler) && len(pkg.Extra) > 0 {
		keys := make([]string, 0, len(pkg.Extra))
		for k := range pkg.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "<!-- %s: %s -->\n", commentKey(k), stringValue(pkg.Extra[k]))
		}
	}

	b.WriteString("\n")
	b.WriteString(joinDocument(pkg.Title, pkg.Body))
	return b.String()
}

// commentKey renders a passthrough key in the Title-Case style of the
// built-in comments.
func commentKey(k string) string {
	if k == "" {
		return k
	}
	return strings.ToUpper(k[:1]) + k[1:]
}
