package convert

import (
	"github.com/agentpack-dev/agentpack/internal/canonical"
)

// Windsurf envelope: YAML frontmatter carrying description, or plain
// markdown when there is no metadata to carry.

func parseWindsurf(content string, seed canonical.Seed) (*canonical.Package, error) {
	// Frontmatter is optional for Windsurf rules.
	raw, rest, err := parseEnvelope(content, false)
	if err != nil {
		return nil, err
	}

	pkg := canonical.NewPackage(seed)
	pkg.Subtype = consumeSubtype(raw)

	for key, value := range raw {
		switch key {
		case "description":
			pkg.Attributes.Description = stringValue(value)
		default:
			if pkg.Extra == nil {
				pkg.Extra = map[string]any{}
			}
			pkg.Extra[key] = value
		}
	}

	pkg.Title, pkg.Body = splitDocument(rest)
	return pkg, nil
}

func serializeWindsurf(pkg *canonical.Package, _ Options) string {
	var fields []field

	if pkg.Attributes.Description != "" {
		fields = append(fields, field{key: "description", value: pkg.Attributes.Description})
	}
	if pkg.Format == string(FormatWindsurf) {
		fields = append(fields, extraFields(pkg.Extra)...)
	}

	// No metadata to carry: emit plain markdown. A fully empty package
	// still yields a minimal envelope so output is never empty.
	if len(fields) == 0 {
		if pkg.Title == "" && pkg.Body == "" {
			return marshalEnvelope(nil)
		}
		return joinDocument(pkg.Title, pkg.Body)
	}

	return marshalEnvelope(fields) + "\n" + joinDocument(pkg.Title, pkg.Body)
}
