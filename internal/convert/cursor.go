package convert

import (
	"github.com/agentpack-dev/agentpack/internal/canonical"
)

// Cursor envelope: YAML frontmatter in .mdc files carrying description,
// globs, and alwaysApply. Claude-only attributes (allowed-tools, model) are
// intentionally omitted on serialization; cross-format conversion is lossy
// by design for fields the target cannot represent.

func parseCursor(content string, seed canonical.Seed) (*canonical.Package, error) {
	raw, rest, err := parseEnvelope(content, true)
	if err != nil {
		return nil, err
	}

	pkg := canonical.NewPackage(seed)
	pkg.Subtype = consumeSubtype(raw)

	for key, value := range raw {
		switch key {
		case "description":
			pkg.Attributes.Description = stringValue(value)
		case "globs":
			pkg.Attributes.Globs = stringList(value)
		case "alwaysApply":
			pkg.Attributes.AlwaysApply = boolValue(value)
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

func serializeCursor(pkg *canonical.Package, _ Options) string {
	var fields []field

	if pkg.Attributes.Description != "" {
		fields = append(fields, field{key: "description", value: pkg.Attributes.Description})
	}
	if len(pkg.Attributes.Globs) > 0 {
		fields = append(fields, field{key: "globs", value: pkg.Attributes.Globs})
	}
	if pkg.Attributes.AlwaysApply != nil {
		fields = append(fields, field{key: "alwaysApply", value: *pkg.Attributes.AlwaysApply})
	}
	if pkg.Format == string(FormatCursor) {
		fields = append(fields, extraFields(pkg.Extra)...)
	}

	return marshalEnvelope(fields) + "\n" + joinDocument(pkg.Title, pkg.Body)
}
