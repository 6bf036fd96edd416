package convert

import (
	"strings"

	"github.com/agentpack-dev/agentpack/internal/canonical"
)

// Claude envelope: YAML frontmatter carrying name, description,
// allowed-tools (comma-separated or sequence), and model.

func parseClaude(content string, seed canonical.Seed) (*canonical.Package, error) {
	raw, rest, err := parseEnvelope(content, true)
	if err != nil {
		return nil, err
	}

	pkg := canonical.NewPackage(seed)
	pkg.Subtype = consumeSubtype(raw)

	for key, value := range raw {
		switch key {
		case "name":
			// The document's own name wins over seed metadata; Claude
			// frontmatter is authoritative for its artifact identity.
			if name := stringValue(value); name != "" {
				pkg.Name = name
			}
		case "description":
			pkg.Attributes.Description = stringValue(value)
		case "allowed-tools":
			pkg.Attributes.AllowedTools = stringList(value)
		case "model":
			pkg.Attributes.Model = stringValue(value)
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

func serializeClaude(pkg *canonical.Package, _ Options) string {
	fields := []field{{key: "name", value: pkg.Name}}

	if pkg.Attributes.Description != "" {
		fields = append(fields, field{key: "description", value: pkg.Attributes.Description})
	}
	if len(pkg.Attributes.AllowedTools) > 0 {
		fields = append(fields, field{key: "allowed-tools", value: strings.Join(pkg.Attributes.AllowedTools, ", ")})
	}
	if pkg.Attributes.Model != "" {
		fields = append(fields, field{key: "model", value: pkg.Attributes.Model})
	}
	if pkg.Format == string(FormatClaude) {
		fields = append(fields, extraFields(pkg.Extra)...)
	}

	return marshalEnvelope(fields) + "\n" + joinDocument(pkg.Title, pkg.Body)
}
