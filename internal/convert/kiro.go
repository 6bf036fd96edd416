package convert

import (
	"github.com/agentpack-dev/agentpack/internal/canonical"
)

// Kiro envelope: YAML frontmatter on steering files carrying inclusion
// (always, manual, fileMatch). fileMatchPattern has no canonical equivalent
// and rides through Extra.

func parseKiro(content string, seed canonical.Seed) (*canonical.Package, error) {
	raw, rest, err := parseEnvelope(content, true)
	if err != nil {
		return nil, err
	}

	pkg := canonical.NewPackage(seed)
	pkg.Subtype = consumeSubtype(raw)

	for key, value := range raw {
		switch key {
		case "inclusion":
			pkg.Attributes.Inclusion = canonical.Inclusion(stringValue(value))
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

func serializeKiro(pkg *canonical.Package, opts Options) string {
	// Option wins over attribute; the serializer supplies the default
	// rather than requiring the caller to.
	inclusion := opts.Kiro.Inclusion
	if inclusion == "" {
		inclusion = pkg.Attributes.Inclusion
	}
	if inclusion == "" {
		inclusion = canonical.InclusionAlways
	}

	fields := []field{{key: "inclusion", value: string(inclusion)}}
	if pkg.Format == string(FormatKiro) {
		fields = append(fields, extraFields(pkg.Extra)...)
	}

	return marshalEnvelope(fields) + "\n" + joinDocument(pkg.Title, pkg.Body)
}
