package convert

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/agentpack-dev/agentpack/internal/canonical"
)

// Continue envelope: the whole document is a JSON object. The markdown body
// lives in the "rules" field ("prompt" is accepted as a legacy alias on
// input).

func parseContinue(content string, seed canonical.Seed) (*canonical.Package, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrMalformedDocument, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: JSON document is null", ErrMalformedDocument)
	}

	pkg := canonical.NewPackage(seed)
	pkg.Subtype = consumeSubtype(raw)

	var doc string
	for key, value := range raw {
		switch key {
		case "name":
			if name := stringValue(value); name != "" {
				pkg.Name = name
			}
		case "description":
			pkg.Attributes.Description = stringValue(value)
		case "rules", "prompt":
			// A string holds the document directly; Continue also allows
			// an array of rule strings, which joins into one document.
			if items, ok := value.([]any); ok {
				parts := make([]string, 0, len(items))
				for _, item := range items {
					parts = append(parts, stringValue(item))
				}
				doc = strings.Join(parts, "\n\n")
			} else {
				doc = stringValue(value)
			}
		default:
			if pkg.Extra == nil {
				pkg.Extra = map[string]any{}
			}
			pkg.Extra[key] = value
		}
	}

	pkg.Title, pkg.Body = splitDocument(doc)
	return pkg, nil
}

func serializeContinue(pkg *canonical.Package, _ Options) string {
	out := map[string]any{
		"name":  pkg.Name,
		"rules": joinDocument(pkg.Title, pkg.Body),
	}
	if pkg.Attributes.Description != "" {
		out["description"] = pkg.Attributes.Description
	}
	if pkg.Format == string(FormatContinue) {
		for k, v := range pkg.Extra {
			if _, taken := out[k]; !taken {
				out[k] = v
			}
		}
	}

	// Map keys marshal in sorted order, so output is deterministic.
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		// The map contains only JSON-decoded or scalar values; this
		// cannot fail in practice. Serializers are total.
		data, _ = json.MarshalIndent(map[string]any{
			"name":  pkg.Name,
			"rules": joinDocument(pkg.Title, pkg.Body),
		}, "", "  ")
	}
	return string(data) + "\n"
}
