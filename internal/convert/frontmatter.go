package convert

import (
	"fmt"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"go.yaml.in/yaml/v3"

	"github.com/agentpack-dev/agentpack/internal/canonical"
)

// parseEnvelope extracts a YAML frontmatter block and returns the decoded
// key/value pairs plus the remaining document content. When required is
// true the content must begin with a delimited block; otherwise a missing
// block yields an empty map and the content untouched.
func parseEnvelope(content string, required bool) (map[string]any, string, error) {
	trimmed := strings.TrimLeft(content, "\n")
	hasDelimiter := strings.HasPrefix(trimmed, "---")

	if !hasDelimiter {
		if required {
			return nil, "", fmt.Errorf("%w: content does not begin with ---", ErrMalformedFrontmatter)
		}
		return map[string]any{}, content, nil
	}

	var raw map[string]any
	rest, err := frontmatter.MustParse(strings.NewReader(trimmed), &raw)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrMalformedFrontmatter, err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, string(rest), nil
}

// consumeSubtype pops a "type" or "subtype" discriminator key from a decoded
// envelope and maps it onto the closed subtype set. Unrecognized values fall
// back to the default subtype rather than failing.
func consumeSubtype(raw map[string]any) canonical.Subtype {
	for _, key := range []string{"type", "subtype"} {
		if v, ok := raw[key]; ok {
			delete(raw, key)
			st, _ := canonical.ParseSubtype(stringValue(v))
			return st
		}
	}
	return canonical.SubtypeRule
}

// field is one ordered frontmatter entry. Serializers build a fixed-order
// field list so output is deterministic and round trips are idempotent.
type field struct {
	key   string
	value any
}

// marshalEnvelope renders fields as a --- delimited YAML block. Field order
// is preserved. An empty field list still produces a valid minimal envelope.
func marshalEnvelope(fields []field) string {
	if len(fields) == 0 {
		return "---\n---\n"
	}

	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range fields {
		var valNode yaml.Node
		if err := valNode.Encode(f.value); err != nil {
			// Values are strings, bools, and string slices; encoding them
			// cannot fail in practice. Skip rather than abort: serializers
			// are total.
			continue
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: f.key},
			&valNode,
		)
	}

	out, err := yaml.Marshal(node)
	if err != nil {
		return "---\n---\n"
	}
	return "---\n" + string(out) + "---\n"
}

// extraFields returns a package's passthrough fields in sorted key order,
// excluding keys the format already emits structurally.
func extraFields(extra map[string]any, exclude ...string) []field {
	if len(extra) == 0 {
		return nil
	}

	excluded := make(map[string]bool, len(exclude))
	for _, k := range exclude {
		excluded[k] = true
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		if !excluded[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	fields := make([]field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, field{key: k, value: extra[k]})
	}
	return fields
}
