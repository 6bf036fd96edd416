package convert

import (
	"fmt"
	"strings"
)

// splitDocument separates the first markdown heading from the remaining
// content. Leading blank lines and the single blank line following the
// heading are consumed; trailing newlines are trimmed so serialization can
// re-append exactly one.
func splitDocument(content string) (title, body string) {
	content = strings.TrimLeft(content, "\n")

	line, rest, _ := strings.Cut(content, "\n")
	if heading, ok := strings.CutPrefix(line, "# "); ok {
		title = strings.TrimSpace(heading)
		body = strings.TrimLeft(rest, "\n")
	} else {
		body = content
	}

	return title, strings.TrimRight(body, "\n")
}

// joinDocument is the inverse of splitDocument: heading, blank line, body,
// single trailing newline.
func joinDocument(title, body string) string {
	var b strings.Builder
	if title != "" {
		b.WriteString("# ")
		b.WriteString(title)
		b.WriteString("\n")
		if body != "" {
			b.WriteString("\n")
		}
	}
	if body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}
	return b.String()
}

// stringList coerces a decoded envelope value into a string slice. Scalars
// are treated as comma-separated lists ("Read, Write"); sequences are taken
// element-wise.
func stringList(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		if strings.TrimSpace(val) == "" {
			return nil
		}
		parts := strings.Split(val, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out
	default:
		return []string{fmt.Sprintf("%v", val)}
	}
}

// stringValue coerces a decoded envelope value into a string.
func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// boolValue coerces a decoded envelope value into a bool pointer, so
// absent and false stay distinguishable.
func boolValue(v any) *bool {
	switch val := v.(type) {
	case bool:
		b := val
		return &b
	case string:
		b := strings.EqualFold(val, "true")
		return &b
	default:
		return nil
	}
}
