package convert

import "errors"

// Sentinel errors for the conversion engine. Parse-time errors are always
// attributable to a single input document and are never retried. Callers
// check them with errors.Is.
var (
	// ErrEmptyDocument reports unreadable or empty input content.
	ErrEmptyDocument = errors.New("document is empty")

	// ErrMalformedFrontmatter reports a required frontmatter block that is
	// missing, unterminated, or not parseable as YAML.
	ErrMalformedFrontmatter = errors.New("malformed frontmatter")

	// ErrMalformedDocument reports a structured document (JSON formats)
	// that cannot be decoded.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrUnsupportedFormat reports an unknown format identifier at the
	// dispatch layer. It is the only error serialization can produce;
	// individual serializers are total over any valid package.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
