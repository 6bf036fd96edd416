// Package convert implements the format conversion engine: one parse and
// one serialize operation per supported tool format, dispatched through a
// single registry keyed by Format.
//
// Every conversion pivots through the canonical package model: a parser
// turns raw document content plus caller-supplied seed metadata into a
// canonical.Package, and a serializer renders a canonical.Package into the
// target format's envelope. Conversions are pure, synchronous computations
// over in-memory strings; the engine performs no I/O and never logs. The
// dispatch, field-mapping, and registry tables are read-only constant data,
// safe for unsynchronized concurrent reads.
//
// Parse-time failures use the sentinel errors ErrEmptyDocument,
// ErrMalformedFrontmatter, and ErrMalformedDocument. Serializers are total
// over any valid package; only an unknown format identifier can fail, with
// ErrUnsupportedFormat.
package convert
