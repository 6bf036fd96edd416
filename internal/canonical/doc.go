// Package canonical defines the format-neutral package representation that
// every format conversion pivots through, plus schema-backed validation.
//
// A canonical Package is constructed fresh per conversion call, never mutated
// after construction, and discarded once output is produced. Validation is
// advisory: Validate reports violations without failing, and callers decide
// whether violations are fatal.
package canonical
