// Package resolve maps a canonical subtype onto a target format's subtype
// vocabulary and default install path. Both rules live in constant decision
// tables keyed by (format, subtype), so compatibility and path conventions
// can be tested exhaustively against the closed subtype enumeration.
package resolve
