// Package cli defines the cobra command tree. All user-facing output
// happens here; the conversion engine itself never logs or prints, so
// commands own error presentation and confirmation prompts.
package cli
