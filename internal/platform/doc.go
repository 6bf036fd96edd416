// Package platform holds the filesystem primitives the CLI uses to persist
// converted documents: plain writes with parent-directory creation, and
// symlink installation with a Windows copy fallback.
package platform
