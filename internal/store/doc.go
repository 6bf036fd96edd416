// Package store manages the local package store under ~/.agentpack/packages/,
// one directory per package name and version holding the publish manifest
// and the raw origin-format document.
package store
