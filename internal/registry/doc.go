// Package registry is a thin HTTP client for the package registry: package
// metadata lookup, semver constraint resolution, and raw document download.
// It carries no conversion logic; fetched documents are handed to the
// convert package.
package registry
