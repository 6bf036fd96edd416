package convert

import (
	"github.com/agentpack-dev/agentpack/internal/canonical"
)

// Copilot envelope: plain markdown with no structured metadata. Identity
// comes entirely from seed metadata; the install path carries the format's
// conventions (.github/instructions/{name}.instructions.md).

func parseCopilot(content string, seed canonical.Seed) (*canonical.Package, error) {
	pkg := canonical.NewPackage(seed)
	pkg.Title, pkg.Body = splitDocument(content)
	return pkg, nil
}

func serializeCopilot(pkg *canonical.Package, _ Options) string {
	if doc := joinDocument(pkg.Title, pkg.Body); doc != "" {
		return doc
	}
	// Nothing to render; a single newline keeps the file well-formed.
	return "\n"
}
