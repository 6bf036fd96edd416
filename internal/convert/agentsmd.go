package convert

import (
	"github.com/agentpack-dev/agentpack/internal/canonical"
)

// agents.md envelope: plain markdown under a fixed filename, the
// tool-agnostic baseline format. No structured metadata; identity comes
// from seed metadata.

func parseAgentsMD(content string, seed canonical.Seed) (*canonical.Package, error) {
	pkg := canonical.NewPackage(seed)
	pkg.Title, pkg.Body = splitDocument(content)
	return pkg, nil
}

func serializeAgentsMD(pkg *canonical.Package, _ Options) string {
	if doc := joinDocument(pkg.Title, pkg.Body); doc != "" {
		return doc
	}
	return "\n"
}
