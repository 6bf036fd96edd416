package canonical

// Subtype is the functional category of a configuration artifact,
// independent of which tool format it is stored in.
type Subtype string

// Subtype constants for the closed subtype enumeration.
const (
	SubtypeRule         Subtype = "rule"
	SubtypeAgent        Subtype = "agent"
	SubtypeSkill        Subtype = "skill"
	SubtypeSlashCommand Subtype = "slash-command"
	SubtypeTool         Subtype = "tool"
	SubtypePrompt       Subtype = "prompt"
	SubtypeWorkflow     Subtype = "workflow"
	SubtypeTemplate     Subtype = "template"
	SubtypeChatmode     Subtype = "chatmode"
)

// ValidSubtypes contains all valid subtype values.
var ValidSubtypes = []Subtype{
	SubtypeRule,
	SubtypeAgent,
	SubtypeSkill,
	SubtypeSlashCommand,
	SubtypeTool,
	SubtypePrompt,
	SubtypeWorkflow,
	SubtypeTemplate,
	SubtypeChatmode,
}

// ParseSubtype converts a string to a Subtype. Unrecognized values map to
// SubtypeRule, the documented default for structurally ambiguous documents,
// and report false.
func ParseSubtype(s string) (Subtype, bool) {
	for _, st := range ValidSubtypes {
		if string(st) == s {
			return st, true
		}
	}
	return SubtypeRule, false
}

// Inclusion controls when a rule is injected into a session (Kiro steering).
type Inclusion string

// Inclusion constants.
const (
	InclusionAlways    Inclusion = "always"
	InclusionManual    Inclusion = "manual"
	InclusionFileMatch Inclusion = "fileMatch"
)

// ValidInclusions contains all valid inclusion values.
var ValidInclusions = []Inclusion{InclusionAlways, InclusionManual, InclusionFileMatch}

// Attributes holds the well-known optional fields that have cross-format
// equivalents. Fields a format cannot represent are silently omitted when
// serializing to that format; fields without a canonical equivalent live in
// Package.Extra instead.
type Attributes struct {
	Description  string    `json:"description,omitempty" yaml:"description,omitempty"`
	Globs        []string  `json:"globs,omitempty" yaml:"globs,omitempty"`
	AlwaysApply  *bool     `json:"alwaysApply,omitempty" yaml:"alwaysApply,omitempty"`
	AllowedTools []string  `json:"allowedTools,omitempty" yaml:"allowedTools,omitempty"`
	Model        string    `json:"model,omitempty" yaml:"model,omitempty"`
	Inclusion    Inclusion `json:"inclusion,omitempty" yaml:"inclusion,omitempty"`
}

// Package is the format-neutral representation every conversion pivots
// through. It is constructed fresh per conversion call and never mutated
// after construction; serializers treat it as read-only.
type Package struct {
	// Publish-time metadata, not derived from the document body.
	ID      string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name    string   `json:"name" yaml:"name"`
	Version string   `json:"version,omitempty" yaml:"version,omitempty"`
	Author  string   `json:"author,omitempty" yaml:"author,omitempty"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Format is the origin format tag. Informational only; conversion
	// dispatch never consults it, but serializers use it to decide whether
	// Extra fields are representable (same-format round trips keep them).
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	Subtype Subtype `json:"subtype" yaml:"subtype"`

	// Title is the first markdown heading, if present. Body is the
	// remaining document content, verbatim apart from envelope stripping —
	// it never contains frontmatter delimiters or metadata comment blocks.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Body  string `json:"body,omitempty" yaml:"body,omitempty"`

	Attributes Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`

	// Extra carries source-format fields without a canonical equivalent.
	// They survive a round trip back to the originating format and may be
	// dropped only when serializing to a different format.
	Extra map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Seed is the caller-supplied publish metadata handed to every parser.
// Formats without native metadata (agents.md, Copilot) rely on it entirely.
type Seed struct {
	ID      string
	Name    string
	Version string
	Author  string
	Tags    []string
}

// apply copies seed metadata onto a package under construction.
func (s Seed) apply(pkg *Package) {
	pkg.ID = s.ID
	pkg.Name = s.Name
	pkg.Version = s.Version
	pkg.Author = s.Author
	pkg.Tags = s.Tags
}

// NewPackage returns a package pre-populated from seed metadata with the
// default subtype.
func NewPackage(seed Seed) *Package {
	pkg := &Package{Subtype: SubtypeRule}
	seed.apply(pkg)
	return pkg
}
