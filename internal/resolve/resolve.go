package resolve

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/agentpack-dev/agentpack/internal/canonical"
	"github.com/agentpack-dev/agentpack/internal/convert"
)

// Resolution reports the outcome of resolving a (format, subtype, name)
// triple to an install path. Substitution of an unrepresentable subtype is
// recorded here, never raised as an error and never silently dropped.
type Resolution struct {
	Format      convert.Format
	Requested   canonical.Subtype
	Subtype     canonical.Subtype // effective subtype after substitution
	Substituted bool
	Path        string
}

// Overrides carries caller-supplied resolution overrides. An explicit Path
// wins wholly over the template; a Name override replaces only the
// package-name portion of the template, never its directory conventions.
type Overrides struct {
	Path string
	Name string
}

// target keys the per-(format, subtype) decision tables.
type target struct {
	format  convert.Format
	subtype canonical.Subtype
}

// formatSubtypes lists the subtypes each format can natively represent.
// Every format represents rule, the terminal fallback.
var formatSubtypes = map[convert.Format][]canonical.Subtype{
	convert.FormatClaude:   {canonical.SubtypeRule, canonical.SubtypeAgent, canonical.SubtypeSkill, canonical.SubtypeSlashCommand},
	convert.FormatCursor:   {canonical.SubtypeRule, canonical.SubtypeAgent},
	convert.FormatWindsurf: {canonical.SubtypeRule, canonical.SubtypeWorkflow},
	convert.FormatContinue: {canonical.SubtypeRule, canonical.SubtypePrompt},
	convert.FormatCopilot:  {canonical.SubtypeRule, canonical.SubtypeChatmode, canonical.SubtypePrompt},
	convert.FormatKiro:     {canonical.SubtypeRule},
	convert.FormatAgentsMD: {canonical.SubtypeRule},
	convert.FormatRuler:    {canonical.SubtypeRule},
}

// substitutions maps an unrepresentable subtype to its candidates in
// preference order. The first candidate the target format supports wins;
// rule is always last and always supported.
var substitutions = map[canonical.Subtype][]canonical.Subtype{
	canonical.SubtypeSkill:        {canonical.SubtypeRule},
	canonical.SubtypeAgent:        {canonical.SubtypeChatmode, canonical.SubtypeRule},
	canonical.SubtypeChatmode:     {canonical.SubtypeAgent, canonical.SubtypeRule},
	canonical.SubtypeSlashCommand: {canonical.SubtypePrompt, canonical.SubtypeRule},
	canonical.SubtypePrompt:       {canonical.SubtypeSlashCommand, canonical.SubtypeRule},
	canonical.SubtypeWorkflow:     {canonical.SubtypeSlashCommand, canonical.SubtypeRule},
	canonical.SubtypeTool:         {canonical.SubtypeRule},
	canonical.SubtypeTemplate:     {canonical.SubtypeRule},
}

// pathTemplates is the default install path per (format, effective subtype).
// {name} is replaced with the slugged package name.
var pathTemplates = map[target]string{
	{convert.FormatClaude, canonical.SubtypeRule}:          ".claude/rules/{name}.md",
	{convert.FormatClaude, canonical.SubtypeAgent}:         ".claude/agents/{name}.md",
	{convert.FormatClaude, canonical.SubtypeSkill}:         ".claude/skills/{name}/SKILL.md",
	{convert.FormatClaude, canonical.SubtypeSlashCommand}:  ".claude/commands/{name}.md",
	{convert.FormatCursor, canonical.SubtypeRule}:          ".cursor/rules/{name}.mdc",
	{convert.FormatCursor, canonical.SubtypeAgent}:         ".cursor/agents/{name}.mdc",
	{convert.FormatWindsurf, canonical.SubtypeRule}:        ".windsurf/rules/{name}.md",
	{convert.FormatWindsurf, canonical.SubtypeWorkflow}:    ".windsurf/workflows/{name}.md",
	{convert.FormatContinue, canonical.SubtypeRule}:        ".continue/rules/{name}.json",
	{convert.FormatContinue, canonical.SubtypePrompt}:      ".continue/prompts/{name}.json",
	{convert.FormatCopilot, canonical.SubtypeRule}:         ".github/instructions/{name}.instructions.md",
	{convert.FormatCopilot, canonical.SubtypeChatmode}:     ".github/chatmodes/{name}.chatmode.md",
	{convert.FormatCopilot, canonical.SubtypePrompt}:       ".github/prompts/{name}.prompt.md",
	{convert.FormatKiro, canonical.SubtypeRule}:            ".kiro/steering/{name}.md",
	{convert.FormatAgentsMD, canonical.SubtypeRule}:        "agents.md",
	{convert.FormatRuler, canonical.SubtypeRule}:           ".ruler/{name}.md",
}

// Supports reports whether a format natively represents a subtype.
func Supports(format convert.Format, subtype canonical.Subtype) bool {
	for _, st := range formatSubtypes[format] {
		if st == subtype {
			return true
		}
	}
	return false
}

// Resolve maps a (format, subtype, package name) triple to the install path
// and effective subtype for that format. Unknown formats are the only error.
func Resolve(format convert.Format, subtype canonical.Subtype, name string, overrides Overrides) (*Resolution, error) {
	if _, ok := formatSubtypes[format]; !ok {
		return nil, fmt.Errorf("%w: %q", convert.ErrUnsupportedFormat, format)
	}

	res := &Resolution{
		Format:    format,
		Requested: subtype,
		Subtype:   subtype,
	}

	if !Supports(format, subtype) {
		res.Subtype = substitute(format, subtype)
		res.Substituted = true
	}

	if overrides.Path != "" {
		res.Path = overrides.Path
		return res, nil
	}

	fileName := name
	if overrides.Name != "" {
		fileName = overrides.Name
	}

	template := pathTemplates[target{format, res.Subtype}]
	res.Path = strings.ReplaceAll(template, "{name}", Slug(fileName))
	return res, nil
}

// substitute walks the preference chain for an unrepresentable subtype and
// returns the first subtype the format supports.
func substitute(format convert.Format, subtype canonical.Subtype) canonical.Subtype {
	for _, candidate := range substitutions[subtype] {
		if Supports(format, candidate) {
			return candidate
		}
	}
	return canonical.SubtypeRule
}

// Slug lower-cases a package name and makes it filesystem-safe.
func Slug(name string) string {
	normalized, err := slug.Normalize(name)
	if err != nil || normalized == "" {
		// Fall back to a coarse sanitization when the normalizer rejects
		// the input outright.
		cleaned := strings.Map(func(r rune) rune {
			switch {
			case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
				return r
			case r >= 'A' && r <= 'Z':
				return r + ('a' - 'A')
			default:
				return '-'
			}
		}, name)
		return strings.Trim(cleaned, "-")
	}
	return normalized
}
