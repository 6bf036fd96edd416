package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentpack-dev/agentpack/internal/canonical"
	"github.com/agentpack-dev/agentpack/internal/convert"
	"github.com/agentpack-dev/agentpack/internal/detect"
	"github.com/agentpack-dev/agentpack/internal/platform"
	"github.com/agentpack-dev/agentpack/internal/resolve"
)

var (
	convertFrom     string
	convertTo       string
	convertOut      string
	convertName     string
	convertAuthor   string
	convertVersion  string
	convertTags     []string
	convertSubtype  string
	convertKiroMode string
	convertStdout   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a configuration document to another tool format",
	Long: `Convert a configuration document between tool formats (claude, cursor,
windsurf, continue, copilot, kiro, agents-md, ruler). The source format is
detected from the file path and content unless --from is given. The output
path follows the target format's conventions unless --out is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "Source format (default: auto-detect)")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "Target format (required)")
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "Explicit output path (overrides format conventions)")
	convertCmd.Flags().StringVar(&convertName, "name", "", "Package name (defaults to the document's own metadata)")
	convertCmd.Flags().StringVar(&convertAuthor, "author", "", "Package author")
	convertCmd.Flags().StringVar(&convertVersion, "pkg-version", "", "Package version")
	convertCmd.Flags().StringSliceVar(&convertTags, "tag", nil, "Package tag (repeatable)")
	convertCmd.Flags().StringVar(&convertSubtype, "subtype", "", "Override the detected subtype (rule, agent, skill, ...)")
	convertCmd.Flags().StringVar(&convertKiroMode, "kiro-inclusion", "", "Kiro inclusion mode (always, manual, fileMatch)")
	convertCmd.Flags().BoolVar(&convertStdout, "stdout", false, "Print converted content instead of writing a file")
	_ = convertCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := args[0]

	target, ok := convert.ParseFormat(convertTo)
	if !ok {
		return fmt.Errorf("unknown target format %q (supported: %s)", convertTo, formatList())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	content := string(data)

	source, err := sourceFormat(path, content)
	if err != nil {
		return err
	}

	seed := canonical.Seed{
		Name:    convertName,
		Version: convertVersion,
		Author:  convertAuthor,
		Tags:    convertTags,
	}

	pkg, err := convert.Parse(source, content, seed)
	if err != nil {
		return fmt.Errorf("parsing %s as %s: %w", path, source, err)
	}

	if convertSubtype != "" {
		st, ok := canonical.ParseSubtype(convertSubtype)
		if !ok {
			return fmt.Errorf("unknown subtype %q", convertSubtype)
		}
		pkg.Subtype = st
	}

	opts := convert.Options{}
	if convertKiroMode != "" {
		opts.Kiro.Inclusion = canonical.Inclusion(convertKiroMode)
	}

	output, err := convert.Serialize(target, pkg, opts)
	if err != nil {
		return err
	}

	if convertStdout {
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	}

	res, err := resolve.Resolve(target, pkg.Subtype, pkg.Name, resolve.Overrides{Path: convertOut})
	if err != nil {
		return err
	}
	if res.Substituted {
		fmt.Fprintf(cmd.ErrOrStderr(), "note: %s has no %s subtype; installed as %s\n",
			target, res.Requested, res.Subtype)
	}

	if err := platform.WriteContent(res.Path, output); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s → %s (%s)\n", path, res.Path, target)
	return nil
}

// sourceFormat picks the source format from the --from flag or detection.
func sourceFormat(path, content string) (convert.Format, error) {
	if convertFrom != "" {
		source, ok := convert.ParseFormat(convertFrom)
		if !ok {
			return "", fmt.Errorf("unknown source format %q (supported: %s)", convertFrom, formatList())
		}
		return source, nil
	}

	source, ok := detect.Detect(path, content)
	if !ok {
		return "", fmt.Errorf("cannot detect the format of %s; pass --from", path)
	}
	return source, nil
}

func formatList() string {
	formats := convert.AllFormats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
