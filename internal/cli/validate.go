package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentpack-dev/agentpack/internal/canonical"
	"github.com/agentpack-dev/agentpack/internal/convert"
	"github.com/agentpack-dev/agentpack/internal/detect"
)

var validateFrom string

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Parse a document and report canonical-model violations",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateFrom, "from", "", "Source format (default: auto-detect)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	content := string(data)

	var source convert.Format
	if validateFrom != "" {
		var ok bool
		source, ok = convert.ParseFormat(validateFrom)
		if !ok {
			return fmt.Errorf("unknown source format %q (supported: %s)", validateFrom, formatList())
		}
	} else {
		var ok bool
		source, ok = detect.Detect(path, content)
		if !ok {
			return fmt.Errorf("cannot detect the format of %s; pass --from", path)
		}
	}

	pkg, err := convert.Parse(source, content, canonical.Seed{})
	if err != nil {
		return fmt.Errorf("parsing %s as %s: %w", path, source, err)
	}

	result, err := canonical.Validate(pkg)
	if err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}

	if result.Valid {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is a valid %s document (subtype: %s)\n", path, source, pkg.Subtype)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✗ %s has %d issue(s):\n", path, len(result.Issues))
	for _, issue := range result.Issues {
		location := issue.Path
		if location == "" {
			location = "/"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", location, issue.Message)
	}
	return fmt.Errorf("validation failed")
}
