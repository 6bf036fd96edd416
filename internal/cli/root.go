package cli

import (
	"github.com/spf13/cobra"

	"github.com/agentpack-dev/agentpack/internal/branding"
	"github.com/agentpack-dev/agentpack/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` manages configuration artifacts (rules, skills, agents,
slash-commands) for AI coding tools, converting packages between tool formats
through a canonical representation and installing them into projects.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
