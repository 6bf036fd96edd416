package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentpack-dev/agentpack/internal/lockfile"
	"github.com/agentpack-dev/agentpack/internal/platform"
)

var uninstallProject string

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <name>",
	Short: "Remove an installed package from the current project",
	Long: `Remove every file a package installed into the project, as recorded in
` + lockfile.FileName + `. The local store copy is kept; use the store for
reinstalls without a registry round trip.`,
	Args: cobra.ExactArgs(1),
	RunE: runUninstall,
}

func init() {
	uninstallCmd.Flags().StringVar(&uninstallProject, "project", ".", "Project directory to uninstall from")
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	name := args[0]

	lf, err := lockfile.Read(uninstallProject)
	if err != nil {
		return err
	}

	removed := lf.Remove(name)
	if len(removed) == 0 {
		return fmt.Errorf("%s is not installed in %s", name, uninstallProject)
	}

	for _, entry := range removed {
		path := filepath.Join(uninstallProject, entry.Path)
		if err := platform.Remove(path); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "  ⚠️  could not remove %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  ✓ removed %s\n", entry.Path)
	}

	if err := lockfile.Write(uninstallProject, lf); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Uninstalled %s (%d files).\n", name, len(removed))
	return nil
}
