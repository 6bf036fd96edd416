package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agentpack-dev/agentpack/internal/lockfile"
	"github.com/agentpack-dev/agentpack/internal/store"
)

var listProject string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored packages and project installs",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listProject, "project", ".", "Project directory to read the lockfile from")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	root, err := store.Root()
	if err != nil {
		return fmt.Errorf("resolving store root: %w", err)
	}

	entries, err := store.List(root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(entries) == 0 {
		fmt.Fprintln(out, "Store is empty.")
	} else {
		fmt.Fprintln(out, "Store:")
		w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  NAME\tVERSION\tSUBTYPE\tFORMAT")
		for _, e := range entries {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
				e.Manifest.Name, e.Manifest.Version, e.Manifest.Subtype, e.Manifest.Format)
		}
		w.Flush()
	}

	lf, err := lockfile.Read(listProject)
	if err != nil {
		return err
	}
	if len(lf.Entries) == 0 {
		return nil
	}

	fmt.Fprintf(out, "\nInstalled in %s:\n", listProject)
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  NAME\tVERSION\tTOOL\tPATH")
	for _, e := range lf.Entries {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", e.Name, e.Version, e.Format, e.Path)
	}
	w.Flush()
	return nil
}
