package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentpack-dev/agentpack/internal/canonical"
	"github.com/agentpack-dev/agentpack/internal/config"
	"github.com/agentpack-dev/agentpack/internal/convert"
	"github.com/agentpack-dev/agentpack/internal/lockfile"
	"github.com/agentpack-dev/agentpack/internal/platform"
	"github.com/agentpack-dev/agentpack/internal/registry"
	"github.com/agentpack-dev/agentpack/internal/resolve"
	"github.com/agentpack-dev/agentpack/internal/store"
)

var (
	installTool    string
	installProject string
	installPath    string
	installName    string
	installLink    bool
	installYes     bool
)

var installCmd = &cobra.Command{
	Use:   "install <name>[@version]",
	Short: "Install a package into the current project",
	Long: `Install a package from the local store (or the registry, when it is not
stored yet) into a project, converting it to the target tool's format and
recording it in ` + lockfile.FileName + `.`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVarP(&installTool, "tool", "t", "", "Target tool format (default: install.default_format config)")
	installCmd.Flags().StringVar(&installProject, "project", ".", "Project directory to install into")
	installCmd.Flags().StringVar(&installPath, "path", "", "Explicit output path relative to the project")
	installCmd.Flags().StringVar(&installName, "name", "", "Override the filename portion of the install path")
	installCmd.Flags().BoolVar(&installLink, "link", false, "Symlink the stored document instead of writing a converted copy")
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	name, version := splitSpec(args[0])

	target, err := targetFormat()
	if err != nil {
		return err
	}

	root, err := store.Root()
	if err != nil {
		return fmt.Errorf("resolving store root: %w", err)
	}

	entry, content, err := fetchPackage(cmd, root, name, version)
	if err != nil {
		return err
	}

	source, ok := convert.ParseFormat(entry.Manifest.Format)
	if !ok {
		return fmt.Errorf("stored package %s has unknown origin format %q", name, entry.Manifest.Format)
	}

	pkg, err := convert.Parse(source, content, entry.Manifest.Seed())
	if err != nil {
		return fmt.Errorf("parsing stored document for %s: %w", name, err)
	}
	if st, ok := canonical.ParseSubtype(entry.Manifest.Subtype); ok {
		pkg.Subtype = st
	}

	res, err := resolve.Resolve(target, pkg.Subtype, pkg.Name, resolve.Overrides{
		Path: installPath,
		Name: installName,
	})
	if err != nil {
		return err
	}
	if res.Substituted {
		fmt.Fprintf(cmd.ErrOrStderr(), "note: %s has no %s subtype; installing as %s\n",
			target, res.Requested, res.Subtype)
	}

	destination := filepath.Join(installProject, res.Path)
	if !installYes && !confirm(cmd, fmt.Sprintf("Install %s@%s to %s?", name, entry.Manifest.Version, destination)) {
		fmt.Fprintln(cmd.OutOrStdout(), "Installation cancelled.")
		return nil
	}

	if installLink {
		contentPath := store.ContentPath(root, entry.Manifest.Name, entry.Manifest.Version)
		if err := platform.LinkContent(contentPath, destination); err != nil {
			return fmt.Errorf("linking %s: %w", name, err)
		}
	} else {
		output, err := convert.Serialize(target, pkg, convert.Options{})
		if err != nil {
			return err
		}
		if err := platform.WriteContent(destination, output); err != nil {
			return err
		}
	}

	lf, err := lockfile.Read(installProject)
	if err != nil {
		return err
	}
	lf.Upsert(lockfile.Entry{
		Name:    entry.Manifest.Name,
		Version: entry.Manifest.Version,
		Format:  string(target),
		Subtype: string(res.Subtype),
		Path:    res.Path,
		Linked:  installLink,
	})
	if err := lockfile.Write(installProject, lf); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %s@%s → %s\n",
		res.Subtype, entry.Manifest.Name, entry.Manifest.Version, destination)
	return nil
}

// fetchPackage returns the stored entry for name@version, downloading and
// storing it from the registry when the store has no copy.
func fetchPackage(cmd *cobra.Command, root, name, version string) (*store.Entry, string, error) {
	entry, content, err := store.Load(root, name, version)
	if err == nil {
		return entry, content, nil
	}

	client := registry.New(config.RegistryURL())
	ctx := cmd.Context()

	resolved, err := client.ResolveVersion(ctx, name, version)
	if err != nil {
		return nil, "", fmt.Errorf("resolving %s from registry: %w", name, err)
	}

	info, err := client.GetPackage(ctx, name)
	if err != nil {
		return nil, "", err
	}

	document, err := client.GetDocument(ctx, name, resolved)
	if err != nil {
		return nil, "", fmt.Errorf("downloading %s@%s: %w", name, resolved, err)
	}

	manifest := store.Manifest{
		ID:          info.ID,
		Name:        info.Name,
		Version:     resolved,
		Author:      info.Author,
		Tags:        info.Tags,
		Format:      info.Format,
		Subtype:     info.Subtype,
		Description: info.Description,
	}
	if err := store.Save(root, manifest, document); err != nil {
		return nil, "", fmt.Errorf("storing %s@%s: %w", name, resolved, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Fetched %s@%s from %s\n", name, resolved, config.RegistryURL())

	entry, content, err = store.Load(root, name, resolved)
	return entry, content, err
}

// targetFormat picks the install target from the --tool flag or config.
func targetFormat() (convert.Format, error) {
	raw := installTool
	if raw == "" {
		raw = config.Get(config.KeyDefaultFormat)
	}
	if raw == "" {
		return "", fmt.Errorf("no target tool given; pass --tool or set %s", config.KeyDefaultFormat)
	}

	target, ok := convert.ParseFormat(raw)
	if !ok {
		return "", fmt.Errorf("unknown tool format %q (supported: %s)", raw, formatList())
	}
	return target, nil
}

// splitSpec splits "name@version" into its parts; version may be empty.
func splitSpec(spec string) (name, version string) {
	name, version, _ = strings.Cut(spec, "@")
	return name, version
}

// confirm prompts on stdin and returns true when the user accepts.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "? %s (Y/n) ", question)
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
		return answer == "" || answer == "y" || answer == "yes"
	}
	return false
}
