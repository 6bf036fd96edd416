package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"

	"github.com/agentpack-dev/agentpack/internal/branding"
	"github.com/agentpack-dev/agentpack/internal/canonical"
)

const (
	manifestFile = "package.yaml"
	contentFile  = "content.md"
)

// Manifest is the metadata file written next to each stored document.
type Manifest struct {
	ID          string   `yaml:"id,omitempty"`
	Name        string   `yaml:"name"`
	Version     string   `yaml:"version"`
	Author      string   `yaml:"author,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Format      string   `yaml:"format"`
	Subtype     string   `yaml:"subtype"`
	Description string   `yaml:"description,omitempty"`
}

// Entry is one stored package version.
type Entry struct {
	Manifest Manifest
	Dir      string
}

// Seed converts stored metadata back into parser seed metadata.
func (m Manifest) Seed() canonical.Seed {
	return canonical.Seed{
		ID:      m.ID,
		Name:    m.Name,
		Version: m.Version,
		Author:  m.Author,
		Tags:    m.Tags,
	}
}

// Root returns the store root (~/.agentpack/packages). AGENTPACK_HOME
// overrides the base directory for development use.
func Root() (string, error) {
	if home := os.Getenv(branding.EnvVar("HOME")); home != "" {
		return filepath.Join(home, "packages"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir(), "packages"), nil
}

// dir returns the directory holding one package version.
func dir(root, name, version string) string {
	return filepath.Join(root, name, version)
}

// Save writes a package's manifest and raw document content into the store.
// Saving the same name and version again overwrites the previous copy.
func Save(root string, m Manifest, content string) error {
	if m.Name == "" || m.Version == "" {
		return fmt.Errorf("store entries require a name and version")
	}

	d := dir(root, m.Name, m.Version)
	if err := os.MkdirAll(d, 0755); err != nil {
		return fmt.Errorf("creating store directory %s: %w", d, err)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(d, manifestFile), data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(d, contentFile), []byte(content), 0644); err != nil {
		return fmt.Errorf("writing content: %w", err)
	}

	return nil
}

// Load reads one stored package version. Version "" resolves to the latest
// stored semver.
func Load(root, name, version string) (*Entry, string, error) {
	if version == "" {
		latest, err := LatestVersion(root, name)
		if err != nil {
			return nil, "", err
		}
		version = latest
	}

	d := dir(root, name, version)
	data, err := os.ReadFile(filepath.Join(d, manifestFile))
	if err != nil {
		return nil, "", fmt.Errorf("reading manifest for %s@%s: %w", name, version, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, "", fmt.Errorf("parsing manifest for %s@%s: %w", name, version, err)
	}

	content, err := os.ReadFile(filepath.Join(d, contentFile))
	if err != nil {
		return nil, "", fmt.Errorf("reading content for %s@%s: %w", name, version, err)
	}

	return &Entry{Manifest: m, Dir: d}, string(content), nil
}

// ContentPath returns the path of the raw document for one stored version,
// used by install --link as the symlink target.
func ContentPath(root, name, version string) string {
	return filepath.Join(dir(root, name, version), contentFile)
}

// List returns every stored package version, sorted by name then version.
func List(root string) ([]Entry, error) {
	names, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading store root %s: %w", root, err)
	}

	var entries []Entry
	for _, nameDir := range names {
		if !nameDir.IsDir() {
			continue
		}
		versions, err := os.ReadDir(filepath.Join(root, nameDir.Name()))
		if err != nil {
			continue
		}
		for _, versionDir := range versions {
			if !versionDir.IsDir() {
				continue
			}
			entry, _, err := Load(root, nameDir.Name(), versionDir.Name())
			if err != nil {
				continue
			}
			entries = append(entries, *entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Manifest.Name != entries[j].Manifest.Name {
			return entries[i].Manifest.Name < entries[j].Manifest.Name
		}
		return compareVersions(entries[i].Manifest.Version, entries[j].Manifest.Version) < 0
	})
	return entries, nil
}

// LatestVersion returns the highest stored semver for a package.
func LatestVersion(root, name string) (string, error) {
	versions, err := os.ReadDir(filepath.Join(root, name))
	if err != nil {
		return "", fmt.Errorf("package %s is not in the store: %w", name, err)
	}

	var latest *semver.Version
	var latestRaw string
	for _, versionDir := range versions {
		if !versionDir.IsDir() {
			continue
		}
		v, err := semver.NewVersion(versionDir.Name())
		if err != nil {
			continue
		}
		if latest == nil || v.GreaterThan(latest) {
			latest = v
			latestRaw = versionDir.Name()
		}
	}

	if latest == nil {
		return "", fmt.Errorf("package %s has no stored versions", name)
	}
	return latestRaw, nil
}

// Remove deletes one stored version; with version "" it deletes every
// version of the package.
func Remove(root, name, version string) error {
	path := filepath.Join(root, name)
	if version != "" {
		path = dir(root, name, version)
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}

	// Drop the now-empty package directory after a single-version removal.
	if version != "" {
		if remaining, err := os.ReadDir(filepath.Join(root, name)); err == nil && len(remaining) == 0 {
			_ = os.Remove(filepath.Join(root, name))
		}
	}
	return nil
}

// compareVersions orders two semver strings, tolerating invalid input by
// falling back to lexical order.
func compareVersions(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA != nil || errB != nil {
		return compareLexical(a, b)
	}
	return va.Compare(vb)
}

func compareLexical(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
