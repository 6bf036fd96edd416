// Package lockfile reads and writes the project lockfile
// (agentpack.lock.json), which records what is installed where so
// uninstall and list can operate without re-deriving paths.
package lockfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FileName is the lockfile name at the project root.
const FileName = "agentpack.lock.json"

// Entry records one installed artifact.
type Entry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Format  string `json:"format"`
	Subtype string `json:"subtype"`
	Path    string `json:"path"`
	Linked  bool   `json:"linked,omitempty"`
}

// Lockfile is the full lockfile document.
type Lockfile struct {
	Version int     `json:"lockfileVersion"`
	Entries []Entry `json:"packages"`
}

// currentVersion is the lockfile schema version this build writes.
const currentVersion = 1

// Path returns the lockfile path for a project directory.
func Path(projectDir string) string {
	return filepath.Join(projectDir, FileName)
}

// Read loads the lockfile for a project. A missing file yields an empty
// lockfile, not an error.
func Read(projectDir string) (*Lockfile, error) {
	data, err := os.ReadFile(Path(projectDir))
	if os.IsNotExist(err) {
		return &Lockfile{Version: currentVersion}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading lockfile: %w", err)
	}

	var lf Lockfile
	if err := json.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parsing lockfile: %w", err)
	}
	return &lf, nil
}

// Write saves the lockfile with entries sorted by name then path, so
// repeated installs produce identical bytes.
func Write(projectDir string, lf *Lockfile) error {
	lf.Version = currentVersion
	sort.Slice(lf.Entries, func(i, j int) bool {
		if lf.Entries[i].Name != lf.Entries[j].Name {
			return lf.Entries[i].Name < lf.Entries[j].Name
		}
		return lf.Entries[i].Path < lf.Entries[j].Path
	})

	data, err := json.MarshalIndent(lf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling lockfile: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(Path(projectDir), data, 0644); err != nil {
		return fmt.Errorf("writing lockfile: %w", err)
	}
	return nil
}

// Upsert replaces any entry with the same name and path, or appends.
func (lf *Lockfile) Upsert(entry Entry) {
	for i, existing := range lf.Entries {
		if existing.Name == entry.Name && existing.Path == entry.Path {
			lf.Entries[i] = entry
			return
		}
	}
	lf.Entries = append(lf.Entries, entry)
}

// Remove deletes every entry for a package name and returns the removed
// entries so callers can clean up the files they point at.
func (lf *Lockfile) Remove(name string) []Entry {
	var kept, removed []Entry
	for _, entry := range lf.Entries {
		if entry.Name == name {
			removed = append(removed, entry)
		} else {
			kept = append(kept, entry)
		}
	}
	lf.Entries = kept
	return removed
}

// Find returns the entries recorded for a package name.
func (lf *Lockfile) Find(name string) []Entry {
	var found []Entry
	for _, entry := range lf.Entries {
		if entry.Name == name {
			found = append(found, entry)
		}
	}
	return found
}
