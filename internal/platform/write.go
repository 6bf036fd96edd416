package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteContent persists rendered document content to path, creating parent
// directories as needed. Conversion itself never touches the filesystem;
// this is the single write point callers use after serialization succeeds,
// so a conversion error guarantees nothing was persisted.
func WriteContent(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
