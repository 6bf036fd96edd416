package platform

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// LinkContent creates a symbolic link at link pointing to target, used by
// install --link so project files track the store copy. On Windows,
// os.Symlink requires developer mode; when it fails the file is copied
// instead and a .target sidecar records the origin.
func LinkContent(target, link string) error {
	if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", link, err)
	}

	if runtime.GOOS != "windows" {
		return os.Symlink(target, link)
	}

	if err := os.Symlink(target, link); err == nil {
		return nil
	}

	if err := copyFile(target, link); err != nil {
		return fmt.Errorf("symlink fallback (copy) failed: %w", err)
	}

	// Sidecar is best-effort; the copy already succeeded.
	_ = os.WriteFile(link+".target", []byte(target), 0644)
	return nil
}

// Remove deletes an installed file or link, along with the Windows
// sidecar when present.
func Remove(path string) error {
	err := os.Remove(path)
	os.Remove(path + ".target") // best-effort
	return err
}

func copyFile(target, link string) error {
	src, err := os.Open(target)
	if err != nil {
		return fmt.Errorf("opening %s: %w", target, err)
	}
	defer src.Close()

	dst, err := os.Create(link)
	if err != nil {
		return fmt.Errorf("creating %s: %w", link, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copying %s to %s: %w", target, link, err)
	}

	return nil
}
