package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentpack-dev/agentpack/internal/branding"
)

func setTestHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestDirAndFilePath(t *testing.T) {
	home := setTestHome(t)

	if got := Dir(); got != filepath.Join(home, branding.HomeDir()) {
		t.Errorf("Dir = %q", got)
	}
	if got := FilePath(); !strings.HasSuffix(got, "config.yaml") {
		t.Errorf("FilePath = %q", got)
	}
}

func TestLoad_DefaultRegistryURL(t *testing.T) {
	setTestHome(t)
	Load()

	if got := RegistryURL(); got != branding.RegistryURL() {
		t.Errorf("RegistryURL = %q, want branded default", got)
	}
}

func TestSetAndGet(t *testing.T) {
	setTestHome(t)
	Load()

	if err := Set(KeyDefaultFormat, "cursor"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if got := Get(KeyDefaultFormat); got != "cursor" {
		t.Errorf("Get = %q, want cursor", got)
	}

	if _, err := os.Stat(FilePath()); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestSet_OverridesRegistryURL(t *testing.T) {
	setTestHome(t)
	Load()

	if err := Set(KeyRegistryURL, "https://registry.example.com"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if got := RegistryURL(); got != "https://registry.example.com" {
		t.Errorf("RegistryURL = %q", got)
	}
}
