// Package testutil provides shared helpers for saveli's tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// IsolateEnv points the XDG base directories at per-test temp dirs so
// tests never touch the user's real settings, state or data. It
// returns the config dir.
func IsolateEnv(t *testing.T) string {
	t.Helper()

	configDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configDir)
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return configDir
}

// WriteCatalog writes a catalog document into a storage root and
// returns its path.
func WriteCatalog(t *testing.T, storageRoot, doc string) string {
	t.Helper()

	path := filepath.Join(storageRoot, "catalog.json")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write catalog fixture: %v", err)
	}
	return path
}

// WriteSaveDir creates a save directory containing one file, the
// smallest thing worth relocating.
func WriteSaveDir(t *testing.T, dir string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create save dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "slot1.sav"), []byte("progress"), 0644); err != nil {
		t.Fatalf("failed to write save file: %v", err)
	}
	return dir
}
