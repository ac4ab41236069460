package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/saveli-project/saveli/pkg/errors"
	"github.com/saveli-project/saveli/pkg/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfig points XDG_CONFIG_HOME at a temp dir for the test.
func isolateConfig(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return tmp
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	isolateConfig(t)

	s := settings.Load()
	assert.Empty(t, s.StoragePath)
	assert.Empty(t, s.Ignored)
	assert.False(t, s.DryRun)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	isolateConfig(t)

	s := settings.Load()
	s.StoragePath = "/saves"
	s.Ignored = []string{"factorio"}
	s.DryRun = true
	require.NoError(t, s.Save())

	loaded := settings.Load()
	assert.Equal(t, "/saves", loaded.StoragePath)
	assert.Equal(t, []string{"factorio"}, loaded.Ignored)
	assert.False(t, loaded.DryRun, "dry-run is runtime-only, never persisted")
}

func TestLoadDefaultsOnCorruptFile(t *testing.T) {
	tmp := isolateConfig(t)

	path := filepath.Join(tmp, "saveli", "settings.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("storage_path = ["), 0644))

	s := settings.Load()
	assert.Empty(t, s.StoragePath)
}

func TestSetStoragePath(t *testing.T) {
	isolateConfig(t)

	target := filepath.Join(t.TempDir(), "storage", "nested")

	s := settings.Load()
	require.NoError(t, s.SetStoragePath(target))

	assert.Equal(t, target, s.StoragePath)
	assert.DirExists(t, target)

	loaded := settings.Load()
	assert.Equal(t, target, loaded.StoragePath)
}

func TestSetStoragePathRejectsEmpty(t *testing.T) {
	isolateConfig(t)

	s := settings.Load()
	err := s.SetStoragePath("")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestSetStoragePathAbsolutizesRelative(t *testing.T) {
	isolateConfig(t)

	oldWd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	work := t.TempDir()
	require.NoError(t, os.Chdir(work))

	s := settings.Load()
	require.NoError(t, s.SetStoragePath("storage"))
	assert.True(t, filepath.IsAbs(s.StoragePath))
	assert.DirExists(t, s.StoragePath)
}

func TestRequireStoragePath(t *testing.T) {
	s := &settings.Settings{}
	err := s.RequireStoragePath()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoragePathUnset))

	s.StoragePath = "/saves"
	assert.NoError(t, s.RequireStoragePath())
}

func TestIgnoreAndHeed(t *testing.T) {
	isolateConfig(t)

	s := settings.Load()
	require.NoError(t, s.Ignore("factorio"))
	require.NoError(t, s.Ignore("factorio"), "ignoring twice is fine")
	assert.True(t, s.IsIgnored("factorio"))
	assert.False(t, s.IsIgnored("celeste"))

	require.NoError(t, s.Heed("factorio"))
	assert.False(t, s.IsIgnored("factorio"))

	// Both reject an empty id before any mutation
	assert.True(t, errors.IsErrorCode(s.Ignore(""), errors.ErrInvalidInput))
	assert.True(t, errors.IsErrorCode(s.Heed(""), errors.ErrInvalidInput))
}
