package game_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saveli-project/saveli/pkg/catalog"
	"github.com/saveli-project/saveli/pkg/errors"
	"github.com/saveli-project/saveli/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEntry builds an entry with one save directory living under dir,
// reachable through a template so path resolution stays in play.
func newEntry(t *testing.T, id, saveID, dir string) catalog.Entry {
	t.Helper()
	t.Setenv("SAVELI_TEST_"+id, dir)
	save, err := catalog.NewSavePath(saveID, "$SAVELI_TEST_"+id+"/"+saveID)
	require.NoError(t, err)
	return catalog.Entry{Title: id, ID: id, Saves: []catalog.SavePath{save}}
}

func writeSave(t *testing.T, entry catalog.Entry) string {
	t.Helper()
	dir := entry.Saves[0].Expanded
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "slot1.sav"), []byte("progress"), 0644))
	return dir
}

func TestLinkAllAndUnlinkAllRoundTrip(t *testing.T) {
	storage := t.TempDir()
	entry := newEntry(t, "g1", "s1", t.TempDir())
	saveDir := writeSave(t, entry)

	opts := game.Options{Entries: []catalog.Entry{entry}, StorageRoot: storage}

	results, err := game.LinkAll(opts)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	stored := filepath.Join(storage, "g1", "s1")
	assert.FileExists(t, filepath.Join(stored, "slot1.sav"))
	target, err := os.Readlink(saveDir)
	require.NoError(t, err)
	assert.Equal(t, stored, target)

	results, err = game.UnlinkAll(opts)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	// The original path is real data again, identical contents
	md, err := os.Lstat(saveDir)
	require.NoError(t, err)
	assert.True(t, md.IsDir())
	data, err := os.ReadFile(filepath.Join(saveDir, "slot1.sav"))
	require.NoError(t, err)
	assert.Equal(t, "progress", string(data))

	// And the per-entry storage directory is gone
	assert.NoDirExists(t, filepath.Join(storage, "g1"))
}

func TestLinkAllIsIdempotent(t *testing.T) {
	storage := t.TempDir()
	entry := newEntry(t, "g1", "s1", t.TempDir())
	writeSave(t, entry)

	opts := game.Options{Entries: []catalog.Entry{entry}, StorageRoot: storage}

	_, err := game.LinkAll(opts)
	require.NoError(t, err)

	// Second run selects nothing, the save is now a link
	results, err := game.LinkAll(opts)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestLinkAllSkipsMissingSaves(t *testing.T) {
	storage := t.TempDir()
	entry := newEntry(t, "g1", "s1", t.TempDir())
	// No save data written, nothing is movable

	results, err := game.LinkAll(game.Options{Entries: []catalog.Entry{entry}, StorageRoot: storage})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestLinkAllIgnoreGate(t *testing.T) {
	storage := t.TempDir()
	entry := newEntry(t, "g1", "s1", t.TempDir())
	saveDir := writeSave(t, entry)

	opts := game.Options{
		Entries:     []catalog.Entry{entry},
		StorageRoot: storage,
		IsIgnored:   func(id string) bool { return id == "g1" },
	}

	results, err := game.LinkAll(opts)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Skipped)
	require.NoError(t, results[0].Err)

	// Skipped means untouched
	md, err := os.Lstat(saveDir)
	require.NoError(t, err)
	assert.True(t, md.IsDir())
	assert.NoDirExists(t, filepath.Join(storage, "g1"))
}

func TestLinkAllDryRunMutatesNothing(t *testing.T) {
	storage := t.TempDir()
	entry := newEntry(t, "g1", "s1", t.TempDir())
	saveDir := writeSave(t, entry)

	opts := game.Options{Entries: []catalog.Entry{entry}, StorageRoot: storage, DryRun: true}

	results, err := game.LinkAll(opts)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	md, err := os.Lstat(saveDir)
	require.NoError(t, err)
	assert.True(t, md.IsDir(), "save dir should still be real data")
	assert.NoDirExists(t, filepath.Join(storage, "g1"))
}

func TestLinkAllIsolatesEntryFailures(t *testing.T) {
	storage := t.TempDir()

	bad := newEntry(t, "bad", "s1", t.TempDir())
	writeSave(t, bad)
	// Pre-existing destination makes relocation fail for this entry
	require.NoError(t, os.MkdirAll(filepath.Join(storage, "bad", "s1"), 0755))

	good := newEntry(t, "good", "s1", t.TempDir())
	goodDir := writeSave(t, good)

	results, err := game.LinkAll(game.Options{
		Entries:     []catalog.Entry{bad, good},
		StorageRoot: storage,
	})
	require.NoError(t, err, "per-entry failures must not abort the batch")
	require.Len(t, results, 2)
	assert.Equal(t, 1, game.Failed(results))

	for _, r := range results {
		switch r.Entry.ID {
		case "bad":
			assert.True(t, errors.IsErrorCode(r.Err, errors.ErrDestinationExists))
		case "good":
			require.NoError(t, r.Err)
			_, err := os.Readlink(goodDir)
			assert.NoError(t, err, "good entry should still be linked")
		}
	}
}

func TestRestoreAllRecreatesLinks(t *testing.T) {
	storage := t.TempDir()
	entry := newEntry(t, "g1", "s1", t.TempDir())

	// Data already relocated, no link present (e.g. after a reinstall)
	stored := filepath.Join(storage, "g1", "s1")
	require.NoError(t, os.MkdirAll(stored, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(stored, "slot1.sav"), []byte("progress"), 0644))

	results, err := game.RestoreAll(game.Options{Entries: []catalog.Entry{entry}, StorageRoot: storage})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	target, err := os.Readlink(entry.Saves[0].Expanded)
	require.NoError(t, err)
	assert.Equal(t, stored, target)

	// Data stayed where it was
	assert.FileExists(t, filepath.Join(stored, "slot1.sav"))
}

func TestRestoreAllSelectsOnlyRelocatedEntries(t *testing.T) {
	storage := t.TempDir()
	relocated := newEntry(t, "g1", "s1", t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Join(storage, "g1", "s1"), 0755))

	fresh := newEntry(t, "g2", "s1", t.TempDir())
	empty := catalog.Entry{Title: "no id"}

	results, err := game.RestoreAll(game.Options{
		Entries:     []catalog.Entry{relocated, fresh, empty},
		StorageRoot: storage,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "g1", results[0].Entry.ID)
}

func TestRestoreAllFailsOnRealData(t *testing.T) {
	storage := t.TempDir()
	entry := newEntry(t, "g1", "s1", t.TempDir())
	writeSave(t, entry)
	require.NoError(t, os.MkdirAll(filepath.Join(storage, "g1", "s1"), 0755))

	results, err := game.RestoreAll(game.Options{Entries: []catalog.Entry{entry}, StorageRoot: storage})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, errors.IsErrorCode(results[0].Err, errors.ErrSourceExists),
		"restore must refuse to clobber real data")
}

func TestUnlinkAllRefusesRealDataAtOriginal(t *testing.T) {
	storage := t.TempDir()
	entry := newEntry(t, "g1", "s1", t.TempDir())

	stored := filepath.Join(storage, "g1", "s1")
	require.NoError(t, os.MkdirAll(stored, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(stored, "slot1.sav"), []byte("progress"), 0644))

	// A real directory reappeared at the original location
	require.NoError(t, os.MkdirAll(entry.Saves[0].Expanded, 0755))

	results, err := game.UnlinkAll(game.Options{Entries: []catalog.Entry{entry}, StorageRoot: storage})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, errors.IsErrorCode(results[0].Err, errors.ErrNotALink))

	// The stored data is untouched
	assert.FileExists(t, filepath.Join(stored, "slot1.sav"))
}

func TestUnlinkAllDryRun(t *testing.T) {
	storage := t.TempDir()
	entry := newEntry(t, "g1", "s1", t.TempDir())
	writeSave(t, entry)

	_, err := game.LinkAll(game.Options{Entries: []catalog.Entry{entry}, StorageRoot: storage})
	require.NoError(t, err)

	results, err := game.UnlinkAll(game.Options{
		Entries:     []catalog.Entry{entry},
		StorageRoot: storage,
		DryRun:      true,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	// Still linked, still stored
	_, err = os.Readlink(entry.Saves[0].Expanded)
	assert.NoError(t, err)
	assert.DirExists(t, filepath.Join(storage, "g1"))
}
