// Package game drives the per-application relocation logic: deciding
// which catalog entries are eligible and walking their save paths
// through the linker. Batch operations are best-effort, one entry's
// failure never aborts the rest.
package game

import (
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/saveli-project/saveli/pkg/catalog"
	"github.com/saveli-project/saveli/pkg/errors"
	"github.com/saveli-project/saveli/pkg/linker"
	"github.com/saveli-project/saveli/pkg/logging"
)

// Options carries everything a batch operation needs. IsIgnored is the
// settings ignore set as a predicate, nil means nothing is ignored.
type Options struct {
	Entries     []catalog.Entry
	StorageRoot string
	IsIgnored   func(id string) bool
	DryRun      bool
}

func (o Options) ignored(id string) bool {
	return o.IsIgnored != nil && o.IsIgnored(id)
}

// Result is the outcome for one entry of a batch operation.
type Result struct {
	Entry   catalog.Entry
	Skipped bool
	Err     error
}

// Failed counts the results carrying an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// LinkAll relocates the saves of every eligible entry into the storage
// root and links their original locations. The returned error is fatal
// (the link-capability gate); per-entry failures land in the results.
func LinkAll(opts Options) ([]Result, error) {
	movable := withMovableSaves(opts.Entries)
	pterm.Info.Printfln("Found %d games with saves in their standard locations", len(movable))

	if !opts.DryRun {
		if err := linker.VerifyLinkCapability(); err != nil {
			return nil, err
		}
	}

	return forEach(opts, movable, linkEntry), nil
}

// RestoreAll re-creates links for entries whose saves already sit in
// the storage root, without moving any data. This is the repair path
// after a reinstall wiped the links.
func RestoreAll(opts Options) ([]Result, error) {
	restorable := withMovedSaves(opts.Entries, opts.StorageRoot)
	pterm.Info.Printfln("Found %d games with saves moved to %s", len(restorable), opts.StorageRoot)

	if !opts.DryRun {
		if err := linker.VerifyLinkCapability(); err != nil {
			return nil, err
		}
	}

	return forEach(opts, restorable, restoreEntry), nil
}

// UnlinkAll is the inverse of LinkAll: it removes the links and moves
// the saves back to their original locations.
func UnlinkAll(opts Options) ([]Result, error) {
	restorable := withMovedSaves(opts.Entries, opts.StorageRoot)
	pterm.Info.Printfln("Found %d games with moved saves", len(restorable))

	if !opts.DryRun {
		if err := linker.VerifyLinkCapability(); err != nil {
			return nil, err
		}
	}

	return forEach(opts, restorable, unlinkEntry), nil
}

// forEach folds an operation over the selected entries, collecting a
// result per entry. The per-entry call returns an error instead of
// aborting, which is what keeps the batch running.
func forEach(opts Options, selected []catalog.Entry, op func(catalog.Entry, string, bool) error) []Result {
	logger := logging.GetLogger("game")

	results := make([]Result, 0, len(selected))
	for _, entry := range selected {
		if opts.ignored(entry.ID) {
			pterm.Printfln("%s is ignored, skipping", entry.Title)
			results = append(results, Result{Entry: entry, Skipped: true})
			continue
		}

		err := op(entry, opts.StorageRoot, opts.DryRun)
		if err != nil {
			logger.Warn().Err(err).Str("id", entry.ID).Msg("Entry failed")
			pterm.Warning.Printfln("%s: %v", entry.Title, err)
		}
		results = append(results, Result{Entry: entry, Err: err})
	}

	return results
}

// withMovableSaves selects entries having at least one save that
// exists on disk and is not already a link, i.e. genuinely movable.
func withMovableSaves(entries []catalog.Entry) []catalog.Entry {
	var out []catalog.Entry
	for _, e := range entries {
		if hasMovableSaves(e) {
			out = append(out, e)
		}
	}
	return out
}

func hasMovableSaves(e catalog.Entry) bool {
	for _, s := range e.Saves {
		md, err := os.Lstat(s.Expanded)
		if err != nil {
			continue
		}
		if md.Mode()&os.ModeSymlink == 0 {
			return true
		}
	}
	return false
}

// withMovedSaves selects entries which already have a subdirectory in
// the storage root, i.e. were previously relocated.
func withMovedSaves(entries []catalog.Entry, storageRoot string) []catalog.Entry {
	var out []catalog.Entry
	for _, e := range entries {
		if e.ID == "" {
			continue
		}
		if _, err := os.Stat(filepath.Join(storageRoot, e.ID)); err == nil {
			out = append(out, e)
		}
	}
	return out
}

func linkEntry(e catalog.Entry, storageRoot string, dryRun bool) error {
	entryStorage := filepath.Join(storageRoot, e.ID)
	if !dryRun {
		if err := os.MkdirAll(entryStorage, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "failed to create %s", entryStorage)
		}
	}

	for _, s := range e.Saves {
		dest := filepath.Join(entryStorage, s.ID)
		pterm.Printfln("Linking %s's %s to %s", e.Title, s.Expanded, dest)

		if !dryRun {
			if err := linker.RelocateAndLink(s.Expanded, dest); err != nil {
				return err
			}
		}
	}

	return nil
}

func restoreEntry(e catalog.Entry, storageRoot string, dryRun bool) error {
	for _, s := range e.Saves {
		dest := filepath.Join(storageRoot, e.ID, s.ID)
		pterm.Printfln("Restoring %s's %s from %s", e.Title, s.Expanded, dest)

		if !dryRun {
			if err := linker.CreateLink(s.Expanded, dest); err != nil {
				return err
			}
		}
	}

	return nil
}

// unlinkEntry removes the link at each original location, moves the
// data back, and finally drops the entry's storage directory. Only
// links are ever removed before the move, real data at the original
// path fails the entry instead of being clobbered.
func unlinkEntry(e catalog.Entry, storageRoot string, dryRun bool) error {
	entryStorage := filepath.Join(storageRoot, e.ID)

	for _, s := range e.Saves {
		dest := filepath.Join(entryStorage, s.ID)
		pterm.Printfln("Unlinking %s's %s from %s", e.Title, s.Expanded, dest)

		if dryRun {
			continue
		}

		if _, err := os.Stat(dest); err != nil {
			return errors.Newf(errors.ErrSourceNotFound, "no file or directory exists at %s", dest)
		}

		if _, err := os.Lstat(s.Expanded); err == nil {
			if err := linker.RemoveLink(s.Expanded); err != nil {
				return err
			}
		}

		if err := linker.MoveItem(dest, s.Expanded); err != nil {
			return err
		}
	}

	if !dryRun {
		pterm.Printfln("Removing %s", entryStorage)
		if err := os.Remove(entryStorage); err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "failed to remove %s", entryStorage)
		}
	}

	return nil
}
