// Package linker implements the primitive filesystem operations behind
// relocating save data: creating links, moving items across devices, and
// probing whether the process is allowed to create links at all.
//
// Everything here works on absolute paths and is platform-neutral except
// the single link-creation primitive in symlink_unix.go / symlink_windows.go.
package linker

import (
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"
	"github.com/saveli-project/saveli/pkg/errors"
	"github.com/saveli-project/saveli/pkg/logging"
)

// CreateLink creates a link at source pointing to target. target must
// already exist and source must not, with one exception: if source is
// already a link to target the call succeeds, so calling twice is safe.
func CreateLink(source, target string) error {
	if _, err := os.Stat(target); err != nil {
		return errors.Newf(errors.ErrDestinationMissing, "no file or directory exists at %s", target)
	}

	if err := osSymlink(source, target); err != nil {
		// The raw OS error is not reliable here: on some platforms a
		// colliding directory surfaces as a permission error rather
		// than EEXIST. Inspect source to classify the failure.
		if md, lerr := os.Lstat(source); lerr == nil {
			if md.Mode()&os.ModeSymlink != 0 {
				if existing, rerr := os.Readlink(source); rerr == nil {
					if filepath.Clean(existing) == filepath.Clean(target) {
						return nil
					}
					return errors.Newf(errors.ErrAlreadyLinked, "the source is already a link to: %s", existing).
						WithDetail("target", existing)
				}
			}
			if md.IsDir() || md.Mode().IsRegular() {
				return errors.Newf(errors.ErrSourceExists, "a file or directory already exists at %s", source)
			}
		}
		return errors.Wrapf(err, errors.ErrLinkFailed, "failed to link %s to %s", source, target)
	}

	return nil
}

// MoveItem moves src to dest. It renames when possible and falls back to
// a copy followed by a delete when the rename fails, e.g. across devices.
func MoveItem(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	logger := logging.GetLogger("linker")
	logger.Debug().Str("src", src).Str("dest", dest).Msg("Rename failed, falling back to copy and delete")

	if err := cp.Copy(src, dest); err != nil {
		return errors.Wrapf(err, errors.ErrMoveFailed, "failed to move %s to %s", src, dest)
	}

	// The copy is complete, removing the source cannot lose data.
	if err := os.RemoveAll(src); err != nil {
		return errors.Wrapf(err, errors.ErrMoveFailed, "failed to move %s to %s", src, dest)
	}

	return nil
}

// RelocateAndLink moves src to dest, then creates a link from src back
// to dest. It refuses to overwrite an existing dest, and succeeds as a
// no-op when src is already a link to dest.
func RelocateAndLink(src, dest string) error {
	if _, err := os.Stat(src); err != nil {
		return errors.Newf(errors.ErrSourceNotFound, "no file or directory exists at %s", src)
	}

	if _, err := os.Stat(dest); err == nil {
		if target, rerr := os.Readlink(src); rerr == nil {
			if filepath.Clean(target) == filepath.Clean(dest) {
				return nil
			}
			return errors.Newf(errors.ErrAlreadyLinked, "the source is already a link to: %s", target).
				WithDetail("target", target)
		}
		return errors.Newf(errors.ErrDestinationExists, "a file or directory already exists at %s", dest)
	}

	if err := MoveItem(src, dest); err != nil {
		return err
	}

	return CreateLink(src, dest)
}

// RemoveLink removes the link at path. It refuses to remove anything
// that is not a link, so real data can never be deleted through it.
func RemoveLink(path string) error {
	md, err := os.Lstat(path)
	if err != nil {
		return errors.Newf(errors.ErrSourceNotFound, "no file or directory exists at %s", path)
	}
	if md.Mode()&os.ModeSymlink == 0 {
		return errors.Newf(errors.ErrNotALink, "%s is not a link", path)
	}
	return os.Remove(path)
}

// VerifyLinkCapability performs a throwaway link creation in temporary
// directories to detect whether the process is allowed to create links.
// On Windows symbolic links require elevated rights or developer mode,
// so this runs as an upfront gate before any mutating batch.
func VerifyLinkCapability() error {
	srcDir, err := os.MkdirTemp("", "saveli-probe-src")
	if err != nil {
		return errors.Wrap(err, errors.ErrLinkPermission, "failed to create temporary probe directory")
	}
	defer func() { _ = os.RemoveAll(srcDir) }()

	destDir, err := os.MkdirTemp("", "saveli-probe-dest")
	if err != nil {
		return errors.Wrap(err, errors.ErrLinkPermission, "failed to create temporary probe directory")
	}
	defer func() { _ = os.RemoveAll(destDir) }()

	probe := filepath.Join(srcDir, "probe")
	if err := CreateLink(probe, destDir); err != nil {
		return errors.Wrapf(err, errors.ErrLinkPermission, "this process isn't allowed to create links")
	}

	return nil
}
