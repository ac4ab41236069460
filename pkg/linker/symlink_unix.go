//go:build !windows

package linker

import "os"

// osSymlink creates a symbolic link at source pointing to target.
func osSymlink(source, target string) error {
	return os.Symlink(target, source)
}
