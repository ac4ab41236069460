//go:build windows

package linker

import "os"

// osSymlink creates a symbolic link at source pointing to target.
//
// CreateSymbolicLinkW needs to be told whether the target is a file or a
// directory. os.Symlink derives that flag by statting target, which is
// why CreateLink requires the target to exist before linking.
func osSymlink(source, target string) error {
	return os.Symlink(target, source)
}
