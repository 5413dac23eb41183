package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// Resolvepath resolves all symbolic links in path. All "." components are
// removed, as are all non-leading ".." components along with the directory
// component preceding them. Leading ".." components that resolve to the root
// directory are replaced by "/". A relative path stays relative.
func Resolvepath(path string) (string, error) {
	if path == "" {
		return "", &os.PathError{Op: "resolvepath", Path: path, Err: syscall.ENOENT}
	}

	return resolvepath(path)
}

// Realpath resolves all symbolic links in path and returns the absolute
// pathname. Unlike Resolvepath the result is always absolute.
func Realpath(path string) (string, error) {
	if path == "" {
		return "", &os.PathError{Op: "realpath", Path: path, Err: syscall.ENOENT}
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("absolute path of %s: %w", resolved, err)
	}

	// The working directory joined by Abs may itself contain links.
	return filepath.EvalSymlinks(abs)
}
