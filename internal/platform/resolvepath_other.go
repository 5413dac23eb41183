//go:build !solaris || !cgo

package platform

import (
	"path/filepath"
)

// resolvepath has the resolvepath(3C) contract: EvalSymlinks keeps
// relative paths relative and cleans the result.
func resolvepath(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}
