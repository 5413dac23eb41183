//go:build solaris && cgo

package platform

/*
#include <stdlib.h>
#include <unistd.h>
#include <limits.h>
*/
import "C"

import (
	"os"
	"unsafe"
)

func resolvepath(path string) (string, error) {
	p := C.CString(path)
	defer C.free(unsafe.Pointer(p))

	buf := make([]byte, C.PATH_MAX)

	// resolvepath does not NUL-terminate buf; n is the length written.
	n, err := C.resolvepath(p, (*C.char)(unsafe.Pointer(&buf[0])), C.size_t(len(buf)))
	if n == -1 {
		return "", &os.PathError{Op: "resolvepath", Path: path, Err: err}
	}

	return string(buf[:n]), nil
}
