//go:build solaris && cgo

package acl

/*
#cgo LDFLAGS: -lsec
#include <stdlib.h>
#include <sys/acl.h>
*/
import "C"

import (
	"unsafe"
)

// Note on errno: acl(2) and facl(2) only set errno meaningfully when they
// return -1, so the return value is checked before the error.

type nativeSyscalls struct{}

func toC(entries []Entry) []C.aclent_t {
	if len(entries) == 0 {
		return nil
	}

	cents := make([]C.aclent_t, len(entries))
	for i, e := range entries {
		cents[i].a_type = C.int(e.Type)
		cents[i].a_id = C.uid_t(e.ID)
		cents[i].a_perm = C.o_mode_t(e.Perm)
	}

	return cents
}

func fromC(cents []C.aclent_t, entries []Entry) {
	for i := range entries {
		entries[i] = Entry{
			Type: Type(cents[i].a_type),
			ID:   int(cents[i].a_id),
			Perm: Perm(cents[i].a_perm),
		}
	}
}

func bufPtr(cents []C.aclent_t) unsafe.Pointer {
	if len(cents) == 0 {
		return nil
	}

	return unsafe.Pointer(&cents[0])
}

func (nativeSyscalls) acl(path string, cmd int, buf []Entry) (int, error) {
	p := C.CString(path)
	defer C.free(unsafe.Pointer(p))

	cents := toC(buf)

	n, err := C.acl(p, C.int(cmd), C.int(len(cents)), bufPtr(cents))
	if n == -1 {
		return -1, err
	}

	if cmd == GetACL {
		fromC(cents, buf)
	}

	return int(n), nil
}

func (nativeSyscalls) facl(fd int, cmd int, buf []Entry) (int, error) {
	cents := toC(buf)

	n, err := C.facl(C.int(fd), C.int(cmd), C.int(len(cents)), bufPtr(cents))
	if n == -1 {
		return -1, err
	}

	if cmd == GetACL {
		fromC(cents, buf)
	}

	return int(n), nil
}

func (nativeSyscalls) aclFromText(text string) ([]Entry, error) {
	t := C.CString(text)
	defer C.free(unsafe.Pointer(t))

	var cnt C.int

	cbuf := C.aclfromtext(t, &cnt)
	if cbuf == nil {
		return nil, nil
	}
	defer C.free(unsafe.Pointer(cbuf))

	entries := make([]Entry, int(cnt))
	fromC(unsafe.Slice(cbuf, int(cnt)), entries)

	return entries, nil
}

func (nativeSyscalls) aclToText(entries []Entry) (string, error) {
	cents := toC(entries)

	ctext, err := C.acltotext((*C.aclent_t)(bufPtr(cents)), C.int(len(cents)))
	if ctext == nil {
		if err == nil {
			err = ErrInvalidACL
		}
		return "", err
	}
	defer C.free(unsafe.Pointer(ctext))

	return C.GoString(ctext), nil
}

func (nativeSyscalls) aclCheck(entries []Entry) (int, int) {
	cents := toC(entries)

	var which C.int

	code := C.aclcheck((*C.aclent_t)(bufPtr(cents)), C.int(len(cents)), &which)

	return int(code), int(which)
}
