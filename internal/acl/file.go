package acl

import (
	"fmt"
	"os"
)

// File gives access to the ACL of an open file through its descriptor.
type File struct {
	f *os.File
}

// NewFile wraps f. The caller keeps ownership of f.
func NewFile(f *os.File) *File {
	return &File{f: f}
}

func (f *File) call(cmd int, buf []Entry) (int, error) {
	rc, err := f.f.SyscallConn()
	if err != nil {
		return -1, fmt.Errorf("raw conn for %s: %w", f.f.Name(), err)
	}

	var (
		n    int
		ferr error
	)

	if err := rc.Control(func(fd uintptr) {
		n, ferr = sys.facl(int(fd), cmd, buf)
	}); err != nil {
		return -1, fmt.Errorf("control %s: %w", f.f.Name(), err)
	}

	if ferr != nil {
		return n, &os.PathError{Op: "facl", Path: f.f.Name(), Err: ferr}
	}

	return n, nil
}

func (f *File) name() string { return f.f.Name() }

// Count returns the number of ACL entries of the file, or 0 if the file is
// trivial.
func (f *File) Count() (int, error) { return count(f) }

// Read returns the ACL entries of the file, or nil if it is trivial.
func (f *File) Read() ([]Entry, error) { return read(f) }

// ReadText returns the ACL of the file in acltotext form, or an empty string
// if it is trivial.
func (f *File) ReadText() (string, error) { return readText(f) }

// WriteText replaces the ACL of the file with the one described by text.
func (f *File) WriteText(text string) error { return writeText(f, text) }

// Write replaces the ACL of the file with entries.
func (f *File) Write(entries []Entry) error { return write(f, entries) }

// IsTrivial reports whether the file has no extended ACL entries.
func (f *File) IsTrivial() (bool, error) { return isTrivial(f) }
