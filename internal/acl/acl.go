// Package acl reads and writes the UFS (POSIX-draft) ACLs of files on
// Solaris and illumos.
//
// All ACL semantics belong to the operating system. This package only
// moves entry arrays across acl(2), facl(2) and the libsec text routines,
// and turns their return codes into Go errors. On other platforms every
// operation fails with errors.ErrUnsupported.
package acl

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// PathMax is the longest path, including the terminating NUL, that acl(2)
// accepts.
const PathMax = 1024

var (
	// ErrPathTooLong is returned for paths that do not fit in PathMax.
	ErrPathTooLong = fmt.Errorf("path length exceeds limit of: %d", PathMax)

	// ErrInvalidPath is returned for paths containing a NUL byte.
	ErrInvalidPath = errors.New("path contains NUL byte")

	// ErrInvalidText is returned when aclfromtext cannot parse the ACL text.
	ErrInvalidText = errors.New("invalid ACL text")

	// ErrShortRead is returned when GETACL yields a different number of
	// entries than GETACLCNT reported.
	ErrShortRead = errors.New("ACL entry count changed during read")
)

// target is where an ACL lives: a path for acl(2) or an open file for
// facl(2).
type target interface {
	call(cmd int, buf []Entry) (int, error)
	name() string
}

type pathTarget string

func (p pathTarget) call(cmd int, buf []Entry) (int, error) {
	n, err := sys.acl(string(p), cmd, buf)
	if err != nil {
		return n, &os.PathError{Op: "acl", Path: string(p), Err: err}
	}

	return n, nil
}

func (p pathTarget) name() string { return string(p) }

func newPathTarget(path string) (pathTarget, error) {
	if len(path) >= PathMax {
		return "", ErrPathTooLong
	}

	if strings.IndexByte(path, 0) != -1 {
		return "", ErrInvalidPath
	}

	return pathTarget(path), nil
}

// Count returns the number of ACL entries of the file at path, or 0 if the
// file is trivial.
func Count(path string) (int, error) {
	t, err := newPathTarget(path)
	if err != nil {
		return 0, err
	}

	return count(t)
}

// Read returns the ACL entries of the file at path. A trivial file yields a
// nil slice.
func Read(path string) ([]Entry, error) {
	t, err := newPathTarget(path)
	if err != nil {
		return nil, err
	}

	return read(t)
}

// ReadText returns the ACL of the file at path in acltotext form, e.g.
// "user::rw-,user:nobody:r--,group::r--,mask:r--,other:r--". A trivial file
// yields an empty string.
func ReadText(path string) (string, error) {
	t, err := newPathTarget(path)
	if err != nil {
		return "", err
	}

	return readText(t)
}

// WriteText replaces the ACL of the file at path with the one described by
// text. Text that aclfromtext cannot parse fails with ErrInvalidText and an
// ACL rejected by aclcheck fails with a *CheckError.
func WriteText(path, text string) error {
	t, err := newPathTarget(path)
	if err != nil {
		return err
	}

	return writeText(t, text)
}

// Write replaces the ACL of the file at path with entries, after validating
// them with aclcheck.
func Write(path string, entries []Entry) error {
	t, err := newPathTarget(path)
	if err != nil {
		return err
	}

	return write(t, entries)
}

// IsTrivial reports whether the file at path has no ACL entries beyond the
// traditional permission bits.
func IsTrivial(path string) (bool, error) {
	t, err := newPathTarget(path)
	if err != nil {
		return false, err
	}

	return isTrivial(t)
}

// Check validates entries with aclcheck.
func Check(entries []Entry) error {
	code, which := sys.aclCheck(entries)
	return checkResult(code, which)
}

// ParseText converts ACL text into entries with aclfromtext.
func ParseText(text string) ([]Entry, error) {
	entries, err := sys.aclFromText(text)
	if err != nil {
		return nil, err
	}

	if entries == nil {
		return nil, ErrInvalidText
	}

	return entries, nil
}

// FormatText converts entries into ACL text with acltotext.
func FormatText(entries []Entry) (string, error) {
	return sys.aclToText(entries)
}

func rawCount(t target) (int, error) {
	return t.call(GetACLCount, nil)
}

func count(t target) (int, error) {
	n, err := rawCount(t)
	if err != nil {
		return 0, err
	}

	if n == MinEntries {
		return 0, nil
	}

	return n, nil
}

func isTrivial(t target) (bool, error) {
	n, err := rawCount(t)
	if err != nil {
		return false, err
	}

	return n == MinEntries, nil
}

// fetch performs the two-phase read: query the entry count, then fetch that
// many entries. It returns nil for a trivial file.
func fetch(t target) ([]Entry, error) {
	n, err := rawCount(t)
	if err != nil {
		return nil, err
	}

	if n == MinEntries {
		return nil, nil
	}

	buf := make([]Entry, n)

	got, err := t.call(GetACL, buf)
	if err != nil {
		return nil, err
	}

	if got != n {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrShortRead, n, got)
	}

	slog.Debug("read acl", "target", t.name(), "entries", n)

	return buf, nil
}

func read(t target) ([]Entry, error) {
	return fetch(t)
}

func readText(t target) (string, error) {
	entries, err := fetch(t)
	if err != nil {
		return "", err
	}

	if entries == nil {
		return "", nil
	}

	return sys.aclToText(entries)
}

func writeText(t target, text string) error {
	entries, err := ParseText(text)
	if err != nil {
		return err
	}

	return write(t, entries)
}

func write(t target, entries []Entry) error {
	if err := Check(entries); err != nil {
		return err
	}

	if _, err := t.call(SetACL, entries); err != nil {
		return err
	}

	slog.Debug("wrote acl", "target", t.name(), "entries", len(entries))

	return nil
}
