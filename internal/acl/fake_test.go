package acl

import (
	"fmt"
	"strconv"
	"strings"
	"syscall"
	"testing"
)

// fakeSyscalls is an in-memory stand-in for acl(2), facl(2) and libsec.
type fakeSyscalls struct {
	paths     map[string][]Entry
	fds       map[int][]Entry
	shortRead bool
	calls     []int
}

func withFake(t *testing.T, f *fakeSyscalls) *fakeSyscalls {
	t.Helper()

	if f.paths == nil {
		f.paths = map[string][]Entry{}
	}
	if f.fds == nil {
		f.fds = map[int][]Entry{}
	}

	orig := sys
	sys = f
	t.Cleanup(func() { sys = orig })

	return f
}

func (f *fakeSyscalls) do(stored []Entry, cmd int, buf []Entry) ([]Entry, int, error) {
	f.calls = append(f.calls, cmd)

	switch cmd {
	case GetACLCount:
		return stored, len(stored), nil
	case GetACL:
		if len(buf) < len(stored) {
			return stored, -1, syscall.ENOSPC
		}
		n := copy(buf, stored)
		if f.shortRead {
			n--
		}
		return stored, n, nil
	case SetACL:
		return append([]Entry(nil), buf...), 0, nil
	}

	return stored, -1, syscall.EINVAL
}

func (f *fakeSyscalls) acl(path string, cmd int, buf []Entry) (int, error) {
	stored, ok := f.paths[path]
	if !ok {
		return -1, syscall.ENOENT
	}

	stored, n, err := f.do(stored, cmd, buf)
	f.paths[path] = stored

	return n, err
}

func (f *fakeSyscalls) facl(fd int, cmd int, buf []Entry) (int, error) {
	stored, ok := f.fds[fd]
	if !ok {
		return -1, syscall.EBADF
	}

	stored, n, err := f.do(stored, cmd, buf)
	f.fds[fd] = stored

	return n, err
}

var fakeNames = map[string]int{"nobody": 60001, "sys": 3}

func (f *fakeSyscalls) aclFromText(text string) ([]Entry, error) {
	var entries []Entry

	for _, field := range strings.Split(text, ",") {
		parts := strings.Split(field, ":")

		var (
			e    Entry
			perm string
		)

		switch {
		case len(parts) == 3 && (parts[0] == "user" || parts[0] == "group"):
			if parts[1] == "" {
				e.Type = UserObj
				if parts[0] == "group" {
					e.Type = GroupObj
				}
			} else {
				e.Type = User
				if parts[0] == "group" {
					e.Type = Group
				}
				id, ok := fakeNames[parts[1]]
				if !ok {
					n, err := strconv.Atoi(parts[1])
					if err != nil {
						return nil, nil
					}
					id = n
				}
				e.ID = id
			}
			perm = parts[2]
		case len(parts) == 2 && parts[0] == "mask":
			e.Type, perm = ClassObj, parts[1]
		case len(parts) == 2 && parts[0] == "other":
			e.Type, perm = OtherObj, parts[1]
		default:
			return nil, nil
		}

		if len(perm) != 3 {
			return nil, nil
		}
		for i, c := range "rwx" {
			if perm[i] == byte(c) {
				e.Perm |= Perm(4 >> i)
			} else if perm[i] != '-' {
				return nil, nil
			}
		}

		entries = append(entries, e)
	}

	return entries, nil
}

func (f *fakeSyscalls) aclToText(entries []Entry) (string, error) {
	fields := make([]string, 0, len(entries))

	for _, e := range entries {
		switch e.Type {
		case UserObj, GroupObj:
			fields = append(fields, fmt.Sprintf("%s::%s", e.Type, e.Perm))
		case User, Group:
			fields = append(fields, fmt.Sprintf("%s:%d:%s", e.Type, e.ID, e.Perm))
		default:
			fields = append(fields, fmt.Sprintf("%s:%s", e.Type, e.Perm))
		}
	}

	return strings.Join(fields, ","), nil
}

func (f *fakeSyscalls) aclCheck(entries []Entry) (int, int) {
	seen := map[Type]bool{}

	for i, e := range entries {
		if e.Type.String() == "unknown" {
			return int(EntryError), i
		}

		if seen[e.Type] {
			switch e.Type {
			case UserObj:
				return int(UserError), i
			case GroupObj:
				return int(GroupError), i
			case OtherObj:
				return int(OtherError), i
			case ClassObj:
				return int(ClassError), i
			}
		}
		seen[e.Type] = true
	}

	if !seen[UserObj] || !seen[GroupObj] || !seen[OtherObj] {
		return int(MissingError), -1
	}

	return 0, -1
}

var (
	trivialEntries = []Entry{
		{Type: UserObj, Perm: PermRead | PermWrite},
		{Type: GroupObj, Perm: PermRead},
		{Type: ClassObj, Perm: PermRead},
		{Type: OtherObj, Perm: PermRead},
	}

	extendedEntries = []Entry{
		{Type: UserObj, Perm: PermRead | PermWrite},
		{Type: User, ID: 60001, Perm: PermRead},
		{Type: GroupObj, Perm: PermRead},
		{Type: Group, ID: 3, Perm: PermRead},
		{Type: ClassObj, Perm: PermRead},
		{Type: OtherObj, Perm: PermRead},
	}
)
