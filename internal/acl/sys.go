package acl

// syscalls is the boundary to libc and libsec. Implementations return the
// raw errno (or errors.ErrUnsupported) and leave wrapping to the caller.
type syscalls interface {
	acl(path string, cmd int, buf []Entry) (int, error)
	facl(fd int, cmd int, buf []Entry) (int, error)
	// aclFromText returns nil entries and no error if the text does not
	// parse.
	aclFromText(text string) ([]Entry, error)
	aclToText(entries []Entry) (string, error)
	aclCheck(entries []Entry) (code, which int)
}

var sys syscalls = nativeSyscalls{}
