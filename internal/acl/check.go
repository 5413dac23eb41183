package acl

import (
	"errors"
	"fmt"
)

// ErrInvalidACL is matched by every *CheckError.
var ErrInvalidACL = errors.New("invalid ACL")

// CheckCode is a non-zero return value of aclcheck(3SEC).
type CheckCode int

const (
	GroupError     CheckCode = 1
	UserError      CheckCode = 2
	OtherError     CheckCode = 3
	ClassError     CheckCode = 4
	DuplicateError CheckCode = 5
	MissingError   CheckCode = 6
	MemoryError    CheckCode = 7
	EntryError     CheckCode = 8
)

// CheckError is returned when aclcheck rejects an ACL. Which is the index of
// the offending entry, where aclcheck was able to identify one.
type CheckError struct {
	Code  CheckCode
	Which int
}

func (e *CheckError) Error() string {
	switch e.Code {
	case GroupError:
		return e.entry("multiple group entries")
	case UserError:
		return e.entry("multiple user entries")
	case OtherError:
		return e.entry("multiple other entries")
	case ClassError:
		return e.entry("multiple mask entries")
	case DuplicateError:
		return e.entry("multiple user or group entries")
	case EntryError:
		return e.entry("invalid entry type")
	case MissingError:
		return "missing ACL entries"
	case MemoryError:
		return "out of memory"
	}

	return "unknown error"
}

func (e *CheckError) entry(reason string) string {
	return fmt.Sprintf("invalid ACL entry: %d; %s", e.Which, reason)
}

// Is reports whether target is ErrInvalidACL.
func (e *CheckError) Is(target error) bool {
	return target == ErrInvalidACL
}

// checkResult converts an aclcheck return value into an error.
func checkResult(code, which int) error {
	if code == 0 {
		return nil
	}

	return &CheckError{Code: CheckCode(code), Which: which}
}
