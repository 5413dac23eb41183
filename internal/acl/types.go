package acl

// Version is the version of the solfile library.
const Version = "0.4.0"

// Commands accepted by acl(2) and facl(2).
const (
	GetACL      = 1
	SetACL      = 2
	GetACLCount = 3
)

// MinEntries is the number of entries in the ACL of a trivial file, i.e. one
// with nothing beyond the owner, group, other and mask entries.
const MinEntries = 4

// Type is the a_type of an ACL entry.
type Type int

const (
	UserObj  Type = 0x01
	User     Type = 0x02
	GroupObj Type = 0x04
	Group    Type = 0x08
	ClassObj Type = 0x10
	OtherObj Type = 0x20

	// Default is OR'd into the base types for default (inherited) entries
	// on directories.
	Default Type = 0x1000

	DefUserObj  = Default | UserObj
	DefUser     = Default | User
	DefGroupObj = Default | GroupObj
	DefGroup    = Default | Group
	DefClassObj = Default | ClassObj
	DefOtherObj = Default | OtherObj
)

// String returns the human-readable name of the entry type.
func (t Type) String() string {
	switch t {
	case User, UserObj:
		return "user"
	case Group, GroupObj:
		return "group"
	case OtherObj:
		return "other"
	case ClassObj:
		return "mask"
	case DefUser, DefUserObj:
		return "defaultuser"
	case DefGroup, DefGroupObj:
		return "defaultgroup"
	case DefOtherObj:
		return "defaultother"
	case DefClassObj:
		return "defaultmask"
	}

	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Perm is the a_perm of an ACL entry.
type Perm uint16

const (
	PermExecute Perm = 1 << iota
	PermWrite
	PermRead
)

// String renders p in the rwx form used by ls(1).
func (p Perm) String() string {
	s := []byte("---")
	if p&PermRead != 0 {
		s[0] = 'r'
	}
	if p&PermWrite != 0 {
		s[1] = 'w'
	}
	if p&PermExecute != 0 {
		s[2] = 'x'
	}

	return string(s)
}

// Entry is a single ACL entry.
type Entry struct {
	Type Type `json:"type"`
	ID   int  `json:"id"`
	Perm Perm `json:"perm"`
}
