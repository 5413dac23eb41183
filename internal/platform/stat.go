package platform

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

const (
	// sIFDOOR is the Solaris file type for doors, see <sys/stat.h>.
	sIFDOOR = 0xd000
	// sIFPORT is the Solaris file type for event ports.
	sIFPORT = 0xe000
)

// IsDoorMode reports whether mode, as found in stat's st_mode, is a door.
func IsDoorMode(mode uint32) bool {
	return mode&unix.S_IFMT == sIFDOOR
}

// FileTypeMode returns the name of the file type encoded in mode. Doors are
// reported as "door"; everything else uses the names "file", "directory",
// "characterSpecial", "blockSpecial", "fifo", "link", "socket", "port" and
// "unknown".
func FileTypeMode(mode uint32) string {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return "file"
	case unix.S_IFDIR:
		return "directory"
	case unix.S_IFCHR:
		return "characterSpecial"
	case unix.S_IFBLK:
		return "blockSpecial"
	case unix.S_IFIFO:
		return "fifo"
	case unix.S_IFLNK:
		return "link"
	case unix.S_IFSOCK:
		return "socket"
	case sIFDOOR:
		return "door"
	case sIFPORT:
		return "port"
	}

	return "unknown"
}

func statMode(path string) (uint32, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, &os.PathError{Op: "stat", Path: path, Err: err}
	}

	return uint32(st.Mode), nil
}

func fstatMode(f *os.File) (uint32, error) {
	rc, err := f.SyscallConn()
	if err != nil {
		return 0, fmt.Errorf("raw conn for %s: %w", f.Name(), err)
	}

	var (
		st    unix.Stat_t
		sterr error
	)

	if err := rc.Control(func(fd uintptr) {
		sterr = unix.Fstat(int(fd), &st)
	}); err != nil {
		return 0, fmt.Errorf("control %s: %w", f.Name(), err)
	}

	if sterr != nil {
		return 0, &os.PathError{Op: "fstat", Path: f.Name(), Err: sterr}
	}

	return uint32(st.Mode), nil
}

// IsDoor reports whether the file at path is a door. Symlinks are followed.
func IsDoor(path string) (bool, error) {
	mode, err := statMode(path)
	if err != nil {
		return false, err
	}

	return IsDoorMode(mode), nil
}

// FileType returns the file type name of the file at path. Symlinks are
// followed.
func FileType(path string) (string, error) {
	mode, err := statMode(path)
	if err != nil {
		return "", err
	}

	return FileTypeMode(mode), nil
}

// FIsDoor reports whether the open file f is a door.
func FIsDoor(f *os.File) (bool, error) {
	mode, err := fstatMode(f)
	if err != nil {
		return false, err
	}

	return IsDoorMode(mode), nil
}

// FFileType returns the file type name of the open file f.
func FFileType(f *os.File) (string, error) {
	mode, err := fstatMode(f)
	if err != nil {
		return "", err
	}

	return FileTypeMode(mode), nil
}
