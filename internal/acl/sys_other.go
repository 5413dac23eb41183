//go:build !solaris || !cgo

package acl

import "errors"

type nativeSyscalls struct{}

func (nativeSyscalls) acl(string, int, []Entry) (int, error) {
	return -1, errors.ErrUnsupported
}

func (nativeSyscalls) facl(int, int, []Entry) (int, error) {
	return -1, errors.ErrUnsupported
}

func (nativeSyscalls) aclFromText(string) ([]Entry, error) {
	return nil, errors.ErrUnsupported
}

func (nativeSyscalls) aclToText([]Entry) (string, error) {
	return "", errors.ErrUnsupported
}

// aclCheck accepts everything; the subsequent acl or facl call reports the
// platform as unsupported.
func (nativeSyscalls) aclCheck([]Entry) (int, int) {
	return 0, -1
}
