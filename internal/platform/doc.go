// Package platform provides the file-metadata calls that sit alongside the
// ACL operations: door detection, file-type classification and path
// resolution. The raw mode bits from `unix` stat functions are used in
// preference to os.FileMode, which has no notion of doors or event ports.
package platform
