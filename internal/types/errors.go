package types

import "errors"

// Sentinel errors shared across the parsers and services. Callers match
// them with errors.Is; the site that fails wraps them with context.
var (
	// ErrBadMagic indicates the superblock magic does not identify an
	// easy-fs image. This is fatal: nothing is extracted from such an image.
	ErrBadMagic = errors.New("superblock magic mismatch")

	// ErrShortRead indicates fewer bytes were available than a block or
	// record requires, i.e. a truncated or corrupt image.
	ErrShortRead = errors.New("short read")

	// ErrInvalidEntry indicates a malformed directory entry, such as an
	// empty name field.
	ErrInvalidEntry = errors.New("invalid directory entry")

	// ErrIncompleteData indicates an inode's resolved blocks hold fewer
	// bytes than its declared size.
	ErrIncompleteData = errors.New("incomplete file data")
)
