package memfs

import "errors"

// Sentinel errors used internally between the allocator, resolver, and
// directory layers. High-level operations (ops.go) translate these into
// the public Status codes; callers of the low-level API may match them
// with errors.Is.
var (
	errNoFreeBlock    = errors.New("memfs: no free data block")
	errNoFreeInode    = errors.New("memfs: no free inode")
	errNotFound       = errors.New("memfs: no such file or directory")
	errNotADirectory  = errors.New("memfs: not a directory")
	errNotAFile       = errors.New("memfs: not a regular file")
	errDirectoryFull  = errors.New("memfs: directory's direct-block table is full")
	errNameTooLong    = errors.New("memfs: name exceeds maximum length")
	errInvalidPath    = errors.New("memfs: invalid path")
	errAlreadyExists  = errors.New("memfs: already exists")
	errIsRoot         = errors.New("memfs: cannot remove root")
	errTooManyBlocks  = errors.New("memfs: write exceeds direct-block table width")
)
