// Package memfs implements an in-memory hierarchical filesystem: a
// fixed-size block device, an inode table, and a free-block bitmap backing
// a POSIX-like tree of directories and regular files.
//
// There is no persistence. A FileSystem value lives entirely in process
// memory and is not safe for concurrent mutation; callers serialize their
// own access.
package memfs

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/blockfs/memfs/util/bitmap"
)

// Reference-build constants, sized for the concrete scenarios exercised
// by the test suite.
const (
	DefaultBlockSize            = 1024
	DefaultNumBlocks            = 5
	DefaultNumInodes            = 64
	DefaultNameLen              = 28
	DefaultDirectBlocksPerInode = 12
)

// RootInode is the index of the always-present root directory.
const RootInode = 0

// nodeType tags what an inode currently holds.
type nodeType uint8

const (
	typeFree nodeType = iota
	typeFile
	typeDirectory
)

// Status is the small integer result of a high-level operation. The zero
// value, StatusOK, is success.
type Status int

const (
	StatusOK       Status = 0
	StatusError    Status = -1
	StatusNoSpace  Status = -2
	StatusExists   Status = -2
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusError:
		return "error"
	case StatusNoSpace: // StatusExists shares the value -2
		return "no-space-or-exists"
	default:
		return "unknown"
	}
}

// inode is a single filesystem entity's metadata: a file or a directory.
// directBlocks holds data-block indices for a file, or child-inode indices
// for a directory; unused slots hold sentinel -1.
type inode struct {
	nType        nodeType
	name         string
	size         int
	directBlocks []int
	parent       int
}

func (n *inode) free() bool { return n.nType == typeFree }

// dataBlock is one fixed-size chunk of file storage.
type dataBlock struct {
	data           []byte
	size           int
	parentInode    int
	parentBlockNum int
}

// FileSystem is the full in-memory aggregate: superblock, free list,
// inode table, and data blocks.
type FileSystem struct {
	blockSize            int
	numBlocks            int
	numInodes            int
	nameLen              int
	directBlocksPerInode int

	volumeID    uuid.UUID
	freeBlocks  int
	freeList    *bitmap.Bitmap
	inodeFree   *bitmap.Bitmap
	inodes      []inode
	dataBlocks  []dataBlock

	log logrus.FieldLogger
}

// Option configures a FileSystem at construction time. There are no
// environment variables or configuration files to read; this is the
// idiomatic stand-in.
type Option func(*config)

type config struct {
	blockSize            int
	numBlocks            int
	numInodes            int
	nameLen              int
	directBlocksPerInode int
	log                  logrus.FieldLogger
}

// WithBlockSize sets the byte size of each data block.
func WithBlockSize(n int) Option { return func(c *config) { c.blockSize = n } }

// WithNumBlocks sets the total number of data blocks on the device.
func WithNumBlocks(n int) Option { return func(c *config) { c.numBlocks = n } }

// WithNumInodes sets the size of the inode table.
func WithNumInodes(n int) Option { return func(c *config) { c.numInodes = n } }

// WithNameLen sets the maximum name length, including the implicit
// NUL terminator.
func WithNameLen(n int) Option { return func(c *config) { c.nameLen = n } }

// WithDirectBlocksPerInode sets the width of each inode's direct-block
// table. Must be at least 2.
func WithDirectBlocksPerInode(n int) Option {
	return func(c *config) { c.directBlocksPerInode = n }
}

// WithLogger overrides the logger used for operation tracing. The default
// is logrus.StandardLogger().
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *config) { c.log = log }
}

// New creates a fresh FileSystem with a single root directory at inode 0.
func New(opts ...Option) *FileSystem {
	c := config{
		blockSize:            DefaultBlockSize,
		numBlocks:            DefaultNumBlocks,
		numInodes:            DefaultNumInodes,
		nameLen:              DefaultNameLen,
		directBlocksPerInode: DefaultDirectBlocksPerInode,
		log:                  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.directBlocksPerInode < 2 {
		c.directBlocksPerInode = 2
	}

	fs := &FileSystem{
		blockSize:            c.blockSize,
		numBlocks:            c.numBlocks,
		numInodes:            c.numInodes,
		nameLen:              c.nameLen,
		directBlocksPerInode: c.directBlocksPerInode,
		volumeID:             uuid.New(),
		freeBlocks:           c.numBlocks,
		freeList:             bitmap.New(c.numBlocks),
		inodeFree:            bitmap.New(c.numInodes),
		inodes:               make([]inode, c.numInodes),
		dataBlocks:           make([]dataBlock, c.numBlocks),
		log:                  c.log,
	}
	for i := range fs.dataBlocks {
		fs.dataBlocks[i] = dataBlock{data: make([]byte, fs.blockSize), parentInode: -1, parentBlockNum: -1}
	}
	for i := range fs.inodes {
		fs.inodes[i] = newEmptyInode(fs.directBlocksPerInode)
	}
	fs.inodes[RootInode] = inode{
		nType:        typeDirectory,
		name:         "/",
		directBlocks: newDirectBlockTable(fs.directBlocksPerInode),
		parent:       RootInode,
	}
	if err := fs.inodeFree.Set(RootInode); err != nil {
		panic(err) // RootInode is always in range
	}

	fs.log.WithField("volume_id", fs.volumeID).Debug("memfs: filesystem created")
	return fs
}

// VolumeID returns this filesystem's identity, assigned once at
// construction.
func (fs *FileSystem) VolumeID() uuid.UUID { return fs.volumeID }

// FreeBlocks returns the superblock's authoritative free-block counter.
func (fs *FileSystem) FreeBlocks() int { return fs.freeBlocks }

// NumBlocks returns the total number of data blocks on the device.
func (fs *FileSystem) NumBlocks() int { return fs.numBlocks }

// FreeList reports, for block index i, the free-list convention of
// 1 == free, 0 == allocated. It is a read-only projection over the
// bitmap-backed allocator.
func (fs *FileSystem) FreeList(i int) int {
	set, err := fs.freeList.IsSet(i)
	if err != nil || set {
		return 0
	}
	return 1
}

func newDirectBlockTable(width int) []int {
	t := make([]int, width)
	for i := range t {
		t[i] = -1
	}
	return t
}

func newEmptyInode(directBlocksPerInode int) inode {
	return inode{nType: typeFree, directBlocks: newDirectBlockTable(directBlocksPerInode), parent: -1}
}
