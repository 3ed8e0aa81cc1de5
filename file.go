package memfs

// readFile concatenates, in direct-block order, the first size bytes of
// each data block referenced by inode idx. Gaps (-1 entries) are skipped
// rather than treated as corruption, tolerating a file mid-truncation.
func (fs *FileSystem) readFile(idx int) []byte {
	n := &fs.inodes[idx]
	out := make([]byte, 0, n.size)
	for _, blockIdx := range n.directBlocks {
		if blockIdx == -1 {
			continue
		}
		b := &fs.dataBlocks[blockIdx]
		out = append(out, b.data[:b.size]...)
	}
	return out
}

// writeFile truncates inode idx and rewrites its content from data,
// chunked into blockSize-sized data blocks. The operation is all-or-
// nothing: if the device runs out of blocks, or data needs more chunks
// than the inode's direct-block table has room for, every block
// allocated during this call is released and the inode is left empty.
func (fs *FileSystem) writeFile(idx int, data []byte) error {
	fs.truncateFile(idx)

	n := &fs.inodes[idx]
	numChunks := (len(data) + fs.blockSize - 1) / fs.blockSize
	if numChunks > len(n.directBlocks) {
		return errTooManyBlocks
	}

	allocated := make([]int, 0, numChunks)
	rollback := func() {
		for _, b := range allocated {
			_ = fs.freeDataBlock(b)
		}
		n.directBlocks = newDirectBlockTable(fs.directBlocksPerInode)
		n.size = 0
	}

	offset := 0
	for i := 0; i < numChunks; i++ {
		blockIdx, err := fs.allocateDataBlock()
		if err != nil {
			rollback()
			return err
		}
		allocated = append(allocated, blockIdx)

		end := offset + fs.blockSize
		if end > len(data) {
			end = len(data)
		}
		chunk := data[offset:end]

		b := &fs.dataBlocks[blockIdx]
		copy(b.data, chunk)
		b.size = len(chunk)
		b.parentInode = idx
		b.parentBlockNum = i

		n.directBlocks[i] = blockIdx
		offset = end
	}
	n.size = len(data)
	return nil
}

// truncateFile frees every data block currently attached to inode idx and
// resets its direct-block table and size to empty.
func (fs *FileSystem) truncateFile(idx int) {
	n := &fs.inodes[idx]
	for i, blockIdx := range n.directBlocks {
		if blockIdx == -1 {
			continue
		}
		_ = fs.freeDataBlock(blockIdx)
		n.directBlocks[i] = -1
	}
	n.size = 0
}

// removeRecursive frees all storage owned by inode idx: for a file, its
// data blocks; for a directory, each child (recursively) before the
// directory's own inode. Root is never freed.
func (fs *FileSystem) removeRecursive(idx int) error {
	if idx == RootInode {
		return errIsRoot
	}
	n := &fs.inodes[idx]
	switch n.nType {
	case typeFile:
		fs.truncateFile(idx)
	case typeDirectory:
		for i, childIdx := range n.directBlocks {
			if childIdx == -1 {
				continue
			}
			if err := fs.removeRecursive(childIdx); err != nil {
				return err
			}
			n.directBlocks[i] = -1
		}
	}
	return fs.freeInode(idx)
}

// blocksNeeded returns how many data blocks removeRecursive/cp would have
// to touch to hold the full subtree rooted at idx: its own data blocks
// (files) plus every descendant's, recursively.
func (fs *FileSystem) blocksNeeded(idx int) int {
	n := &fs.inodes[idx]
	switch n.nType {
	case typeFile:
		count := 0
		for _, blockIdx := range n.directBlocks {
			if blockIdx != -1 {
				count++
			}
		}
		return count
	case typeDirectory:
		total := 0
		for _, childIdx := range n.directBlocks {
			if childIdx != -1 {
				total += fs.blocksNeeded(childIdx)
			}
		}
		return total
	default:
		return 0
	}
}
