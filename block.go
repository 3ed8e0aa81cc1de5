package memfs

// allocateDataBlock scans the free list from index 0 and claims the first
// free block: the slot is marked allocated, the buffer is zeroed, size is
// reset, and the superblock's free-block counter is decremented. The
// caller assigns parentInode/parentBlockNum afterward. Returns
// errNoFreeBlock when the device is full.
func (fs *FileSystem) allocateDataBlock() (int, error) {
	idx := fs.freeList.FirstClear(0)
	if idx < 0 {
		return -1, errNoFreeBlock
	}
	if err := fs.freeList.Set(idx); err != nil {
		return -1, err
	}
	b := &fs.dataBlocks[idx]
	for i := range b.data {
		b.data[i] = 0
	}
	b.size = 0
	b.parentInode = -1
	b.parentBlockNum = -1
	fs.freeBlocks--
	return idx, nil
}

// freeDataBlock releases a data block: the buffer is zeroed, size and parent
// fields are reset to sentinel, the slot is marked free, and the
// superblock's counter is incremented. Calling freeDataBlock on an
// already-free block is a caller error and is not guarded against.
func (fs *FileSystem) freeDataBlock(idx int) error {
	b := &fs.dataBlocks[idx]
	for i := range b.data {
		b.data[i] = 0
	}
	b.size = 0
	b.parentInode = -1
	b.parentBlockNum = -1
	if err := fs.freeList.Clear(idx); err != nil {
		return err
	}
	fs.freeBlocks++
	return nil
}
