package memfs

// allocateInode finds the first free inode slot (scanning from index 1;
// index 0 is the permanent root), initializes it as the requested node
// type with the given name and parent, and returns its index. name is
// truncated to fit the inode's name field; callers that must reject an
// over-long name instead of truncating it validate before calling
// allocateInode (see the path resolver). Returns errNoFreeInode when the
// table is full.
func (fs *FileSystem) allocateInode(nType nodeType, name string, parent int) (int, error) {
	if len(name) > fs.nameLen-1 {
		name = name[:fs.nameLen-1]
	}
	idx := fs.inodeFree.FirstClear(1)
	if idx < 0 {
		return -1, errNoFreeInode
	}
	if err := fs.inodeFree.Set(idx); err != nil {
		return -1, err
	}
	fs.inodes[idx] = inode{
		nType:        nType,
		name:         name,
		size:         0,
		directBlocks: newDirectBlockTable(fs.directBlocksPerInode),
		parent:       parent,
	}
	return idx, nil
}

// freeInode releases an inode slot back to the free pool.
func (fs *FileSystem) freeInode(idx int) error {
	if idx == RootInode {
		return errIsRoot
	}
	fs.inodes[idx] = newEmptyInode(fs.directBlocksPerInode)
	if err := fs.inodeFree.Clear(idx); err != nil {
		return err
	}
	return nil
}
