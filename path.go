package memfs

import "strings"

// splitPath validates and tokenizes an absolute path. Valid paths begin
// with "/" and are composed of non-empty components separated by "/";
// trailing slashes, empty components (including the root path "/" on its
// own, which names nothing to create or resolve), and names over the
// configured length are all rejected.
func (fs *FileSystem) splitPath(path string) ([]string, error) {
	if len(path) == 0 || path[0] != '/' {
		return nil, errInvalidPath
	}
	if path == "/" {
		return nil, errInvalidPath
	}
	parts := strings.Split(path[1:], "/")
	for _, p := range parts {
		if p == "" {
			return nil, errInvalidPath
		}
		if len(p) > fs.nameLen-1 {
			return nil, errNameTooLong
		}
	}
	return parts, nil
}

// resolve walks an absolute path to an existing inode, descending through
// directories and comparing child names byte-exactly. It fails if any
// component is missing or if a non-directory is encountered mid-path.
func (fs *FileSystem) resolve(path string) (int, error) {
	parts, err := fs.splitPath(path)
	if err != nil {
		return -1, err
	}
	cur := RootInode
	for _, name := range parts {
		child, err := fs.lookupChild(cur, name)
		if err != nil {
			return -1, err
		}
		cur = child
	}
	return cur, nil
}

// resolveParent splits off the last path component and resolves the
// prefix to an existing directory inode, returning the parent inode
// index, the leaf name, and the slot in the parent's direct-block table
// where the leaf would attach (-1 if the parent is full). It does not
// check whether the leaf already exists; callers do that with
// lookupChild.
func (fs *FileSystem) resolveParent(path string) (parent int, leaf string, slot int, err error) {
	parts, err := fs.splitPath(path)
	if err != nil {
		return -1, "", -1, err
	}
	cur := RootInode
	for _, name := range parts[:len(parts)-1] {
		child, err := fs.lookupChild(cur, name)
		if err != nil {
			return -1, "", -1, err
		}
		cur = child
	}
	if fs.inodes[cur].nType != typeDirectory {
		return -1, "", -1, errNotADirectory
	}
	leaf = parts[len(parts)-1]
	slot = fs.firstFreeDirectSlot(cur)
	return cur, leaf, slot, nil
}

// lookupChild walks one directory's direct-block table in order looking
// for a child named name. dirIdx must name a directory.
func (fs *FileSystem) lookupChild(dirIdx int, name string) (int, error) {
	dir := &fs.inodes[dirIdx]
	if dir.nType != typeDirectory {
		return -1, errNotADirectory
	}
	for _, childIdx := range dir.directBlocks {
		if childIdx == -1 {
			continue
		}
		if fs.inodes[childIdx].name == name {
			return childIdx, nil
		}
	}
	return -1, errNotFound
}

// firstFreeDirectSlot returns the first -1 entry in dirIdx's direct-block
// table, or -1 if it is full.
func (fs *FileSystem) firstFreeDirectSlot(dirIdx int) int {
	for i, childIdx := range fs.inodes[dirIdx].directBlocks {
		if childIdx == -1 {
			return i
		}
	}
	return -1
}
