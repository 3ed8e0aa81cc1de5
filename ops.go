package memfs

import "github.com/blockfs/memfs/host"

// Mkdir creates an empty directory at path. It fails with StatusError if
// the path is invalid, the leaf already exists, the inode table is full,
// or the parent directory's direct-block table is full.
func (fs *FileSystem) Mkdir(path string) Status {
	status := fs.create(path, typeDirectory)
	fs.log.WithField("path", path).WithField("status", status).Debug("memfs: mkdir")
	return status
}

// Mkfile creates an empty regular file at path. Error conditions mirror
// Mkdir.
func (fs *FileSystem) Mkfile(path string) Status {
	status := fs.create(path, typeFile)
	fs.log.WithField("path", path).WithField("status", status).Debug("memfs: mkfile")
	return status
}

func (fs *FileSystem) create(path string, nType nodeType) Status {
	parentIdx, leaf, slot, err := fs.resolveParent(path)
	if err != nil {
		return StatusError
	}
	if err := fs.checkAbsent(parentIdx, leaf); err != nil {
		return StatusError
	}
	if slot < 0 {
		return StatusError
	}
	newIdx, err := fs.allocateInode(nType, leaf, parentIdx)
	if err != nil {
		return StatusError
	}
	if _, err := fs.linkChild(parentIdx, newIdx); err != nil {
		_ = fs.freeInode(newIdx)
		return StatusError
	}
	return StatusOK
}

// checkAbsent returns errAlreadyExists if parentIdx already has a child
// named leaf, and nil otherwise.
func (fs *FileSystem) checkAbsent(parentIdx int, leaf string) error {
	if _, err := fs.lookupChild(parentIdx, leaf); err == nil {
		return errAlreadyExists
	}
	return nil
}

// resolveFile resolves path to an existing regular file's inode index, or
// errNotFound/errNotAFile if it does not name one.
func (fs *FileSystem) resolveFile(path string) (int, error) {
	idx, err := fs.resolve(path)
	if err != nil {
		return -1, err
	}
	if fs.inodes[idx].nType != typeFile {
		return -1, errNotAFile
	}
	return idx, nil
}

// Writef replaces the contents of the regular file at path with data.
// Returns StatusError if path does not resolve to a file, or
// StatusNoSpace if the device cannot hold data.
func (fs *FileSystem) Writef(path string, data []byte) Status {
	idx, err := fs.resolveFile(path)
	if err != nil {
		fs.log.WithField("path", path).Debug("memfs: writef: not found")
		return StatusError
	}
	if err := fs.writeFile(idx, data); err != nil {
		fs.log.WithField("path", path).WithError(err).Debug("memfs: writef: no space")
		return StatusNoSpace
	}
	fs.log.WithField("path", path).WithField("bytes", len(data)).Debug("memfs: writef")
	return StatusOK
}

// Rm removes path and, if it is a directory, everything beneath it,
// restoring every data block and inode it held. Removing the root
// directory is rejected.
func (fs *FileSystem) Rm(path string) Status {
	idx, err := fs.resolve(path)
	if err != nil {
		return StatusError
	}
	if idx == RootInode {
		return StatusError
	}
	parentIdx := fs.inodes[idx].parent
	slot := -1
	for i, childIdx := range fs.inodes[parentIdx].directBlocks {
		if childIdx == idx {
			slot = i
			break
		}
	}
	if err := fs.removeRecursive(idx); err != nil {
		return StatusError
	}
	if slot >= 0 {
		fs.unlinkChild(parentIdx, slot)
	}
	fs.log.WithField("path", path).Debug("memfs: rm")
	return StatusOK
}

// Cp recursively duplicates the file or directory tree at src to dst.
// dst must not already exist. The filesystem is left unchanged if there
// is not enough free space or any other step of the copy fails.
func (fs *FileSystem) Cp(src, dst string) Status {
	srcIdx, err := fs.resolve(src)
	if err != nil {
		return StatusError
	}
	parentIdx, leaf, slot, err := fs.resolveParent(dst)
	if err != nil {
		return StatusError
	}
	if err := fs.checkAbsent(parentIdx, leaf); err != nil {
		return StatusExists
	}
	if slot < 0 {
		return StatusError
	}
	if fs.blocksNeeded(srcIdx) > fs.freeBlocks {
		fs.log.WithField("src", src).WithField("dst", dst).Debug("memfs: cp: insufficient space")
		return StatusError
	}
	if _, err := fs.copyTree(srcIdx, parentIdx, leaf); err != nil {
		fs.log.WithField("src", src).WithField("dst", dst).WithError(err).Debug("memfs: cp: failed, rolled back")
		return StatusError
	}
	fs.log.WithField("src", src).WithField("dst", dst).Debug("memfs: cp")
	return StatusOK
}

// copyTree allocates a new inode named name under parentIdx mirroring
// srcIdx, recursing for directories. Any failure at this level or below
// unlinks and frees exactly what this level allocated before returning
// the error, so a failure anywhere unwinds the whole subtree.
func (fs *FileSystem) copyTree(srcIdx, parentIdx int, name string) (int, error) {
	src := fs.inodes[srcIdx]
	newIdx, err := fs.allocateInode(src.nType, name, parentIdx)
	if err != nil {
		return -1, err
	}
	slot, err := fs.linkChild(parentIdx, newIdx)
	if err != nil {
		_ = fs.removeRecursive(newIdx)
		return -1, err
	}

	switch src.nType {
	case typeFile:
		data := fs.readFile(srcIdx)
		if err := fs.writeFile(newIdx, data); err != nil {
			fs.unlinkChild(parentIdx, slot)
			_ = fs.removeRecursive(newIdx)
			return -1, err
		}
	case typeDirectory:
		for _, childIdx := range src.directBlocks {
			if childIdx == -1 {
				continue
			}
			childName := fs.inodes[childIdx].name
			if _, err := fs.copyTree(childIdx, newIdx, childName); err != nil {
				fs.unlinkChild(parentIdx, slot)
				_ = fs.removeRecursive(newIdx)
				return -1, err
			}
		}
	}
	return newIdx, nil
}

// Import reads hostPath fully into memory and writes it as the contents
// of the existing regular file at internalPath, as Writef would.
func (fs *FileSystem) Import(internalPath, hostPath string) Status {
	idx, err := fs.resolveFile(internalPath)
	if err != nil {
		fs.log.WithField("path", internalPath).Debug("memfs: import: invalid internal path")
		return StatusError
	}
	data, err := host.ReadAll(hostPath)
	if err != nil {
		fs.log.WithField("host", hostPath).WithError(err).Debug("memfs: import: host read failed")
		return StatusError
	}
	if err := fs.writeFile(idx, data); err != nil {
		fs.log.WithField("path", internalPath).WithError(err).Debug("memfs: import: no space")
		return StatusNoSpace
	}
	fs.log.WithField("path", internalPath).WithField("host", hostPath).WithField("bytes", len(data)).Debug("memfs: import")
	return StatusOK
}

// Export assembles the byte content of the regular file at internalPath
// and writes it to hostPath.
func (fs *FileSystem) Export(internalPath, hostPath string) Status {
	idx, err := fs.resolveFile(internalPath)
	if err != nil {
		fs.log.WithField("path", internalPath).Debug("memfs: export: not found")
		return StatusError
	}
	data := fs.readFile(idx)
	if err := host.WriteAll(hostPath, data); err != nil {
		fs.log.WithField("path", internalPath).WithField("host", hostPath).WithError(err).Debug("memfs: export: host write failed")
		return StatusError
	}
	fs.log.WithField("path", internalPath).WithField("host", hostPath).Debug("memfs: export")
	return StatusOK
}
