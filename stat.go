package memfs

// EntryKind reports whether a directory entry names a file or a
// directory, for the read-only helpers below. These carry no invariants
// of their own; they exist so a front-end has something to list and
// display.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
)

// Entry describes one child of a directory, as returned by Ls.
type Entry struct {
	Name string
	Kind EntryKind
	Size int
}

// Info describes the inode named by a path, as returned by Stat.
type Info struct {
	Name string
	Kind EntryKind
	Size int
}

// Ls lists the children of the directory at path, in direct-block order.
// It returns ok=false if path does not resolve to a directory.
func (fs *FileSystem) Ls(path string) (entries []Entry, ok bool) {
	idx, err := fs.resolve(path)
	if err != nil || fs.inodes[idx].nType != typeDirectory {
		return nil, false
	}
	for _, childIdx := range fs.inodes[idx].directBlocks {
		if childIdx == -1 {
			continue
		}
		c := &fs.inodes[childIdx]
		kind := KindFile
		if c.nType == typeDirectory {
			kind = KindDirectory
		}
		entries = append(entries, Entry{Name: c.name, Kind: kind, Size: c.size})
	}
	return entries, true
}

// Stat describes the file or directory at path. It returns ok=false if
// path does not resolve.
func (fs *FileSystem) Stat(path string) (info Info, ok bool) {
	idx, err := fs.resolve(path)
	if err != nil {
		return Info{}, false
	}
	n := &fs.inodes[idx]
	kind := KindFile
	if n.nType == typeDirectory {
		kind = KindDirectory
	}
	return Info{Name: n.name, Kind: kind, Size: n.size}, true
}
