package memfs

import "testing"

func TestLinkChildFirstFreeSlot(t *testing.T) {
	fs := New(WithDirectBlocksPerInode(3))
	a, _ := fs.allocateInode(typeFile, "a", RootInode)
	slot, err := fs.linkChild(RootInode, a)
	if err != nil {
		t.Fatalf("linkChild: %v", err)
	}
	if slot != 0 {
		t.Errorf("slot = %d, want 0", slot)
	}
	if fs.inodes[RootInode].directBlocks[0] != a {
		t.Errorf("root directBlocks[0] = %d, want %d", fs.inodes[RootInode].directBlocks[0], a)
	}
}

func TestLinkChildFull(t *testing.T) {
	fs := New(WithDirectBlocksPerInode(2))
	a, _ := fs.allocateInode(typeFile, "a", RootInode)
	b, _ := fs.allocateInode(typeFile, "b", RootInode)
	c, _ := fs.allocateInode(typeFile, "c", RootInode)
	for _, child := range []int{a, b} {
		if _, err := fs.linkChild(RootInode, child); err != nil {
			t.Fatalf("linkChild: %v", err)
		}
	}
	if _, err := fs.linkChild(RootInode, c); err != errDirectoryFull {
		t.Errorf("linkChild on full directory = %v, want errDirectoryFull", err)
	}
}

func TestUnlinkChild(t *testing.T) {
	fs := New()
	a, _ := fs.allocateInode(typeFile, "a", RootInode)
	slot, _ := fs.linkChild(RootInode, a)
	fs.unlinkChild(RootInode, slot)
	if fs.inodes[RootInode].directBlocks[slot] != -1 {
		t.Errorf("slot %d not cleared after unlinkChild", slot)
	}
	if fs.inodes[a].nType != typeFile {
		t.Errorf("unlinkChild must not free the child inode")
	}
}
