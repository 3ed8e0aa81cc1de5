package memfs

import "testing"

func TestAllocateDataBlockSimple(t *testing.T) {
	fs := New(WithNumBlocks(5))

	idx, err := fs.allocateDataBlock()
	if err != nil {
		t.Fatalf("allocateDataBlock: %v", err)
	}
	if idx != 0 {
		t.Errorf("first allocation = %d, want 0", idx)
	}
	if set, _ := fs.freeList.IsSet(0); !set {
		t.Errorf("block 0 expected marked allocated in the free list")
	}
	for _, b := range fs.dataBlocks[0].data {
		if b != 0 {
			t.Fatalf("newly allocated block not zeroed")
		}
	}
	if fs.freeBlocks != 4 {
		t.Errorf("free_blocks = %d, want 4", fs.freeBlocks)
	}

	idx2, err := fs.allocateDataBlock()
	if err != nil {
		t.Fatalf("allocateDataBlock: %v", err)
	}
	if idx2 != 1 {
		t.Errorf("second allocation = %d, want 1", idx2)
	}
	if fs.freeBlocks != 3 {
		t.Errorf("free_blocks = %d, want 3", fs.freeBlocks)
	}
}

func TestAllocateDataBlockExhausted(t *testing.T) {
	fs := New(WithNumBlocks(2))
	for i := 0; i < 2; i++ {
		if _, err := fs.allocateDataBlock(); err != nil {
			t.Fatalf("allocateDataBlock %d: %v", i, err)
		}
	}
	if _, err := fs.allocateDataBlock(); err != errNoFreeBlock {
		t.Errorf("allocateDataBlock on exhausted device = %v, want errNoFreeBlock", err)
	}
	if fs.freeBlocks != 0 {
		t.Errorf("free_blocks = %d, want 0", fs.freeBlocks)
	}
}

func TestFreeDataBlockRestoresAccounting(t *testing.T) {
	fs := New(WithNumBlocks(5))
	idx, err := fs.allocateDataBlock()
	if err != nil {
		t.Fatalf("allocateDataBlock: %v", err)
	}
	fs.dataBlocks[idx].data[0] = 0x42
	fs.dataBlocks[idx].size = 1
	fs.dataBlocks[idx].parentInode = 1
	fs.dataBlocks[idx].parentBlockNum = 0

	if err := fs.freeDataBlock(idx); err != nil {
		t.Fatalf("freeDataBlock: %v", err)
	}
	if fs.freeBlocks != 5 {
		t.Errorf("free_blocks = %d, want 5", fs.freeBlocks)
	}
	b := fs.dataBlocks[idx]
	if b.size != 0 || b.parentInode != -1 || b.parentBlockNum != -1 {
		t.Errorf("freed block not reset: %+v", b)
	}
	for _, v := range b.data {
		if v != 0 {
			t.Fatalf("freed block not zeroed")
		}
	}
	if set, _ := fs.freeList.IsSet(idx); set {
		t.Errorf("block %d still marked allocated after free", idx)
	}
}

func TestAllocationOrderDeterministic(t *testing.T) {
	fs := New(WithNumBlocks(5))
	idx, _ := fs.allocateDataBlock()
	_ = fs.freeDataBlock(idx)
	next, err := fs.allocateDataBlock()
	if err != nil {
		t.Fatalf("allocateDataBlock: %v", err)
	}
	if next != 0 {
		t.Errorf("re-allocation after immediate free = %d, want lowest index 0", next)
	}
}
