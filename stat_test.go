package memfs

import "testing"

func TestLsListsChildrenInDirectBlockOrder(t *testing.T) {
	fs := New()
	fs.Mkdir("/d")
	fs.Mkfile("/d/b")
	fs.Mkdir("/d/a")
	fs.Writef("/d/b", []byte("xyz"))

	entries, ok := fs.Ls("/d")
	if !ok {
		t.Fatal("Ls(/d) returned ok=false")
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Name != "b" || entries[0].Kind != KindFile || entries[0].Size != 3 {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Name != "a" || entries[1].Kind != KindDirectory {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}

func TestLsOnFileFails(t *testing.T) {
	fs := New()
	fs.Mkfile("/f")
	if _, ok := fs.Ls("/f"); ok {
		t.Error("Ls on a regular file should report ok=false")
	}
}

func TestLsMissingPath(t *testing.T) {
	fs := New()
	if _, ok := fs.Ls("/nope"); ok {
		t.Error("Ls on a missing path should report ok=false")
	}
}

func TestStatFileAndDirectory(t *testing.T) {
	fs := New()
	fs.Mkdir("/d")
	fs.Mkfile("/d/f")
	fs.Writef("/d/f", []byte("hello"))

	info, ok := fs.Stat("/d/f")
	if !ok {
		t.Fatal("Stat(/d/f) returned ok=false")
	}
	if info.Name != "f" || info.Kind != KindFile || info.Size != 5 {
		t.Errorf("Stat(/d/f) = %+v", info)
	}

	info, ok = fs.Stat("/d")
	if !ok {
		t.Fatal("Stat(/d) returned ok=false")
	}
	if info.Name != "d" || info.Kind != KindDirectory {
		t.Errorf("Stat(/d) = %+v", info)
	}
}

func TestStatMissingPath(t *testing.T) {
	fs := New()
	if _, ok := fs.Stat("/nope"); ok {
		t.Error("Stat on a missing path should report ok=false")
	}
}
