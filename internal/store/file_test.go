package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "blobs"))
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	ctx := context.Background()

	if _, ok, err := fs.Get(ctx, "state"); err != nil || ok {
		t.Fatalf("get missing: ok=%v err=%v", ok, err)
	}

	if err := fs.Set(ctx, "state", "hello"); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, ok, err := fs.Get(ctx, "state")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if val != "hello" {
		t.Errorf("value = %q, want %q", val, "hello")
	}

	if _, err := os.Stat(filepath.Join(fs.Dir, "state.json.tmp")); !os.IsNotExist(err) {
		t.Error("temp file should not survive a successful set")
	}

	if err := fs.Remove(ctx, "state"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := fs.Remove(ctx, "state"); err != nil {
		t.Fatalf("remove missing: %v", err)
	}
}

func TestFileStoreRejectsPathKeys(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	for _, key := range []string{"", "../escape", `a\b`, ".."} {
		if err := fs.Set(context.Background(), key, "x"); err == nil {
			t.Errorf("Set(%q) should fail", key)
		}
	}
}
