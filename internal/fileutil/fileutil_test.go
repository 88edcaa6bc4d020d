package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "clip.mp4")
	if PathExists(file) {
		t.Fatal("expected false for missing file")
	}
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !PathExists(file) {
		t.Fatal("expected true for existing file")
	}
	if PathExists(dir) {
		t.Fatal("expected false for directory")
	}
}

func TestEnsureDirCreatesParents(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := EnsureDir(target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !DirExists(target) {
		t.Fatal("expected directory to exist")
	}
}
