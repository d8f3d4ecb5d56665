package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "probe.ttf")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "existing file", path: file, want: true},
		{name: "directory is not a file", path: dir, want: false},
		{name: "missing path", path: filepath.Join(dir, "missing"), want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	path, cleanup, err := WriteTempFile("# Test\n", "md")
	if err != nil {
		t.Fatalf("WriteTempFile: %v", err)
	}
	defer cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(data) != "# Test\n" {
		t.Errorf("content = %q", data)
	}

	cleanup()
	if FileExists(path) {
		t.Errorf("cleanup left the file behind")
	}
}

func TestWriteTempFileRejectsBadExtension(t *testing.T) {
	t.Parallel()

	if _, _, err := WriteTempFile("x", ""); !errors.Is(err, ErrExtensionEmpty) {
		t.Errorf("empty extension: err = %v", err)
	}
	if _, _, err := WriteTempFile("x", "a/b"); !errors.Is(err, ErrExtensionPathTraversal) {
		t.Errorf("path traversal: err = %v", err)
	}
}
