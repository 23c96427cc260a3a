package pdfdoc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveString(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	path, err := SaveString("first line\nsecond line\n", dir, "notes", WithTitle("Notes"))
	if err != nil {
		t.Fatalf("SaveString() error: %v", err)
	}
	if want := filepath.Join(dir, "notes.pdf"); path != want {
		t.Errorf("SaveString() path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Error("output does not start with a PDF header")
	}
}

func TestSaveTextManyLines(t *testing.T) {
	// Enough lines to force several pages.
	lines := strings.Repeat("line of text\n", 300)

	path, err := SaveString(lines, t.TempDir(), "long",
		WithTextPageSize(A4, Landscape), WithMargin(36))
	if err != nil {
		t.Fatalf("SaveString() error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestSaveTextEmpty(t *testing.T) {
	path, err := SaveString("", t.TempDir(), "empty")
	if err != nil {
		t.Fatalf("SaveString() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

func TestLoadNotSupported(t *testing.T) {
	err := Load("anything.pdf")
	if !errors.Is(err, ErrNotSupported) {
		t.Fatalf("Load() error = %v, want ErrNotSupported", err)
	}
	if !strings.Contains(err.Error(), "anything.pdf") {
		t.Errorf("error %q does not name the file", err)
	}
}
