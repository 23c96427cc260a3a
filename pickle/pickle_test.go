package pickle

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	ogórek "github.com/kisielk/og-rek"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	data := map[string]any{
		"model":    []any{1, 2, 3, 4, 5},
		"metadata": map[string]any{"name": "test"},
	}

	path, err := Save(data, dir, "test")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if path != filepath.Join(dir, "test.pickle") {
		t.Errorf("Unexpected path: %s", path)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	m, ok := loaded.(map[any]any)
	if !ok {
		t.Fatalf("Expected dict, got %T", loaded)
	}
	model, ok := m["model"].([]any)
	if !ok {
		t.Fatalf("Expected list for model, got %T", m["model"])
	}
	if len(model) != 5 || model[0] != int64(1) {
		t.Errorf("Unexpected model values: %v", model)
	}
	meta := m["metadata"].(map[any]any)
	if meta["name"] != "test" {
		t.Errorf("Expected name test, got %v", meta["name"])
	}
}

func TestSaveWithCompressionLevels(t *testing.T) {
	dir := t.TempDir()
	data := map[string]any{"payload": make([]any, 100)}

	for _, level := range []int{0, 1, 9} {
		path, err := Save(data, dir, "test", WithCompression(level))
		if err != nil {
			t.Fatalf("Save at level %d returned error: %v", level, err)
		}
		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("Load at level %d returned error: %v", level, err)
		}
		if _, ok := loaded.(map[any]any); !ok {
			t.Errorf("Level %d: expected dict, got %T", level, loaded)
		}
	}
}

func TestUncompressedHasNoGzipMagic(t *testing.T) {
	dir := t.TempDir()

	path, err := Save("plain", dir, "test", WithCompression(0))
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if len(data) >= 2 && data[0] == 0x1F && data[1] == 0x8B {
		t.Error("Expected uncompressed output, found gzip magic")
	}
}

func TestCompressionLevelOutOfRange(t *testing.T) {
	if _, err := Save("x", t.TempDir(), "test", WithCompression(10)); err == nil {
		t.Error("Expected error for level 10, got nil")
	}
	if _, err := Save("x", t.TempDir(), "test", WithCompression(-1)); err == nil {
		t.Error("Expected error for level -1, got nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.pickle")); err == nil {
		t.Error("Expected error loading missing file, got nil")
	}
}

func TestNormalizeStruct(t *testing.T) {
	type sample struct {
		Name   string
		Count  int
		hidden int
	}

	got := normalize(sample{Name: "test", Count: 2, hidden: 1})
	m, ok := got.(map[any]any)
	if !ok {
		t.Fatalf("Expected dict, got %T", got)
	}
	if m["Name"] != "test" || m["Count"] != int64(2) {
		t.Errorf("Unexpected dict: %v", m)
	}
	if _, ok := m["hidden"]; ok {
		t.Error("Expected unexported field to be skipped")
	}
}

func TestNormalizeNil(t *testing.T) {
	if got := normalize(nil); got != (ogórek.None{}) {
		t.Errorf("Expected None, got %v (%T)", got, got)
	}
}

func TestNormalizeTime(t *testing.T) {
	day := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := normalize(day); got != "2023-01-01T00:00:00Z" {
		t.Errorf("Expected RFC3339 string, got %v", got)
	}
}

func TestNormalizeUintOverflow(t *testing.T) {
	if got := normalize(uint64(7)); got != int64(7) {
		t.Errorf("Expected int64 7, got %v (%T)", got, got)
	}
	big := uint64(1) << 63
	if got := normalize(big); got != "9223372036854775808" {
		t.Errorf("Expected string fallback, got %v (%T)", got, got)
	}
}
