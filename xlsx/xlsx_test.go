package xlsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dsrkit/dsrfiles/dataset"
)

func sampleTable(t *testing.T) *dataset.Table {
	t.Helper()
	tbl, err := dataset.FromMap(map[string][]any{
		"col1": {1, 2, 3},
		"col2": {"a", "b", "c"},
	})
	if err != nil {
		t.Fatalf("FromMap returned error: %v", err)
	}
	return tbl
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	tbl := sampleTable(t)

	path, err := Save(tbl, dir, "test")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if path != filepath.Join(dir, "test.xlsx") {
		t.Errorf("Unexpected path: %s", path)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !tbl.Equal(loaded) {
		t.Errorf("Loaded table differs:\nsaved:  %v\nloaded: %v", tbl.Records(), loaded.Records())
	}
}

func TestSaveSheetsMultiple(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveSheets([]SheetConfig{
		{
			Data:   map[string][]any{"x": {1, 2}},
			Name:   "first",
			Header: true,
		},
		{
			Data:   []map[string]any{{"y": "v1"}, {"y": "v2"}},
			Name:   "second",
			Header: true,
		},
	}, dir, "multi")
	if err != nil {
		t.Fatalf("SaveSheets returned error: %v", err)
	}

	names, err := SheetNames(path)
	if err != nil {
		t.Fatalf("SheetNames returned error: %v", err)
	}
	if len(names) != 2 || names[0] != "first" || names[1] != "second" {
		t.Errorf("Unexpected sheet names: %v", names)
	}

	second, err := Load(path, WithSheet("second"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if second.Len() != 2 {
		t.Errorf("Expected 2 rows in second sheet, got %d", second.Len())
	}
	v, err := second.Cell(0, "y")
	if err != nil {
		t.Fatalf("Cell returned error: %v", err)
	}
	if v != "v1" {
		t.Errorf("Expected v1, got %v", v)
	}
}

func TestLoadBySheetIndex(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveSheets([]SheetConfig{
		{Data: map[string][]any{"a": {1}}, Name: "one", Header: true},
		{Data: map[string][]any{"b": {2}}, Name: "two", Header: true},
	}, dir, "indexed")
	if err != nil {
		t.Fatalf("SaveSheets returned error: %v", err)
	}

	tbl, err := Load(path, WithSheetIndex(1))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	cols := tbl.Columns()
	if len(cols) != 1 || cols[0] != "b" {
		t.Errorf("Expected columns [b], got %v", cols)
	}
}

func TestSaveWithIndexColumn(t *testing.T) {
	dir := t.TempDir()
	tbl := sampleTable(t)

	path, err := Save(tbl, dir, "test", WithIndex())
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	cols := loaded.Columns()
	if len(cols) != 3 {
		t.Fatalf("Expected 3 columns with index, got %v", cols)
	}
	v, err := loaded.Cell(1, cols[0])
	if err != nil {
		t.Fatalf("Cell returned error: %v", err)
	}
	if v != "1" {
		t.Errorf("Expected row number 1, got %v", v)
	}
}

func TestSaveWithoutHeader(t *testing.T) {
	dir := t.TempDir()
	tbl := sampleTable(t)

	path, err := Save(tbl, dir, "test", WithoutHeader())
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(path, WithoutHeader())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Len() != 3 {
		t.Errorf("Expected 3 rows, got %d", loaded.Len())
	}
	cols := loaded.Columns()
	if cols[0] != "column1" {
		t.Errorf("Expected generated column names, got %v", cols)
	}
}

func TestSaveSheetsRejectsBadData(t *testing.T) {
	_, err := SaveSheets([]SheetConfig{
		{Data: 42, Name: "bad", Header: true},
	}, t.TempDir(), "bad")
	if err == nil {
		t.Error("Expected error for unconvertible data, got nil")
	}
}

func TestSaveSheetsRejectsEmpty(t *testing.T) {
	if _, err := SaveSheets(nil, t.TempDir(), "none"); err == nil {
		t.Error("Expected error for no sheets, got nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.xlsx")); err == nil {
		t.Error("Expected error loading missing file, got nil")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	path, err := Save(sampleTable(t), dir, "test")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Saved file missing: %v", err)
	}
}
