// Package xlsx saves and loads Excel (.xlsx) workbooks.
//
// Save writes a single-sheet workbook from a [dataset.Table]; SaveSheets
// writes one sheet per [SheetConfig], each normalizing its data (Table,
// column map, or record list) into a table first. Load reads a sheet,
// selected by name or index, back into a Table of string cells.
package xlsx

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/dsrkit/dsrfiles/dataset"
)

// SheetConfig describes an individual sheet in a workbook.
type SheetConfig struct {
	// Data is the sheet content: *dataset.Table, map[string][]any, or
	// []map[string]any.
	Data any
	// Name is the sheet name. Empty names become Sheet1, Sheet2, ...
	Name string
	// Index adds a leading column of 0-based row numbers.
	Index bool
	// Header writes the column names as the first row.
	Header bool
}

// Options holds configuration for workbook save and load.
type Options struct {
	sheetName  string
	sheetIndex int
	header     bool
	index      bool
}

// Option configures workbook save and load behavior.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		sheetName:  "",
		sheetIndex: 0,
		header:     true,
		index:      false,
	}
}

// WithSheet selects a sheet by name (load) or names the sheet (save).
func WithSheet(name string) Option {
	return func(o *Options) { o.sheetName = name }
}

// WithSheetIndex selects a sheet by 0-based position on load.
func WithSheetIndex(i int) Option {
	return func(o *Options) { o.sheetIndex = i }
}

// WithoutHeader omits the header row on save, and on load treats the
// first row as data, naming columns column1, column2, ...
func WithoutHeader() Option {
	return func(o *Options) { o.header = false }
}

// WithIndex adds a leading column of 0-based row numbers on save.
func WithIndex() Option {
	return func(o *Options) { o.index = true }
}

// fullPath ensures dir exists and returns the full .xlsx path.
func fullPath(dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return filepath.Join(dir, name+".xlsx"), nil
}

// normalizeData converts supported sheet inputs into a table.
func normalizeData(data any) (*dataset.Table, error) {
	switch x := data.(type) {
	case *dataset.Table:
		return x, nil
	case map[string][]any:
		return dataset.FromMap(x)
	case []map[string]any:
		return dataset.FromRecords(x), nil
	default:
		return nil, fmt.Errorf("cannot convert %T to a table", data)
	}
}

// Save writes the table to a single-sheet workbook at dir/name.xlsx and
// returns the full path.
func Save(t *dataset.Table, dir, name string, opts ...Option) (string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return SaveSheets([]SheetConfig{{
		Data:   t,
		Name:   o.sheetName,
		Index:  o.index,
		Header: o.header,
	}}, dir, name)
}

// SaveSheets writes a multi-sheet workbook, one sheet per config.
func SaveSheets(sheets []SheetConfig, dir, name string) (string, error) {
	if len(sheets) == 0 {
		return "", fmt.Errorf("no sheets to save")
	}

	full, err := fullPath(dir, name)
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, cfg := range sheets {
		sheetName := cfg.Name
		if sheetName == "" {
			sheetName = fmt.Sprintf("Sheet%d", i+1)
		}

		if i == 0 {
			// The new workbook starts with one sheet; rename it.
			if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
				return "", fmt.Errorf("naming sheet %q: %w", sheetName, err)
			}
		} else {
			if _, err := f.NewSheet(sheetName); err != nil {
				return "", fmt.Errorf("adding sheet %q: %w", sheetName, err)
			}
		}

		t, err := normalizeData(cfg.Data)
		if err != nil {
			return "", fmt.Errorf("sheet %q: %w", sheetName, err)
		}

		if err := writeSheet(f, sheetName, t, cfg); err != nil {
			return "", err
		}
	}

	if err := f.SaveAs(full); err != nil {
		return "", fmt.Errorf("saving workbook: %w", err)
	}

	return full, nil
}

// writeSheet fills one worksheet from a table.
func writeSheet(f *excelize.File, sheetName string, t *dataset.Table, cfg SheetConfig) error {
	rowNum := 1

	if cfg.Header {
		header := make([]any, 0, len(t.Columns())+1)
		if cfg.Index {
			header = append(header, "")
		}
		for _, c := range t.Columns() {
			header = append(header, c)
		}
		if err := setRow(f, sheetName, rowNum, header); err != nil {
			return err
		}
		rowNum++
	}

	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		vals := make([]any, 0, len(row)+1)
		if cfg.Index {
			vals = append(vals, i)
		}
		vals = append(vals, row...)
		if err := setRow(f, sheetName, rowNum, vals); err != nil {
			return err
		}
		rowNum++
	}

	return nil
}

func setRow(f *excelize.File, sheetName string, rowNum int, vals []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("row %d: %w", rowNum, err)
	}
	if err := f.SetSheetRow(sheetName, cell, &vals); err != nil {
		return fmt.Errorf("writing row %d of %q: %w", rowNum, sheetName, err)
	}
	return nil
}

// Load reads a sheet from a workbook into a table. All cell values are
// strings. The first sheet is read unless WithSheet or WithSheetIndex
// selects another.
func Load(path string, opts ...Option) (*dataset.Table, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheetName := o.sheetName
	if sheetName == "" {
		sheetName = f.GetSheetName(o.sheetIndex)
		if sheetName == "" {
			return nil, fmt.Errorf("sheet index %d out of range", o.sheetIndex)
		}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return dataset.New(), nil
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	var columns []string
	start := 0
	if o.header {
		columns = padRow(rows[0], width)
		start = 1
	} else {
		columns = make([]string, width)
		for i := range columns {
			columns[i] = fmt.Sprintf("column%d", i+1)
		}
	}

	t := dataset.New(columns...)
	for i := start; i < len(rows); i++ {
		padded := padRow(rows[i], width)
		row := make([]any, width)
		for j, v := range padded {
			row[j] = v
		}
		if err := t.Append(row...); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	return t, nil
}

// padRow right-pads a row with empty strings; excelize trims trailing
// empty cells.
func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row[:width]
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

// SheetNames returns the names of all sheets in the workbook at path.
func SheetNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}
