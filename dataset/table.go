package dataset

import (
	"fmt"
	"sort"
	"strconv"
)

// Table is an ordered collection of named columns with rows of values.
// The zero value is not usable; construct with New, FromMap, or FromRecords.
type Table struct {
	columns []string
	rows    [][]any
}

// New creates an empty Table with the given column names, in order.
func New(columns ...string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{columns: cols}
}

// FromMap builds a Table from a map of column name to column values.
// Columns are ordered lexically so output is deterministic. All columns
// must have the same length.
func FromMap(m map[string][]any) (*Table, error) {
	cols := make([]string, 0, len(m))
	for name := range m {
		cols = append(cols, name)
	}
	sort.Strings(cols)

	t := New(cols...)
	if len(cols) == 0 {
		return t, nil
	}

	n := len(m[cols[0]])
	for _, name := range cols {
		if len(m[name]) != n {
			return nil, fmt.Errorf("column %q has %d values, expected %d", name, len(m[name]), n)
		}
	}

	for i := 0; i < n; i++ {
		row := make([]any, len(cols))
		for j, name := range cols {
			row[j] = m[name][i]
		}
		t.rows = append(t.rows, row)
	}

	return t, nil
}

// FromRecords builds a Table from a list of records. The column set is the
// union of all record keys, ordered lexically. Missing values are nil.
func FromRecords(records []map[string]any) *Table {
	seen := make(map[string]bool)
	var cols []string
	for _, rec := range records {
		for name := range rec {
			if !seen[name] {
				seen[name] = true
				cols = append(cols, name)
			}
		}
	}
	sort.Strings(cols)

	t := New(cols...)
	for _, rec := range records {
		row := make([]any, len(cols))
		for j, name := range cols {
			row[j] = rec[name]
		}
		t.rows = append(t.rows, row)
	}

	return t
}

// Append adds a row. The number of values must match the column count.
func (t *Table) Append(row ...any) error {
	if len(row) != len(t.columns) {
		return fmt.Errorf("row has %d values, table has %d columns", len(row), len(t.columns))
	}
	r := make([]any, len(row))
	copy(r, row)
	t.rows = append(t.rows, r)
	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// Row returns the values of row i. The returned slice is the table's own
// storage; callers must not modify it.
func (t *Table) Row(i int) []any {
	return t.rows[i]
}

// Column returns all values of the named column in row order.
func (t *Table) Column(name string) ([]any, error) {
	idx := t.columnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("no such column: %s", name)
	}
	vals := make([]any, len(t.rows))
	for i, row := range t.rows {
		vals[i] = row[idx]
	}
	return vals, nil
}

// Cell returns the value at row i in the named column.
func (t *Table) Cell(i int, name string) (any, error) {
	if i < 0 || i >= len(t.rows) {
		return nil, fmt.Errorf("row %d out of range (0-%d)", i, len(t.rows)-1)
	}
	idx := t.columnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("no such column: %s", name)
	}
	return t.rows[i][idx], nil
}

// Records returns the rows as a list of column-keyed maps.
func (t *Table) Records() []map[string]any {
	records := make([]map[string]any, len(t.rows))
	for i, row := range t.rows {
		rec := make(map[string]any, len(t.columns))
		for j, name := range t.columns {
			rec[name] = row[j]
		}
		records[i] = rec
	}
	return records
}

// Equal reports whether two tables have the same columns and the same
// cell values. Cells are compared by their formatted representation, so a
// table loaded back from CSV (where every cell is a string) compares equal
// to the table it was saved from.
func (t *Table) Equal(o *Table) bool {
	if o == nil || len(t.columns) != len(o.columns) || len(t.rows) != len(o.rows) {
		return false
	}
	for i, name := range t.columns {
		if o.columns[i] != name {
			return false
		}
	}
	for i := range t.rows {
		for j := range t.rows[i] {
			if FormatValue(t.rows[i][j]) != FormatValue(o.rows[i][j]) {
				return false
			}
		}
	}
	return true
}

func (t *Table) columnIndex(name string) int {
	for i, c := range t.columns {
		if c == name {
			return i
		}
	}
	return -1
}

// FormatValue renders a cell value as text for CSV and similar formats.
// Floats use the shortest decimal form rather than exponent notation,
// and nil renders as the empty string.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(v)
	}
}
