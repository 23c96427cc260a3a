// Package csvdoc saves and loads CSV files.
//
// Save writes a [dataset.Table] (or a column map via SaveMap) to
// dir/name.csv, creating the directory if needed, and returns the full
// path. Load reads a CSV file back into a Table, treating the first row
// as the header unless configured otherwise.
package csvdoc

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dsrkit/dsrfiles/dataset"
	"github.com/dsrkit/dsrfiles/internal/charset"
)

// Options holds configuration for CSV save and load.
type Options struct {
	delimiter rune
	header    bool
	encoding  string
	crlf      bool
}

// Option configures CSV save and load behavior.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		delimiter: ',',
		header:    true,
		encoding:  "utf-8",
		crlf:      false,
	}
}

// WithDelimiter sets the field delimiter (default comma).
func WithDelimiter(d rune) Option {
	return func(o *Options) { o.delimiter = d }
}

// WithoutHeader omits the header row on save, and on load treats the
// first row as data, naming columns column1, column2, ...
func WithoutHeader() Option {
	return func(o *Options) { o.header = false }
}

// WithEncoding sets the character encoding by IANA name (default utf-8).
func WithEncoding(name string) Option {
	return func(o *Options) { o.encoding = name }
}

// WithCRLF terminates records with \r\n instead of \n on save.
func WithCRLF() Option {
	return func(o *Options) { o.crlf = true }
}

// fullPath ensures dir exists and returns the full .csv path.
func fullPath(dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return filepath.Join(dir, name+".csv"), nil
}

// Save writes the table to dir/name.csv and returns the full path.
func Save(t *dataset.Table, dir, name string, opts ...Option) (string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	full, err := fullPath(dir, name)
	if err != nil {
		return "", err
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("creating csv file: %w", err)
	}

	cw, err := charset.Writer(f, o.encoding)
	if err != nil {
		f.Close()
		return "", err
	}

	w := csv.NewWriter(cw)
	w.Comma = o.delimiter
	w.UseCRLF = o.crlf

	if o.header {
		if err := w.Write(t.Columns()); err != nil {
			f.Close()
			return "", fmt.Errorf("writing header: %w", err)
		}
	}

	record := make([]string, len(t.Columns()))
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		for j, v := range row {
			record[j] = dataset.FormatValue(v)
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return "", fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return "", fmt.Errorf("flushing csv: %w", err)
	}
	if err := cw.Close(); err != nil {
		f.Close()
		return "", fmt.Errorf("flushing encoder: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing csv file: %w", err)
	}

	return full, nil
}

// SaveMap normalizes a column map into a table and saves it.
func SaveMap(m map[string][]any, dir, name string, opts ...Option) (string, error) {
	t, err := dataset.FromMap(m)
	if err != nil {
		return "", err
	}
	return Save(t, dir, name, opts...)
}

// Load reads a CSV file into a table. All cell values are strings.
func Load(path string, opts ...Option) (*dataset.Table, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv file: %w", err)
	}
	defer f.Close()

	cr, err := charset.Reader(f, o.encoding)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(cr)
	r.Comma = o.delimiter

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return dataset.New(), nil
	}

	var columns []string
	start := 0
	if o.header {
		columns = records[0]
		start = 1
	} else {
		columns = make([]string, len(records[0]))
		for i := range columns {
			columns[i] = fmt.Sprintf("column%d", i+1)
		}
	}

	t := dataset.New(columns...)
	for i := start; i < len(records); i++ {
		row := make([]any, len(records[i]))
		for j, v := range records[i] {
			row[j] = v
		}
		if err := t.Append(row...); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	return t, nil
}
