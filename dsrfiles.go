// Package dsrfiles saves and loads the file formats that turn up around
// data-science work: CSV, JSON, pickle, Excel workbooks, and PDF.
//
// Every Save function creates the target directory if needed, writes
// dir/name with the format's extension, and returns the full path:
//
//	t := dataset.New("city", "population")
//	t.Append("Oslo", 709037)
//
//	path, err := dsrfiles.SaveCSV(t, "out", "cities")
//	if err != nil {
//	    // handle error
//	}
//
// Each format also has its own package (csvdoc, jsondoc, pickle, xlsx,
// pdfdoc) with more options; the functions here cover the common cases.
// Report-style PDFs with a table of contents are built with the pdfdoc
// package directly.
package dsrfiles

import (
	"github.com/dsrkit/dsrfiles/csvdoc"
	"github.com/dsrkit/dsrfiles/dataset"
	"github.com/dsrkit/dsrfiles/format"
	"github.com/dsrkit/dsrfiles/jsondoc"
	"github.com/dsrkit/dsrfiles/pdfdoc"
	"github.com/dsrkit/dsrfiles/pickle"
	"github.com/dsrkit/dsrfiles/xlsx"
)

// SaveCSV writes the table to dir/name.csv and returns the full path.
func SaveCSV(t *dataset.Table, dir, name string, opts ...csvdoc.Option) (string, error) {
	return csvdoc.Save(t, dir, name, opts...)
}

// LoadCSV reads a CSV file into a table. The first row is taken as the
// header unless csvdoc.WithoutHeader is given.
func LoadCSV(path string, opts ...csvdoc.Option) (*dataset.Table, error) {
	return csvdoc.Load(path, opts...)
}

// SaveJSON writes v to dir/name.json and returns the full path. Values
// JSON cannot represent, like NaN or time.Time map keys, are converted
// to safe equivalents first; see jsondoc.Sanitize.
func SaveJSON(v any, dir, name string, opts ...jsondoc.Option) (string, error) {
	return jsondoc.Save(v, dir, name, opts...)
}

// LoadJSON reads a JSON object file into a map.
func LoadJSON(path string, opts ...jsondoc.Option) (map[string]any, error) {
	return jsondoc.Load(path, opts...)
}

// SavePickle writes v to dir/name.pickle in Python pickle format,
// gzip-compressed by default, and returns the full path.
func SavePickle(v any, dir, name string, opts ...pickle.Option) (string, error) {
	return pickle.Save(v, dir, name, opts...)
}

// LoadPickle reads a pickle file, compressed or not, back into Go values.
func LoadPickle(path string) (any, error) {
	return pickle.Load(path)
}

// SaveExcel writes the table to dir/name.xlsx and returns the full path.
func SaveExcel(t *dataset.Table, dir, name string, opts ...xlsx.Option) (string, error) {
	return xlsx.Save(t, dir, name, opts...)
}

// LoadExcel reads a worksheet into a table. Options select the sheet by
// name or index; the first sheet is the default.
func LoadExcel(path string, opts ...xlsx.Option) (*dataset.Table, error) {
	return xlsx.Load(path, opts...)
}

// SaveTextPDF writes s to dir/name.pdf as plain monospaced text and
// returns the full path.
func SaveTextPDF(s, dir, name string, opts ...pdfdoc.TextOption) (string, error) {
	return pdfdoc.SaveString(s, dir, name, opts...)
}

// LoadPDF always fails with pdfdoc.ErrNotSupported. PDFs are written,
// not read back.
func LoadPDF(path string) error {
	return pdfdoc.Load(path)
}

// Detect guesses a file's format from its extension.
func Detect(filename string) format.Type {
	return format.Detect(filename)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	path := dsrfiles.Must(dsrfiles.SaveCSV(t, "out", "cities"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Must2 is like Must for functions returning two values and an error.
// It panics if the error is non-nil and returns both values otherwise.
//
// Example:
//
//	tbl, names := dsrfiles.Must2(loadWorkbook("runs.xlsx"))
func Must2[T1, T2 any](a T1, b T2, err error) (T1, T2) {
	if err != nil {
		panic(err)
	}
	return a, b
}
