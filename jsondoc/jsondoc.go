// Package jsondoc saves and loads JSON files.
//
// Save runs every value through [Sanitize] before encoding, so values that
// encoding/json would reject (NaN floats, non-string map keys, arbitrary
// nested structures) serialize without error. Load reads a JSON object
// back into a map[string]any; LoadInto decodes into a caller-provided
// destination.
package jsondoc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsrkit/dsrfiles/internal/charset"
)

// Options holds configuration for JSON save and load.
type Options struct {
	indent   int
	encoding string
}

// Option configures JSON save and load behavior.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		indent:   2,
		encoding: "utf-8",
	}
}

// WithIndent sets the number of spaces per indentation level on save.
// Zero produces compact output.
func WithIndent(n int) Option {
	return func(o *Options) { o.indent = n }
}

// WithEncoding sets the character encoding by IANA name (default utf-8).
func WithEncoding(name string) Option {
	return func(o *Options) { o.encoding = name }
}

// fullPath ensures dir exists and returns the full .json path.
func fullPath(dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return filepath.Join(dir, name+".json"), nil
}

// Save sanitizes v, writes it to dir/name.json, and returns the full path.
func Save(v any, dir, name string, opts ...Option) (string, error) {
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
		return "", fmt.Errorf("creating json file: %w", err)
	}

	cw, err := charset.Writer(f, o.encoding)
	if err != nil {
		f.Close()
		return "", err
	}

	enc := json.NewEncoder(cw)
	if o.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", o.indent))
	}

	if err := enc.Encode(Sanitize(v)); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding json: %w", err)
	}
	if err := cw.Close(); err != nil {
		f.Close()
		return "", fmt.Errorf("flushing encoder: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing json file: %w", err)
	}

	return full, nil
}

// Load reads a JSON object from path into a map.
func Load(path string, opts ...Option) (map[string]any, error) {
	var m map[string]any
	if err := LoadInto(path, &m, opts...); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadInto decodes the JSON file at path into v.
func LoadInto(path string, v any, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening json file: %w", err)
	}
	defer f.Close()

	cr, err := charset.Reader(f, o.encoding)
	if err != nil {
		return err
	}

	if err := json.NewDecoder(cr).Decode(v); err != nil {
		return fmt.Errorf("decoding json: %w", err)
	}
	return nil
}
