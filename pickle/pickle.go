// Package pickle saves and loads gzip-compressed pickle files.
//
// Files written here are plain gzip members containing a pickle stream,
// so Python tooling reads them directly with pickle.load(gzip.open(path))
// or joblib.load. Values are normalized before encoding: structs become
// dicts, integers widen to int64, and times become RFC 3339 strings.
//
// Load returns the decoded object graph as generic Go values (maps,
// slices, strings, int64, float64); it is the caller's job to interpret
// them. Uncompressed pickle files are detected by magic and accepted.
package pickle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	ogórek "github.com/kisielk/og-rek"
	"github.com/klauspost/compress/gzip"
)

// DefaultCompression is the gzip level used when none is configured.
const DefaultCompression = 3

// Options holds configuration for pickle save.
type Options struct {
	compression int
}

// Option configures pickle save behavior.
type Option func(*Options)

func defaultOptions() Options {
	return Options{compression: DefaultCompression}
}

// WithCompression sets the gzip level, 0-9. Level 0 writes the pickle
// stream uncompressed.
func WithCompression(level int) Option {
	return func(o *Options) { o.compression = level }
}

// fullPath ensures dir exists and returns the full .pickle path.
func fullPath(dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return filepath.Join(dir, name+".pickle"), nil
}

// Save normalizes v, encodes it as a pickle stream, and writes it
// gzip-compressed to dir/name.pickle, returning the full path.
func Save(v any, dir, name string, opts ...Option) (string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.compression < 0 || o.compression > 9 {
		return "", fmt.Errorf("compression level %d out of range 0-9", o.compression)
	}

	full, err := fullPath(dir, name)
	if err != nil {
		return "", err
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("creating pickle file: %w", err)
	}

	var w io.Writer = f
	var gz *gzip.Writer
	if o.compression > 0 {
		gz, err = gzip.NewWriterLevel(f, o.compression)
		if err != nil {
			f.Close()
			return "", fmt.Errorf("creating gzip writer: %w", err)
		}
		w = gz
	}

	if err := ogórek.NewEncoder(w).Encode(normalize(v)); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding pickle: %w", err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			f.Close()
			return "", fmt.Errorf("flushing gzip: %w", err)
		}
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing pickle file: %w", err)
	}

	return full, nil
}

// Load reads a pickle file and returns the decoded object graph. The gzip
// layer is detected by magic, so both compressed and uncompressed files
// load transparently.
func Load(path string) (any, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("no pickle file at %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pickle file: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	var r io.Reader = br

	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1F && magic[1] == 0x8B {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("opening gzip layer: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	v, err := ogórek.NewDecoder(r).Decode()
	if err != nil {
		return nil, fmt.Errorf("decoding pickle: %w", err)
	}
	return v, nil
}
