// Package charset resolves named character encodings for the text-based
// file handlers. Names are IANA charset names ("utf-8", "iso-8859-1",
// "windows-1252", ...). UTF-8 and the empty name pass data through
// untouched.
package charset

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// isUTF8 reports whether name means UTF-8 (the no-op encoding).
func isUTF8(name string) bool {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

// lookup resolves an IANA charset name to an encoding.
func lookup(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}

// Reader wraps r so that reads decode from the named encoding into UTF-8.
func Reader(r io.Reader, name string) (io.Reader, error) {
	if isUTF8(name) {
		return r, nil
	}
	enc, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// Writer wraps w so that UTF-8 writes are encoded into the named encoding.
// When a transformation is applied the returned writer must be closed to
// flush it; for UTF-8 the original writer is returned and Close is a no-op.
func Writer(w io.Writer, name string) (io.WriteCloser, error) {
	if isUTF8(name) {
		return nopCloser{w}, nil
	}
	enc, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return transform.NewWriter(w, enc.NewEncoder()), nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
