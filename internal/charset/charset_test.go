package charset

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestUTF8Passthrough(t *testing.T) {
	r, err := Reader(strings.NewReader("héllo"), "utf-8")
	if err != nil {
		t.Fatalf("Reader returned error: %v", err)
	}
	data, _ := io.ReadAll(r)
	if string(data) != "héllo" {
		t.Errorf("Expected passthrough, got %q", data)
	}

	var buf bytes.Buffer
	w, err := Writer(&buf, "")
	if err != nil {
		t.Fatalf("Writer returned error: %v", err)
	}
	w.Write([]byte("héllo"))
	if err := w.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if buf.String() != "héllo" {
		t.Errorf("Expected passthrough, got %q", buf.String())
	}
}

func TestLatin1RoundTrip(t *testing.T) {
	const text = "café"

	var buf bytes.Buffer
	w, err := Writer(&buf, "iso-8859-1")
	if err != nil {
		t.Fatalf("Writer returned error: %v", err)
	}
	if _, err := w.Write([]byte(text)); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	// Latin-1 encodes é as a single byte.
	if buf.Len() != 4 {
		t.Errorf("Expected 4 encoded bytes, got %d", buf.Len())
	}

	r, err := Reader(bytes.NewReader(buf.Bytes()), "iso-8859-1")
	if err != nil {
		t.Fatalf("Reader returned error: %v", err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if string(decoded) != text {
		t.Errorf("Round trip produced %q, want %q", decoded, text)
	}
}

func TestUnknownEncoding(t *testing.T) {
	if _, err := Reader(strings.NewReader(""), "no-such-charset"); err == nil {
		t.Error("Expected error for unknown encoding, got nil")
	}
	if _, err := Writer(io.Discard, "no-such-charset"); err == nil {
		t.Error("Expected error for unknown encoding, got nil")
	}
}
