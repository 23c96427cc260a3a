// Package format provides file format detection for the dsrfiles library.
package format

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
)

// Type represents a supported file format.
type Type int

const (
	// Unknown indicates an unrecognized format.
	Unknown Type = iota
	// CSV indicates comma-separated values.
	CSV
	// JSON indicates a JSON document.
	JSON
	// Pickle indicates a serialized object graph (.pickle/.pkl/.joblib).
	Pickle
	// XLSX indicates a Microsoft Excel (.xlsx) workbook.
	XLSX
	// PDF indicates a PDF document.
	PDF
)

// String returns the string representation of the type.
func (t Type) String() string {
	switch t {
	case CSV:
		return "CSV"
	case JSON:
		return "JSON"
	case Pickle:
		return "Pickle"
	case XLSX:
		return "XLSX"
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the type.
func (t Type) Extension() string {
	switch t {
	case CSV:
		return ".csv"
	case JSON:
		return ".json"
	case Pickle:
		return ".pickle"
	case XLSX:
		return ".xlsx"
	case PDF:
		return ".pdf"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Type {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return CSV
	case ".json":
		return JSON
	case ".pickle", ".pkl", ".joblib":
		return Pickle
	case ".xlsx":
		return XLSX
	case ".pdf":
		return PDF
	default:
		return Unknown
	}
}

// DetectFromMagic checks file magic bytes to determine format.
// This provides more reliable detection than extension-based detection.
// Returns Unknown if the format cannot be determined from magic bytes alone.
func DetectFromMagic(data []byte) Type {
	if len(data) < 4 {
		return Unknown
	}

	// PDF magic: %PDF
	if data[0] == '%' && data[1] == 'P' && data[2] == 'D' && data[3] == 'F' {
		return PDF
	}

	// gzip magic: pickle files are written gzip-compressed
	if data[0] == 0x1F && data[1] == 0x8B {
		return Pickle
	}

	// ZIP magic (XLSX is a ZIP archive): PK\x03\x04
	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		// Could be XLSX or another ZIP-based format.
		// Return Unknown here - caller should use DetectFromReader for ZIP files.
		return Unknown
	}

	if detectJSONMagic(data) {
		return JSON
	}

	return Unknown
}

// detectJSONMagic checks if the data looks like a JSON document.
func detectJSONMagic(data []byte) bool {
	// Trim leading whitespace
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) {
		return false
	}

	return data[start] == '{' || data[start] == '['
}

// DetectFromReader inspects the content to determine format.
// This is more reliable than extension-based detection and can
// distinguish XLSX from other ZIP-based formats.
func DetectFromReader(r io.ReaderAt, size int64) (Type, error) {
	magic := make([]byte, 512)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if len(magic) >= 4 && magic[0] == '%' && magic[1] == 'P' && magic[2] == 'D' && magic[3] == 'F' {
		return PDF, nil
	}

	if len(magic) >= 2 && magic[0] == 0x1F && magic[1] == 0x8B {
		return Pickle, nil
	}

	// ZIP-based format - check contents to see if it is a workbook
	if len(magic) >= 4 && magic[0] == 0x50 && magic[1] == 0x4B && magic[2] == 0x03 && magic[3] == 0x04 {
		return detectZIPFormat(r, size)
	}

	if detectJSONMagic(magic) {
		return JSON, nil
	}

	return Unknown, nil
}

// detectZIPFormat inspects a ZIP archive to determine if it's an XLSX workbook.
func detectZIPFormat(r io.ReaderAt, size int64) (Type, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "xl/") {
			return XLSX, nil
		}
	}

	return Unknown, nil
}
