package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Document Serialization API
// =============================================================================

// serialized is the canonical JSON shape of a document: the top-level rows
// of the implicit root cell. Cell and Row marshal directly; the root cell
// itself is not part of the format, so re-importing a document creates a
// fresh root ID without changing any block.
type serialized struct {
	Rows []*Row `json:"rows"`
}

// MarshalDocument converts a document to JSON bytes.
func MarshalDocument(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeDocumentTo(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDocumentFile writes a document to a JSON file.
// The file is created with 0644 permissions.
func WriteDocumentFile(d *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeDocumentTo(d, f)
}

// ReadDocumentFile reads a JSON file and returns the decoded document.
// Returns validation errors for malformed trees (duplicate IDs, cells
// carrying both content and rows).
func ReadDocumentFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadDocument(f)
}

// ReadDocument decodes a JSON document from an io.Reader.
// Use ReadDocumentFile for files or pass bytes.NewReader for in-memory data.
func ReadDocument(r io.Reader) (*Document, error) {
	var data serialized
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return New(data.Rows...)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeDocumentTo(d *Document, w io.Writer) error {
	out := serialized{Rows: d.root.Rows}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
