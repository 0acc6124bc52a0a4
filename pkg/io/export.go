package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/patternmap/pkg/pattern"
)

// WriteJSON encodes patterns as a JSON document and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(patterns []pattern.Pattern, w io.Writer) error {
	doc := document{Patterns: patterns}
	if doc.Patterns == nil {
		doc.Patterns = []pattern.Pattern{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes patterns to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(patterns []pattern.Pattern, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(patterns, f)
}
