package graph

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

var (
	// ErrInvalidVizType is returned when a layout names an unknown visualization.
	ErrInvalidVizType = errors.New("invalid viz type")

	// ErrInvalidPath is returned when an edge path holds anything other than
	// SVG path commands and numbers.
	ErrInvalidPath = errors.New("invalid edge path")
)

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteLayout(l, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteLayout writes a Layout as JSON to an io.Writer.
func WriteLayout(l Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// A missing viz_type defaults to timeline; unknown values are rejected, as
// are edge paths that fail [ValidPath].
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}

	if l.VizType == "" {
		l.VizType = VizTypeTimeline
	}
	if !slices.Contains(VizTypes(), l.VizType) {
		return Layout{}, fmt.Errorf("%w: %q", ErrInvalidVizType, l.VizType)
	}
	for _, e := range l.Edges {
		if !ValidPath(e.Path) {
			return Layout{}, fmt.Errorf("%w: edge %d → %d", ErrInvalidPath, e.From, e.To)
		}
	}
	return l, nil
}

// ValidPath reports whether d consists only of SVG path commands, numbers,
// commas and whitespace. The empty path is valid.
func ValidPath(d string) bool {
	for _, r := range d {
		switch {
		case r >= '0' && r <= '9':
		case strings.ContainsRune("MmLlHhVvCcSsQqTtAaZz", r):
		case strings.ContainsRune(".,+-eE \t\n\r", r):
		default:
			return false
		}
	}
	return true
}

// ReadLayout decodes a JSON layout from an io.Reader.
func ReadLayout(r io.Reader) (Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Layout{}, fmt.Errorf("read: %w", err)
	}
	return UnmarshalLayout(data)
}

// WriteLayoutFile writes a Layout to a JSON file.
// The file is created with 0644 permissions.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
