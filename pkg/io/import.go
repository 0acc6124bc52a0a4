package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/patternmap/pkg/pattern"
)

// ErrUnsupportedFormat is returned by [ImportFile] for unknown extensions.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Format is a snapshot file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

type document struct {
	Patterns []pattern.Pattern `json:"patterns" toml:"patterns" yaml:"patterns"`
}

// ReadJSON decodes a JSON snapshot from r. Both the document form and a bare
// array are accepted. ReadJSON does not close r.
func ReadJSON(r io.Reader) ([]pattern.Pattern, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var patterns []pattern.Pattern
	if trimmed := strings.TrimSpace(string(data)); strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(data, &patterns); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
	} else {
		var doc document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		patterns = doc.Patterns
	}
	return checked(patterns)
}

// ReadTOML decodes a TOML snapshot from r.
func ReadTOML(r io.Reader) ([]pattern.Pattern, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return checked(doc.Patterns)
}

// ReadYAML decodes a YAML snapshot from r. An empty input yields an empty
// snapshot.
func ReadYAML(r io.Reader) ([]pattern.Pattern, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return checked(doc.Patterns)
}

// Read decodes a snapshot in the given format.
func Read(r io.Reader, f Format) ([]pattern.Pattern, error) {
	switch f {
	case FormatJSON:
		return ReadJSON(r)
	case FormatTOML:
		return ReadTOML(r)
	case FormatYAML:
		return ReadYAML(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

// ImportFile reads the snapshot at path, choosing the decoder by extension.
func ImportFile(path string) ([]pattern.Pattern, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	patterns, err := Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return patterns, nil
}

func checked(patterns []pattern.Pattern) ([]pattern.Pattern, error) {
	if err := pattern.Validate(patterns); err != nil {
		return nil, err
	}
	if patterns == nil {
		patterns = []pattern.Pattern{}
	}
	return patterns, nil
}
