// Package source defines where pattern snapshots come from.
//
// A [Source] loads the full pattern list in one call. The layout engine only
// ever sees the returned slice, so a source can be a local file, a database
// collection or an inline request body:
//
//	src := source.File("catalog/patterns.yaml")
//	patterns, err := src.Load(ctx)
//
// Database-backed sources live in subpackages (see [mongo]) so that importing
// this package never pulls in a driver.
//
// [mongo]: github.com/matzehuels/patternmap/pkg/source/mongo
package source

import (
	"context"
	stderrors "errors"
	"io/fs"

	"github.com/matzehuels/patternmap/pkg/errors"
	"github.com/matzehuels/patternmap/pkg/io"
	"github.com/matzehuels/patternmap/pkg/pattern"
)

// Source loads a pattern snapshot.
type Source interface {
	// Name identifies the source in logs and cache keys.
	Name() string

	// Load returns the current snapshot.
	Load(ctx context.Context) ([]pattern.Pattern, error)
}

// File is a snapshot file on disk. The decoder is chosen by extension.
type File string

// Name returns the file path.
func (f File) Name() string { return string(f) }

// Load reads and validates the file.
func (f File) Load(ctx context.Context) ([]pattern.Pattern, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	patterns, err := io.ImportFile(string(f))
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "snapshot %s", string(f))
	}
	return patterns, err
}

// Static is an in-memory snapshot, used for request bodies.
type Static []pattern.Pattern

// Name returns "inline".
func (Static) Name() string { return "inline" }

// Load returns the snapshot after validating it.
func (s Static) Load(ctx context.Context) ([]pattern.Pattern, error) {
	if err := pattern.Validate(s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPattern, err, "invalid snapshot")
	}
	return []pattern.Pattern(s), nil
}
