package pattern

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrDuplicateID is returned by [Validate] when two patterns share an id.
	ErrDuplicateID = errors.New("duplicate pattern id")

	// ErrUnknownType is returned by [Validate] for a type outside [Types].
	ErrUnknownType = errors.New("unknown pattern type")

	// ErrUnknownLevel is returned by [Validate] for a level outside [Levels].
	ErrUnknownLevel = errors.New("unknown pattern level")
)

// Type is the category of a pattern. Each type gets its own swimlane in the
// timeline layout.
type Type string

const (
	TypeCreational  Type = "creational"
	TypeStructural  Type = "structural"
	TypeBehavioral  Type = "behavioral"
	TypeConcurrency Type = "concurrency"
)

// Types returns all pattern types in swimlane order (top to bottom).
func Types() []Type {
	return []Type{TypeCreational, TypeStructural, TypeBehavioral, TypeConcurrency}
}

// Valid reports whether t is one of [Types].
func (t Type) Valid() bool { return slices.Contains(Types(), t) }

// LaneOf returns the swimlane a type is drawn in. Unknown or empty types are
// placed in the last lane.
func LaneOf(t Type) Type {
	if t.Valid() {
		return t
	}
	types := Types()
	return types[len(types)-1]
}

// Level is an optional difficulty tier.
type Level string

const (
	LevelNone         Level = ""
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Levels returns the defined tiers from easiest to hardest.
func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// Valid reports whether l is empty or one of [Levels].
func (l Level) Valid() bool { return l == LevelNone || slices.Contains(Levels(), l) }

// Pattern is a node of the prerequisite graph. Only ID, Prerequisites, Type
// and Level are read by the layout engine.
type Pattern struct {
	ID            int      `json:"id" toml:"id" yaml:"id" bson:"id"`
	Name          string   `json:"name" toml:"name" yaml:"name" bson:"name"`
	Description   string   `json:"description,omitempty" toml:"description" yaml:"description,omitempty" bson:"description,omitempty"`
	Prerequisites []int    `json:"prerequisites,omitempty" toml:"prerequisites" yaml:"prerequisites,omitempty" bson:"prerequisites,omitempty"`
	Type          Type     `json:"type" toml:"type" yaml:"type" bson:"type"`
	Level         Level    `json:"level,omitempty" toml:"level" yaml:"level,omitempty" bson:"level,omitempty"`
	Count         int      `json:"count,omitempty" toml:"count" yaml:"count,omitempty" bson:"count,omitempty"`
	Tags          []string `json:"tags,omitempty" toml:"tags" yaml:"tags,omitempty" bson:"tags,omitempty"`
}

// DisplayName returns the name, falling back to "#<id>".
func (p Pattern) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("#%d", p.ID)
}

// Edge is a derived prerequisite relationship, directed prerequisite → pattern.
type Edge struct {
	From int // prerequisite id
	To   int // dependent pattern id
}

// Index maps pattern ids to their position in a snapshot. When ids repeat,
// the first occurrence wins.
type Index map[int]int

// NewIndex builds an Index for patterns.
func NewIndex(patterns []Pattern) Index {
	idx := make(Index, len(patterns))
	for i, p := range patterns {
		if _, dup := idx[p.ID]; !dup {
			idx[p.ID] = i
		}
	}
	return idx
}

// Has reports whether id is part of the snapshot.
func (idx Index) Has(id int) bool {
	_, ok := idx[id]
	return ok
}

// Edges derives one edge per prerequisite, in snapshot order. Dangling and
// repeated prerequisites are skipped, and a repeated pattern id contributes
// only through its first occurrence.
func Edges(patterns []Pattern) []Edge {
	idx := NewIndex(patterns)
	var edges []Edge
	for i, p := range patterns {
		if idx[p.ID] != i {
			continue
		}
		seen := make(map[int]bool, len(p.Prerequisites))
		for _, pre := range p.Prerequisites {
			if !idx.Has(pre) || seen[pre] {
				continue
			}
			seen[pre] = true
			edges = append(edges, Edge{From: pre, To: p.ID})
		}
	}
	return edges
}

// Validate checks a snapshot for duplicate ids and unknown enumeration
// values. All problems are reported together.
func Validate(patterns []Pattern) error {
	var errs []error
	seen := make(map[int]bool, len(patterns))
	for _, p := range patterns {
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("pattern %d: %w", p.ID, ErrDuplicateID))
		}
		seen[p.ID] = true
		if !p.Type.Valid() {
			errs = append(errs, fmt.Errorf("pattern %d: %w %q", p.ID, ErrUnknownType, p.Type))
		}
		if !p.Level.Valid() {
			errs = append(errs, fmt.Errorf("pattern %d: %w %q", p.ID, ErrUnknownLevel, p.Level))
		}
	}
	return errors.Join(errs...)
}
