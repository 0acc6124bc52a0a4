// Package pipeline provides the visualization pipeline for patternmap.
//
// This package implements the complete load → layout → render pipeline that
// is shared by the CLI and the HTTP server. Centralizing it keeps caching,
// logging and validation identical across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read a pattern snapshot from a [source.Source] (file, MongoDB, inline)
//  2. Layout: Compute node positions, swimlanes and edge paths ([graph.Layout])
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
// The layout engine itself never fails on malformed graphs; prerequisite
// cycles are returned on the layout and logged as warnings here.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "patterns.yaml",
//	    VizType: "timeline",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	patterns, err := runner.Load(ctx, opts)
//	layout, err := runner.GenerateLayout(ctx, patterns, opts)
//	artifacts, err := runner.Render(ctx, layout, patterns, opts)
//
// [source.Source]: github.com/matzehuels/patternmap/pkg/source.Source
// [graph.Layout]: github.com/matzehuels/patternmap/pkg/graph.Layout
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/patternmap/pkg/cache"
	"github.com/matzehuels/patternmap/pkg/errors"
	"github.com/matzehuels/patternmap/pkg/graph"
	"github.com/matzehuels/patternmap/pkg/pattern"
	"github.com/matzehuels/patternmap/pkg/source"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 1200.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 800.0

	// DefaultVizType is the default visualization type.
	DefaultVizType = graph.VizTypeTimeline
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"

	// FormatDOTSVG is the prerequisite graph drawn by Graphviz.
	FormatDOTSVG = "dot.svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,

	FormatDOTSVG: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	graph.VizTypeTimeline: true,
	graph.VizTypeNetwork:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the visualization pipeline.
// This struct supports JSON serialization for server requests.
type Options struct {
	// Load options
	Input   string `json:"input,omitempty"` // Snapshot file (.json, .toml, .yaml)
	Refresh bool   `json:"refresh,omitempty"`

	// Layout options
	VizType string  `json:"viz_type,omitempty"`
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Lanes      bool     `json:"lanes,omitempty"`
	Labels     bool     `json:"labels,omitempty"`
	ShowCycles bool     `json:"show_cycles,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger   `json:"-"`
	Source source.Source `json:"-"` // Overrides Input when set

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Patterns is the loaded snapshot.
	Patterns []pattern.Pattern

	// SnapshotHash is the content hash of the snapshot.
	SnapshotHash string

	// Layout contains positions, lanes, edge paths and cycles.
	Layout graph.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PatternCount   int
	EdgeCount      int
	CycleCount     int
	SkipLevelCount int
	Crossings      int // Adjacent-column edge crossings (timeline only)
	LoadTime       time.Duration
	LayoutTime     time.Duration
	RenderTime     time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit   bool // Whether the snapshot came from cache
	LayoutHit bool // Whether layout result came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidVizType, "invalid viz_type: %q (must be one of: timeline, network)", vizType)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks that a snapshot source is configured.
// An Input path becomes a [source.File].
func (o *Options) ValidateForLoad() error {
	if o.Source == nil {
		if o.Input == "" {
			return errors.New(errors.ErrCodeInvalidInput, "input or source is required")
		}
		o.Source = source.File(o.Input)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	return errors.ValidateDimensions(o.Width, o.Height)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// IsTimeline returns true if this is a timeline visualization.
func (o *Options) IsTimeline() bool {
	return o.VizType == "" || o.VizType == graph.VizTypeTimeline
}

// IsNetwork returns true if this is a network visualization.
func (o *Options) IsNetwork() bool {
	return o.VizType == graph.VizTypeNetwork
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		VizType: o.VizType,
		Width:   o.Width,
		Height:  o.Height,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Lanes:  o.Lanes,
		Labels: o.Labels,
		Cycles: o.ShowCycles,
	}
}
