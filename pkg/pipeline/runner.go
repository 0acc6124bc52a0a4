package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/patternmap/pkg/analyze"
	"github.com/matzehuels/patternmap/pkg/cache"
	"github.com/matzehuels/patternmap/pkg/graph"
	"github.com/matzehuels/patternmap/pkg/io"
	"github.com/matzehuels/patternmap/pkg/observability"
	"github.com/matzehuels/patternmap/pkg/pattern"
	"github.com/matzehuels/patternmap/pkg/source"
)

// layoutNamespace derives deterministic layout ids from layout cache keys.
var layoutNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/patternmap/layout"))

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	patterns, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Patterns = patterns
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.PatternCount = len(patterns)
	result.Stats.EdgeCount = len(pattern.Edges(patterns))
	result.CacheInfo.LoadHit = loadHit
	result.SnapshotHash, _ = SnapshotHash(patterns)

	r.Logger.Info("loaded patterns",
		"source", opts.Source.Name(),
		"patterns", result.Stats.PatternCount,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	l, layoutHit, err := r.GenerateLayoutWithCacheInfo(ctx, patterns, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.CycleCount = len(l.Cycles)
	result.Stats.SkipLevelCount = len(l.SkipLevelEdges)
	result.Stats.Crossings = l.Crossings
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"viz", l.VizType,
		"nodes", len(l.Nodes),
		"skip_level", result.Stats.SkipLevelCount,
		"crossings", result.Stats.Crossings,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, patterns, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo loads the snapshot and returns cache hit info.
// Only remote sources are cached; files and inline snapshots are always read.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) ([]pattern.Pattern, bool, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	src := opts.Source
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, src.Name())
	start := time.Now()

	cacheable := isRemote(src)
	cacheKey := r.Keyer.SnapshotKey(src.Name(), "latest")

	if cacheable && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if patterns, err := io.ReadJSON(bytes.NewReader(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, "snapshot")
				hooks.OnLoadComplete(ctx, src.Name(), len(patterns), time.Since(start), nil)
				return patterns, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "snapshot")
	}

	patterns, err := src.Load(ctx)
	hooks.OnLoadComplete(ctx, src.Name(), len(patterns), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if cacheable {
		var buf bytes.Buffer
		if err := io.WriteJSON(patterns, &buf); err == nil {
			r.set(ctx, "snapshot", cacheKey, buf.Bytes(), cache.TTLSnapshot)
		}
	}

	return patterns, false, nil
}

// Load is a convenience wrapper that calls LoadWithCacheInfo and discards the cache hit info.
func (r *Runner) Load(ctx context.Context, opts Options) ([]pattern.Pattern, error) {
	patterns, _, err := r.LoadWithCacheInfo(ctx, opts)
	return patterns, err
}

// GenerateLayoutWithCacheInfo generates a layout with caching and returns cache hit info.
// Prerequisite cycles are logged as warnings; they never fail the layout.
func (r *Runner) GenerateLayoutWithCacheInfo(ctx context.Context, patterns []pattern.Pattern, opts Options) (graph.Layout, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return graph.Layout{}, false, err
	}
	r.applyLogger(&opts)

	hash, err := SnapshotHash(patterns)
	if err != nil {
		return graph.Layout{}, false, err
	}
	cacheKey := r.Keyer.LayoutKey(hash, opts.LayoutKeyOpts())

	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		if cached, err := graph.UnmarshalLayout(data); err == nil {
			observability.Cache().OnCacheHit(ctx, "layout")
			r.logCycles(cached.Cycles)
			return cached, true, nil
		}
		// If deserialization fails, fall through to recompute
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.VizType, len(patterns))
	start := time.Now()

	l := ComputeLayout(patterns, opts)
	l.ID = uuid.NewSHA1(layoutNamespace, []byte(cacheKey)).String()

	hooks.OnLayoutComplete(ctx, opts.VizType, time.Since(start), nil)
	r.logCycles(l.Cycles)

	if data, err := graph.MarshalLayout(l); err == nil {
		r.set(ctx, "layout", cacheKey, data, cache.TTLLayout)
	}

	return l, false, nil
}

// GenerateLayout is a convenience wrapper that calls GenerateLayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) GenerateLayout(ctx context.Context, patterns []pattern.Pattern, opts Options) (graph.Layout, error) {
	l, _, err := r.GenerateLayoutWithCacheInfo(ctx, patterns, opts)
	return l, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// patterns is only needed for the DOT format.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l graph.Layout, patterns []pattern.Pattern, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	layoutData, err := graph.MarshalLayout(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			break
		}
		artifacts[format] = data
	}
	if len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	rendered, err := RenderLayout(ctx, l, patterns, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		r.set(ctx, "artifact", key, data, cache.TTLArtifact)
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l graph.Layout, patterns []pattern.Pattern, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, patterns, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// SnapshotHash returns the content hash of a snapshot's canonical JSON form.
func SnapshotHash(patterns []pattern.Pattern) (string, error) {
	var buf bytes.Buffer
	if err := io.WriteJSON(patterns, &buf); err != nil {
		return "", fmt.Errorf("hash snapshot: %w", err)
	}
	return cache.Hash(buf.Bytes()), nil
}

// set writes to the cache, logging failures without returning them.
func (r *Runner) set(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Debug("cache write failed", "type", keyType, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

func (r *Runner) logCycles(cycles [][]int) {
	for _, c := range cycles {
		r.Logger.Warn("prerequisite cycle", "cycle", analyze.Cycle(c).String())
	}
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// isRemote reports whether loading src is worth caching.
func isRemote(src source.Source) bool {
	switch src.(type) {
	case source.File, source.Static:
		return false
	default:
		return true
	}
}
