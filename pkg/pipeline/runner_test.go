package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/patternmap/pkg/cache"
	"github.com/matzehuels/patternmap/pkg/graph"
	"github.com/matzehuels/patternmap/pkg/pattern"
	"github.com/matzehuels/patternmap/pkg/source"
)

// memCache is an in-memory cache.Cache for tests.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: make(map[string][]byte)} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

// remoteSource counts loads of a fixed snapshot.
type remoteSource struct {
	patterns []pattern.Pattern
	loads    int
}

func (s *remoteSource) Name() string { return "test:remote" }

func (s *remoteSource) Load(context.Context) ([]pattern.Pattern, error) {
	s.loads++
	return s.patterns, nil
}

func writeSnapshot(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patterns.json")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const chainJSON = `{"patterns": [
  {"id": 1, "name": "Factory Method", "type": "creational"},
  {"id": 2, "name": "Abstract Factory", "type": "creational", "prerequisites": [1]},
  {"id": 3, "name": "Observer", "type": "behavioral", "prerequisites": [2]}
]}`

func TestRunnerExecute(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(newMemCache(), nil, log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
	opts := Options{
		Input:   writeSnapshot(t, chainJSON),
		Formats: []string{FormatSVG, FormatJSON, FormatDOT},
		Labels:  true,
	}

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if result.Stats.PatternCount != 3 || result.Stats.EdgeCount != 2 {
		t.Errorf("stats = %+v", result.Stats)
	}
	if result.SnapshotHash == "" {
		t.Error("SnapshotHash should be set")
	}
	if result.Layout.ID == "" {
		t.Error("layout ID should be set")
	}
	if result.CacheInfo.LoadHit || result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Errorf("first run should miss every cache: %+v", result.CacheInfo)
	}
	if !bytes.HasPrefix(result.Artifacts[FormatSVG], []byte("<svg")) {
		t.Error("svg artifact missing")
	}
	if !bytes.Contains(result.Artifacts[FormatSVG], []byte(">Observer</text>")) {
		t.Error("labels option not applied")
	}
	if _, err := graph.UnmarshalLayout(result.Artifacts[FormatJSON]); err != nil {
		t.Errorf("json artifact is not a layout: %v", err)
	}
	if !bytes.Contains(result.Artifacts[FormatDOT], []byte("1 -> 2;")) {
		t.Error("dot artifact missing edge")
	}

	again, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute() error: %v", err)
	}
	if !again.CacheInfo.LayoutHit || !again.CacheInfo.RenderHit {
		t.Errorf("second run should hit layout and render caches: %+v", again.CacheInfo)
	}
	if again.CacheInfo.LoadHit {
		t.Error("file snapshots are never cached")
	}
	if again.Layout.ID != result.Layout.ID {
		t.Errorf("layout ID changed between runs: %s vs %s", result.Layout.ID, again.Layout.ID)
	}
}

func TestRunnerExecuteMissingFile(t *testing.T) {
	runner := NewRunner(nil, nil, log.NewWithOptions(&bytes.Buffer{}, log.Options{}))

	_, err := runner.Execute(context.Background(), Options{Input: filepath.Join(t.TempDir(), "none.json")})
	if err == nil || !strings.Contains(err.Error(), "load:") {
		t.Errorf("Execute() error = %v, want load error", err)
	}
}

func TestRunnerLayoutIDDeterministic(t *testing.T) {
	ctx := context.Background()
	a := NewRunner(nil, nil, nil)
	b := NewRunner(nil, nil, nil)

	la, err := a.GenerateLayout(ctx, chain(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	lb, err := b.GenerateLayout(ctx, chain(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if la.ID == "" || la.ID != lb.ID {
		t.Errorf("IDs = %q, %q, want equal and non-empty", la.ID, lb.ID)
	}

	ln, _ := a.GenerateLayout(ctx, chain(), Options{VizType: graph.VizTypeNetwork})
	if ln.ID == la.ID {
		t.Error("different options should give a different layout ID")
	}
}

func TestRunnerLogsCycles(t *testing.T) {
	var logs bytes.Buffer
	runner := NewRunner(nil, nil, log.NewWithOptions(&logs, log.Options{}))
	patterns := []pattern.Pattern{
		{ID: 1, Type: pattern.TypeBehavioral, Prerequisites: []int{2}},
		{ID: 2, Type: pattern.TypeBehavioral, Prerequisites: []int{1}},
	}

	l, err := runner.GenerateLayout(context.Background(), patterns, Options{})
	if err != nil {
		t.Fatalf("GenerateLayout() error: %v", err)
	}
	if len(l.Cycles) != 1 {
		t.Errorf("cycles = %v, want one", l.Cycles)
	}
	if !strings.Contains(logs.String(), "prerequisite cycle") || !strings.Contains(logs.String(), "1 → 2 → 1") {
		t.Errorf("cycle warning not logged:\n%s", logs.String())
	}
}

func TestRunnerCachesRemoteSnapshots(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(newMemCache(), nil, nil)
	src := &remoteSource{patterns: chain()}

	for range 2 {
		if _, err := runner.Load(ctx, Options{Source: src}); err != nil {
			t.Fatalf("Load() error: %v", err)
		}
	}
	if src.loads != 1 {
		t.Errorf("remote loads = %d, want 1", src.loads)
	}

	patterns, hit, err := runner.LoadWithCacheInfo(ctx, Options{Source: src, Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if hit || src.loads != 2 || len(patterns) != 3 {
		t.Errorf("refresh: hit=%v loads=%d patterns=%d", hit, src.loads, len(patterns))
	}
}

func TestRunnerRenderDOTNeedsPatterns(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	l := ComputeLayout(chain(), Options{})

	for _, f := range []string{FormatDOT, FormatDOTSVG} {
		if _, err := runner.Render(context.Background(), l, nil, Options{Formats: []string{f}}); err == nil {
			t.Errorf("%s without patterns should fail", f)
		}
	}
}

func TestRenderLayoutGraphviz(t *testing.T) {
	l := ComputeLayout(chain(), Options{})
	artifacts, err := RenderLayout(context.Background(), l, chain(), Options{Formats: []string{FormatDOTSVG}})
	if err != nil {
		t.Fatalf("RenderLayout() error: %v", err)
	}
	svg := string(artifacts[FormatDOTSVG])
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "Observer") {
		t.Errorf("dot.svg artifact is not a Graphviz drawing of the snapshot:\n%s", svg)
	}
}

func TestRenderFromLayoutData(t *testing.T) {
	l := ComputeLayout(chain(), Options{VizType: graph.VizTypeNetwork})
	data, err := graph.MarshalLayout(l)
	if err != nil {
		t.Fatal(err)
	}

	artifacts, err := RenderFromLayoutData(context.Background(), data, nil, Options{Formats: []string{FormatSVG}, Lanes: true})
	if err != nil {
		t.Fatalf("RenderFromLayoutData() error: %v", err)
	}
	if !bytes.Contains(artifacts[FormatSVG], []byte("<ellipse")) {
		t.Error("network svg should draw the guide ellipse")
	}

	if _, err := RenderFromLayoutData(context.Background(), []byte("{"), nil, Options{}); err == nil {
		t.Error("invalid layout data should fail")
	}
}

var _ cache.Cache = (*memCache)(nil)
var _ source.Source = (*remoteSource)(nil)
