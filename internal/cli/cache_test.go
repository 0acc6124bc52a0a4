package cli

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/patternmap/internal/config"
	"github.com/matzehuels/patternmap/pkg/cache"
)

func TestNewCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	ctx := context.Background()

	c, err := newCache(ctx, config.Default(), false)
	if err != nil {
		t.Fatalf("newCache() error: %v", err)
	}
	if _, ok := c.(*cache.FileCache); !ok {
		t.Errorf("default backend = %T, want *cache.FileCache", c)
	}

	c, _ = newCache(ctx, config.Default(), true)
	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("--no-cache backend = %T, want *cache.NullCache", c)
	}

	cfg := config.Default()
	cfg.Cache.Backend = cache.BackendNone
	c, _ = newCache(ctx, cfg, false)
	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("backend none = %T, want *cache.NullCache", c)
	}
}

func TestCacheClearCommand(t *testing.T) {
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	fc, err := cache.NewFileCache(filepath.Join(cacheHome, appName))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, key := range []string{"layout:a", "artifact:b"} {
		if err := fc.Set(ctx, key, []byte("x"), time.Hour); err != nil {
			t.Fatal(err)
		}
	}

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	if err := root.ExecuteContext(ctx); err != nil {
		t.Fatalf("cache clear: %v", err)
	}

	if _, hit, _ := fc.Get(ctx, "layout:a"); hit {
		t.Error("entry should be cleared")
	}
}
