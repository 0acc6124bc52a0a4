package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/patternmap/pkg/cache"
	"github.com/matzehuels/patternmap/pkg/pattern"
	"github.com/matzehuels/patternmap/pkg/pipeline"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
version = 1

[layout]
viz = "network"
width = 1600
formats = ["svg", "json"]
labels = false

[cache]
backend = "redis"

[redis]
addr = "localhost:6379"

[mongo]
uri = "mongodb://localhost:27017"
types = ["behavioral"]
timeout = "3s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Layout.Viz != "network" || cfg.Layout.Width != 1600 {
		t.Errorf("layout = %+v", cfg.Layout)
	}
	if cfg.Layout.Height != pipeline.DefaultHeight {
		t.Errorf("unset height = %v, want default %v", cfg.Layout.Height, pipeline.DefaultHeight)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("server addr = %q, want default", cfg.Server.Addr)
	}
	if cfg.Redis.Prefix != "patternmap:" {
		t.Errorf("redis prefix = %q, want default", cfg.Redis.Prefix)
	}

	mc, ok := cfg.MongoConfig()
	if !ok {
		t.Fatal("MongoConfig() should be configured")
	}
	if mc.Timeout != 3*time.Second || len(mc.Types) != 1 || mc.Types[0] != pattern.TypeBehavioral {
		t.Errorf("mongo config = %+v", mc)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "missing version", data: `[layout]
viz = "timeline"`, wantErr: ErrUnsupportedVersion},
		{name: "future version", data: `version = 2`, wantErr: ErrUnsupportedVersion},
		{name: "unknown backend", data: `version = 1
[cache]
backend = "memcached"`, wantErr: cache.ErrUnknownBackend},
		{name: "bad viz", data: `version = 1
[layout]
viz = "tower"`},
		{name: "redis without addr", data: `version = 1
[cache]
backend = "redis"`},
		{name: "bad mongo uri", data: `version = 1
[mongo]
uri = "postgres://db"`},
		{name: "bad mongo type", data: `version = 1
[mongo]
uri = "mongodb://db"
types = ["functional"]`},
		{name: "bad toml", data: `version = `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.data))
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault() error: %v", err)
	}
	if cfg.Layout.Viz != pipeline.DefaultVizType {
		t.Errorf("viz = %q, want default", cfg.Layout.Viz)
	}

	if _, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("explicit missing path should fail")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Default()
	off := false
	cfg.Layout.Labels = &off
	cfg.Layout.Cycles = true

	opts := pipeline.Options{Width: 900, Labels: true}
	cfg.ApplyDefaults(&opts)

	if opts.Width != 900 {
		t.Errorf("Width = %v, flag value should win", opts.Width)
	}
	if opts.Height != pipeline.DefaultHeight || opts.VizType != pipeline.DefaultVizType {
		t.Errorf("defaults not applied: %+v", opts)
	}
	if opts.Labels {
		t.Error("Labels should follow the config file")
	}
	if !opts.ShowCycles {
		t.Error("ShowCycles should be enabled by the config file")
	}
}

func TestCacheConfig(t *testing.T) {
	cfg := Default()
	cc := cfg.CacheConfig("/tmp/pm")
	if cc.Backend != cache.BackendFile || cc.Dir != "/tmp/pm" {
		t.Errorf("CacheConfig() = %+v", cc)
	}

	cfg.Cache.Dir = "/var/cache/pm"
	if got := cfg.CacheConfig("/tmp/pm").Dir; got != "/var/cache/pm" {
		t.Errorf("Dir = %q, configured dir should win", got)
	}

	if _, ok := cfg.MongoConfig(); ok {
		t.Error("MongoConfig() should be unset by default")
	}
}
