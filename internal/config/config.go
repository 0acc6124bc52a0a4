// Package config loads the optional patternmap.toml settings file.
//
// The file supplies defaults for the CLI and the HTTP server; command-line
// flags override it. A minimal file:
//
//	version = 1
//
//	[layout]
//	viz = "network"
//	width = 1600
//
//	[cache]
//	backend = "redis"
//
//	[redis]
//	addr = "localhost:6379"
//
// Only version 1 is understood; any other version is rejected.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/patternmap/pkg/cache"
	pmerrors "github.com/matzehuels/patternmap/pkg/errors"
	"github.com/matzehuels/patternmap/pkg/pattern"
	"github.com/matzehuels/patternmap/pkg/pipeline"
	"github.com/matzehuels/patternmap/pkg/source/mongo"
)

// FileName is the settings file looked up in the user config directory.
const FileName = "patternmap.toml"

// DefaultAddr is the HTTP server listen address.
const DefaultAddr = ":8080"

// ErrUnsupportedVersion is returned for a settings file with an unknown version.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// Config is the parsed settings file.
type Config struct {
	Version int    `toml:"version"`
	Layout  Layout `toml:"layout"`
	Cache   Cache  `toml:"cache"`
	Redis   Redis  `toml:"redis"`
	Mongo   Mongo  `toml:"mongo"`
	Server  Server `toml:"server"`
}

// Layout holds pipeline defaults.
type Layout struct {
	Viz     string   `toml:"viz"`
	Width   float64  `toml:"width"`
	Height  float64  `toml:"height"`
	Formats []string `toml:"formats"`
	Lanes   *bool    `toml:"lanes"`
	Labels  *bool    `toml:"labels"`
	Cycles  bool     `toml:"cycles"`
}

// Cache selects the memoization backend.
type Cache struct {
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"`
}

// Redis configures the redis cache backend.
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// Mongo configures the pattern store. An empty URI disables it.
type Mongo struct {
	URI        string        `toml:"uri"`
	Database   string        `toml:"database"`
	Collection string        `toml:"collection"`
	Types      []string      `toml:"types"`
	Timeout    time.Duration `toml:"timeout"`
}

// Server configures `patternmap serve`.
type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Version: 1,
		Layout: Layout{
			Viz:     pipeline.DefaultVizType,
			Width:   pipeline.DefaultWidth,
			Height:  pipeline.DefaultHeight,
			Formats: []string{pipeline.FormatSVG},
		},
		Cache:  Cache{Backend: cache.BackendFile},
		Redis:  Redis{Prefix: "patternmap:"},
		Server: Server{Addr: DefaultAddr},
	}
}

// Load reads and validates the file at path. Unset values keep their
// [Default].
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	if !md.IsDefined("version") {
		return Config{}, fmt.Errorf("%s: %w: version is missing", path, ErrUnsupportedVersion)
	}
	if cfg.Version != 1 {
		return Config{}, fmt.Errorf("%s: %w: %d", path, ErrUnsupportedVersion, cfg.Version)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path, or the file in [Dir] when path is empty. A
// missing default file yields [Default]; a missing explicit path is an error.
func LoadOrDefault(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	dir, err := Dir()
	if err != nil {
		return Default(), nil
	}
	path = filepath.Join(dir, FileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// Dir returns the config directory using XDG standard (~/.config/patternmap/).
func Dir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, "patternmap"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "patternmap"), nil
}

// Validate checks every section.
func (c Config) Validate() error {
	var errs []error
	if err := pipeline.ValidateVizType(c.Layout.Viz); err != nil {
		errs = append(errs, err)
	}
	if err := pmerrors.ValidateDimensions(c.Layout.Width, c.Layout.Height); err != nil {
		errs = append(errs, err)
	}
	if err := pipeline.ValidateFormats(c.Layout.Formats); err != nil {
		errs = append(errs, err)
	}
	switch c.Cache.Backend {
	case "", cache.BackendFile, cache.BackendNone:
	case cache.BackendRedis:
		if err := pmerrors.ValidateRedisAddr(c.Redis.Addr); err != nil {
			errs = append(errs, err)
		}
	default:
		errs = append(errs, fmt.Errorf("%w: %q", cache.ErrUnknownBackend, c.Cache.Backend))
	}
	if c.Mongo.URI != "" {
		if err := pmerrors.ValidateMongoURI(c.Mongo.URI); err != nil {
			errs = append(errs, err)
		}
		for _, t := range c.Mongo.Types {
			if !pattern.Type(t).Valid() {
				errs = append(errs, fmt.Errorf("mongo: unknown pattern type %q", t))
			}
		}
	}
	return errors.Join(errs...)
}

// ApplyDefaults copies the layout section into unset pipeline options.
// Lanes and Labels are replaced whenever the file sets them, so callers
// re-apply explicitly passed flags afterwards.
func (c Config) ApplyDefaults(opts *pipeline.Options) {
	if opts.VizType == "" {
		opts.VizType = c.Layout.Viz
	}
	if opts.Width == 0 {
		opts.Width = c.Layout.Width
	}
	if opts.Height == 0 {
		opts.Height = c.Layout.Height
	}
	if len(opts.Formats) == 0 {
		opts.Formats = append([]string(nil), c.Layout.Formats...)
	}
	if c.Layout.Lanes != nil {
		opts.Lanes = *c.Layout.Lanes
	}
	if c.Layout.Labels != nil {
		opts.Labels = *c.Layout.Labels
	}
	opts.ShowCycles = opts.ShowCycles || c.Layout.Cycles
}

// CacheConfig returns the cache backend settings. dir is used for the file
// backend when the file leaves it unset.
func (c Config) CacheConfig(dir string) cache.Config {
	cc := cache.Config{
		Backend: c.Cache.Backend,
		Dir:     c.Cache.Dir,
		Redis: cache.RedisConfig{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			Prefix:   c.Redis.Prefix,
		},
	}
	if cc.Dir == "" {
		cc.Dir = dir
	}
	return cc
}

// MongoConfig returns the pattern store settings and whether a store is configured.
func (c Config) MongoConfig() (mongo.Config, bool) {
	if c.Mongo.URI == "" {
		return mongo.Config{}, false
	}
	types := make([]pattern.Type, len(c.Mongo.Types))
	for i, t := range c.Mongo.Types {
		types[i] = pattern.Type(t)
	}
	return mongo.Config{
		URI:        c.Mongo.URI,
		Database:   c.Mongo.Database,
		Collection: c.Mongo.Collection,
		Types:      types,
		Timeout:    c.Mongo.Timeout,
	}, true
}
