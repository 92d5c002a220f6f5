// Package config loads engine configuration from TOML files and maps it
// onto the packages it tunes.
package config

import (
	"context"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/creatorlab/canvas/pkg/cache"
	"github.com/creatorlab/canvas/pkg/errors"
	"github.com/creatorlab/canvas/pkg/interact"
	"github.com/creatorlab/canvas/pkg/scene"
)

// Config is the full engine configuration. Every field has a working zero
// or default value; an absent config file is not an error.
type Config struct {
	Render   Render            `toml:"render"`
	Cache    CacheConfig       `toml:"cache"`
	Interact Interact          `toml:"interact"`
	Server   Server            `toml:"server"`
	Canvases map[string]Canvas `toml:"canvases"`
}

// Render carries export defaults.
type Render struct {
	Format     string  `toml:"format"`
	Scale      float64 `toml:"scale"`
	Quality    int     `toml:"quality"`
	Background string  `toml:"background"`
}

// CacheConfig selects and tunes the cache backend. When Redis.Addr is set
// Redis is used; otherwise a file cache in Dir (empty Dir means the default
// user cache directory); "none" disables caching entirely.
type CacheConfig struct {
	Backend string      `toml:"backend"` // "", "file", "redis", "none"
	Dir     string      `toml:"dir"`
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig mirrors the Redis connection settings.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Interact tunes gesture behavior.
type Interact struct {
	SnapStep       float64 `toml:"snap_step"`
	SnapTolerance  float64 `toml:"snap_tolerance"`
	NudgeStep      float64 `toml:"nudge_step"`
	NudgeStepLarge float64 `toml:"nudge_step_large"`
	ResizeFactor   float64 `toml:"resize_factor"`
}

// Server configures the HTTP preview service.
type Server struct {
	Addr string `toml:"addr"`
}

// Canvas is a user-defined canvas dimension entry, merged over the built-in
// dimension table.
type Canvas struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Label  string `toml:"label"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Render: Render{Format: "png", Scale: 1, Quality: 90},
		Server: Server{Addr: ":8780"},
	}
}

// Load reads a TOML config file over the defaults. A missing path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeConfig, err, "reading config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeConfig, err, "parsing config %s", path)
	}
	return cfg, nil
}

// InteractOptions maps the config onto gesture options. Zero fields keep
// the built-in defaults.
func (c Config) InteractOptions() interact.Options {
	return interact.Options{
		SnapStep:       c.Interact.SnapStep,
		SnapTolerance:  c.Interact.SnapTolerance,
		NudgeStep:      c.Interact.NudgeStep,
		NudgeStepLarge: c.Interact.NudgeStepLarge,
		ResizeFactor:   c.Interact.ResizeFactor,
	}
}

// Dimensions resolves a canvas context against the config overrides first,
// then the built-in table.
func (c Config) Dimensions(canvasContext string) scene.Dimensions {
	if cv, ok := c.Canvases[canvasContext]; ok && cv.Width > 0 && cv.Height > 0 {
		return scene.Dimensions{Width: cv.Width, Height: cv.Height, Label: cv.Label}
	}
	return scene.DimensionsFor(canvasContext)
}

// OpenCache builds the configured cache backend.
func (c Config) OpenCache(ctx context.Context) (cache.Cache, error) {
	switch {
	case c.Cache.Backend == "none":
		return cache.NewNullCache(), nil
	case c.Cache.Backend == "redis" || (c.Cache.Backend == "" && c.Cache.Redis.Addr != ""):
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.Cache.Redis.Addr,
			Password: c.Cache.Redis.Password,
			DB:       c.Cache.Redis.DB,
		})
	default:
		return cache.NewFileCache(c.Cache.Dir)
	}
}
