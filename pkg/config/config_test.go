package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/creatorlab/canvas/pkg/scene"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load("/does/not/exist.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Render.Format != "png" || cfg.Render.Scale != 1 || cfg.Render.Quality != 90 {
		t.Errorf("defaults = %+v", cfg.Render)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canvas.toml")
	doc := `
[render]
format = "jpeg"
scale = 2.0
quality = 80
background = "#ffffff"

[interact]
snap_step = 10.0

[cache]
backend = "none"

[canvases.blog_header]
width = 1600
height = 400
label = "Blog Header"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Render.Format != "jpeg" || cfg.Render.Scale != 2 || cfg.Render.Quality != 80 {
		t.Errorf("render = %+v", cfg.Render)
	}
	if got := cfg.InteractOptions().SnapStep; got != 10 {
		t.Errorf("snap step = %v, want 10", got)
	}
	if cfg.Cache.Backend != "none" {
		t.Errorf("cache backend = %q", cfg.Cache.Backend)
	}

	if got := cfg.Dimensions("blog_header"); got != (scene.Dimensions{Width: 1600, Height: 400, Label: "Blog Header"}) {
		t.Errorf("custom canvas = %+v", got)
	}
	if got := cfg.Dimensions("instagram_post"); got.Width != 1080 {
		t.Errorf("builtin canvas lookup broken: %+v", got)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[render\nformat="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestOpenCacheNone(t *testing.T) {
	cfg := Default()
	cfg.Cache.Backend = "none"
	c, err := cfg.OpenCache(context.Background())
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	defer c.Close()
	if _, ok, _ := c.Get(context.Background(), "anything"); ok {
		t.Error("null cache should never hit")
	}
}
