// Package pipeline runs the complete load → compile → rasterize → encode
// chain that turns a scene into an image. CLI and HTTP server both go
// through a Runner so caching and option handling stay in one place.
//
// Preview and export share one algorithm. Preview reuses the runner's
// shared loader and its caches; export reloads every asset fresh and gates
// on a generation counter so a newer export supersedes a stale in-flight
// one.
package pipeline

import (
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/creatorlab/canvas/pkg/assets"
	"github.com/creatorlab/canvas/pkg/cache"
	"github.com/creatorlab/canvas/pkg/errors"
	"github.com/creatorlab/canvas/pkg/render/sink"
	"github.com/creatorlab/canvas/pkg/scene"
	"github.com/creatorlab/canvas/pkg/sceneio"
)

const (
	// DefaultScale renders at the canvas's native pixel dimensions.
	DefaultScale = 1.0

	// MaxScale bounds export size. An 8x export of the largest canvas is a
	// 15360x8640 allocation, already past what callers reasonably need.
	MaxScale = 8.0
)

// Options configures one render. The struct is JSON-serializable so the
// HTTP server can accept it directly as a request body.
type Options struct {
	Scene  scene.Scene         `json:"scene"`
	Assets []assets.MediaAsset `json:"assets,omitempty"`

	Format     string  `json:"format,omitempty"`     // png (default) or jpeg
	Scale      float64 `json:"scale,omitempty"`      // output pixels per logical pixel
	Quality    int     `json:"quality,omitempty"`    // jpeg quality 1-100
	Background string  `json:"background,omitempty"` // overrides the scene background

	// Runtime options (not serialized). Canvas overrides the built-in
	// context table for the scene's dimensions; callers resolve it from
	// their config so custom contexts render at their configured size.
	Canvas scene.Dimensions `json:"-"`
	Logger *log.Logger      `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks fields and applies defaults. Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	format, err := sink.NormalizeFormat(o.Format)
	if err != nil {
		return err
	}
	o.Format = format

	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidDimension, "scale must be in (0, %g], got %g", MaxScale, o.Scale)
	}
	if o.Quality == 0 {
		o.Quality = sink.DefaultQuality
	}
	if o.Quality < 1 || o.Quality > 100 {
		return errors.New(errors.ErrCodeInvalidInput, "quality must be in [1, 100], got %d", o.Quality)
	}
	if err := sceneio.Validate(sceneio.FromScene(o.Scene, o.Assets)); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// artifactKeyOpts maps the render options onto the cache key fields.
func (o Options) artifactKeyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     o.Format,
		Scale:      o.Scale,
		Quality:    o.Quality,
		Background: o.Background,
		Width:      o.Canvas.Width,
		Height:     o.Canvas.Height,
	}
}

// sceneHash content-hashes the serialized scene and asset records. Renders
// of identical input share one hash regardless of option differences.
func (o Options) sceneHash() string {
	data, _ := json.Marshal(sceneio.FromScene(o.Scene, o.Assets))
	return cache.Hash(data)
}

// Result is one finished render.
type Result struct {
	// Artifact is the encoded image.
	Artifact *sink.Artifact

	// SceneHash is the content hash of the input scene.
	SceneHash string

	// MissingAssets lists asset ids that failed to load and were skipped.
	MissingAssets []string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks what came from cache.
	CacheInfo CacheInfo
}

// Stats contains render execution statistics.
type Stats struct {
	PlacementCount int
	ElementCount   int
	OpCount        int
	LoadTime       time.Duration
	CompileTime    time.Duration
	RasterTime     time.Duration
	EncodeTime     time.Duration
}

// CacheInfo tracks cache hits for a render.
type CacheInfo struct {
	ArtifactHit bool // whole artifact served from cache, nothing re-rendered
}
