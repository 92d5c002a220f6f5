package pipeline

import (
	"context"
	"image"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/creatorlab/canvas/pkg/assets"
	"github.com/creatorlab/canvas/pkg/cache"
	"github.com/creatorlab/canvas/pkg/errors"
	"github.com/creatorlab/canvas/pkg/observability"
	"github.com/creatorlab/canvas/pkg/render"
	"github.com/creatorlab/canvas/pkg/render/raster"
	"github.com/creatorlab/canvas/pkg/render/sink"
	"github.com/creatorlab/canvas/pkg/scene"
)

// Runner executes renders with caching. It is safe for concurrent use; the
// only mutable state is the shared preview loader's memo and the export
// generation counter.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	loader *assets.Loader

	genMu      sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

// NewRunner creates a runner. A nil cache disables caching; a nil keyer
// uses the default key scheme.
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
		loader: assets.NewLoader(assets.WithCache(c), assets.WithLogger(logger)),
	}
}

// Preview renders best-effort against the shared asset caches. A cached
// artifact for the same scene and options short-circuits the whole run.
func (r *Runner) Preview(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return r.run(ctx, opts, r.loader, true)
}

// Export renders with every asset reloaded fresh. Starting an export
// cancels any export still in flight: the newest request wins and the
// superseded one returns a canceled-context error.
func (r *Runner) Export(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	ctx, finish := r.beginGeneration(ctx)
	defer finish()

	fresh := assets.NewLoader(
		assets.WithCache(r.Cache),
		assets.WithLogger(r.Logger),
		assets.Fresh(),
	)
	return r.run(ctx, opts, fresh, false)
}

// beginGeneration claims the export slot, canceling whichever export held
// it before.
func (r *Runner) beginGeneration(ctx context.Context) (context.Context, func()) {
	r.genMu.Lock()
	defer r.genMu.Unlock()

	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.generation++
	gen := r.generation

	return ctx, func() {
		r.genMu.Lock()
		if r.generation == gen {
			r.cancel = nil
		}
		r.genMu.Unlock()
		cancel()
	}
}

func (r *Runner) run(ctx context.Context, opts Options, loader *assets.Loader, useArtifactCache bool) (*Result, error) {
	result := &Result{SceneHash: opts.sceneHash()}
	artifactKey := r.Keyer.ArtifactKey(result.SceneHash, opts.artifactKeyOpts())

	if useArtifactCache {
		if data, hit, err := r.Cache.Get(ctx, artifactKey); err == nil && hit {
			if art := r.rehydrate(data, opts); art != nil {
				observability.Cache().OnCacheHit(ctx, "artifact")
				result.Artifact = art
				result.CacheInfo.ArtifactHit = true
				r.Logger.Debug("artifact cache hit", "hash", result.SceneHash)
				return result, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	// Stage 1: Load
	loadStart := time.Now()
	images := r.loadImages(ctx, opts, loader)
	result.Stats.LoadTime = time.Since(loadStart)

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTimeout, err, "render superseded or canceled")
	}

	// Stage 2: Compile
	compileStart := time.Now()
	observability.Render().OnCompileStart(ctx, len(opts.Scene.Placements), len(opts.Scene.Elements))
	compiled := render.Compile(opts.Scene, images, render.Options{
		Scale:      opts.Scale,
		Background: opts.Background,
		Canvas:     opts.Canvas,
	})
	result.Stats.CompileTime = time.Since(compileStart)
	result.Stats.PlacementCount = len(opts.Scene.Placements)
	result.Stats.ElementCount = len(opts.Scene.Elements)
	result.Stats.OpCount = len(compiled.Ops)
	result.MissingAssets = compiled.MissingAssets
	observability.Render().OnCompileComplete(ctx, len(compiled.Ops), result.Stats.CompileTime)

	if len(compiled.MissingAssets) > 0 {
		r.Logger.Warn("rendering without some assets", "missing", compiled.MissingAssets)
	}

	// Stage 3: Rasterize
	rasterStart := time.Now()
	observability.Render().OnRasterizeStart(ctx, compiled.Width, compiled.Height)
	img, err := raster.Rasterize(compiled)
	result.Stats.RasterTime = time.Since(rasterStart)
	observability.Render().OnRasterizeComplete(ctx, compiled.Width, compiled.Height, result.Stats.RasterTime, err)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTimeout, err, "render superseded or canceled")
	}

	// Stage 4: Encode
	encodeStart := time.Now()
	artifact, err := sink.Encode(img, opts.Format, opts.Quality)
	result.Stats.EncodeTime = time.Since(encodeStart)
	if err != nil {
		observability.Render().OnEncodeComplete(ctx, opts.Format, 0, result.Stats.EncodeTime, err)
		return nil, err
	}
	observability.Render().OnEncodeComplete(ctx, artifact.Format, artifact.FileSize, result.Stats.EncodeTime, nil)
	result.Artifact = artifact

	if err := r.Cache.Set(ctx, artifactKey, artifact.Data, cache.TTLArtifact); err == nil {
		observability.Cache().OnCacheSet(ctx, "artifact", artifact.FileSize)
	}

	r.Logger.Info("rendered scene",
		"hash", result.SceneHash,
		"size", artifact.FileSize,
		"dims", image.Pt(artifact.Width, artifact.Height),
		"ops", result.Stats.OpCount)
	return result, nil
}

// loadImages fetches every image the scene's placements reference, keyed by
// asset id. URL resolution honors each placement's useOriginalUrl override.
func (r *Runner) loadImages(ctx context.Context, opts Options, loader *assets.Loader) map[string]image.Image {
	index := assets.Index(opts.Assets)
	images := make(map[string]image.Image, len(opts.Scene.Placements))

	for _, p := range opts.Scene.Placements {
		if _, done := images[p.AssetID]; done {
			continue
		}
		a, ok := index[p.AssetID]
		if !ok {
			continue
		}
		url := a.ResolveURL(p.UseOriginalURL)
		im, err := loader.Load(ctx, url)
		if err != nil {
			r.Logger.Warn("skipping placement asset", "asset", p.AssetID, "err", err)
			continue
		}
		images[p.AssetID] = im
	}
	return images
}

// rehydrate rebuilds an artifact from cached bytes. Pixel dimensions come
// from the scene geometry, which the cache key already pins.
func (r *Runner) rehydrate(data []byte, opts Options) *sink.Artifact {
	compiled := render.Compile(scene.Scene{Context: opts.Scene.Context}, nil, render.Options{Scale: opts.Scale, Canvas: opts.Canvas})
	art, err := sink.FromEncoded(data, opts.Format, compiled.Width, compiled.Height)
	if err != nil {
		return nil
	}
	return art
}
