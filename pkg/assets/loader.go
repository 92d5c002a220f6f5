package assets

import (
	"bytes"
	"context"
	"image"
	"io"
	"net/http"
	"sync"

	// Decoders for the formats the media library serves.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/charmbracelet/log"

	"github.com/creatorlab/canvas/pkg/cache"
	"github.com/creatorlab/canvas/pkg/errors"
	"github.com/creatorlab/canvas/pkg/httputil"
	"github.com/creatorlab/canvas/pkg/observability"
)

// Loader fetches and decodes asset images.
//
// Two layers of caching apply: fetched bytes go through the configured
// [cache.Cache] (shared across processes when Redis-backed), and decoded
// images are memoized in-process so a preview re-render never re-decodes.
// A fresh Loader bypasses both read paths and reloads every image from its
// source immediately before drawing. This is the export mode: it trades latency for
// guaranteed clean pixel access regardless of what upstream served before.
type Loader struct {
	client *http.Client
	cache  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger
	fresh  bool

	mu   sync.Mutex
	memo map[string]image.Image
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithHTTPClient sets the HTTP client used for fetches.
func WithHTTPClient(c *http.Client) LoaderOption {
	return func(l *Loader) { l.client = c }
}

// WithCache sets the byte cache for fetched images.
func WithCache(c cache.Cache) LoaderOption {
	return func(l *Loader) { l.cache = c }
}

// WithLogger sets the logger for load warnings.
func WithLogger(lg *log.Logger) LoaderOption {
	return func(l *Loader) { l.logger = lg }
}

// Fresh disables both cache read paths so every Load refetches and redecodes.
// Fetched bytes are still written through to the cache for later previews.
func Fresh() LoaderOption {
	return func(l *Loader) { l.fresh = true }
}

// NewLoader creates a Loader. Without options it uses the default HTTP
// client, no byte cache, and a discarded logger.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		client: http.DefaultClient,
		cache:  cache.NewNullCache(),
		keyer:  cache.NewDefaultKeyer(),
		logger: log.NewWithOptions(io.Discard, log.Options{}),
		memo:   make(map[string]image.Image),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the decoded image at url.
func (l *Loader) Load(ctx context.Context, url string) (image.Image, error) {
	if url == "" {
		return nil, errors.New(errors.ErrCodeAssetLoad, "empty asset url")
	}

	if !l.fresh {
		l.mu.Lock()
		im, ok := l.memo[url]
		l.mu.Unlock()
		if ok {
			return im, nil
		}
	}

	data, err := l.fetch(ctx, url)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAssetLoad, err, "fetch %s", url)
	}

	im, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAssetDecode, err, "decode %s", url)
	}

	l.mu.Lock()
	l.memo[url] = im
	l.mu.Unlock()
	return im, nil
}

// LoadAll resolves every URL in order and returns the images that loaded.
// Failures are logged and skipped. A missing image degrades the frame, it
// never aborts the batch.
func (l *Loader) LoadAll(ctx context.Context, urls []string) map[string]image.Image {
	images := make(map[string]image.Image, len(urls))
	for _, url := range urls {
		if _, done := images[url]; done {
			continue
		}
		im, err := l.Load(ctx, url)
		if err != nil {
			l.logger.Warn("skipping asset", "url", url, "err", err)
			continue
		}
		images[url] = im
	}
	return images
}

// fetch returns the raw bytes for url, consulting the byte cache unless the
// loader is fresh.
func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	key := l.keyer.AssetKey(url)

	if !l.fresh {
		if data, hit, err := l.cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "asset")
			return data, nil
		}
		observability.Cache().OnCacheMiss(ctx, "asset")
	}

	data, err := httputil.FetchWithRetry(ctx, l.client, url)
	if err != nil {
		return nil, err
	}

	if err := l.cache.Set(ctx, key, data, cache.TTLAsset); err == nil {
		observability.Cache().OnCacheSet(ctx, "asset", len(data))
	}
	return data, nil
}
