package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/creatorlab/canvas/pkg/cache"
	"github.com/creatorlab/canvas/pkg/errors"
)

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	im := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			im.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, im); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func imageServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	data := pngBytes(t, 4, 4, color.RGBA{R: 255, A: 255})
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write(data)
	}))
}

func TestLoadDecodes(t *testing.T) {
	var hits atomic.Int32
	srv := imageServer(t, &hits)
	defer srv.Close()

	l := NewLoader(WithHTTPClient(srv.Client()))
	im, err := l.Load(context.Background(), srv.URL+"/a.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := im.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Errorf("bounds = %v", b)
	}
}

func TestLoadMemoizes(t *testing.T) {
	var hits atomic.Int32
	srv := imageServer(t, &hits)
	defer srv.Close()

	l := NewLoader(WithHTTPClient(srv.Client()))
	url := srv.URL + "/a.png"
	ctx := context.Background()

	if _, err := l.Load(ctx, url); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := l.Load(ctx, url); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if hits.Load() != 1 {
		t.Errorf("server hits = %d, want 1 (memoized)", hits.Load())
	}
}

func TestFreshLoaderBypassesCaches(t *testing.T) {
	var hits atomic.Int32
	srv := imageServer(t, &hits)
	defer srv.Close()

	c := cache.NewMemoryCache()
	l := NewLoader(WithHTTPClient(srv.Client()), WithCache(c), Fresh())
	url := srv.URL + "/a.png"
	ctx := context.Background()

	if _, err := l.Load(ctx, url); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := l.Load(ctx, url); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if hits.Load() != 2 {
		t.Errorf("server hits = %d, want 2 (fresh loads)", hits.Load())
	}
	// Fresh loads still write through for later previews.
	if c.Len() == 0 {
		t.Error("fresh load did not write through to the byte cache")
	}
}

func TestLoadUsesByteCache(t *testing.T) {
	var hits atomic.Int32
	srv := imageServer(t, &hits)
	defer srv.Close()

	c := cache.NewMemoryCache()
	url := srv.URL + "/a.png"
	ctx := context.Background()

	first := NewLoader(WithHTTPClient(srv.Client()), WithCache(c))
	if _, err := first.Load(ctx, url); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// A second loader sharing the cache decodes from cached bytes.
	second := NewLoader(WithHTTPClient(srv.Client()), WithCache(c))
	if _, err := second.Load(ctx, url); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if hits.Load() != 1 {
		t.Errorf("server hits = %d, want 1 (byte cache)", hits.Load())
	}
}

func TestLoadErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad-image" {
			_, _ = w.Write([]byte("not an image"))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	l := NewLoader(WithHTTPClient(srv.Client()))
	ctx := context.Background()

	_, err := l.Load(ctx, srv.URL+"/missing")
	if !errors.Is(err, errors.ErrCodeAssetLoad) {
		t.Errorf("missing asset err = %v, want ASSET_LOAD", err)
	}

	_, err = l.Load(ctx, srv.URL+"/bad-image")
	if !errors.Is(err, errors.ErrCodeAssetDecode) {
		t.Errorf("bad image err = %v, want ASSET_DECODE", err)
	}

	_, err = l.Load(ctx, "")
	if !errors.Is(err, errors.ErrCodeAssetLoad) {
		t.Errorf("empty url err = %v, want ASSET_LOAD", err)
	}
}

func TestLoadAllSkipsFailures(t *testing.T) {
	var hits atomic.Int32
	srv := imageServer(t, &hits)
	defer srv.Close()

	l := NewLoader(WithHTTPClient(srv.Client()))
	good := srv.URL + "/a.png"
	images := l.LoadAll(context.Background(), []string{good, "http://127.0.0.1:1/unreachable.png", good})

	if len(images) != 1 {
		t.Fatalf("len(images) = %d, want 1", len(images))
	}
	if _, ok := images[good]; !ok {
		t.Error("good URL missing from result")
	}
}
