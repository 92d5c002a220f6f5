package cache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func testBackends(t *testing.T) map[string]Cache {
	t.Helper()
	file, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	return map[string]Cache{
		"memory": NewMemoryCache(),
		"file":   file,
	}
}

func TestCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, c := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer c.Close()

			if err := c.Set(ctx, "k", []byte("value"), 0); err != nil {
				t.Fatalf("Set: %v", err)
			}

			data, hit, err := c.Get(ctx, "k")
			if err != nil || !hit {
				t.Fatalf("Get: hit=%v err=%v", hit, err)
			}
			if !bytes.Equal(data, []byte("value")) {
				t.Errorf("Get = %q, want %q", data, "value")
			}
		})
	}
}

func TestCacheMiss(t *testing.T) {
	ctx := context.Background()
	for name, c := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer c.Close()
			_, hit, err := c.Get(ctx, "absent")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if hit {
				t.Error("hit = true for absent key")
			}
		})
	}
}

func TestCacheExpiry(t *testing.T) {
	ctx := context.Background()
	for name, c := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer c.Close()
			if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
				t.Fatalf("Set: %v", err)
			}
			time.Sleep(5 * time.Millisecond)
			_, hit, err := c.Get(ctx, "k")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if hit {
				t.Error("expired entry still hit")
			}
		})
	}
}

func TestCacheDelete(t *testing.T) {
	ctx := context.Background()
	for name, c := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer c.Close()
			_ = c.Set(ctx, "k", []byte("v"), 0)
			if err := c.Delete(ctx, "k"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, hit, _ := c.Get(ctx, "k"); hit {
				t.Error("deleted entry still hit")
			}
			// Deleting again is not an error.
			if err := c.Delete(ctx, "k"); err != nil {
				t.Errorf("Delete missing key: %v", err)
			}
		})
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("NullCache returned a hit")
	}
}

func TestKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	a := k.AssetKey("https://cdn.example.com/a.png")
	b := k.AssetKey("https://cdn.example.com/b.png")
	if a == b {
		t.Error("different URLs produced the same asset key")
	}
	if a != k.AssetKey("https://cdn.example.com/a.png") {
		t.Error("asset key is not deterministic")
	}

	opts := ArtifactKeyOpts{Format: "png", Scale: 2, Quality: 90}
	if k.ArtifactKey("h1", opts) == k.ArtifactKey("h2", opts) {
		t.Error("different scene hashes produced the same artifact key")
	}
	if k.ArtifactKey("h1", opts) == k.ArtifactKey("h1", ArtifactKeyOpts{Format: "jpeg", Scale: 2, Quality: 90}) {
		t.Error("different formats produced the same artifact key")
	}
	if k.AssetKey("x") == k.ArtifactKey("x", ArtifactKeyOpts{}) {
		t.Error("asset and artifact namespaces collide")
	}
}

func TestHash(t *testing.T) {
	h := Hash([]byte("data"))
	if len(h) != 64 {
		t.Errorf("Hash length = %d, want 64", len(h))
	}
	if h != Hash([]byte("data")) {
		t.Error("Hash is not deterministic")
	}
}
