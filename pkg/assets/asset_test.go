package assets

import "testing"

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name        string
		asset       MediaAsset
		useOriginal bool
		want        string
	}{
		{
			name: "processed wins",
			asset: MediaAsset{
				URL:          "https://cdn/orig.png",
				ThumbnailURL: "https://cdn/thumb.png",
				ProcessedURL: "https://cdn/processed.png",
			},
			want: "https://cdn/processed.png",
		},
		{
			name: "useOriginal skips processed",
			asset: MediaAsset{
				URL:          "https://cdn/orig.png",
				ThumbnailURL: "https://cdn/thumb.png",
				ProcessedURL: "https://cdn/processed.png",
			},
			useOriginal: true,
			want:        "https://cdn/thumb.png",
		},
		{
			name: "thumbnail before original",
			asset: MediaAsset{
				URL:          "https://cdn/orig.png",
				ThumbnailURL: "https://cdn/thumb.png",
			},
			want: "https://cdn/thumb.png",
		},
		{
			name:  "original as last resort",
			asset: MediaAsset{URL: "https://cdn/orig.png"},
			want:  "https://cdn/orig.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.asset.ResolveURL(tt.useOriginal); got != tt.want {
				t.Errorf("ResolveURL(%v) = %q, want %q", tt.useOriginal, got, tt.want)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	list := []MediaAsset{
		{ID: "a", URL: "https://cdn/a.png"},
		{ID: "b", URL: "https://cdn/b.png"},
	}
	byID := Index(list)
	if len(byID) != 2 {
		t.Fatalf("len = %d, want 2", len(byID))
	}
	if byID["a"].URL != "https://cdn/a.png" {
		t.Errorf("byID[a] = %+v", byID["a"])
	}
}
