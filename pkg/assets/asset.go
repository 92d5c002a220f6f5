// Package assets models the read-only media asset records the canvas engine
// consumes, and loads their image data.
//
// Asset records are supplied by an external media library; the engine never
// creates, mutates, or persists them. The [Loader] is the only component
// that touches the network: it fetches image bytes with retry, caches them
// through pkg/cache, and memoizes decoded images for preview rendering.
package assets

// MediaAsset is a read-only asset record from the media library.
type MediaAsset struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	ProcessedURL string `json:"processedUrl,omitempty"` // background-removed variant
	AssetType    string `json:"assetType"`              // semantic role: background, character, logo, ...
	DisplayName  string `json:"displayName,omitempty"`
}

// ResolveURL picks the source URL to draw. Precedence: the processed
// (background-removed) variant unless useOriginal forces skipping it, then
// the thumbnail, then the original upload.
func (a MediaAsset) ResolveURL(useOriginal bool) string {
	if !useOriginal && a.ProcessedURL != "" {
		return a.ProcessedURL
	}
	if a.ThumbnailURL != "" {
		return a.ThumbnailURL
	}
	return a.URL
}

// Index builds an id → asset lookup from a list of records.
func Index(list []MediaAsset) map[string]MediaAsset {
	byID := make(map[string]MediaAsset, len(list))
	for _, a := range list {
		byID[a.ID] = a
	}
	return byID
}
