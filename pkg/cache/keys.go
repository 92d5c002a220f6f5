package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Keyer generates cache keys for the two kinds of entries the engine stores.
type Keyer interface {
	// AssetKey generates a key for fetched asset image bytes.
	AssetKey(url string) string

	// ArtifactKey generates a key for a rendered export artifact. sceneHash
	// is the content hash of the serialized scene.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts carries every render option that changes artifact bytes.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Scale      float64 `json:"scale"`
	Quality    int     `json:"quality"`
	Background string  `json:"background"`
	Width      int     `json:"width,omitempty"`  // canvas dimension override
	Height     int     `json:"height,omitempty"` // canvas dimension override
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// AssetKey generates a key for fetched asset bytes.
func (DefaultKeyer) AssetKey(url string) string {
	return hashKey("asset", url)
}

// ArtifactKey generates a key for a rendered artifact.
func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
