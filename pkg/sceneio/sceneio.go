// Package sceneio reads and writes scene documents: the versioned JSON
// envelope bundling a scene with the media assets it references.
package sceneio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/creatorlab/canvas/pkg/assets"
	"github.com/creatorlab/canvas/pkg/errors"
	"github.com/creatorlab/canvas/pkg/scene"
)

// Version is the current document schema version. Documents without a
// version field read as version 1.
const Version = 1

// Document is the on-disk scene format.
type Document struct {
	Version    int                 `json:"version"`
	Context    string              `json:"context"`
	Background string              `json:"background,omitempty"`
	Placements []scene.Placement   `json:"placements"`
	Elements   []scene.Element     `json:"elements,omitempty"`
	Assets     []assets.MediaAsset `json:"assets,omitempty"`
}

// Scene extracts the composition state from the document.
func (d Document) Scene() scene.Scene {
	return scene.Scene{
		Context:    d.Context,
		Background: d.Background,
		Placements: d.Placements,
		Elements:   d.Elements,
	}
}

// FromScene wraps a scene and its asset records into a current-version
// document.
func FromScene(s scene.Scene, media []assets.MediaAsset) Document {
	return Document{
		Version:    Version,
		Context:    s.Context,
		Background: s.Background,
		Placements: s.Placements,
		Elements:   s.Elements,
		Assets:     media,
	}
}

// Decode reads and validates a document.
func Decode(r io.Reader) (Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidScene, err, "parsing scene document")
	}
	if err := Validate(d); err != nil {
		return Document{}, err
	}
	return d, nil
}

// Encode writes the document as indented JSON.
func Encode(w io.Writer, d Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(errors.ErrCodeEncode, err, "writing scene document")
	}
	return nil
}

// Load reads a document from a file.
func Load(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file not found: %s", path)
		}
		return Document{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "opening scene file %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// Save writes a document to a file.
func Save(path string, d Document) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "creating scene file %s", path)
	}
	if err := Encode(f, d); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Validate checks the document's enumerated fields. Geometry is not checked
// here: out-of-range percents are clamped downstream, never rejected.
func Validate(d Document) error {
	if d.Version > Version {
		return errors.New(errors.ErrCodeInvalidScene, "unsupported document version %d (newest supported: %d)", d.Version, Version)
	}
	assetIDs := make(map[string]bool, len(d.Assets))
	for _, a := range d.Assets {
		if a.ID == "" {
			return errors.New(errors.ErrCodeInvalidScene, "asset with empty id")
		}
		if assetIDs[a.ID] {
			return errors.New(errors.ErrCodeInvalidScene, "duplicate asset id %q", a.ID)
		}
		assetIDs[a.ID] = true
	}

	seen := make(map[string]bool, len(d.Placements))
	for i, p := range d.Placements {
		if p.ID != "" && seen[p.ID] {
			return errors.New(errors.ErrCodeInvalidScene, "duplicate placement id %q", p.ID)
		}
		seen[p.ID] = true
		if p.AssetID == "" {
			return errors.New(errors.ErrCodeInvalidScene, "placement %d has no asset id", i)
		}
		if p.FitMode != "" && !scene.ValidFitModes[p.FitMode] {
			return errors.New(errors.ErrCodeInvalidScene, "placement %q: unknown fit mode %q", p.ID, p.FitMode)
		}
		if p.Size.Unit != "" && p.Size.Unit != scene.UnitPercent {
			return errors.New(errors.ErrCodeInvalidScene, "placement %q: unknown unit %q", p.ID, p.Size.Unit)
		}
		if len(d.Assets) > 0 && !assetIDs[p.AssetID] {
			return errors.New(errors.ErrCodeInvalidScene, "placement %q references unknown asset %q", p.ID, p.AssetID)
		}
	}

	for _, e := range d.Elements {
		if !scene.ValidElementTypes[e.Type] {
			return errors.New(errors.ErrCodeInvalidScene, "element %q: unknown type %q", e.ID, e.Type)
		}
	}
	return nil
}
