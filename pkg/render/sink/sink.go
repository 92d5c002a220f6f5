// Package sink encodes rendered canvases into export artifacts.
package sink

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"image/png"
	"strings"
	"time"

	"github.com/creatorlab/canvas/pkg/errors"
)

// Supported export formats.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 90

// Artifact is a finished export: the encoded bytes plus everything a caller
// needs to hand the image on without re-reading it. Persistence is the
// caller's responsibility.
type Artifact struct {
	Data       []byte    `json:"-"`
	DataURL    string    `json:"dataUrl"`
	Format     string    `json:"format"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	FileSize   int       `json:"fileSize"`
	ExportedAt time.Time `json:"exportedAt"`
}

// NormalizeFormat maps user input to a canonical format name. Empty input
// means PNG.
func NormalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatJPEG, "jpg":
		return FormatJPEG, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported export format: %s", format)
	}
}

// Encode serializes the image at the given format and quality. Quality
// applies to JPEG only; out-of-range values fall back to the default.
func Encode(img image.Image, format string, quality int) (*Artifact, error) {
	format, err := NormalizeFormat(format)
	if err != nil {
		return nil, err
	}
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}

	var buf bytes.Buffer
	switch format {
	case FormatPNG:
		err = png.Encode(&buf, img)
	case FormatJPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality})
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncode, err, "encoding %s export", format)
	}

	bounds := img.Bounds()
	return FromEncoded(buf.Bytes(), format, bounds.Dx(), bounds.Dy())
}

// FromEncoded wraps already-encoded image bytes in an artifact, used when a
// cached export is served without re-rendering.
func FromEncoded(data []byte, format string, width, height int) (*Artifact, error) {
	format, err := NormalizeFormat(format)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New(errors.ErrCodeEncode, "empty encoded image")
	}
	return &Artifact{
		Data:       data,
		DataURL:    "data:image/" + format + ";base64," + base64.StdEncoding.EncodeToString(data),
		Format:     format,
		Width:      width,
		Height:     height,
		FileSize:   len(data),
		ExportedAt: time.Now().UTC(),
	}, nil
}
