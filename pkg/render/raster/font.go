package raster

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/creatorlab/canvas/pkg/errors"
)

var (
	fontOnce   sync.Once
	fontSource *opentype.Font
	fontErr    error

	faceMu sync.Mutex
	faces  = map[float64]font.Face{}
)

// face returns a Go Regular face at the given pixel size. Faces are cached
// per size; text at repeated sizes is the common case.
func face(size float64) (font.Face, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = opentype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, errors.Wrap(errors.ErrCodeConfig, fontErr, "parsing embedded font")
	}

	faceMu.Lock()
	defer faceMu.Unlock()
	if f, ok := faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(fontSource, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfig, err, "building %gpx font face", size)
	}
	faces[size] = f
	return f, nil
}
