package sink

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"github.com/creatorlab/canvas/pkg/errors"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestNormalizeFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", FormatPNG, false},
		{"png", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{"jpeg", FormatJPEG, false},
		{"jpg", FormatJPEG, false},
		{" jpeg ", FormatJPEG, false},
		{"webp", "", true},
		{"gif", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeFormat(tt.in)
		if tt.wantErr {
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("NormalizeFormat(%q) err = %v, want invalid format", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("NormalizeFormat(%q) = %q, %v, want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestEncodePNG(t *testing.T) {
	art, err := Encode(image.NewRGBA(image.Rect(0, 0, 64, 32)), "png", 0)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if art.Format != FormatPNG {
		t.Errorf("format = %q, want png", art.Format)
	}
	if art.Width != 64 || art.Height != 32 {
		t.Errorf("dimensions = %dx%d, want 64x32", art.Width, art.Height)
	}
	if !bytes.HasPrefix(art.Data, pngMagic) {
		t.Error("data is not a PNG stream")
	}
	if art.FileSize != len(art.Data) || art.FileSize == 0 {
		t.Errorf("fileSize = %d, len(data) = %d", art.FileSize, len(art.Data))
	}
	if !strings.HasPrefix(art.DataURL, "data:image/png;base64,") {
		t.Errorf("data URL prefix wrong: %.40s", art.DataURL)
	}
	if art.ExportedAt.IsZero() {
		t.Error("exportedAt not set")
	}
}

func TestEncodeJPEG(t *testing.T) {
	art, err := Encode(image.NewRGBA(image.Rect(0, 0, 16, 16)), "jpg", 75)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if art.Format != FormatJPEG {
		t.Errorf("format = %q, want jpeg", art.Format)
	}
	if len(art.Data) < 2 || art.Data[0] != 0xff || art.Data[1] != 0xd8 {
		t.Error("data is not a JPEG stream")
	}
	if !strings.HasPrefix(art.DataURL, "data:image/jpeg;base64,") {
		t.Errorf("data URL prefix wrong: %.40s", art.DataURL)
	}
}

func TestEncodeRejectsUnknownFormat(t *testing.T) {
	_, err := Encode(image.NewRGBA(image.Rect(0, 0, 1, 1)), "tiff", 0)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want invalid format", err)
	}
}
