package cli

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/creatorlab/canvas/pkg/assets"
	"github.com/creatorlab/canvas/pkg/errors"
	"github.com/creatorlab/canvas/pkg/template"
)

func TestRootCommandWiring(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"render", "template", "dimensions", "serve", "cache"}
	have := make(map[string]bool)
	for _, cmd := range root.Commands() {
		have[cmd.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.Use != "canvas" {
		t.Errorf("root use = %q", root.Use)
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}

func TestLoadAssets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "assets.json")
	media := []assets.MediaAsset{
		{ID: "a1", URL: "https://cdn.example.com/a.png", AssetType: "logo"},
	}
	data, _ := json.Marshal(media)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := loadAssets(path)
	if err != nil {
		t.Fatalf("loadAssets: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a1" {
		t.Errorf("got %+v", got)
	}

	if _, err := loadAssets(filepath.Join(dir, "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file err = %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadAssets(bad); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("malformed file err = %v", err)
	}
}

func TestSlotPickerChoicesRespectRolesAndUse(t *testing.T) {
	tmpl, err := template.ByID("hero-banner")
	if err != nil {
		t.Fatal(err)
	}
	media := []assets.MediaAsset{
		{ID: "bg1", AssetType: "background"},
		{ID: "ch1", AssetType: "character"},
		{ID: "lg1", AssetType: "logo"},
	}
	m := newSlotPickerModel(tmpl, media)

	// First slot accepts backgrounds only.
	choices := m.choices()
	if len(choices) != 1 || choices[0].ID != "bg1" {
		t.Errorf("background slot choices = %+v", choices)
	}

	m.used["bg1"] = true
	if got := m.choices(); len(got) != 0 {
		t.Errorf("used asset still offered: %+v", got)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{3 << 20, "3.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
