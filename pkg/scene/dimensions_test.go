package scene

import "testing"

func TestDimensionsFor(t *testing.T) {
	tests := []struct {
		name    string
		context string
		want    Dimensions
	}{
		{
			name:    "known context",
			context: "youtube_thumbnail",
			want:    Dimensions{Width: 1280, Height: 720, Label: "YouTube Thumbnail"},
		},
		{
			name:    "portrait context",
			context: "instagram_story",
			want:    Dimensions{Width: 1080, Height: 1920, Label: "Instagram Story"},
		},
		{
			name:    "unknown falls back",
			context: "hologram_billboard",
			want:    DefaultDimensions,
		},
		{
			name:    "empty falls back",
			context: "",
			want:    DefaultDimensions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DimensionsFor(tt.context); got != tt.want {
				t.Errorf("DimensionsFor(%q) = %+v, want %+v", tt.context, got, tt.want)
			}
		})
	}
}

func TestContextsSorted(t *testing.T) {
	contexts := Contexts()
	if len(contexts) == 0 {
		t.Fatal("no contexts")
	}
	for i := 1; i < len(contexts); i++ {
		if contexts[i-1] >= contexts[i] {
			t.Errorf("contexts not sorted at %d: %s >= %s", i, contexts[i-1], contexts[i])
		}
	}
}

func TestPixelRect(t *testing.T) {
	p := Placement{
		Position: Position{X: 50, Y: 50},
		Size:     Size{Width: 50, Height: 50},
	}
	dims := Dimensions{Width: 1280, Height: 720}

	r := p.PixelRect(dims, 1)
	if r.CenterX() != 640 || r.CenterY() != 360 {
		t.Errorf("center = %v,%v, want 640,360", r.CenterX(), r.CenterY())
	}
	if r.Width() != 640 || r.Height() != 360 {
		t.Errorf("size = %vx%v, want 640x360", r.Width(), r.Height())
	}

	// Scale applies uniformly.
	r2 := p.PixelRect(dims, 2)
	if r2.Width() != 1280 || r2.Height() != 720 {
		t.Errorf("scaled size = %vx%v, want 1280x720", r2.Width(), r2.Height())
	}
}
