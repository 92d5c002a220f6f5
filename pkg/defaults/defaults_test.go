package defaults

import (
	"testing"

	"github.com/creatorlab/canvas/pkg/scene"
)

var testDims = scene.Dimensions{Width: 1280, Height: 720}

func TestSize(t *testing.T) {
	tests := []struct {
		name    string
		role    Role
		context string
		want    scene.Size
	}{
		{
			name:    "context-specific entry",
			role:    RoleLogo,
			context: "youtube_thumbnail",
			want:    scene.Size{Width: 18, Height: 18, Unit: scene.UnitPercent},
		},
		{
			name:    "role default fallback",
			role:    RoleLogo,
			context: "instagram_post",
			want:    scene.Size{Width: 15, Height: 15, Unit: scene.UnitPercent},
		},
		{
			name:    "background fills canvas",
			role:    RoleBackground,
			context: "anything",
			want:    scene.Size{Width: 100, Height: 100, Unit: scene.UnitPercent},
		},
		{
			name:    "unknown role global default",
			role:    Role("sticker"),
			context: "instagram_post",
			want:    scene.Size{Width: 20, Height: 20, Unit: scene.UnitPercent},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Size(tt.role, tt.context); got != tt.want {
				t.Errorf("Size(%q, %q) = %+v, want %+v", tt.role, tt.context, got, tt.want)
			}
		})
	}
}

func TestPositionEmptyCanvasReturnsTableDefault(t *testing.T) {
	got := Position(RoleLogo, nil, testDims)
	if got.X != 85 || got.Y != 15 {
		t.Errorf("Position = %v,%v, want table default 85,15", got.X, got.Y)
	}
}

func TestPositionUnknownRoleCenters(t *testing.T) {
	got := Position(Role("sticker"), nil, testDims)
	if got.X != 50 || got.Y != 50 {
		t.Errorf("Position = %v,%v, want 50,50", got.X, got.Y)
	}
}

func TestPositionAvoidsOccupiedDefault(t *testing.T) {
	existing := []scene.Placement{{
		ID:       "blocker",
		Position: scene.Position{X: 85, Y: 15},
		Size:     scene.Size{Width: 30, Height: 30},
	}}

	got := Position(RoleLogo, existing, testDims)
	if got.X == 85 && got.Y == 15 {
		t.Error("Position kept the occupied default")
	}
}

func TestPositionDegradesToDefaultWhenCrowded(t *testing.T) {
	// Full-canvas blocker: nothing is free, so the table default comes back.
	existing := []scene.Placement{{
		ID:       "bg",
		Position: scene.Position{X: 50, Y: 50},
		Size:     scene.Size{Width: 100, Height: 100},
	}}

	got := Position(RoleText, existing, testDims)
	if got.X != 50 || got.Y != 80 {
		t.Errorf("Position = %v,%v, want degraded default 50,80", got.X, got.Y)
	}
}

func TestZIndex(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		existing []scene.Placement
		want     int
	}{
		{
			name:     "empty band uses baseline",
			role:     RoleLogo,
			existing: nil,
			want:     20,
		},
		{
			name: "stacks above same role",
			role: RoleLogo,
			existing: []scene.Placement{
				{ID: "a", ZIndex: 20},
				{ID: "b", ZIndex: 22},
			},
			want: 23,
		},
		{
			name: "ignores other bands",
			role: RoleCharacter,
			existing: []scene.Placement{
				{ID: "watermark", ZIndex: 50},
				{ID: "character", ZIndex: 11},
			},
			want: 12,
		},
		{
			name: "unknown role above global max",
			role: Role("sticker"),
			existing: []scene.Placement{
				{ID: "a", ZIndex: 7},
				{ID: "b", ZIndex: 31},
			},
			want: 32,
		},
		{
			name:     "background starts at zero",
			role:     RoleBackground,
			existing: []scene.Placement{{ID: "text", ZIndex: 30}},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ZIndex(tt.role, tt.existing); got != tt.want {
				t.Errorf("ZIndex = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPlacementComposes(t *testing.T) {
	existing := []scene.Placement{{
		ID:       "bg",
		Position: scene.Position{X: 50, Y: 50},
		Size:     scene.Size{Width: 100, Height: 100},
		ZIndex:   0,
	}}

	p := Placement("asset-1", RoleLogo, "youtube_thumbnail", existing, testDims)
	if p.AssetID != "asset-1" {
		t.Errorf("AssetID = %s", p.AssetID)
	}
	if p.Size.Width != 18 {
		t.Errorf("width = %v, want 18", p.Size.Width)
	}
	if p.ZIndex != 20 {
		t.Errorf("ZIndex = %d, want 20", p.ZIndex)
	}
	if p.Opacity != 100 {
		t.Errorf("Opacity = %v, want 100", p.Opacity)
	}
	// Collision against a full-canvas background degrades to the table
	// default rather than failing.
	if p.Position.X != 85 || p.Position.Y != 15 {
		t.Errorf("position = %v,%v, want 85,15", p.Position.X, p.Position.Y)
	}
}
