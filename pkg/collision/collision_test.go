package collision

import (
	"testing"

	"github.com/creatorlab/canvas/pkg/scene"
)

var testDims = scene.Dimensions{Width: 1280, Height: 720}

func box(id string, x, y, w, h float64) scene.Placement {
	return scene.Placement{
		ID:       id,
		Position: scene.Position{X: x, Y: y, Anchor: scene.AnchorCenter},
		Size:     scene.Size{Width: w, Height: h, Unit: scene.UnitPercent},
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		candidate scene.Placement
		existing  []scene.Placement
		wantHit   bool
		wantIDs   []string
	}{
		{
			name:      "no placements",
			candidate: box("c", 50, 50, 20, 20),
			existing:  nil,
			wantHit:   false,
		},
		{
			name:      "clear overlap",
			candidate: box("c", 50, 50, 20, 20),
			existing:  []scene.Placement{box("a", 55, 55, 20, 20)},
			wantHit:   true,
			wantIDs:   []string{"a"},
		},
		{
			name:      "far apart",
			candidate: box("c", 10, 10, 10, 10),
			existing:  []scene.Placement{box("a", 90, 90, 10, 10)},
			wantHit:   false,
		},
		{
			name:      "multiple hits",
			candidate: box("c", 50, 50, 60, 60),
			existing:  []scene.Placement{box("a", 40, 40, 20, 20), box("b", 60, 60, 20, 20)},
			wantHit:   true,
			wantIDs:   []string{"a", "b"},
		},
		{
			name:      "ignores itself",
			candidate: box("a", 50, 50, 20, 20),
			existing:  []scene.Placement{box("a", 50, 50, 20, 20)},
			wantHit:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(tt.candidate, tt.existing, testDims)
			if got.Colliding != tt.wantHit {
				t.Errorf("Colliding = %v, want %v", got.Colliding, tt.wantHit)
			}
			if len(got.IDs) != len(tt.wantIDs) {
				t.Fatalf("IDs = %v, want %v", got.IDs, tt.wantIDs)
			}
			for i, id := range tt.wantIDs {
				if got.IDs[i] != id {
					t.Errorf("IDs[%d] = %s, want %s", i, got.IDs[i], id)
				}
			}
		})
	}
}

func TestSuggestPositionFirstFree(t *testing.T) {
	// Center is occupied; the first edge midpoint (top) should win.
	existing := []scene.Placement{box("center", 50, 50, 30, 30)}
	got := SuggestPosition(box("c", 50, 50, 20, 20), existing, testDims)

	if got == nil {
		t.Fatal("SuggestPosition returned nil")
	}
	if got.X != 50 || got.Y != 15 {
		t.Errorf("suggestion = %v,%v, want 50,15", got.X, got.Y)
	}
}

func TestSuggestPositionNilWhenCrowded(t *testing.T) {
	// One placement covering the whole canvas defeats every candidate.
	existing := []scene.Placement{box("bg", 50, 50, 100, 100)}
	if got := SuggestPosition(box("c", 50, 50, 20, 20), existing, testDims); got != nil {
		t.Errorf("SuggestPosition = %v, want nil", got)
	}
}

func TestSuggestPositionEmptyCanvasKeepsCenter(t *testing.T) {
	got := SuggestPosition(box("c", 10, 10, 20, 20), nil, testDims)
	if got == nil || got.X != 50 || got.Y != 50 {
		t.Errorf("suggestion = %v, want center", got)
	}
}
