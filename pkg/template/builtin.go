package template

import (
	"github.com/creatorlab/canvas/pkg/errors"
	"github.com/creatorlab/canvas/pkg/scene"
)

// builtins are the stock layouts shipped with the engine, keyed by ID.
var builtins = []Template{
	{
		ID:      "hero-banner",
		Name:    "Hero Banner",
		Context: "youtube_thumbnail",
		Slots: []Slot{
			{
				ID:             "background",
				Name:           "Background",
				Position:       scene.Position{X: 50, Y: 50, Anchor: scene.AnchorCenter},
				Size:           scene.Size{Width: 100, Height: 100, Unit: scene.UnitPercent},
				ZIndex:         0,
				DefaultOpacity: 100,
				AutoFit:        scene.FitCover,
				AcceptedTypes:  []string{"background"},
				Required:       true,
			},
			{
				ID:             "subject",
				Name:           "Subject",
				Position:       scene.Position{X: 35, Y: 55, Anchor: scene.AnchorCenter},
				Size:           scene.Size{Width: 45, Height: 70, Unit: scene.UnitPercent},
				ZIndex:         10,
				DefaultOpacity: 100,
				AutoFit:        scene.FitContain,
				AcceptedTypes:  []string{"character"},
				Required:       true,
			},
			{
				ID:             "logo",
				Name:           "Logo",
				Position:       scene.Position{X: 88, Y: 12, Anchor: scene.AnchorCenter},
				Size:           scene.Size{Width: 16, Height: 16, Unit: scene.UnitPercent},
				ZIndex:         20,
				DefaultOpacity: 100,
				AutoFit:        scene.FitContain,
				AcceptedTypes:  []string{"logo", "icon"},
			},
		},
	},
	{
		ID:      "product-showcase",
		Name:    "Product Showcase",
		Context: "instagram_post",
		Slots: []Slot{
			{
				ID:             "backdrop",
				Name:           "Backdrop",
				Position:       scene.Position{X: 50, Y: 50, Anchor: scene.AnchorCenter},
				Size:           scene.Size{Width: 100, Height: 100, Unit: scene.UnitPercent},
				ZIndex:         0,
				DefaultOpacity: 100,
				AutoFit:        scene.FitCover,
				AcceptedTypes:  []string{"background"},
				Required:       true,
			},
			{
				ID:             "product",
				Name:           "Product",
				Position:       scene.Position{X: 50, Y: 45, Anchor: scene.AnchorCenter},
				Size:           scene.Size{Width: 60, Height: 60, Unit: scene.UnitPercent},
				ZIndex:         10,
				DefaultOpacity: 100,
				AutoFit:        scene.FitContain,
				Required:       true,
			},
			{
				ID:             "brand",
				Name:           "Brand Mark",
				Position:       scene.Position{X: 50, Y: 88, Anchor: scene.AnchorCenter},
				Size:           scene.Size{Width: 20, Height: 10, Unit: scene.UnitPercent},
				ZIndex:         20,
				DefaultOpacity: 90,
				AutoFit:        scene.FitContain,
				AcceptedTypes:  []string{"logo"},
			},
		},
	},
	{
		ID:      "watermarked-story",
		Name:    "Watermarked Story",
		Context: "instagram_story",
		Slots: []Slot{
			{
				ID:             "background",
				Name:           "Background",
				Position:       scene.Position{X: 50, Y: 50, Anchor: scene.AnchorCenter},
				Size:           scene.Size{Width: 100, Height: 100, Unit: scene.UnitPercent},
				ZIndex:         0,
				DefaultOpacity: 100,
				AutoFit:        scene.FitCover,
				AcceptedTypes:  []string{"background"},
				Required:       true,
			},
			{
				ID:             "watermark",
				Name:           "Watermark",
				Position:       scene.Position{X: 88, Y: 94, Anchor: scene.AnchorCenter},
				Size:           scene.Size{Width: 14, Height: 8, Unit: scene.UnitPercent},
				ZIndex:         50,
				DefaultOpacity: 60,
				AutoFit:        scene.FitContain,
				AcceptedTypes:  []string{"watermark", "logo"},
			},
		},
	},
}

// Builtin returns the stock templates.
func Builtin() []Template {
	out := make([]Template, len(builtins))
	copy(out, builtins)
	return out
}

// ByID returns the stock template with the given id.
func ByID(id string) (Template, error) {
	for _, t := range builtins {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, errors.New(errors.ErrCodeTemplateNotFound, "unknown template: %s", id)
}
