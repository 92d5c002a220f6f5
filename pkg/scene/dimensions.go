package scene

import (
	"slices"
)

// Dimensions is the pixel size of a canvas context.
type Dimensions struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Label  string `json:"label"`
}

// DefaultDimensions is used for unrecognized canvas contexts.
var DefaultDimensions = Dimensions{Width: 1280, Height: 720, Label: "Default (16:9)"}

// dimensionTable maps canvas context strings to fixed pixel dimensions.
// The table is static; callers never mutate it.
var dimensionTable = map[string]Dimensions{
	"instagram_post":    {Width: 1080, Height: 1080, Label: "Instagram Post"},
	"instagram_story":   {Width: 1080, Height: 1920, Label: "Instagram Story"},
	"facebook_post":     {Width: 1200, Height: 630, Label: "Facebook Post"},
	"twitter_post":      {Width: 1600, Height: 900, Label: "Twitter Post"},
	"youtube_thumbnail": {Width: 1280, Height: 720, Label: "YouTube Thumbnail"},
	"linkedin_banner":   {Width: 1584, Height: 396, Label: "LinkedIn Banner"},
	"presentation":      {Width: 1920, Height: 1080, Label: "Presentation Slide"},
	"square_ad":         {Width: 1080, Height: 1080, Label: "Square Ad"},
}

// DimensionsFor returns the pixel dimensions for a canvas context, falling
// back to DefaultDimensions for unknown keys.
func DimensionsFor(canvasContext string) Dimensions {
	if d, ok := dimensionTable[canvasContext]; ok {
		return d
	}
	return DefaultDimensions
}

// Contexts returns the known canvas context keys in sorted order.
func Contexts() []string {
	keys := make([]string, 0, len(dimensionTable))
	for k := range dimensionTable {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
