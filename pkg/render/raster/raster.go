// Package raster interprets compiled draw instructions into pixels. It is
// the only render stage that touches a graphics API; everything above it
// works on pure op lists.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"

	"github.com/creatorlab/canvas/pkg/errors"
	"github.com/creatorlab/canvas/pkg/render"
)

// Rasterize paints a compiled scene onto a fresh canvas. A non-positive
// canvas size is a configuration error fatal to this call; individual ops
// never are.
func Rasterize(res render.Result) (image.Image, error) {
	if res.Width <= 0 || res.Height <= 0 {
		return nil, errors.New(errors.ErrCodeConfig, "cannot allocate %dx%d canvas", res.Width, res.Height)
	}
	dc := gg.NewContext(res.Width, res.Height)

	for _, op := range res.Ops {
		switch o := op.(type) {
		case render.FillBackground:
			dc.SetHexColor(o.Color)
			dc.Clear()
		case render.DrawImage:
			drawImage(dc, o)
		case render.DrawRect:
			dc.DrawRectangle(o.Box.Left, o.Box.Top, o.Box.Width(), o.Box.Height())
			paintShape(dc, o.Color, o.Opacity, o.Fill, o.StrokeWidth)
		case render.DrawEllipse:
			dc.DrawEllipse(o.Box.CenterX(), o.Box.CenterY(), o.Box.Width()/2, o.Box.Height()/2)
			paintShape(dc, o.Color, o.Opacity, o.Fill, o.StrokeWidth)
		case render.DrawLine:
			drawLine(dc, o)
		case render.DrawPath:
			if len(o.Points) < 2 {
				continue
			}
			dc.MoveTo(o.Points[0].X, o.Points[0].Y)
			for _, pt := range o.Points[1:] {
				dc.LineTo(pt.X, pt.Y)
			}
			paintShape(dc, o.Color, o.Opacity, false, o.StrokeWidth)
		case render.DrawText:
			if err := drawText(dc, o); err != nil {
				return nil, err
			}
		}
	}
	return dc.Image(), nil
}

// drawImage fits the source into its destination box, then paints it
// rotated about the box center with the op's alpha.
func drawImage(dc *gg.Context, o render.DrawImage) {
	w := int(math.Round(o.Box.Width()))
	h := int(math.Round(o.Box.Height()))
	if w <= 0 || h <= 0 {
		return
	}

	img := fit(o.Image, w, h, o.Fit)
	if o.Opacity < 1 {
		img = fade(img, o.Opacity)
	}

	cx, cy := o.Box.CenterX(), o.Box.CenterY()
	dc.Push()
	if o.Rotation != 0 {
		dc.RotateAbout(gg.Radians(o.Rotation), cx, cy)
	}
	dc.DrawImageAnchored(img, int(math.Round(cx)), int(math.Round(cy)), 0.5, 0.5)
	dc.Pop()
}

func drawLine(dc *gg.Context, o render.DrawLine) {
	dc.MoveTo(o.From.X, o.From.Y)
	dc.LineTo(o.To.X, o.To.Y)
	paintShape(dc, o.Color, o.Opacity, false, o.StrokeWidth)

	if !o.Arrow {
		return
	}
	// Two barbs swept back from the tip.
	angle := math.Atan2(o.To.Y-o.From.Y, o.To.X-o.From.X)
	length := math.Max(10, o.StrokeWidth*4)
	for _, sweep := range []float64{angle + math.Pi*5/6, angle - math.Pi*5/6} {
		dc.MoveTo(o.To.X, o.To.Y)
		dc.LineTo(o.To.X+length*math.Cos(sweep), o.To.Y+length*math.Sin(sweep))
	}
	paintShape(dc, o.Color, o.Opacity, false, o.StrokeWidth)
}

func drawText(dc *gg.Context, o render.DrawText) error {
	f, err := face(o.FontSize)
	if err != nil {
		return err
	}
	dc.SetFontFace(f)
	setColor(dc, o.Color, o.Opacity)
	dc.DrawStringAnchored(o.Text, o.X, o.Y, 0.5, 0.5)
	return nil
}

func paintShape(dc *gg.Context, hex string, opacity float64, fill bool, strokeWidth float64) {
	setColor(dc, hex, opacity)
	if fill {
		dc.Fill()
		return
	}
	dc.SetLineWidth(strokeWidth)
	dc.Stroke()
}

func setColor(dc *gg.Context, hex string, opacity float64) {
	r, g, b := hexRGB(hex)
	dc.SetRGBA(r, g, b, opacity)
}

// hexRGB parses #rgb and #rrggbb. Unparseable input paints black rather
// than failing the render.
func hexRGB(s string) (r, g, b float64) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	hexByte := func(hi, lo byte) (float64, bool) {
		v := 0
		for _, c := range []byte{hi, lo} {
			v <<= 4
			switch {
			case c >= '0' && c <= '9':
				v += int(c - '0')
			case c >= 'a' && c <= 'f':
				v += int(c-'a') + 10
			case c >= 'A' && c <= 'F':
				v += int(c-'A') + 10
			default:
				return 0, false
			}
		}
		return float64(v) / 255, true
	}
	switch len(s) {
	case 3:
		var ok bool
		if r, ok = hexByte(s[0], s[0]); !ok {
			return 0, 0, 0
		}
		if g, ok = hexByte(s[1], s[1]); !ok {
			return 0, 0, 0
		}
		if b, ok = hexByte(s[2], s[2]); !ok {
			return 0, 0, 0
		}
		return r, g, b
	case 6:
		var ok bool
		if r, ok = hexByte(s[0], s[1]); !ok {
			return 0, 0, 0
		}
		if g, ok = hexByte(s[2], s[3]); !ok {
			return 0, 0, 0
		}
		if b, ok = hexByte(s[4], s[5]); !ok {
			return 0, 0, 0
		}
		return r, g, b
	}
	return 0, 0, 0
}

// fade pre-composites a uniform alpha onto the image so the plain draw path
// can be shared between opaque and translucent sources.
func fade(img image.Image, opacity float64) image.Image {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	mask := &image.Uniform{C: color.Alpha{A: uint8(math.Round(opacity * 255))}}
	draw.DrawMask(out, bounds, img, bounds.Min, mask, image.Point{}, draw.Over)
	return out
}
