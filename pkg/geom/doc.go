// Package geom provides the percent-based coordinate model shared by every
// canvas component.
//
// All persisted geometry is expressed in percent of the canvas so that a
// composition stays valid when it is re-targeted at a different pixel size
// (for example, reusing a template at a larger export resolution). The
// conversions here are the single place where percent and pixel space meet:
//
//	px := geom.PercentToPixels(50, 1280) // 640
//	pc := geom.PixelsToPercent(640, 1280) // 50.0
//
// PixelsToPercent rounds to one decimal place so that repeated drag
// conversions do not accumulate sub-pixel jitter.
//
// The package also provides [Rect], the axis-aligned pixel box used by the
// collision detector and the render instruction compiler.
package geom
