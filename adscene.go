package adscene

import (
	"image/color"
	"math"
)

// Point is an integer 2D position in scene space. The origin is the top-left
// corner of the main layer, with Y increasing downward.
type Point struct {
	X, Y int
}

// Rect is an integer axis-aligned rectangle used for viewports and region
// bounds.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint for static entities.
var ColorWhite = Color{1, 1, 1, 1}

// NRGBA converts c to a color.Color usable by ebiten and image/draw.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Alpha values are packed ARGB, as stored on regions.
const (
	AlphaOpaque    uint32 = 0xFFFFFFFF // fully opaque white, the default tint
	AlphaDebugMiss uint32 = 0xFFFF0000 // red, reported for uncovered points in debug mode
)

// DefaultScale is the depth scale (in percent) used when no scale level or
// region zoom applies.
const DefaultScale = 100.0

// maxDist is the "infinite" distance of an unreached path point.
const maxDist = math.MaxInt

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return max(lo, min(v, hi))
}
