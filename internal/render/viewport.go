package render

import (
	"logosphere/internal/token"
	"math"
)

// Viewport is a rectangle of terminal cells that shows a canvas measured
// in logical pixels. Each cell is CellW by CellH pixels.
type Viewport struct {
	X, Y int // top-left cell on screen
	W, H int // size in cells

	CellW, CellH float64
}

// Empty reports whether the viewport has no cells.
func (v Viewport) Empty() bool { return v.W <= 0 || v.H <= 0 }

// Contains reports whether screen cell (sx, sy) is inside the viewport.
func (v Viewport) Contains(sx, sy int) bool {
	return sx >= v.X && sx < v.X+v.W && sy >= v.Y && sy < v.Y+v.H
}

// Canvas returns the viewport size in pixels.
func (v Viewport) Canvas() (w, h float64) {
	if v.Empty() {
		return 0, 0
	}
	return float64(v.W) * v.CellW, float64(v.H) * v.CellH
}

// CanvasToScreen converts a canvas point to the screen cell it is drawn in.
// visible is false when the result falls outside the viewport.
func (v Viewport) CanvasToScreen(p token.Vec2) (sx, sy int, visible bool) {
	sx = v.X + int(math.Round(p.X/v.CellW))
	sy = v.Y + int(math.Round(p.Y/v.CellH))
	return sx, sy, v.Contains(sx, sy)
}

// ScreenToCanvas converts screen cell (sx, sy) to the canvas point at the
// cell's centre. ok is false when the cell is outside the viewport.
func (v Viewport) ScreenToCanvas(sx, sy int) (p token.Vec2, ok bool) {
	if !v.Contains(sx, sy) {
		return token.Vec2{}, false
	}
	return token.Vec2{
		X: (float64(sx-v.X) + 0.5) * v.CellW,
		Y: (float64(sy-v.Y) + 0.5) * v.CellH,
	}, true
}
