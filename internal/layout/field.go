package layout

import "logosphere/internal/token"

// Field is the canvas the tokens live on, with its reserved areas.
type Field struct {
	W, H float64
	cfg  Config
}

// NewField creates a field of the given size.
func NewField(w, h float64, cfg Config) Field {
	return Field{W: w, H: h, cfg: cfg}
}

// Degenerate reports whether the canvas has no usable area. Nothing is
// placed or retargeted on a degenerate field.
func (f Field) Degenerate() bool { return f.W <= 0 || f.H <= 0 }

// Midpoint returns the canvas centre.
func (f Field) Midpoint() token.Vec2 { return token.Vec2{X: f.W / 2, Y: f.H / 2} }

// Inner returns the placement area inside the margins. When the canvas is
// narrower than two margins on an axis the margin is dropped on that axis.
func (f Field) Inner() token.Rect {
	m := f.cfg.Margin
	r := token.Rect{X: m, Y: m, W: f.W - 2*m, H: f.H - 2*m}
	if r.W <= 0 {
		r.X, r.W = 0, f.W
	}
	if r.H <= 0 {
		r.Y, r.H = 0, f.H
	}
	return r
}

// CenterRect returns the central region reserved for the sentence.
func (f Field) CenterRect() token.Rect {
	lo, hi := f.cfg.CenterMin, f.cfg.CenterMax
	return token.Rect{X: f.W * lo, Y: f.H * lo, W: f.W * (hi - lo), H: f.H * (hi - lo)}
}

// Help returns the reserved help rectangle, anchored to the top-right
// corner and clipped to the canvas.
func (f Field) Help() token.Rect {
	w := min(f.cfg.HelpWidth, f.W)
	h := min(f.cfg.HelpHeight, f.H/2)
	if w <= 0 || h <= 0 {
		return token.Rect{}
	}
	return token.Rect{X: f.W - w, Y: 0, W: w, H: h}
}

// inHelp reports whether p lands in a non-empty help rectangle.
func (f Field) inHelp(p token.Vec2) bool {
	h := f.Help()
	return !h.Empty() && h.Contains(p)
}
