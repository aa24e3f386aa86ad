// Package render draws the exhibit onto a tcell screen: the sphere, the
// floating words with their role labels, the permutation list and the
// language rules.
package render

import (
	"fmt"
	"logosphere/assets"
	"logosphere/internal/layout"
	"logosphere/internal/permute"
	"logosphere/internal/sentence"
	"logosphere/internal/sphere"
	"logosphere/internal/token"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// tabWidth is the width of one rules tab, "[1]".
const tabWidth = 3

var helpLines = []string{
	"click word: add/remove",
	"click role: assign",
	"click space: deselect",
	"wheel/arrows: scroll",
	"drag: orbit  1-4  q: quit",
}

// Frame is everything one frame shows.
type Frame struct {
	Layout   *layout.Engine
	Sentence *sentence.Controller
	Selected *token.Token
	Sphere   *sphere.Scene
	Perms    *permute.Panel
	Rule     int
	Tick     int
	// View is the orbit the sphere is seen from.
	View     sphere.Orbit
}

// Renderer draws frames onto a tcell screen.
type Renderer struct {
	screen  tcell.Screen
	palette Palette
	cellW   float64
	cellH   float64
	panels  Panels
}

// NewRenderer creates a Renderer for the given screen and cell size.
func NewRenderer(screen tcell.Screen, cellW, cellH float64) *Renderer {
	r := &Renderer{screen: screen, palette: DefaultPalette, cellW: cellW, cellH: cellH}
	r.Resize()
	return r
}

// Resize re-splits the panels for the current screen size.
func (r *Renderer) Resize() Panels {
	w, h := r.screen.Size()
	r.panels = Split(w, h, r.cellW, r.cellH)
	return r.panels
}

// Panels returns the current screen split.
func (r *Renderer) Panels() Panels { return r.panels }

// PermutationRows returns how many permutations fit under the header.
func (r *Renderer) PermutationRows() int { return max(r.panels.Permutations.H-1, 0) }

// RuleTabAt returns the rules tab under screen cell (sx, sy).
func (r *Renderer) RuleTabAt(sx, sy int) (int, bool) {
	v := r.panels.Rules
	if v.Empty() || sy != v.Y || sx < v.X {
		return 0, false
	}
	i := (sx - v.X) / tabWidth
	if i >= len(assets.Rules) || sx >= v.X+v.W {
		return 0, false
	}
	return i, true
}

// Draw renders one frame.
func (r *Renderer) Draw(f Frame) {
	r.screen.Clear()
	r.drawDividers()
	if f.Sphere != nil {
		r.drawSphere(f.Sphere, f.Tick, f.View)
	}
	if f.Layout != nil {
		r.drawWords(f)
	}
	if f.Perms != nil {
		r.drawPermutations(f.Perms)
	}
	r.drawRules(f.Rule)
	r.screen.Show()
}

func (r *Renderer) drawDividers() {
	w, h := r.screen.Size()
	p := r.panels
	style := r.palette.Border
	r.drawVLine(p.DividerX, 0, p.DividerY, style)
	r.drawHLine(0, w, p.DividerY, style)
	r.drawVLine(p.TextDividerX, p.DividerY+1, h, style)
}

func (r *Renderer) drawSphere(s *sphere.Scene, tick int, view sphere.Orbit) {
	v := r.panels.Sphere
	if v.Empty() {
		return
	}
	pts := s.Project(tick, v.W, v.H, view)
	if len(pts) == 0 {
		hint := "pick words to grow the sphere"
		x := v.X + max(0, (v.W-runewidth.StringWidth(hint))/2)
		r.drawTextIn(v, x, v.Y+v.H/2, hint, r.palette.Help)
		return
	}
	for _, p := range pts {
		r.putGlyph(v, v.X+p.X, v.Y+p.Y, p.Glyph, r.palette.Layer(p.Layer, p.Depth < 0))
	}
}

func (r *Renderer) drawWords(f Frame) {
	v := r.panels.Words
	if v.Empty() {
		return
	}
	e := f.Layout

	help := e.Field().Help()
	if !help.Empty() {
		hx, hy, _ := v.CanvasToScreen(token.Vec2{X: help.X, Y: help.Y})
		rows := int(help.H / v.CellH)
		for i, line := range helpLines {
			if i >= rows {
				break
			}
			r.drawTextIn(v, hx, hy+i, line, r.palette.Help)
		}
	}

	// Free words first so sentence words draw on top.
	for _, inSentence := range [2]bool{false, true} {
		for _, t := range e.Tokens() {
			if t.InSentence() != inSentence {
				continue
			}
			sx, sy, _ := v.CanvasToScreen(t.Current)
			r.drawTextIn(v, sx, sy, t.Text, r.tokenStyle(t, t == f.Selected))
		}
	}

	for _, t := range e.Tokens() {
		if t.InSentence() || t == f.Selected {
			r.drawLabels(v, f, t)
		}
	}
}

func (r *Renderer) tokenStyle(t *token.Token, selected bool) tcell.Style {
	var style tcell.Style
	switch {
	case t.InSentence():
		style = r.palette.Role(t.Role())
	case selected:
		return r.palette.Selected
	case t.Inert():
		style = r.palette.Inert
	default:
		style = r.palette.Free
	}
	if selected {
		style = style.Underline(true)
	}
	return style
}

func (r *Renderer) drawLabels(v Viewport, f Frame, t *token.Token) {
	for _, l := range f.Layout.OptionLabels(t) {
		style := r.palette.LabelAssignable
		switch {
		case t.Role() == l.Role:
			style = r.palette.LabelActive
		case f.Sentence != nil && f.Sentence.Blocked(t, l.Role):
			style = r.palette.LabelBlocked
		}
		sx, sy, _ := v.CanvasToScreen(token.Vec2{X: l.Box.X, Y: l.Box.Y})
		r.drawTextIn(v, sx, sy, l.Text, style)
	}
}

func (r *Renderer) drawPermutations(p *permute.Panel) {
	v := r.panels.Permutations
	if v.Empty() {
		return
	}
	n := p.Sequence().Len()
	rows := r.PermutationRows()
	header := fmt.Sprintf("%d permutations", n)
	if n > rows && rows > 0 {
		last := min(p.Offset()+rows, n)
		header += fmt.Sprintf("  %d-%d", p.Offset()+1, last)
	}
	r.drawTextIn(v, v.X, v.Y, header, r.palette.Header)
	for i, line := range p.Lines(rows) {
		r.drawTextIn(v, v.X, v.Y+1+i, line, r.palette.Text)
	}
}

func (r *Renderer) drawRules(open int) {
	v := r.panels.Rules
	if v.Empty() {
		return
	}
	if open < 0 || open >= len(assets.Rules) {
		open = 0
	}
	for i := range assets.Rules {
		style := r.palette.Tab
		if i == open {
			style = r.palette.TabOpen
		}
		r.drawTextIn(v, v.X+i*tabWidth, v.Y, fmt.Sprintf("[%d]", i+1), style)
	}
	rule := assets.Rules[open]
	r.drawTextIn(v, v.X+len(assets.Rules)*tabWidth+1, v.Y, rule.Title, r.palette.Header)

	y := v.Y + 1
	for _, text := range rule.Lines {
		for i, line := range wrap(text, v.W-2) {
			prefix := "  "
			if i == 0 {
				prefix = "- "
			}
			r.drawTextIn(v, v.X, y, prefix+line, r.palette.Text)
			y++
		}
	}
}

// putGlyph draws a single glyph at screen position (x, y) if it lies in v.
func (r *Renderer) putGlyph(v Viewport, x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 || !v.Contains(x, y) {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 && v.Contains(x+1, y) {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
