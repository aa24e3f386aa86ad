package render

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes text from (x, y), stopping before column limit. Wide
// runes take two columns. It returns the column after the last rune drawn.
func (r *Renderer) drawText(x, y, limit int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > limit {
			break
		}
		r.screen.SetContent(col, y, ch, nil, style)
		if w == 2 {
			// Fill the second column to avoid rendering artifacts.
			r.screen.SetContent(col+1, y, ' ', nil, style)
		}
		col += w
	}
	return col
}

// drawTextIn writes text at (x, y) clipped to the viewport.
func (r *Renderer) drawTextIn(v Viewport, x, y int, text string, style tcell.Style) {
	if y < v.Y || y >= v.Y+v.H {
		return
	}
	// Skip the part left of the viewport.
	for x < v.X && text != "" {
		ch, size := utf8.DecodeRuneInString(text)
		x += runewidth.RuneWidth(ch)
		text = text[size:]
	}
	r.drawText(x, y, v.X+v.W, text, style)
}

func (r *Renderer) drawHLine(x0, x1, y int, style tcell.Style) {
	for x := x0; x < x1; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawVLine(x, y0, y1 int, style tcell.Style) {
	for y := y0; y < y1; y++ {
		r.screen.SetContent(x, y, '│', nil, style)
	}
}

// wrap breaks text into lines of at most width columns at spaces. A word
// longer than width is cut.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	lw := 0
	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		if ww > width {
			word = runewidth.Truncate(word, width, "")
			ww = runewidth.StringWidth(word)
		}
		switch {
		case lw == 0:
		case lw+1+ww <= width:
			line.WriteByte(' ')
			lw++
		default:
			lines = append(lines, line.String())
			line.Reset()
			lw = 0
		}
		line.WriteString(word)
		lw += ww
	}
	if lw > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
