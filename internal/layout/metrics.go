package layout

import "github.com/mattn/go-runewidth"

// CellMetrics measures text on a character grid: each terminal column is
// CellW pixels wide and each row CellH pixels tall. Wide runes take two
// columns.
type CellMetrics struct {
	CellW, CellH float64
}

// TextWidth returns the rendered width of s in pixels.
func (m CellMetrics) TextWidth(s string) float64 {
	return float64(runewidth.StringWidth(s)) * m.CellW
}

// LineHeight returns the height of one text row in pixels.
func (m CellMetrics) LineHeight() float64 { return m.CellH }
