package render

// Panels is the screen split: the sphere on the left and the floating
// words on the right, above permutations and language rules side by side.
// Dividers take one cell between panels.
type Panels struct {
	Sphere       Viewport
	Words        Viewport
	Permutations Viewport
	Rules        Viewport

	// DividerX is the column between sphere and words; DividerY the row
	// above the text panels; TextDividerX the column between them.
	DividerX, DividerY, TextDividerX int
}

// Split lays out a w×h screen. Panels shrink to zero on tiny screens.
func Split(w, h int, cellW, cellH float64) Panels {
	w, h = max(w, 0), max(h, 0)
	top := h - h/3
	sphereW := w * 2 / 5
	half := w / 2

	vp := func(x, y, pw, ph int) Viewport {
		return Viewport{X: x, Y: y, W: max(pw, 0), H: max(ph, 0), CellW: cellW, CellH: cellH}
	}
	return Panels{
		Sphere:       vp(0, 0, sphereW, top),
		Words:        vp(sphereW+1, 0, w-sphereW-1, top),
		Permutations: vp(0, top+1, half, h-top-1),
		Rules:        vp(half+1, top+1, w-half-1, h-top-1),
		DividerX:     sphereW,
		DividerY:     top,
		TextDividerX: half,
	}
}
