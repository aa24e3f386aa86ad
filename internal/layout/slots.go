package layout

import "logosphere/internal/token"

// UpdateSlots lays the sentence out left to right, centred on the canvas,
// and remembers it for later resizes. With an empty sentence every free
// token is sent back to its base, and centre candidates return to the spot
// they were first placed at.
func (e *Engine) UpdateSlots(sentence []*token.Token) {
	e.sentence = append(e.sentence[:0], sentence...)
	if e.field.Degenerate() || e.pending {
		return
	}
	if len(sentence) == 0 {
		for _, t := range e.tokens {
			if t.InSentence() {
				continue
			}
			if t.CenterCandidate {
				t.Base = t.Origin
			}
			t.Target = t.Base
		}
		return
	}

	widths := make([]float64, len(sentence))
	total := e.cfg.SentenceGap * float64(len(sentence)-1)
	for i, t := range sentence {
		widths[i] = e.metrics.TextWidth(t.Text)
		total += widths[i]
	}
	x := (e.field.W - total) / 2
	y := e.field.H/2 - e.metrics.LineHeight()/2
	for i, t := range sentence {
		t.Target = token.Vec2{X: x, Y: y}
		x += widths[i] + e.cfg.SentenceGap
	}
}

// ReturnHome restores t's base to its original placement and aims it there.
func (e *Engine) ReturnHome(t *token.Token) {
	t.Base = t.Origin
	t.Target = t.Base
}

// Eject clears the centre for the sentence: every free centre candidate
// (other than except) that currently sits near the canvas centre is moved
// to a fresh spot outside the centre and help rectangles, with a random
// kick so its departure is visible. It returns the number of tokens moved.
func (e *Engine) Eject(except *token.Token) int {
	if e.field.Degenerate() || e.pending {
		return 0
	}
	mid := e.field.Midpoint()
	radius := e.cfg.EjectRadius * max(e.field.W, e.field.H)

	moved := 0
	for _, t := range e.tokens {
		if t == except || t.InSentence() || !t.CenterCandidate {
			continue
		}
		if t.Current.Dist(mid) >= radius {
			continue
		}
		p, ok := e.search(e.occupiedExcept(t), t, true)
		if !ok {
			p = e.outsideReserved()
		}
		t.Base = p
		t.Target = p
		t.Avoid = token.Vec2{
			X: (e.rng.Float64() - 0.5) * e.cfg.KickImpulse,
			Y: (e.rng.Float64() - 0.5) * e.cfg.KickImpulse,
		}
		t.AvoidTimer = e.cfg.KickFrames
		moved++
	}
	return moved
}

// occupiedExcept returns the current position of every token but t.
func (e *Engine) occupiedExcept(t *token.Token) []token.Vec2 {
	out := make([]token.Vec2, 0, len(e.tokens))
	for _, o := range e.tokens {
		if o != t {
			out = append(out, o.Current)
		}
	}
	return out
}
