package layout

import (
	"logosphere/internal/lexicon"
	"logosphere/internal/token"
)

// Label is one role option drawn under a word.
type Label struct {
	Role lexicon.Role
	Text string
	Box  token.Rect
}

// OptionLabels returns the role labels under t, centred on the word. Slots
// are reserved for all four roles so a label never shifts, but only the
// roles flagged on t are returned.
func (e *Engine) OptionLabels(t *token.Token) []Label {
	m := e.metrics
	gap := e.cfg.OptionGap
	total := -gap
	for _, r := range lexicon.Roles {
		total += m.TextWidth(r.String()) + gap
	}
	x := t.Current.X + m.TextWidth(t.Text)/2 - total/2
	y := t.Current.Y + m.LineHeight()*e.cfg.OptionRows

	var out []Label
	for _, r := range lexicon.Roles {
		w := m.TextWidth(r.String())
		if t.Flags().Has(r) {
			out = append(out, Label{Role: r, Text: r.String(), Box: token.Rect{X: x, Y: y, W: w, H: m.LineHeight()}})
		}
		x += w + gap
	}
	return out
}

// OptionHit returns the role label of t under point p.
func (e *Engine) OptionHit(t *token.Token, p token.Vec2) (lexicon.Role, bool) {
	for _, l := range e.OptionLabels(t) {
		if l.Box.Contains(p) {
			return l.Role, true
		}
	}
	return lexicon.RoleNone, false
}

// TokenAt returns the topmost token whose text box contains p. Sentence
// tokens are drawn above free ones, so they are tested first; within each
// group later tokens are on top.
func (e *Engine) TokenAt(p token.Vec2) *token.Token {
	for _, inSentence := range [2]bool{true, false} {
		for i := len(e.tokens) - 1; i >= 0; i-- {
			t := e.tokens[i]
			if t.InSentence() != inSentence {
				continue
			}
			if t.Bounds(e.metrics).Contains(p) {
				return t
			}
		}
	}
	return nil
}
