package permute

import (
	"logosphere/internal/event"
	"logosphere/internal/lexicon"
	"strings"
)

// Panel holds the permutations of the current sentence for display and a
// scroll position into them.
type Panel struct {
	store  *lexicon.Store
	words  []event.Word
	seq    *Sequence
	offset int
}

// NewPanel creates a panel for an empty sentence.
func NewPanel(store *lexicon.Store) *Panel {
	return &Panel{store: store, seq: NewSequence(nil)}
}

// Handle recomputes the sequence on SentenceChanged and resets the scroll.
// Other events are ignored.
func (p *Panel) Handle(e event.Event) {
	sc, ok := e.(event.SentenceChanged)
	if !ok {
		return
	}
	p.words = Canonical(sc.Words)
	p.seq = Build(sc.Words, p.store)
	p.offset = 0
}

// Sequence returns the current permutations.
func (p *Panel) Sequence() *Sequence { return p.seq }

// Words returns the sentence in canonical order.
func (p *Panel) Words() []event.Word { return p.words }

// Offset returns the index of the first visible permutation.
func (p *Panel) Offset() int { return p.offset }

// Scroll moves the window by delta lines, keeping visible lines on screen.
func (p *Panel) Scroll(delta, visible int) {
	last := max(0, p.seq.Len()-max(visible, 1))
	p.offset = min(max(p.offset+delta, 0), last)
}

// Lines returns up to n permutations from the scroll offset, each joined
// with spaces.
func (p *Panel) Lines(n int) []string {
	var out []string
	for i := p.offset; i < p.seq.Len() && len(out) < n; i++ {
		out = append(out, strings.Join(p.seq.At(i), " "))
	}
	return out
}
