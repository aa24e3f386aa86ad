// Package sentence keeps the ordered set of words the visitor has picked and
// enforces the role rules: one subject, one verb, any number of objects and
// adverbs, and a single role per word.
package sentence

import (
	"cmp"
	"log/slog"
	"logosphere/internal/event"
	"logosphere/internal/lexicon"
	"logosphere/internal/token"
	"slices"
)

// Layout is the part of the layout engine the controller drives.
type Layout interface {
	Eject(except *token.Token) int
	ReturnHome(t *token.Token)
	UpdateSlots(sentence []*token.Token)
}

// Controller owns sentence membership and role selection. Every accepted
// mutation retargets the sentence slots and queues notifications on the bus.
type Controller struct {
	layout Layout
	bus    *event.Bus
	log    *slog.Logger
	words  []*token.Token
}

// New creates a controller with an empty sentence.
func New(layout Layout, bus *event.Bus, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{layout: layout, bus: bus, log: log}
}

// Toggle moves t into or out of the sentence and reports whether anything
// changed.
//
// Joining is refused when t can only ever be a subject (or only a verb) and
// another sentence word already holds that role. A word with a single
// flagged role gets it assigned on entry.
func (c *Controller) Toggle(t *token.Token) bool {
	if t.InSentence() {
		c.remove(t)
		c.changed()
		return true
	}

	only := t.Flags().Only()
	if only.Exclusive() && c.holder(only, t) != nil {
		c.log.Debug("join rejected", "word", t.Text, "role", only)
		return false
	}

	c.layout.Eject(t)
	c.words = append(c.words, t)
	t.Join()
	if only != lexicon.RoleNone {
		t.SelectRole(only)
	}
	c.log.Debug("word selected", "word", t.Text, "role", t.Role(), "len", len(c.words))
	c.bus.Publish(event.WordSelected{
		Word:        t.Text,
		Translation: t.Translation,
		Role:        t.Role(),
		Roles:       lexicon.FlagsOf(t.Role()),
	})
	c.changed()
	return true
}

// AssignRole selects role r for sentence word t, replacing any previous
// role; RoleNone clears it. It reports false when t is not in the sentence,
// r is not flagged on t, or r is exclusive and held by another word.
// Re-assigning the current role succeeds without notifications.
func (c *Controller) AssignRole(t *token.Token, r lexicon.Role) bool {
	if !t.InSentence() {
		return false
	}
	if r != lexicon.RoleNone && !t.Flags().Has(r) {
		c.log.Debug("role not offered", "word", t.Text, "role", r)
		return false
	}
	if t.Role() == r {
		return true
	}
	if c.Blocked(t, r) {
		c.log.Debug("role rejected", "word", t.Text, "role", r)
		return false
	}

	t.SelectRole(r)
	c.log.Debug("role assigned", "word", t.Text, "role", r)
	c.bus.Publish(event.OptionChanged{
		Word:        t.Text,
		Translation: t.Translation,
		Role:        r,
		Roles:       lexicon.FlagsOf(r),
	})
	c.changed()
	return true
}

// Blocked reports whether r is unavailable to t because another sentence
// word already holds it.
func (c *Controller) Blocked(t *token.Token, r lexicon.Role) bool {
	return r.Exclusive() && c.holder(r, t) != nil
}

// Reset empties the sentence and returns the number of words removed.
func (c *Controller) Reset() int {
	n := len(c.words)
	if n == 0 {
		return 0
	}
	for len(c.words) > 0 {
		c.remove(c.words[0])
	}
	c.changed()
	return n
}

// Relayout recomputes slot targets, typically after a resize.
func (c *Controller) Relayout() {
	c.layout.UpdateSlots(c.words)
}

// Len returns the number of sentence words.
func (c *Controller) Len() int { return len(c.words) }

// Sentence returns the words in selection order.
func (c *Controller) Sentence() []*token.Token {
	return slices.Clone(c.words)
}

// Contains reports whether t is in the sentence.
func (c *Controller) Contains(t *token.Token) bool {
	return slices.Contains(c.words, t)
}

// Canonical returns the sentence ordered subject, verb, object, adverb, then
// words without a role. Words of equal rank keep selection order.
func (c *Controller) Canonical() []*token.Token {
	out := slices.Clone(c.words)
	slices.SortStableFunc(out, func(a, b *token.Token) int {
		return cmp.Compare(a.Role().Rank(), b.Role().Rank())
	})
	return out
}

// Snapshot describes the sentence in selection order.
func (c *Controller) Snapshot() []event.Word {
	out := make([]event.Word, len(c.words))
	for i, t := range c.words {
		out[i] = event.NewWord(t.Text, t.Translation, t.Role())
	}
	return out
}

func (c *Controller) remove(t *token.Token) {
	i := slices.Index(c.words, t)
	if i < 0 {
		return
	}
	c.words = slices.Delete(c.words, i, i+1)
	t.Leave()
	c.layout.ReturnHome(t)
	c.log.Debug("word removed", "word", t.Text, "len", len(c.words))
	c.bus.Publish(event.WordRemoved{Word: t.Text})
}

func (c *Controller) changed() {
	c.layout.UpdateSlots(c.words)
	c.bus.Publish(event.SentenceChanged{Words: c.Snapshot()})
}

// holder returns the sentence word other than except that holds r.
func (c *Controller) holder(r lexicon.Role, except *token.Token) *token.Token {
	for _, t := range c.words {
		if t != except && t.Role() == r {
			return t
		}
	}
	return nil
}
