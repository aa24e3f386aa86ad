package event

import (
	"logosphere/internal/lexicon"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlushDeliversInOrderPerKind(t *testing.T) {
	b := NewBus()
	var got []string
	b.Subscribe(KindWordSelected, func(e Event) { got = append(got, "sel:"+e.(WordSelected).Word) })
	b.Subscribe(KindWordRemoved, func(e Event) { got = append(got, "rm:"+e.(WordRemoved).Word) })

	b.Publish(WordSelected{Word: "aun"})
	b.Publish(WordRemoved{Word: "vel"})
	b.Publish(WordSelected{Word: "sil"})
	assert.Equal(t, 3, b.Pending())
	assert.Empty(t, got, "nothing delivered before flush")

	assert.Equal(t, 3, b.Flush())
	assert.Equal(t, []string{"sel:aun", "rm:vel", "sel:sil"}, got)
	assert.Zero(t, b.Pending())
}

func TestFlushDeliversEventsPublishedByHandlers(t *testing.T) {
	b := NewBus()
	var kinds []Kind
	b.SubscribeAll(func(e Event) { kinds = append(kinds, e.Kind()) })
	b.Subscribe(KindOptionChanged, func(Event) { b.Publish(SentenceChanged{}) })

	b.Publish(OptionChanged{Word: "aun"})
	assert.Equal(t, 2, b.Flush())
	assert.Equal(t, []Kind{KindOptionChanged, KindSentenceChanged}, kinds)
}

func TestFlushEmpty(t *testing.T) {
	assert.Zero(t, NewBus().Flush())
}

func TestNewWordDerivesFlags(t *testing.T) {
	w := NewWord("aun", "person", lexicon.RoleSubject)
	assert.Equal(t, lexicon.Flags{Subject: true}, w.Roles)
	assert.Equal(t, lexicon.Flags{}, NewWord("x", "x", lexicon.RoleNone).Roles)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "word-selected", KindWordSelected.String())
	assert.Equal(t, "sentence-changed", SentenceChanged{}.Kind().String())
	assert.Equal(t, "unknown", Kind(0).String())
}
