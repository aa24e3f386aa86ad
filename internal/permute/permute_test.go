package permute

import (
	"logosphere/internal/event"
	"logosphere/internal/lexicon"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *lexicon.Store {
	return lexicon.NewStore([]lexicon.Entry{
		{Word: "aun", Translation: "person", Roles: lexicon.Flags{Subject: true, Object: true}},
		{Word: "ema", Translation: "person", Roles: lexicon.Flags{Subject: true}},
		{Word: "oru", Translation: "person", Roles: lexicon.Flags{Subject: true, Object: true}},
		{Word: "vel", Translation: "movement", Roles: lexicon.Flags{Verb: true}},
		{Word: "sor", Translation: "movement", Roles: lexicon.Flags{Verb: true}},
		{Word: "kai", Translation: "movement", Roles: lexicon.Flags{Verb: true, Adverb: true}},
		{Word: "ne", Translation: "movement", Roles: lexicon.Flags{Verb: true}},
		{Word: "sil", Translation: "feeling", Roles: lexicon.Flags{Adverb: true}},
	})
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		in   []lexicon.Role
		want []string
	}{
		{"adverb subject object", []lexicon.Role{lexicon.RoleAdverb, lexicon.RoleSubject, lexicon.RoleObject}, []string{"w1", "w2", "w0"}},
		{"verb before object", []lexicon.Role{lexicon.RoleObject, lexicon.RoleVerb}, []string{"w1", "w0"}},
		{"stable ties", []lexicon.Role{lexicon.RoleObject, lexicon.RoleSubject, lexicon.RoleObject}, []string{"w1", "w0", "w2"}},
		{"role-less last", []lexicon.Role{lexicon.RoleNone, lexicon.RoleAdverb, lexicon.RoleNone}, []string{"w1", "w0", "w2"}},
		{"empty", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := make([]event.Word, len(tt.in))
			for i, r := range tt.in {
				words[i] = event.NewWord("w"+string(rune('0'+i)), "x", r)
			}
			got := []string{}
			for _, w := range Canonical(words) {
				got = append(got, w.Text)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlots(t *testing.T) {
	words := []event.Word{
		event.NewWord("kai", "movement", lexicon.RoleVerb),
		event.NewWord("aun", "person", lexicon.RoleSubject),
		event.NewWord("zzz", "zzz", lexicon.RoleObject),
		event.NewWord("sil", "feeling", lexicon.RoleNone),
	}
	slots := Slots(words, testStore())
	require.Len(t, slots, 4)
	assert.Equal(t, []string{"aun", "ema", "oru"}, slots[0].Alternatives)
	assert.Equal(t, []string{"vel", "sor", "kai", "ne"}, slots[1].Alternatives)
	assert.Equal(t, []string{"zzz"}, slots[2].Alternatives, "no lexicon match keeps the literal")
	assert.Equal(t, []string{"sil"}, slots[3].Alternatives, "no role keeps the literal")
}

func TestSequenceThreeByFour(t *testing.T) {
	words := []event.Word{
		event.NewWord("vel", "movement", lexicon.RoleVerb),
		event.NewWord("aun", "person", lexicon.RoleSubject),
	}
	seq := Build(words, testStore())
	require.Equal(t, 12, seq.Len())
	assert.Equal(t, 2, seq.Width())

	all := seq.Collect(-1)
	require.Len(t, all, 12)
	for _, p := range all {
		require.Len(t, p, 2)
		assert.Contains(t, []string{"aun", "ema", "oru"}, p[0], "subject slot first")
		assert.Contains(t, []string{"vel", "sor", "kai", "ne"}, p[1])
	}
	assert.Equal(t, []string{"aun", "vel"}, all[0])
	assert.Equal(t, []string{"aun", "sor"}, all[1], "last slot changes fastest")
	assert.Equal(t, []string{"ema", "vel"}, all[4])
	assert.Equal(t, []string{"oru", "ne"}, all[11])

	for i, p := range all {
		assert.Equal(t, p, seq.At(i))
	}
	assert.Nil(t, seq.At(12))
	assert.Nil(t, seq.At(-1))
}

func TestSequenceIsRestartable(t *testing.T) {
	seq := NewSequence([][]string{{"a", "b"}, {"c"}, {"d", "e"}})
	first := slices.Collect(seq.All())
	second := slices.Collect(seq.All())
	assert.Equal(t, first, second)
	assert.Len(t, first, 4)

	// Breaking early leaves nothing behind.
	assert.Equal(t, [][]string{{"a", "c", "d"}, {"a", "c", "e"}}, seq.Collect(2))
	assert.Equal(t, first, seq.Collect(100))
	assert.Empty(t, seq.Collect(0))
}

func TestSequenceEdges(t *testing.T) {
	empty := NewSequence(nil)
	assert.Zero(t, empty.Len())
	assert.Empty(t, slices.Collect(empty.All()))

	single := NewSequence([][]string{{"only"}})
	assert.Equal(t, [][]string{{"only"}}, single.Collect(-1))

	hole := NewSequence([][]string{{"a"}, {}})
	assert.Zero(t, hole.Len())
	assert.Empty(t, slices.Collect(hole.All()))
}

func TestSequenceLenSaturates(t *testing.T) {
	wide := make([]string, 1<<16)
	for i := range wide {
		wide[i] = "w"
	}
	seq := NewSequence([][]string{wide, wide, wide, wide, wide})
	assert.Equal(t, math.MaxInt, seq.Len())
	assert.Len(t, seq.At(0), 5)
}

func TestPanel(t *testing.T) {
	p := NewPanel(testStore())
	assert.Zero(t, p.Sequence().Len())
	assert.Empty(t, p.Lines(5))

	p.Handle(event.WordRemoved{Word: "aun"})
	assert.Zero(t, p.Sequence().Len(), "only sentence changes recompute")

	p.Handle(event.SentenceChanged{Words: []event.Word{
		event.NewWord("vel", "movement", lexicon.RoleVerb),
		event.NewWord("aun", "person", lexicon.RoleSubject),
	}})
	require.Equal(t, 12, p.Sequence().Len())
	assert.Equal(t, "aun", p.Words()[0].Text)
	assert.Equal(t, []string{"aun vel", "aun sor"}, p.Lines(2))

	p.Scroll(4, 5)
	assert.Equal(t, 4, p.Offset())
	assert.Equal(t, []string{"ema vel"}, p.Lines(1))

	p.Scroll(100, 5)
	assert.Equal(t, 7, p.Offset(), "window stays full at the end")
	p.Scroll(-100, 5)
	assert.Zero(t, p.Offset())

	p.Scroll(3, 5)
	p.Handle(event.SentenceChanged{})
	assert.Zero(t, p.Offset())
	assert.Zero(t, p.Sequence().Len())
}
