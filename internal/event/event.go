// Package event carries sentence notifications from the word bank to the
// panels that react to them (sphere, permutations, audio).
//
// Publishers queue events; the frame loop flushes the queue between input
// handling and the next update, so consumers always observe a complete
// mutation.
package event

import "logosphere/internal/lexicon"

// Kind identifies a notification type.
type Kind uint8

const (
	KindWordSelected Kind = iota + 1
	KindWordRemoved
	KindOptionChanged
	KindSentenceChanged
)

func (k Kind) String() string {
	switch k {
	case KindWordSelected:
		return "word-selected"
	case KindWordRemoved:
		return "word-removed"
	case KindOptionChanged:
		return "option-changed"
	case KindSentenceChanged:
		return "sentence-changed"
	}
	return "unknown"
}

// Event is implemented by every notification payload.
type Event interface {
	Kind() Kind
}

// Word describes one sentence word as seen by consumers.
type Word struct {
	Text        string
	Translation string
	Role        lexicon.Role
	// Roles mirrors Role as a flag record; at most one flag is set.
	Roles lexicon.Flags
}

// NewWord builds a Word with Roles derived from role.
func NewWord(text, translation string, role lexicon.Role) Word {
	return Word{Text: text, Translation: translation, Role: role, Roles: lexicon.FlagsOf(role)}
}

// WordSelected is published when a word joins the sentence.
type WordSelected struct {
	Word        string
	Translation string
	Role        lexicon.Role
	Roles       lexicon.Flags
}

func (WordSelected) Kind() Kind { return KindWordSelected }

// WordRemoved is published when a word leaves the sentence.
type WordRemoved struct {
	Word string
}

func (WordRemoved) Kind() Kind { return KindWordRemoved }

// OptionChanged is published when a sentence word's role changes.
type OptionChanged struct {
	Word        string
	Translation string
	Role        lexicon.Role
	Roles       lexicon.Flags
}

func (OptionChanged) Kind() Kind { return KindOptionChanged }

// SentenceChanged carries the full sentence in selection order after any
// mutation.
type SentenceChanged struct {
	Words []Word
}

func (SentenceChanged) Kind() Kind { return KindSentenceChanged }
