package token

import "logosphere/internal/lexicon"

// New creates a token for word, copying role flags and translation from the
// first matching lexicon row. A word with no row is inert: every flag is
// false and its translation is the word itself.
func New(id int, word string, store *lexicon.Store) *Token {
	t := &Token{ID: id, Text: word, Translation: word}
	if store == nil {
		return t
	}
	if e, ok := store.Lookup(word); ok {
		t.flags = e.Roles
		if e.Translation != "" {
			t.Translation = e.Translation
		}
	}
	return t
}

// FromStore creates one token per lexicon row, in lexicon order.
func FromStore(store *lexicon.Store) []*Token {
	return FromWords(store.Words(), store)
}

// FromWords creates one token per word. Unknown words become inert tokens.
func FromWords(words []string, store *lexicon.Store) []*Token {
	out := make([]*Token, 0, len(words))
	for i, w := range words {
		out = append(out, New(i+1, w, store))
	}
	return out
}
