// Package lexicon holds the read-only word table that drives the exhibit:
// every row is a word of the constructed language, its translation, and the
// syntactic roles it may take.
package lexicon

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
)

// ErrMissingColumn is returned by Load when a required header is absent.
var ErrMissingColumn = errors.New("lexicon: missing required column")

// columns are the required CSV headers.
var columns = [...]string{"word", "translation", "subject", "object", "verb", "adverb"}

// Entry is one lexicon row.
type Entry struct {
	Word        string
	Translation string
	Roles       Flags
}

// Load parses CSV rows with a header line. Column order is free; header
// names are matched case-insensitively. Role cells are true only when they
// read "true" in any case.
func Load(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: %w", ErrMissingColumn)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range columns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, c)
		}
	}

	var entries []Entry
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		cell := func(name string) string {
			i := idx[name]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		word := cell("word")
		if word == "" {
			continue
		}
		entries = append(entries, Entry{
			Word:        word,
			Translation: cell("translation"),
			Roles: Flags{
				Subject: isTrue(cell("subject")),
				Object:  isTrue(cell("object")),
				Verb:    isTrue(cell("verb")),
				Adverb:  isTrue(cell("adverb")),
			},
		})
	}
	return entries, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()
	entries, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return entries, nil
}

func isTrue(s string) bool { return strings.EqualFold(s, "true") }

// Store is an in-memory, read-only view over lexicon entries.
type Store struct {
	entries []Entry
	byFold  map[string]int // folded word → first row index
	fold    cases.Caser
}

// NewStore indexes entries. The slice is copied; later changes to the
// caller's slice do not affect the store.
func NewStore(entries []Entry) *Store {
	s := &Store{
		entries: append([]Entry(nil), entries...),
		byFold:  make(map[string]int, len(entries)),
		fold:    cases.Fold(),
	}
	for i, e := range s.entries {
		key := s.fold.String(e.Word)
		if _, seen := s.byFold[key]; !seen {
			s.byFold[key] = i
		}
	}
	return s
}

// Len returns the number of rows.
func (s *Store) Len() int { return len(s.entries) }

// Entries returns a copy of all rows in lexicon order.
func (s *Store) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Lookup finds the first row whose word matches case-insensitively.
func (s *Store) Lookup(word string) (Entry, bool) {
	i, ok := s.byFold[s.fold.String(word)]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Words returns every row's word in lexicon order. Duplicates are kept.
func (s *Store) Words() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Word
	}
	return out
}

// Translations returns the distinct translations in first-seen order.
func (s *Store) Translations() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range s.entries {
		if seen[e.Translation] {
			continue
		}
		seen[e.Translation] = true
		out = append(out, e.Translation)
	}
	return out
}

// Alternatives returns the words of every entry sharing translation whose
// flag for role is set, in lexicon order. RoleNone yields nothing.
func (s *Store) Alternatives(translation string, role Role) []string {
	if role == RoleNone {
		return nil
	}
	var out []string
	for _, e := range s.entries {
		if e.Translation == translation && e.Roles.Has(role) {
			out = append(out, e.Word)
		}
	}
	return out
}
