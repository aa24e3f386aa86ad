// Package permute enumerates every phrasing of a sentence: each word is
// replaced in turn by every lexicon word sharing its translation and role,
// and the per-word choices are combined as a Cartesian product.
package permute

import (
	"cmp"
	"iter"
	"logosphere/internal/event"
	"logosphere/internal/lexicon"
	"math"
	"slices"
)

// Canonical returns words ordered subject, verb, object, adverb, then words
// without a role. Equal roles keep their input order.
func Canonical(words []event.Word) []event.Word {
	out := slices.Clone(words)
	slices.SortStableFunc(out, func(a, b event.Word) int {
		return cmp.Compare(a.Role.Rank(), b.Role.Rank())
	})
	return out
}

// Slot is one position of the canonical sentence with its alternatives.
type Slot struct {
	Word         event.Word
	Alternatives []string
}

// Slots builds the canonical slots of a sentence. A word without a role, or
// whose translation has no entry for its role, keeps its own text as the
// only alternative.
func Slots(words []event.Word, store *lexicon.Store) []Slot {
	canon := Canonical(words)
	out := make([]Slot, len(canon))
	for i, w := range canon {
		var alts []string
		if w.Role != lexicon.RoleNone && store != nil {
			alts = store.Alternatives(w.Translation, w.Role)
		}
		if len(alts) == 0 {
			alts = []string{w.Text}
		}
		out[i] = Slot{Word: w, Alternatives: alts}
	}
	return out
}

// Sequence is the lazy Cartesian product of slot alternatives. Entries are
// ordered like an odometer: the last slot changes fastest. A Sequence holds
// no iteration state and can be walked any number of times.
type Sequence struct {
	alts [][]string
	n    int
}

// NewSequence creates the product of the given alternative lists. An empty
// list of slots produces an empty sequence.
func NewSequence(alts [][]string) *Sequence {
	s := &Sequence{alts: alts}
	if len(alts) == 0 {
		return s
	}
	s.n = 1
	for _, a := range alts {
		s.n = mulSat(s.n, len(a))
	}
	return s
}

// FromSlots creates the product over slots.
func FromSlots(slots []Slot) *Sequence {
	alts := make([][]string, len(slots))
	for i, sl := range slots {
		alts[i] = sl.Alternatives
	}
	return NewSequence(alts)
}

// Build canonicalises words and returns the product of their alternatives.
func Build(words []event.Word, store *lexicon.Store) *Sequence {
	return FromSlots(Slots(words, store))
}

// Len returns the number of permutations, saturating at math.MaxInt.
func (s *Sequence) Len() int { return s.n }

// Width returns the number of slots in every permutation.
func (s *Sequence) Width() int { return len(s.alts) }

// At returns the i-th permutation, or nil when i is out of range.
func (s *Sequence) At(i int) []string {
	if i < 0 || i >= s.n {
		return nil
	}
	out := make([]string, len(s.alts))
	for k := len(s.alts) - 1; k >= 0; k-- {
		a := s.alts[k]
		out[k] = a[i%len(a)]
		i /= len(a)
	}
	return out
}

// All yields every permutation in order. Each yielded slice is fresh.
func (s *Sequence) All() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		if s.n == 0 {
			return
		}
		idx := make([]int, len(s.alts))
		for {
			out := make([]string, len(s.alts))
			for k, a := range s.alts {
				out[k] = a[idx[k]]
			}
			if !yield(out) {
				return
			}
			k := len(idx) - 1
			for ; k >= 0; k-- {
				idx[k]++
				if idx[k] < len(s.alts[k]) {
					break
				}
				idx[k] = 0
			}
			if k < 0 {
				return
			}
		}
	}
}

// Collect returns up to limit permutations from the start of the sequence.
// A negative limit collects everything.
func (s *Sequence) Collect(limit int) [][]string {
	var out [][]string
	if limit == 0 {
		return out
	}
	for p := range s.All() {
		out = append(out, p)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

func mulSat(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}
