package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `word,translation,subject,object,verb,adverb
Aun,person,TRUE,true,false,false
vel,movement,false,false,true,false
velo,movement,false,false,True,false
sil,feeling,false,false,false,true
aun,person,false,false,false,false
`

func TestLoadParsesRowsInOrder(t *testing.T) {
	entries, err := Load(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, entries, 5)

	assert.Equal(t, "Aun", entries[0].Word)
	assert.Equal(t, Flags{Subject: true, Object: true}, entries[0].Roles)
	assert.Equal(t, Flags{Verb: true}, entries[2].Roles, "mixed-case true")
	assert.Equal(t, "feeling", entries[3].Translation)
}

func TestLoadColumnOrderIsFree(t *testing.T) {
	csv := "Adverb,VERB,object,subject,translation,word\nfalse,true,false,false,gravity,ren\n"
	entries, err := Load(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{Word: "ren", Translation: "gravity", Roles: Flags{Verb: true}}, entries[0])
}

func TestLoadMissingColumn(t *testing.T) {
	_, err := Load(strings.NewReader("word,translation,subject,object,verb\nx,y,true,false,false\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "adverb")
}

func TestLoadEmptyInput(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestLoadSkipsBlankWordsAndShortRows(t *testing.T) {
	csv := "word,translation,subject,object,verb,adverb\n,person,true,false,false,false\nmo,unity\n"
	entries, err := Load(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "mo", entries[0].Word)
	assert.Equal(t, Flags{}, entries[0].Roles)
}

func TestStoreLookupIsCaseInsensitiveFirstMatch(t *testing.T) {
	entries, err := Load(strings.NewReader(sample))
	require.NoError(t, err)
	s := NewStore(entries)

	cases := []struct {
		name  string
		word  string
		found bool
		flags Flags
	}{
		{"exact", "Aun", true, Flags{Subject: true, Object: true}},
		{"lower finds first row", "aun", true, Flags{Subject: true, Object: true}},
		{"upper", "VEL", true, Flags{Verb: true}},
		{"missing", "zzz", false, Flags{}},
		{"prefix is not a match", "ve", false, Flags{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, ok := s.Lookup(tc.word)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.flags, e.Roles)
		})
	}
}

func TestStoreWordsAndTranslations(t *testing.T) {
	entries, err := Load(strings.NewReader(sample))
	require.NoError(t, err)
	s := NewStore(entries)

	assert.Equal(t, []string{"Aun", "vel", "velo", "sil", "aun"}, s.Words())
	assert.Equal(t, []string{"person", "movement", "feeling"}, s.Translations())
	assert.Equal(t, 5, s.Len())
}

func TestStoreAlternatives(t *testing.T) {
	entries, err := Load(strings.NewReader(sample))
	require.NoError(t, err)
	s := NewStore(entries)

	assert.Equal(t, []string{"vel", "velo"}, s.Alternatives("movement", RoleVerb))
	assert.Empty(t, s.Alternatives("movement", RoleSubject))
	assert.Equal(t, []string{"Aun"}, s.Alternatives("person", RoleSubject))
	assert.Empty(t, s.Alternatives("person", RoleNone))
}

func TestStoreIsolatedFromCallerSlice(t *testing.T) {
	entries := []Entry{{Word: "a", Translation: "x"}}
	s := NewStore(entries)
	entries[0].Word = "b"
	_, ok := s.Lookup("a")
	assert.True(t, ok)
}

func TestFlagsHelpers(t *testing.T) {
	f := Flags{Object: true, Adverb: true}
	assert.Equal(t, []Role{RoleObject, RoleAdverb}, f.Available())
	assert.Equal(t, 2, f.Count())
	assert.Equal(t, RoleNone, f.Only())
	assert.False(t, f.Has(RoleNone))

	assert.Equal(t, RoleVerb, Flags{Verb: true}.Only())
	assert.Equal(t, Flags{Adverb: true}, FlagsOf(RoleAdverb))
	assert.Equal(t, Flags{}, FlagsOf(RoleNone))
}

func TestRoleRankAndParse(t *testing.T) {
	assert.Less(t, RoleSubject.Rank(), RoleVerb.Rank())
	assert.Less(t, RoleVerb.Rank(), RoleObject.Rank())
	assert.Less(t, RoleObject.Rank(), RoleAdverb.Rank())
	assert.Less(t, RoleAdverb.Rank(), RoleNone.Rank())

	for _, r := range Roles {
		assert.Equal(t, r, ParseRole(r.String()))
	}
	assert.Equal(t, RoleNone, ParseRole("noun"))
	assert.True(t, RoleSubject.Exclusive())
	assert.False(t, RoleObject.Exclusive())
}
