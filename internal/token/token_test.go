package token

import (
	"logosphere/internal/lexicon"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedMetrics struct{}

func (fixedMetrics) TextWidth(s string) float64 { return float64(len(s)) * 8 }
func (fixedMetrics) LineHeight() float64 { return 16 }

func testStore() *lexicon.Store {
	return lexicon.NewStore([]lexicon.Entry{
		{Word: "aun", Translation: "person", Roles: lexicon.Flags{Subject: true, Object: true}},
		{Word: "vel", Translation: "movement", Roles: lexicon.Flags{Verb: true}},
		{Word: "aun", Translation: "unity", Roles: lexicon.Flags{Adverb: true}},
	})
}

func TestNewCopiesFlagsFromLexicon(t *testing.T) {
	tok := New(1, "VEL", testStore())
	assert.Equal(t, lexicon.Flags{Verb: true}, tok.Flags())
	assert.Equal(t, "movement", tok.Translation)
	assert.Equal(t, "VEL", tok.Text)
	assert.False(t, tok.Inert())
}

func TestNewMissingRowIsInert(t *testing.T) {
	tok := New(1, "ghost", testStore())
	assert.True(t, tok.Inert())
	assert.Equal(t, "ghost", tok.Translation)
	assert.False(t, tok.SelectRole(lexicon.RoleSubject))
	assert.Equal(t, lexicon.RoleNone, tok.Role())
}

func TestFromStoreOneTokenPerRow(t *testing.T) {
	toks := FromStore(testStore())
	require.Len(t, toks, 3)
	// Duplicate words produce duplicate tokens, both resolved to the first row.
	assert.Equal(t, "aun", toks[2].Text)
	assert.Equal(t, toks[0].Flags(), toks[2].Flags())
	assert.Equal(t, 1, toks[0].ID)
	assert.Equal(t, 3, toks[2].ID)
}

func TestSelectRoleOnlyAcceptsFlaggedRoles(t *testing.T) {
	tok := New(1, "aun", testStore())

	cases := []struct {
		role lexicon.Role
		ok   bool
		want lexicon.Role
	}{
		{lexicon.RoleSubject, true, lexicon.RoleSubject},
		{lexicon.RoleVerb, false, lexicon.RoleSubject},
		{lexicon.RoleObject, true, lexicon.RoleObject},
		{lexicon.RoleAdverb, false, lexicon.RoleObject},
		{lexicon.RoleNone, true, lexicon.RoleNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tok.SelectRole(tc.role), "select %v", tc.role)
		assert.Equal(t, tc.want, tok.Role())
		assert.True(t, tok.Role() == lexicon.RoleNone || tok.Flags().Has(tok.Role()))
	}
}

func TestJoinLeave(t *testing.T) {
	tok := New(1, "aun", testStore())
	tok.Join()
	require.True(t, tok.SelectRole(lexicon.RoleSubject))
	assert.True(t, tok.InSentence())
	assert.Equal(t, "in-sentence", tok.Membership().String())

	tok.Leave()
	assert.False(t, tok.InSentence())
	assert.Equal(t, lexicon.RoleNone, tok.Role())
}

func TestBoundsAndPlaceAt(t *testing.T) {
	tok := New(1, "vel", testStore())
	tok.PlaceAt(Vec2{100, 50})
	assert.Equal(t, Rect{X: 100, Y: 50, W: 24, H: 16}, tok.Bounds(fixedMetrics{}))
	assert.Equal(t, tok.Origin, tok.Base)
	assert.Equal(t, tok.Target, tok.Current)
}

func TestRectOverlap(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 20, H: 10}
	b := Rect{X: 15, Y: 5, W: 20, H: 10}
	dx, dy := a.Overlap(b)
	assert.InDelta(t, 5, dx, 1e-9)
	assert.InDelta(t, 5, dy, 1e-9)
	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(Rect{X: 20, Y: 0, W: 5, H: 5}), "touching edges do not overlap")
}

func TestVecHelpers(t *testing.T) {
	v := Vec2{3, 4}
	assert.Equal(t, 5.0, v.Len())
	assert.InDelta(t, 1, v.Unit().Len(), 1e-12)
	assert.Equal(t, Vec2{}, Vec2{}.Unit())
	assert.Equal(t, Vec2{1.5, 2}, Vec2{}.Lerp(v, 0.5))
}
