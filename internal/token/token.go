// Package token defines the on-screen word entity: its text, role flags,
// selection state and the position fields animated by the layout engine.
package token

import "logosphere/internal/lexicon"

// Membership is the token's place in the sentence state machine.
type Membership uint8

const (
	Free Membership = iota
	InSentence
)

func (m Membership) String() string {
	if m == InSentence {
		return "in-sentence"
	}
	return "free"
}

// Token is a single placeable, animatable word.
type Token struct {
	ID          int
	Text        string
	Translation string

	flags      lexicon.Flags
	membership Membership
	role       lexicon.Role

	// Base is the anchor idle motion floats around. Origin is the first
	// placement and is restored when the token leaves the sentence.
	Base    Vec2
	Origin  Vec2
	Current Vec2
	Target  Vec2

	// Cluster is the grid centre of the token's translation group.
	Cluster    Vec2
	HasCluster bool

	// CenterCandidate is set when the initial placement fell inside the
	// central region of the canvas.
	CenterCandidate bool

	// Transient push applied on top of idle motion.
	Avoid      Vec2
	AvoidTimer int

	// Idle float parameters.
	Phase     float64
	Amplitude float64
	Speed     float64
}

// Flags returns the roles this token may take. They never change.
func (t *Token) Flags() lexicon.Flags { return t.flags }

// Available returns the flagged roles in label order.
func (t *Token) Available() []lexicon.Role { return t.flags.Available() }

// Inert reports whether no role can ever be assigned to the token.
func (t *Token) Inert() bool { return t.flags.Count() == 0 }

// Role returns the selected role, or RoleNone.
func (t *Token) Role() lexicon.Role { return t.role }

// Membership returns Free or InSentence.
func (t *Token) Membership() Membership { return t.membership }

// InSentence reports whether the token is part of the sentence.
func (t *Token) InSentence() bool { return t.membership == InSentence }

// SelectRole sets the selected role. It reports false and leaves the token
// unchanged when r is not one of the token's flagged roles. RoleNone is
// always accepted and clears the selection.
func (t *Token) SelectRole(r lexicon.Role) bool {
	if r != lexicon.RoleNone && !t.flags.Has(r) {
		return false
	}
	t.role = r
	return true
}

// Join marks the token as part of the sentence.
func (t *Token) Join() { t.membership = InSentence }

// Leave returns the token to the free pool and clears its role.
func (t *Token) Leave() {
	t.membership = Free
	t.role = lexicon.RoleNone
}

// Bounds returns the token's text box at its current position.
func (t *Token) Bounds(m Metrics) Rect {
	return Rect{X: t.Current.X, Y: t.Current.Y, W: m.TextWidth(t.Text), H: m.LineHeight()}
}

// PlaceAt sets every position field to p. It is the only way a token's
// drawn position jumps; all later motion interpolates toward Target.
func (t *Token) PlaceAt(p Vec2) {
	t.Base = p
	t.Origin = p
	t.Current = p
	t.Target = p
}
