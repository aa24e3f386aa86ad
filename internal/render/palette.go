package render

import (
	"logosphere/internal/lexicon"

	"github.com/gdamore/tcell/v2"
)

// Palette holds every style the exhibit draws with.
type Palette struct {
	Free     tcell.Style
	Selected tcell.Style
	Inert    tcell.Style

	LabelActive     tcell.Style // the word's current role
	LabelAssignable tcell.Style
	LabelBlocked    tcell.Style // held by another word

	Help    tcell.Style
	Border  tcell.Style
	Header  tcell.Style
	Text    tcell.Style
	Tab     tcell.Style
	TabOpen tcell.Style

	// Roles colours sentence words by their role; RoleNone is the
	// colour of a sentence word without one.
	Roles map[lexicon.Role]tcell.Color
	// Layers cycles over sphere layers from the innermost out.
	Layers []tcell.Color
}

// DefaultPalette is the stock colour scheme on a black background.
var DefaultPalette = Palette{
	Free:     base.Foreground(tcell.ColorSilver),
	Selected: base.Foreground(tcell.ColorWhite).Bold(true).Underline(true),
	Inert:    base.Foreground(tcell.ColorGray),

	LabelActive:     base.Foreground(tcell.ColorLime).Bold(true),
	LabelAssignable: base.Foreground(tcell.ColorDodgerBlue),
	LabelBlocked:    base.Foreground(tcell.ColorDimGray),

	Help:    base.Foreground(tcell.ColorGray).Italic(true),
	Border:  base.Foreground(tcell.ColorDarkSlateGray),
	Header:  base.Foreground(tcell.ColorLightYellow).Bold(true),
	Text:    base.Foreground(tcell.ColorWhite),
	Tab:     base.Foreground(tcell.ColorGray),
	TabOpen: base.Foreground(tcell.ColorBlack).Background(tcell.ColorLightYellow),

	Roles: map[lexicon.Role]tcell.Color{
		lexicon.RoleNone:    tcell.ColorWhite,
		lexicon.RoleSubject: tcell.ColorGold,
		lexicon.RoleVerb:    tcell.ColorTomato,
		lexicon.RoleObject:  tcell.ColorMediumOrchid,
		lexicon.RoleAdverb:  tcell.ColorMediumAquamarine,
	},
	Layers: []tcell.Color{
		tcell.ColorGold,
		tcell.ColorTomato,
		tcell.ColorMediumOrchid,
		tcell.ColorMediumAquamarine,
		tcell.ColorCornflowerBlue,
		tcell.ColorLightPink,
	},
}

var base = tcell.StyleDefault.Background(tcell.ColorBlack)

// Role returns the style of a sentence word holding r.
func (p Palette) Role(r lexicon.Role) tcell.Style {
	c, ok := p.Roles[r]
	if !ok {
		c = tcell.ColorWhite
	}
	return base.Foreground(c).Bold(true)
}

// Layer returns the style of sphere layer i. Copies behind the centre are
// dimmed.
func (p Palette) Layer(i int, behind bool) tcell.Style {
	c := tcell.ColorWhite
	if len(p.Layers) > 0 {
		c = p.Layers[i%len(p.Layers)]
	}
	return base.Foreground(c).Dim(behind).Bold(!behind)
}
