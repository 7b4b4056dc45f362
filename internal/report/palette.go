package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette holds the three status colours.
type Palette struct {
	Green  lipgloss.Color
	Red    lipgloss.Color
	Orange lipgloss.Color
}

var (
	trueColorPalette = Palette{
		Green:  lipgloss.Color("#81C784"),
		Red:    lipgloss.Color("#E57373"),
		Orange: lipgloss.Color("#FFB74D"),
	}
	ansiPalette = Palette{
		Green:  lipgloss.Color("2"),
		Red:    lipgloss.Color("1"),
		Orange: lipgloss.Color("208"),
	}
)

// PaletteFor picks RGB colours on truecolor terminals and ANSI 256 colours
// everywhere else.
func PaletteFor(profile termenv.Profile) Palette {
	if profile == termenv.TrueColor {
		return trueColorPalette
	}
	return ansiPalette
}
