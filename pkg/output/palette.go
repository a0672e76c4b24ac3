package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette holds the display styles used by the report.
// It is built once per writer and never modified.
type Palette struct {
	Green  lipgloss.Style
	Red    lipgloss.Style
	Yellow lipgloss.Style
	Blue   lipgloss.Style
	Bold   lipgloss.Style
}

// NewPalette returns styles rendering to w. Without color every style
// renders its input unchanged.
func NewPalette(w io.Writer, color bool) Palette {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return Palette{
		Green:  r.NewStyle().Foreground(lipgloss.Color("10")),
		Red:    r.NewStyle().Foreground(lipgloss.Color("9")),
		Yellow: r.NewStyle().Foreground(lipgloss.Color("11")),
		Blue:   r.NewStyle().Foreground(lipgloss.Color("12")),
		Bold:   r.NewStyle().Bold(true),
	}
}
