package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/fred/internal/screen"
)

// Style controls the editor's rendering.
type Style struct {
	Text   lipgloss.Style
	Gutter lipgloss.Style
	Status lipgloss.Style
	Cursor lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:   lipgloss.NewStyle(),
		Gutter: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("5")),
		Cursor: lipgloss.NewStyle().Reverse(true),
	}
}

func (s Style) palette() screen.Palette {
	return screen.Palette{
		screen.RoleText:   s.Text,
		screen.RoleGutter: s.Gutter,
		screen.RoleStatus: s.Status,
		screen.RoleCursor: s.Cursor,
	}
}
