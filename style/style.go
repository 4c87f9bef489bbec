// Package style composes lipgloss styles for command output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/grngxd/tiramisu/color"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a renderer that applies the foreground color c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Tag renders s as a padded block, used for variant labels.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// Box frames body under a bold title. Width 0 lets the content decide.
func Box(border lipgloss.Color, title, body string, width int) string {
	box := New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Margin(1, 0)

	if width > 0 {
		box = box.Width(width)
	}

	return box.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		New().Bold(true).Foreground(border).Render(title),
		"",
		New().Foreground(color.Mascarpone).Render(body),
	))
}
