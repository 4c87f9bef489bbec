// Package color names the terminal colors used by the command output.
package color

import "github.com/charmbracelet/lipgloss"

func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI colors follow the user's terminal theme.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")

	HiRed    = New("9")
	HiYellow = New("11")
	HiPurple = New("13")
	HiCyan   = New("14")
)

// Tiramisu tones used for banners and boxes.
var (
	Cocoa      = New("#7b4a2d")
	Mascarpone = New("#f5ebd7")
	Espresso   = New("#3b2418")
	Ladyfinger = New("#e0b872")
	Gray       = New("#808080")
)

// Of returns the color a capability group is rendered with.
func Of(group string) lipgloss.Color {
	switch group {
	case "fs":
		return Blue
	case "notifications":
		return Yellow
	default:
		return Purple
	}
}
