package utils

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.ANSI256)
}

const (
	// HighLoadThreshold is the load factor at and above which LoadStyle reports a table as overloaded.
	HighLoadThreshold = 1.5

	// ModerateLoadThreshold is the load factor at and above which LoadStyle warns.
	ModerateLoadThreshold = 0.75
)

var (
	RedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cc0000"))
	YellowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cc9500"))
	GreenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#06cc00"))
	LightBlueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3cc5ff"))
	LightPurpleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#d864ff"))
	GrayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#adadad"))
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3cc5ff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)
)

// LoadStyle returns the style used to render the given load factor.
func LoadStyle(load float64) lipgloss.Style {
	switch {
	case load >= HighLoadThreshold:
		return RedStyle
	case load >= ModerateLoadThreshold:
		return YellowStyle
	default:
		return GreenStyle
	}
}
