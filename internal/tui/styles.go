package tui

import "github.com/charmbracelet/lipgloss"

var (
	purple = lipgloss.Color("#a855f7")
	muted  = lipgloss.Color("#6b7280")

	// navbar at the top of the page: no background
	navTopStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(purple).
			Padding(0, 1)

	// navbar once the page is scrolled past the threshold
	navScrolledStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.Color("#4c1d95")).
				Padding(0, 1)

	menuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(purple).
			Padding(0, 1)

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(purple)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	techStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b5cf6"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6366f1"))
	helpStyle    = lipgloss.NewStyle().Foreground(muted).Italic(true)
)
