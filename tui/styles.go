package tui

import "github.com/charmbracelet/lipgloss"

// Hacker News colours
const (
	hnOrange = "#FF6600"
	hnBeige  = "#F6F6EF"
	hnGray   = "#828282"
	hnInk    = "#000000"
	hnRed    = "#CC3300"
)

// Styles for the story browser
var (
	// HeaderStyle is the orange title bar
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(hnInk)).
		Background(lipgloss.Color(hnOrange)).
		Padding(0, 1).
		MarginTop(1)

	// MetaStyle is for secondary text: feed, sort, bylines, activity, footers
	MetaStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(hnGray))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(hnRed))

	LoadingStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(hnOrange))

	// SearchInputStyle marks the search term while it is being edited
	SearchInputStyle = lipgloss.NewStyle().
		Underline(true).
		Foreground(lipgloss.Color(hnOrange))

	SelectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(hnInk)).
		Background(lipgloss.Color(hnBeige))

	PreviewBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(hnOrange)).
		Padding(0, 1)

	PreviewTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(hnOrange))
)
