package main

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	primaryColor   = lipgloss.Color("#7D56F4")
	secondaryColor = lipgloss.Color("#00D7FF")
	successColor   = lipgloss.Color("#04B575")
	warningColor   = lipgloss.Color("#FFA500")
	errorColor     = lipgloss.Color("#FF4B4B")
	mutedColor     = lipgloss.Color("#666666")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	pathStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	nameStyle = lipgloss.NewStyle().
			Foreground(successColor)

	inheritedStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	changedStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	removedStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)

// render applies style unless --no-color is set.
func render(style lipgloss.Style, s string) string {
	if noColor {
		return s
	}
	return style.Render(s)
}
