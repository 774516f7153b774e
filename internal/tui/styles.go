package tui

import "github.com/charmbracelet/lipgloss"

// Dashboard theme (dark mode)
var (
	bgPanelColor      = lipgloss.Color("#141414")
	borderSubtleColor = lipgloss.Color("#3c3c3c")
	borderActiveColor = lipgloss.Color("#606060")

	primaryColor   = lipgloss.Color("#fab283") // warm peach/orange
	secondaryColor = lipgloss.Color("#5c9cf5") // blue

	errorColor   = lipgloss.Color("#e06c75")
	successColor = lipgloss.Color("#7fd88f")
	yellowColor  = lipgloss.Color("#e5c07b")

	textColor      = lipgloss.Color("#eeeeee")
	textMutedColor = lipgloss.Color("#808080")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Bold(true)

	badgeStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	badgeIdleStyle = lipgloss.NewStyle().
			Foreground(textMutedColor)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(borderSubtleColor).
			Padding(0, 1)

	panelActiveStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(borderActiveColor).
				Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Background(bgPanelColor).
			Foreground(textColor).
			Bold(true)

	countStyle = lipgloss.NewStyle().
			Foreground(textMutedColor)

	teamDescStyle = lipgloss.NewStyle().
			Foreground(textMutedColor).
			Italic(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(textMutedColor).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(textMutedColor)

	refreshedStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)
)
