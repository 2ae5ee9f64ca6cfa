package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - pinyin, prompt
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - characters, input
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - copied
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorLabel     = lipgloss.Color("#a8dadc") // Label color
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true).
			Width(10)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	pinyinStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	hanziStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	partStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)
