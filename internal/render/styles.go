package render

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorBorder  lipgloss.Color = "#585b70"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorCode    lipgloss.Color = "#f9e2af"
	colorSurface lipgloss.Color = "#313244"
)

var (
	textStyle = lipgloss.NewStyle().Foreground(colorText)

	h1Style = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Underline(true)
	h2Style = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	hNStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)

	emStyle     = lipgloss.NewStyle().Italic(true)
	strongStyle = lipgloss.NewStyle().Bold(true)
	strikeStyle = lipgloss.NewStyle().Strikethrough(true)
	linkStyle   = lipgloss.NewStyle().Foreground(colorAccent).Underline(true)
	codeStyle   = lipgloss.NewStyle().Foreground(colorCode).Background(colorSurface)
	quoteStyle  = lipgloss.NewStyle().Foreground(colorBorder)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)
