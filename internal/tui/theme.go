package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#6c7086"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
)

// theme holds the styles that depend on the configured accent.
type theme struct {
	accent lipgloss.Color

	header     lipgloss.Style
	headerApp  lipgloss.Style
	statusBar  lipgloss.Style
	statusErr  lipgloss.Style
	footer     lipgloss.Style
	control    lipgloss.Style
	controlHot lipgloss.Style
	dotActive  lipgloss.Style
	finderHit  lipgloss.Style
	muted      lipgloss.Style
}

func newTheme(accent string) theme {
	a := colorAccent
	if accent != "" {
		a = lipgloss.Color(accent)
	}
	return theme{
		accent:     a,
		header:     lipgloss.NewStyle().Background(colorMantle).Foreground(colorText),
		headerApp:  lipgloss.NewStyle().Background(colorMantle).Foreground(a).Bold(true),
		statusBar:  lipgloss.NewStyle().Background(colorSurface0).Foreground(colorSuccess),
		statusErr:  lipgloss.NewStyle().Background(colorSurface0).Foreground(colorError),
		footer:     lipgloss.NewStyle().Background(colorMantle),
		control:    lipgloss.NewStyle().Foreground(colorMuted),
		controlHot: lipgloss.NewStyle().Foreground(a).Bold(true),
		dotActive:  lipgloss.NewStyle().Foreground(a),
		finderHit:  lipgloss.NewStyle().Foreground(a).Bold(true),
		muted:      lipgloss.NewStyle().Foreground(colorMuted),
	}
}

func (t theme) helpModel() help.Model {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(t.accent).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(colorMuted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(colorBorder)
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc
	h.Styles.FullSeparator = h.Styles.ShortSeparator
	return h
}
