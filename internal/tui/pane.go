package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane is a rounded box with the title set into its top border.
type Pane struct {
	Title   string
	Content string
	Focused bool
	Accent  lipgloss.Color
}

// Render draws the pane at exactly width x height. Content lines are clipped
// to width-4 columns; the caller styles them.
func (p Pane) Render(width, height int) string {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}

	border := colorBorder
	if p.Focused {
		border = p.Accent
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(colorText).Bold(true)

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	titleText := " " + strings.TrimSpace(p.Title) + " "
	if strings.TrimSpace(p.Title) == "" {
		titleText = ""
	}
	if ansi.StringWidth(titleText) > innerWidth {
		titleText = " " + ansi.Truncate(strings.TrimSpace(p.Title), max(1, innerWidth-2), "") + " "
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭"+strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)+"╮")

	lines := strings.Split(p.Content, "\n")
	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < height-2; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

// padRight clips or pads s to exactly width columns.
func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
