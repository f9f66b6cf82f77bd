package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderPopup centres popup, boxed, over base.
func renderPopup(base, popup string, width, height int, border lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(popup)
	cardLines := strings.Split(card, "\n")
	cardWidth := 0
	for _, l := range cardLines {
		cardWidth = max(cardWidth, ansi.StringWidth(l))
	}
	x := max(0, (width-cardWidth)/2)
	y := max(0, (height-len(cardLines))/2)
	return overlayAt(base, cardLines, x, y, width, height)
}

func overlayAt(base string, overlay []string, x, y, width, height int) string {
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	baseLines = baseLines[:height]
	for i, line := range overlay {
		row := y + i
		if row < 0 || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)
		left := padRight(ansi.Truncate(target, x, ""), x)
		pos := x + ansi.StringWidth(line)
		right := dropColumns(target, pos)
		if gap := width - pos - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}
		baseLines[row] = ansi.Truncate(left+line+right, width, "")
	}
	return strings.Join(baseLines, "\n")
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}
