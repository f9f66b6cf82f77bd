package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/carousel/internal/carousel"
	"github.com/jask/carousel/internal/deck"
)

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	l := a.layout()
	body := a.renderWidget(l)

	var out string
	if l.full {
		out = body
	} else {
		out = strings.Join([]string{a.renderHeader(), body, a.renderHelp(), a.renderStatus()}, "\n")
	}
	switch {
	case a.showHelp:
		full := a.help.FullHelpView(chunk(a.keys.HelpBindings(scopeDeck), 4))
		out = renderPopup(out, full, a.width, a.height, a.theme.accent)
	case a.finder != nil:
		out = renderPopup(out, a.finder.view(a.theme, min(60, a.width-8)), a.width, a.height, a.theme.accent)
	}
	return out
}

func (a *App) renderWidget(l layout) string {
	content := a.renderSlide(l.slide) + "\n" + a.renderControls(l)
	if l.full {
		return content
	}
	title := fmt.Sprintf("%d/%d", a.car.Current()+1, a.car.Len())
	if s := a.currentSlide(); s != nil && s.Title != "" {
		title = s.Title + " · " + title
	}
	return Pane{
		Title:   title,
		Content: content,
		Focused: !a.car.ControlsHidden(),
		Accent:  a.theme.accent,
	}.Render(l.widget.w, l.widget.h)
}

// currentSlide reads the slide payload off the element marked active.
func (a *App) currentSlide() *deck.Slide {
	for _, el := range a.car.Root().QueryAll(carousel.ClassSlide) {
		if el.HasClass(carousel.ClassActive) {
			s, _ := el.Data.(*deck.Slide)
			return s
		}
	}
	return nil
}

func (a *App) renderSlide(r rect) string {
	out := a.cache.Slide(a.currentSlide(), r.w, r.h)
	if out == "" {
		return strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", r.w)+"\n", r.h), "\n")
	}
	return out
}

func (a *App) renderControls(l layout) string {
	width := l.slide.w
	if a.car.ControlsHidden() {
		return strings.Repeat(" ", width)
	}
	var b strings.Builder
	col := l.slide.x
	for _, c := range l.controls {
		if c.col < col {
			continue
		}
		b.WriteString(strings.Repeat(" ", c.col-col))
		style := a.theme.control
		if c.active {
			style = a.theme.dotActive
		}
		if c.el == a.hover {
			style = a.theme.controlHot
		}
		b.WriteString(style.Render(c.label))
		col = c.col + c.width
	}
	return padRight(b.String(), width)
}

func (a *App) renderHeader() string {
	state := "paused"
	if a.car.Playing() {
		state = fmt.Sprintf("playing every %s", a.car.Config().Interval)
	}
	left := a.theme.headerApp.Render(" "+appName+" ") + a.theme.header.Render(" "+a.session.Deck.Title)
	right := a.theme.header.Render(state + " ")
	gap := max(0, a.width-ansi.StringWidth(left)-ansi.StringWidth(right))
	line := left + a.theme.header.Render(strings.Repeat(" ", gap)) + right
	return ansi.Truncate(line, a.width, "")
}

func (a *App) renderHelp() string {
	line := a.help.ShortHelpView(a.keys.HelpBindings(scopeDeck))
	return a.theme.footer.Width(a.width).MaxWidth(a.width).Render(ansi.Truncate(line, a.width, ""))
}

// renderStatus shows the status message, or the title of the control under
// the pointer.
func (a *App) renderStatus() string {
	msg := strings.TrimSpace(a.status)
	if a.hover != nil && a.hover.Title != "" {
		msg = a.hover.Title
	}
	if msg == "" {
		msg = "Ready"
	}
	style := a.theme.statusBar
	if a.statusErr {
		style = a.theme.statusErr
	}
	return style.Width(a.width).MaxWidth(a.width).Render(padRight(msg, a.width))
}

func chunk[T any](items []T, size int) [][]T {
	var out [][]T
	for size < len(items) {
		items, out = items[size:], append(out, items[:size])
	}
	return append(out, items)
}
