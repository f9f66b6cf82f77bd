package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/carousel/internal/service"
)

const finderRows = 8

// finder is the "/" overlay listing slide titles ranked against the query.
type finder struct {
	input   textinput.Model
	ranker  *service.Finder
	matches []service.Match
	cursor  int
}

func newFinder(titles []string) *finder {
	inp := textinput.New()
	inp.Placeholder = "Slide title"
	inp.Prompt = "find> "
	inp.CharLimit = 80
	inp.Focus()
	f := &finder{input: inp, ranker: service.NewFinder(titles)}
	f.refresh()
	return f
}

func (f *finder) refresh() {
	f.matches = f.ranker.Rank(f.input.Value())
	if f.cursor >= len(f.matches) {
		f.cursor = max(0, len(f.matches)-1)
	}
}

func (f *finder) move(delta int) {
	if len(f.matches) == 0 {
		return
	}
	f.cursor = (f.cursor + delta + len(f.matches)) % len(f.matches)
}

// selected returns the slide index under the cursor.
func (f *finder) selected() (int, bool) {
	if f.cursor < 0 || f.cursor >= len(f.matches) {
		return 0, false
	}
	return f.matches[f.cursor].Index, true
}

func (f *finder) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	before := f.input.Value()
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() != before {
		f.cursor = 0
		f.refresh()
	}
	return cmd
}

func (f *finder) view(t theme, width int) string {
	width = max(20, width)
	var b strings.Builder
	b.WriteString(f.input.View())
	if len(f.matches) == 0 {
		b.WriteString("\n" + t.muted.Render("no matching slides"))
		return b.String()
	}
	top := 0
	if f.cursor >= finderRows {
		top = f.cursor - finderRows + 1
	}
	for i := top; i < len(f.matches) && i < top+finderRows; i++ {
		m := f.matches[i]
		line := fmt.Sprintf("%3d  %s", m.Index+1, m.Title)
		line = padRight(line, width)
		if i == f.cursor {
			line = t.finderHit.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}
