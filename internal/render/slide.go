// Package render turns deck slides into terminal text sized to a cell box.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/carousel/internal/deck"
)

// Slide renders s into exactly width x height cells.
func Slide(s *deck.Slide, width, height int) string {
	if s == nil || width < 1 || height < 1 {
		return ""
	}
	var body string
	switch s.Kind {
	case deck.KindImage:
		return Image(s.Image, width, height)
	case deck.KindMarkdown:
		body = Markdown(s.Blocks, s.Markdown, width)
	default:
		body = textStyle.Width(width).Render(s.Text)
	}
	body = lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

type cacheKey struct {
	slide         *deck.Slide
	width, height int
}

// Cache memoises rendered slides; image scaling is too slow to repeat on
// every frame.
type Cache struct {
	entries map[cacheKey]string
}

func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]string)}
}

func (c *Cache) Slide(s *deck.Slide, width, height int) string {
	k := cacheKey{slide: s, width: width, height: height}
	if out, ok := c.entries[k]; ok {
		return out
	}
	out := Slide(s, width, height)
	c.entries[k] = out
	return out
}

// Reset drops every entry, e.g. after a resize.
func (c *Cache) Reset() {
	clear(c.entries)
}
