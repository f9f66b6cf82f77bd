package deck

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// SplitMarkdown cuts a markdown document into slides at thematic breaks.
// A break needs a blank line above it, otherwise "---" underlines a heading.
// Each slide is titled by its first heading.
func SplitMarkdown(src []byte, source string) []Slide {
	doc := markdown.Parser().Parse(text.NewReader(src))

	var (
		slides []Slide
		cur    []ast.Node
	)
	flush := func() {
		if len(cur) == 0 {
			return
		}
		slides = append(slides, Slide{
			Kind:     KindMarkdown,
			Source:   source,
			Title:    firstHeading(cur, src),
			Blocks:   cur,
			Markdown: src,
		})
		cur = nil
	}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if n.Kind() == ast.KindThematicBreak {
			flush()
			continue
		}
		cur = append(cur, n)
	}
	flush()
	return slides
}

func firstHeading(blocks []ast.Node, src []byte) string {
	for _, b := range blocks {
		if h, ok := b.(*ast.Heading); ok {
			return PlainText(h, src)
		}
	}
	return ""
}

// PlainText flattens the inline content under n.
func PlainText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
