package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/jask/carousel/internal/deck"
)

// Markdown renders top-level markdown blocks as styled lines no wider than
// width.
func Markdown(blocks []ast.Node, src []byte, width int) string {
	if width < 1 {
		width = 1
	}
	r := mdRenderer{src: src}
	var lines []string
	for i, b := range blocks {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, r.block(b, width)...)
	}
	return strings.Join(lines, "\n")
}

type mdRenderer struct {
	src []byte
}

func (r mdRenderer) block(n ast.Node, width int) []string {
	switch n := n.(type) {
	case *ast.Heading:
		style := hNStyle
		switch n.Level {
		case 1:
			style = h1Style
		case 2:
			style = h2Style
		}
		return wrap(style.Render(deck.PlainText(n, r.src)), width)
	case *ast.Paragraph, *ast.TextBlock:
		return wrap(r.inline(n), width)
	case *ast.List:
		return r.list(n, width)
	case *ast.FencedCodeBlock:
		return r.code(n, width)
	case *ast.CodeBlock:
		return r.code(n, width)
	case *ast.Blockquote:
		var out []string
		for _, l := range r.children(n, width-2) {
			out = append(out, quoteStyle.Render("│ ")+l)
		}
		return out
	case *ast.HTMLBlock:
		return nil
	case *east.Table:
		return r.table(n, width)
	}
	return r.children(n, width)
}

func (r mdRenderer) children(n ast.Node, width int) []string {
	var out []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, r.block(c, width)...)
	}
	return out
}

func (r mdRenderer) list(n *ast.List, width int) []string {
	var out []string
	i := n.Start
	if i == 0 {
		i = 1
	}
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "• "
		if n.IsOrdered() {
			marker = fmt.Sprintf("%d. ", i)
			i++
		}
		pad := strings.Repeat(" ", ansi.StringWidth(marker))
		for j, l := range r.children(item, width-len(pad)) {
			if j == 0 {
				out = append(out, mutedStyle.Render(marker)+l)
			} else {
				out = append(out, pad+l)
			}
		}
	}
	return out
}

func (r mdRenderer) code(n ast.Node, width int) []string {
	lines := n.Lines()
	raw := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		l := strings.TrimRight(string(seg.Value(r.src)), "\r\n")
		raw = append(raw, strings.ReplaceAll(l, "\t", "    "))
	}
	var lang string
	if fenced, ok := n.(*ast.FencedCodeBlock); ok {
		lang = string(fenced.Language(r.src))
	}
	if colored, ok := highlight(strings.Join(raw, "\n"), lang); ok {
		for i := range colored {
			colored[i] = ansi.Truncate(colored[i], width, "…")
		}
		return colored
	}
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		out = append(out, codeStyle.Render(ansi.Truncate(l, width, "…")))
	}
	return out
}

func (r mdRenderer) table(n *east.Table, width int) []string {
	var out []string
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, r.inline(cell))
		}
		line := strings.Join(cells, quoteStyle.Render(" │ "))
		if _, header := row.(*east.TableHeader); header {
			line = strongStyle.Render(line)
		}
		out = append(out, ansi.Truncate(line, width, "…"))
	}
	return out
}

func (r mdRenderer) inline(n ast.Node) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(r.src))
			switch {
			case c.HardLineBreak():
				sb.WriteByte('\n')
			case c.SoftLineBreak():
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(c.Value)
		case *ast.CodeSpan:
			sb.WriteString(codeStyle.Render(deck.PlainText(c, r.src)))
		case *ast.Emphasis:
			if c.Level >= 2 {
				sb.WriteString(strongStyle.Render(r.inline(c)))
			} else {
				sb.WriteString(emStyle.Render(r.inline(c)))
			}
		case *east.Strikethrough:
			sb.WriteString(strikeStyle.Render(r.inline(c)))
		case *ast.Link:
			sb.WriteString(linkStyle.Render(r.inline(c)))
		case *ast.AutoLink:
			sb.WriteString(linkStyle.Render(string(c.URL(r.src))))
		case *ast.Image:
			sb.WriteString(mutedStyle.Render("[image: " + deck.PlainText(c, r.src) + "]"))
		case *ast.RawHTML:
		default:
			sb.WriteString(r.inline(c))
		}
	}
	return sb.String()
}

func wrap(s string, width int) []string {
	return strings.Split(ansi.Wordwrap(s, width, ""), "\n")
}
