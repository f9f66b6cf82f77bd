package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const codeTheme = "monokai"

// highlight colours code for a 256-colour terminal. It reports false when the
// language is unknown so the caller can fall back to plain code styling.
func highlight(code, lang string) ([]string, bool) {
	if lang == "" {
		return nil, false
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return nil, false
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return nil, false
	}
	var sb strings.Builder
	if err := formatters.TTY256.Format(&sb, styles.Get(codeTheme), it); err != nil {
		return nil, false
	}
	return strings.Split(strings.TrimRight(sb.String(), "\n"), "\n"), true
}
