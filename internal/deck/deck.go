// Package deck discovers slides on disk and wraps them as surface panels for
// the carousel. A deck is loaded from a single image, a markdown file split on
// thematic breaks, a directory, or a deck.yaml / deck.toml manifest.
package deck

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/yuin/goldmark/ast"

	"github.com/jask/carousel/internal/surface"
)

var (
	ErrNoSlides    = errors.New("deck: no slides found")
	ErrUnsupported = errors.New("deck: unsupported file type")
)

type Kind string

const (
	KindImage    Kind = "image"
	KindMarkdown Kind = "markdown"
	KindText     Kind = "text"
)

// Slide is one panel's payload. Markdown slides keep their parsed top-level
// blocks; Markdown is the source those blocks point into.
type Slide struct {
	Title  string `yaml:"title,omitempty"`
	Kind   Kind   `yaml:"kind"`
	Source string `yaml:"source,omitempty"`
	Text   string `yaml:"text,omitempty"`

	Image    image.Image `yaml:"-"`
	Blocks   []ast.Node  `yaml:"-"`
	Markdown []byte      `yaml:"-"`
}

type Deck struct {
	ID      string  `yaml:"id"`
	Title   string  `yaml:"title"`
	Path    string  `yaml:"path"`
	Options Options `yaml:"options,omitempty"`
	Slides  []Slide `yaml:"slides"`
}

// Load discovers the deck at path.
func Load(path string) (*Deck, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat deck: %w", err)
	}

	d := &Deck{
		ID:    DeckID(abs),
		Path:  abs,
		Title: strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs)),
	}
	switch {
	case info.IsDir():
		if m, ok := findManifest(abs); ok {
			err = d.loadManifest(m)
		} else {
			d.Slides, err = discover(abs, defaultPatterns)
		}
	case isManifest(abs):
		err = d.loadManifest(abs)
	default:
		d.Slides, err = loadFile(abs)
	}
	if err != nil {
		return nil, err
	}
	if len(d.Slides) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoSlides)
	}
	return d, nil
}

// DeckID is stable for a given absolute path.
func DeckID(absPath string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("deck:"+filepath.ToSlash(absPath))).String()
}

// Panels wraps every slide in its own element, in deck order. The element's
// Data points at the slide.
func (d *Deck) Panels() []*surface.Element {
	out := make([]*surface.Element, 0, len(d.Slides))
	for i := range d.Slides {
		el := surface.NewElement("div")
		el.Title = d.Slides[i].Title
		el.Data = &d.Slides[i]
		out = append(out, el)
	}
	return out
}

// Titles returns one label per slide, falling back to its position.
func (d *Deck) Titles() []string {
	out := make([]string, len(d.Slides))
	for i, s := range d.Slides {
		out[i] = s.Title
		if out[i] == "" {
			out[i] = fmt.Sprintf("Slide %d", i+1)
		}
	}
	return out
}

func loadFile(path string) ([]Slide, error) {
	switch kindOf(path) {
	case KindImage:
		s, err := loadImage(path)
		if err != nil {
			return nil, err
		}
		return []Slide{s}, nil
	case KindMarkdown:
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read markdown: %w", err)
		}
		return SplitMarkdown(src, path), nil
	case KindText:
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read text: %w", err)
		}
		return []Slide{{Kind: KindText, Source: path, Text: string(b), Title: titleFromPath(path)}}, nil
	}
	return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupported)
}

func kindOf(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp":
		return KindImage
	case ".md", ".markdown":
		return KindMarkdown
	case ".txt":
		return KindText
	}
	return ""
}

func titleFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.NewReplacer("_", " ", "-", " ").Replace(base)
}
