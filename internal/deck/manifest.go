package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jask/carousel/internal/carousel"
)

var manifestNames = []string{"deck.yaml", "deck.yml", "deck.toml"}

// Options are per-deck carousel overrides. Unset fields keep the carousel
// defaults.
type Options struct {
	Nav        *bool          `yaml:"nav,omitempty" toml:"nav"`
	Arrows     *bool          `yaml:"arrows,omitempty" toml:"arrows"`
	FullScreen *bool          `yaml:"fullscreen,omitempty" toml:"fullscreen"`
	Autoplay   *bool          `yaml:"autoplay,omitempty" toml:"autoplay"`
	Interval   *time.Duration `yaml:"interval,omitempty" toml:"interval"`
	Idleness   *time.Duration `yaml:"idleness,omitempty" toml:"idleness"`
}

// CarouselOptions turns the set fields into carousel options. A non-positive
// interval is ignored.
func (o Options) CarouselOptions() []carousel.Option {
	var out []carousel.Option
	if o.Nav != nil {
		out = append(out, carousel.WithNav(*o.Nav))
	}
	if o.Arrows != nil {
		out = append(out, carousel.WithArrows(*o.Arrows))
	}
	if o.FullScreen != nil {
		out = append(out, carousel.WithFullScreen(*o.FullScreen))
	}
	if o.Autoplay != nil {
		out = append(out, carousel.WithAutoplay(*o.Autoplay))
	}
	if o.Interval != nil && *o.Interval > 0 {
		out = append(out, carousel.WithInterval(*o.Interval))
	}
	if o.Idleness != nil {
		out = append(out, carousel.WithIdleness(*o.Idleness))
	}
	return out
}

// Merge returns o with every field set in over replacing it.
func (o Options) Merge(over Options) Options {
	if over.Nav != nil {
		o.Nav = over.Nav
	}
	if over.Arrows != nil {
		o.Arrows = over.Arrows
	}
	if over.FullScreen != nil {
		o.FullScreen = over.FullScreen
	}
	if over.Autoplay != nil {
		o.Autoplay = over.Autoplay
	}
	if over.Interval != nil {
		o.Interval = over.Interval
	}
	if over.Idleness != nil {
		o.Idleness = over.Idleness
	}
	return o
}

type manifest struct {
	Title   string  `yaml:"title" toml:"title"`
	Options Options `yaml:"options" toml:"options"`
	Slides  []entry `yaml:"slides" toml:"slides"`
}

// entry names exactly one source.
type entry struct {
	Title    string `yaml:"title" toml:"title"`
	Image    string `yaml:"image" toml:"image"`
	Markdown string `yaml:"markdown" toml:"markdown"`
	Text     string `yaml:"text" toml:"text"`
	Glob     string `yaml:"glob" toml:"glob"`
}

func isManifest(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	for _, n := range manifestNames {
		if base == n {
			return true
		}
	}
	return false
}

func findManifest(dir string) (string, bool) {
	for _, n := range manifestNames {
		p := filepath.Join(dir, n)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

func parseManifest(path string) (manifest, error) {
	var m manifest
	b, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read manifest: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(b, &m)
	} else {
		err = yaml.Unmarshal(b, &m)
	}
	if err != nil {
		return m, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return m, nil
}

func (d *Deck) loadManifest(path string) error {
	m, err := parseManifest(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if m.Title != "" {
		d.Title = m.Title
	} else {
		d.Title = filepath.Base(dir)
	}
	d.Options = m.Options

	for i, e := range m.Slides {
		slides, err := e.load(dir)
		if err != nil {
			return fmt.Errorf("slide %d: %w", i+1, err)
		}
		if e.Title != "" && len(slides) == 1 {
			slides[0].Title = e.Title
		}
		d.Slides = append(d.Slides, slides...)
	}
	return nil
}

func (e entry) load(dir string) ([]Slide, error) {
	rel := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, filepath.FromSlash(p))
	}
	switch {
	case e.Image != "":
		s, err := loadImage(rel(e.Image))
		if err != nil {
			return nil, err
		}
		return []Slide{s}, nil
	case e.Markdown != "":
		return loadFile(rel(e.Markdown))
	case e.Text != "":
		return []Slide{{Kind: KindText, Text: e.Text}}, nil
	case e.Glob != "":
		return discover(dir, []string{e.Glob})
	}
	return nil, fmt.Errorf("entry has no image, markdown, text or glob")
}
