package carousel

import "time"

const (
	DefaultInterval = 7 * time.Second
	DefaultIdleness = 3 * time.Second

	// IdleCheckPeriod is how often the idle tracker polls, regardless of the
	// configured idleness.
	IdleCheckPeriod = time.Second

	// navLimit is the slide count from which indicator links are off by default.
	navLimit = 12
)

// Config is fixed once a Carousel is constructed.
type Config struct {
	Nav        bool
	Arrows     bool
	FullScreen bool
	Autoplay   bool
	// Interval is the time each slide is shown while autoplaying.
	Interval time.Duration
	// Idleness is how long the pointer may rest before controls hide.
	// Zero disables hiding.
	Idleness time.Duration
}

// DefaultConfig returns the defaults for a deck of slideCount slides.
func DefaultConfig(slideCount int) Config {
	return Config{
		Nav:        slideCount < navLimit,
		Arrows:     true,
		FullScreen: true,
		Autoplay:   true,
		Interval:   DefaultInterval,
		Idleness:   DefaultIdleness,
	}
}

// Option overrides one Config field.
type Option func(*Config)

func WithNav(on bool) Option        { return func(c *Config) { c.Nav = on } }
func WithArrows(on bool) Option     { return func(c *Config) { c.Arrows = on } }
func WithFullScreen(on bool) Option { return func(c *Config) { c.FullScreen = on } }
func WithAutoplay(on bool) Option   { return func(c *Config) { c.Autoplay = on } }

func WithInterval(d time.Duration) Option { return func(c *Config) { c.Interval = d } }

// WithIdleness sets the quiet period before controls hide; 0 disables hiding.
func WithIdleness(d time.Duration) Option { return func(c *Config) { c.Idleness = d } }
