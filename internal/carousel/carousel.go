// Package carousel implements a navigable slide deck: slide registry and
// navigation, timed autoplay, idle hiding of controls, a full-screen toggle,
// and routing of pointer, touch and keyboard input. It builds itself out of
// surface elements and paces itself with a schedule.Scheduler; the host
// renders the tree and dispatches platform events into it.
//
// A Carousel is single-owner and must only be used from the host's event
// goroutine.
package carousel

import (
	"time"

	"github.com/jask/carousel/internal/schedule"
	"github.com/jask/carousel/internal/surface"
)

// Class names forming the visual contract with the renderer.
const (
	ClassRoot           = "carousel"
	ClassSlide          = "carousel-slide"
	ClassNav            = "carousel-nav"
	ClassNavLink        = "carousel-navlink"
	ClassPrevious       = "carousel-previous"
	ClassNext           = "carousel-next"
	ClassFullScreenBtn  = "carousel-fullscreen-toggle"
	ClassActive         = "active"
	ClassHideControls   = "carousel-hide-controls"
	ClassFullScreenMode = "fullscreen"
)

type Carousel struct {
	cfg    Config
	sched  schedule.Scheduler
	slides []*surface.Element
	root   *surface.Element

	navLinks []*surface.Element
	fsButton *surface.Element

	current    int
	fullScreen bool
	autoplay   schedule.Timer
	idle       schedule.Timer
	lastMove   time.Time
	touchStart float64

	onChange []func(int)
	unbind   []func()
	drawn    bool
	closed   bool
}

// New takes ownership of slides; their order is the deck order.
func New(slides []*surface.Element, sched schedule.Scheduler, opts ...Option) *Carousel {
	cfg := DefaultConfig(len(slides))
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Carousel{
		cfg:    cfg,
		sched:  sched,
		slides: append([]*surface.Element(nil), slides...),
		root:   surface.NewElement("div", ClassRoot),
	}
}

func (c *Carousel) Config() Config         { return c.cfg }
func (c *Carousel) Root() *surface.Element { return c.root }
func (c *Carousel) Len() int               { return len(c.slides) }
func (c *Carousel) Current() int           { return c.current }
func (c *Carousel) FullScreen() bool       { return c.fullScreen }

// Playing reports whether an autoplay timer is live.
func (c *Carousel) Playing() bool { return c.autoplay != nil }

func (c *Carousel) ControlsHidden() bool { return c.root.HasClass(ClassHideControls) }

func (c *Carousel) Slide(i int) *surface.Element {
	if i < 0 || i >= len(c.slides) {
		return nil
	}
	return c.slides[i]
}

// OnChange registers fn to be called with the new index after every slide
// change.
func (c *Carousel) OnChange(fn func(index int)) {
	c.onChange = append(c.onChange, fn)
}

// ShowSlide marks index as the active slide and indicator link. Out of range
// indices are ignored and reported as false.
func (c *Carousel) ShowSlide(index int) bool {
	if index < 0 || index >= len(c.slides) {
		return false
	}
	prev := c.current
	c.current = index
	c.mark(prev, false)
	c.mark(index, true)
	if prev != index {
		for _, fn := range c.onChange {
			fn(index)
		}
	}
	return true
}

func (c *Carousel) mark(i int, active bool) {
	els := []*surface.Element{c.slides[i]}
	if i < len(c.navLinks) {
		els = append(els, c.navLinks[i])
	}
	for _, el := range els {
		if active {
			el.AddClass(ClassActive)
		} else {
			el.RemoveClass(ClassActive)
		}
	}
}

// NextSlide advances one slide, wrapping past the last. A user action
// re-paces autoplay if it is running.
func (c *Carousel) NextSlide(userAction bool) {
	if len(c.slides) == 0 {
		return
	}
	c.ShowSlide((c.current + 1) % len(c.slides))
	c.repace(userAction)
}

// PreviousSlide goes back one slide, wrapping before the first.
func (c *Carousel) PreviousSlide(userAction bool) {
	if len(c.slides) == 0 {
		return
	}
	c.ShowSlide((c.current - 1 + len(c.slides)) % len(c.slides))
	c.repace(userAction)
}

// JumpTo shows index as a user action: autoplay, if running, restarts its
// pacing from now.
func (c *Carousel) JumpTo(index int) bool {
	if !c.ShowSlide(index) {
		return false
	}
	c.repace(true)
	return true
}

// navigate is the composite used at mount and by indicator links.
func (c *Carousel) navigate(index int) {
	c.ShowSlide(index)
	if c.cfg.Autoplay {
		c.Start()
	}
}
