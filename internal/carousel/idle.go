package carousel

import "github.com/jask/carousel/internal/surface"

// manageControls installs the idle tracker. Controls start hidden and show
// while the pointer moves inside the root.
func (c *Carousel) manageControls() {
	if c.cfg.Idleness <= 0 {
		return
	}
	c.root.AddClass(ClassHideControls)
	c.listen(c.root, surface.EventMouseLeave, func(surface.Event) { c.hideControls() })
	c.listen(c.root, surface.EventMouseMove, func(surface.Event) { c.pointerMoved() })
}

func (c *Carousel) pointerMoved() {
	c.lastMove = c.sched.Now()
	if c.idle != nil {
		return
	}
	c.root.RemoveClass(ClassHideControls)
	c.idle = c.sched.Every(IdleCheckPeriod, c.checkIdle)
}

func (c *Carousel) checkIdle() {
	if c.idle == nil || c.lastMove.IsZero() {
		return
	}
	if c.sched.Now().Sub(c.lastMove) > c.cfg.Idleness {
		c.hideControls()
	}
}

// hideControls is where both the leave and the timeout paths end up.
func (c *Carousel) hideControls() {
	c.root.AddClass(ClassHideControls)
	c.stopIdle()
}

func (c *Carousel) stopIdle() {
	if c.idle != nil {
		c.idle.Stop()
		c.idle = nil
	}
}
