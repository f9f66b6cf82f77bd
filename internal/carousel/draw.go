package carousel

import "github.com/jask/carousel/internal/surface"

// Draw builds the carousel under container and shows the first slide,
// starting autoplay when configured. Whatever the container held besides the
// slides is cleared. Keyboard shortcuts are registered on the container's
// top-most ancestor. Drawing more than once is a no-op.
func (c *Carousel) Draw(container *surface.Element) {
	if c.drawn || c.closed || container == nil {
		return
	}
	c.drawn = true
	c.createDeck()
	c.createNav()
	c.createArrows()
	c.createFullScreenMode()
	c.manageControls()
	c.detectUserInput(container.Root())
	c.navigate(0)
	container.Clear()
	container.Append(c.root)
}

func (c *Carousel) createDeck() {
	for _, s := range c.slides {
		s.AddClass(ClassSlide)
	}
	c.root.Append(c.slides...)
}

// Close tears the carousel down: both timers are cancelled, every listener it
// installed is removed and the root is detached from its container. It is
// safe to call more than once; Start does nothing afterwards.
func (c *Carousel) Close() {
	if c.closed {
		return
	}
	c.Stop()
	c.stopIdle()
	c.closed = true
	for _, off := range c.unbind {
		off()
	}
	c.unbind = nil
	c.root.Remove()
}
