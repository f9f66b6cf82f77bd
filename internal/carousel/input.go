package carousel

import "github.com/jask/carousel/internal/surface"

func (c *Carousel) listen(el *surface.Element, typ string, fn func(surface.Event)) {
	c.unbind = append(c.unbind, el.On(typ, fn))
}

func (c *Carousel) createButton(title, class string, click func(surface.Event)) *surface.Element {
	btn := surface.NewElement("button", class)
	btn.Title = title
	btn.Append(surface.NewElement("i"))
	c.listen(btn, surface.EventClick, click)
	return btn
}

func (c *Carousel) createArrows() {
	if !c.cfg.Arrows {
		return
	}
	c.root.Append(
		c.createButton("Previous Image", ClassPrevious, func(surface.Event) { c.PreviousSlide(true) }),
		c.createButton("Next Image", ClassNext, func(surface.Event) { c.NextSlide(true) }),
	)
}

func (c *Carousel) createNav() {
	if !c.cfg.Nav {
		return
	}
	nav := surface.NewElement("ol", ClassNav)
	for i := range c.slides {
		li := surface.NewElement("li", ClassNavLink)
		if i == 0 {
			li.AddClass(ClassActive)
		}
		c.listen(li, surface.EventClick, func(surface.Event) { c.navigate(i) })
		nav.Append(li)
		c.navLinks = append(c.navLinks, li)
	}
	c.root.Append(nav)
}

// swipe resolves a touch gesture against the recorded start coordinate.
func (c *Carousel) swipe(end float64) {
	switch {
	case end < c.touchStart:
		c.PreviousSlide(true)
	case end > c.touchStart:
		c.NextSlide(true)
	}
	c.touchStart = 0
}

// keyUp handles document keys. Shortcuts are live only in full-screen mode so
// arrows keep their normal meaning in the page layout.
func (c *Carousel) keyUp(ev surface.Event) {
	if !c.fullScreen {
		return
	}
	switch ev.Key {
	case surface.KeyArrowLeft:
		c.PreviousSlide(true)
	case surface.KeyArrowRight:
		c.NextSlide(true)
	case surface.KeyEscape:
		if btn := c.root.Query(ClassFullScreenBtn); btn != nil {
			btn.Click()
		}
	}
}

func (c *Carousel) detectUserInput(document *surface.Element) {
	c.listen(c.root, surface.EventTouchStart, func(ev surface.Event) { c.touchStart = ev.ScreenX })
	c.listen(c.root, surface.EventTouchEnd, func(ev surface.Event) { c.swipe(ev.ScreenX) })
	c.listen(document, surface.EventKeyUp, c.keyUp)
}
