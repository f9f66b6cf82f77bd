package carousel

// Start (re)arms autoplay. Any running timer is stopped first, so at most one
// is ever live. Ticks advance without re-pacing themselves.
func (c *Carousel) Start() {
	c.Stop()
	if c.closed || c.sched == nil {
		return
	}
	c.autoplay = c.sched.Every(c.cfg.Interval, func() { c.NextSlide(false) })
}

// Stop halts autoplay. Calling it when nothing is running is a no-op.
func (c *Carousel) Stop() {
	if c.autoplay == nil {
		return
	}
	c.autoplay.Stop()
	c.autoplay = nil
}

// repace restarts a running autoplay timer after a user action. It never
// turns autoplay on.
func (c *Carousel) repace(userAction bool) {
	if userAction && c.autoplay != nil {
		c.Start()
	}
}
