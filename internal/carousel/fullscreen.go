package carousel

import "github.com/jask/carousel/internal/surface"

const (
	titleEnterFullScreen = "Enter Full Screen Mode"
	titleExitFullScreen  = "Exit Full Screen Mode"
)

func fullScreenTitle(on bool) string {
	if on {
		return titleExitFullScreen
	}
	return titleEnterFullScreen
}

func (c *Carousel) createFullScreenMode() {
	if !c.cfg.FullScreen {
		return
	}
	c.fsButton = c.createButton(fullScreenTitle(false), ClassFullScreenBtn, c.toggleFullScreen)
	c.root.Append(c.fsButton)
}

// toggleFullScreen runs on activation of the toggle control. Full-screen
// browsing is paced by hand, so autoplay pauses while expanded.
func (c *Carousel) toggleFullScreen(surface.Event) {
	c.fullScreen = c.root.ToggleClass(ClassFullScreenMode)
	if c.cfg.Autoplay {
		if c.fullScreen {
			c.Stop()
		} else {
			c.Start()
		}
	}
	c.fsButton.Title = fullScreenTitle(c.fullScreen)
}
