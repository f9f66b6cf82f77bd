package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFullScreenPausesAutoplay(t *testing.T) {
	h := mount(t, 6, WithInterval(time.Second))
	toggle := h.c.Root().Query(ClassFullScreenBtn)

	h.clock.Advance(2 * time.Second)
	require.Equal(t, 2, h.c.Current())

	toggle.Click()
	require.True(t, h.c.FullScreen())
	require.True(t, h.c.Root().HasClass(ClassFullScreenMode))
	require.Equal(t, "Exit Full Screen Mode", toggle.Title)
	require.False(t, h.c.Playing())
	h.clock.Advance(time.Minute)
	require.Equal(t, 2, h.c.Current())

	toggle.Click()
	require.False(t, h.c.FullScreen())
	require.Equal(t, "Enter Full Screen Mode", toggle.Title)
	require.True(t, h.c.Playing())
	h.clock.Advance(time.Second)
	require.Equal(t, 3, h.c.Current(), "resumes from the current slide")
}

func TestFullScreenWithoutAutoplayLeavesTimersAlone(t *testing.T) {
	h := mount(t, 3, WithAutoplay(false))
	toggle := h.c.Root().Query(ClassFullScreenBtn)
	toggle.Click()
	toggle.Click()
	require.False(t, h.c.Playing())

	h.c.Start()
	toggle.Click()
	require.True(t, h.c.Playing(), "manual playback is not governed by the toggle")
}

func TestManualNavigationInFullScreenStaysPaused(t *testing.T) {
	h := mount(t, 4, WithInterval(time.Second))
	h.c.Root().Query(ClassFullScreenBtn).Click()
	keyUp(h, "ArrowRight")
	h.c.Root().Query(ClassNext).Click()
	require.Equal(t, 2, h.c.Current())
	require.False(t, h.c.Playing())
	require.Zero(t, h.clock.Live())
}
