package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/carousel/internal/schedule"
	"github.com/jask/carousel/internal/surface"
)

func touch(h harness, start, end float64) {
	h.c.Root().Dispatch(surface.Event{Type: surface.EventTouchStart, ScreenX: start})
	h.c.Root().Dispatch(surface.Event{Type: surface.EventTouchEnd, ScreenX: end})
}

func keyUp(h harness, key string) {
	h.doc.Dispatch(surface.Event{Type: surface.EventKeyUp, Key: key})
}

func TestSwipeDirection(t *testing.T) {
	cases := []struct {
		name string
		end  float64
		want int
	}{
		{"left swipe goes back", 50, 4},
		{"right swipe goes forward", 350, 1},
		{"no movement", 200, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := mount(t, 5, WithAutoplay(false))
			touch(h, 200, tc.end)
			require.Equal(t, tc.want, h.c.Current())
			require.Zero(t, h.c.touchStart)
		})
	}
}

func TestSwipeResetsPacing(t *testing.T) {
	h := mount(t, 5, WithInterval(3*time.Second))
	h.clock.Advance(2 * time.Second)
	touch(h, 10, 90)
	require.Equal(t, 1, h.c.Current())
	h.clock.Advance(2 * time.Second)
	require.Equal(t, 1, h.c.Current())
	h.clock.Advance(time.Second)
	require.Equal(t, 2, h.c.Current())
}

func TestArrowButtons(t *testing.T) {
	h := mount(t, 3, WithAutoplay(false))
	h.c.Root().Query(ClassNext).Click()
	h.c.Root().Query(ClassNext).Click()
	require.Equal(t, 2, h.c.Current())
	h.c.Root().Query(ClassPrevious).Click()
	require.Equal(t, 1, h.c.Current())
}

func TestKeysIgnoredOutsideFullScreen(t *testing.T) {
	h := mount(t, 3, WithAutoplay(false))
	keyUp(h, surface.KeyArrowRight)
	keyUp(h, surface.KeyArrowLeft)
	keyUp(h, surface.KeyArrowLeft)
	keyUp(h, surface.KeyEscape)
	require.Equal(t, 0, h.c.Current())
	require.False(t, h.c.FullScreen())
}

func TestKeysInFullScreen(t *testing.T) {
	h := mount(t, 3, WithAutoplay(false))
	h.c.Root().Query(ClassFullScreenBtn).Click()
	require.True(t, h.c.FullScreen())

	keyUp(h, surface.KeyArrowLeft)
	require.Equal(t, 2, h.c.Current())
	keyUp(h, surface.KeyArrowRight)
	keyUp(h, surface.KeyArrowRight)
	require.Equal(t, 1, h.c.Current())
	keyUp(h, "Enter")
	require.Equal(t, 1, h.c.Current())

	keyUp(h, surface.KeyEscape)
	require.False(t, h.c.FullScreen())
	require.False(t, h.c.Root().HasClass(ClassFullScreenMode))
	require.Equal(t, "Enter Full Screen Mode", h.c.Root().Query(ClassFullScreenBtn).Title)
}

func TestKeysRoutedPerInstance(t *testing.T) {
	clock := schedule.NewFake()
	doc := surface.NewDocument()
	a := surface.NewElement("div")
	b := surface.NewElement("div")
	doc.Append(a, b)
	first := New(panels(3), clock, WithAutoplay(false))
	second := New(panels(3), clock, WithAutoplay(false))
	first.Draw(a)
	second.Draw(b)

	first.Root().Query(ClassFullScreenBtn).Click()
	doc.Dispatch(surface.Event{Type: surface.EventKeyUp, Key: surface.KeyArrowRight})
	require.Equal(t, 1, first.Current())
	require.Equal(t, 0, second.Current())
}
