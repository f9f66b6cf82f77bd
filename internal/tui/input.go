package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/carousel/internal/carousel"
	"github.com/jask/carousel/internal/surface"
)

// handleKey reports whether the program should quit.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if a.finder != nil {
		return a.handleFinderKey(msg)
	}
	b := a.keys.Lookup(msg.String(), scopeDeck)
	if b == nil {
		return nil, false
	}
	switch b.Action {
	case actionQuit:
		return nil, true
	case actionAutoplay:
		if a.car.Playing() {
			a.car.Stop()
			a.setStatus("Paused")
		} else {
			a.car.Start()
			a.setStatus("Playing")
		}
	case actionPrevious:
		a.clickControl(carousel.ClassPrevious)
	case actionNext:
		a.clickControl(carousel.ClassNext)
	case actionFullScreen:
		a.clickControl(carousel.ClassFullScreenBtn)
	case actionArrowLeft:
		a.keyUp(surface.KeyArrowLeft)
	case actionArrowRight:
		a.keyUp(surface.KeyArrowRight)
	case actionEscape:
		a.keyUp(surface.KeyEscape)
	case actionFind:
		a.finder = newFinder(a.session.Deck.Titles())
		return a.finder.input.Focus(), false
	case actionHelp:
		a.showHelp = !a.showHelp
	}
	return nil, false
}

func (a *App) handleFinderKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	b := a.keys.Lookup(msg.String(), scopeFinder)
	if b == nil {
		return a.finder.update(msg), false
	}
	switch b.Action {
	case actionQuit:
		return nil, true
	case actionClose:
		a.finder = nil
	case actionSelect:
		if i, ok := a.finder.selected(); ok {
			a.car.JumpTo(i)
		}
		a.finder = nil
	case actionNavigate:
		switch msg.String() {
		case "up", "ctrl+p":
			a.finder.move(-1)
		default:
			a.finder.move(1)
		}
	}
	return nil, false
}

// clickControl activates a carousel control the way a pointer click would.
// Disabled controls are absent and the key does nothing.
func (a *App) clickControl(class string) {
	if el := a.car.Root().Query(class); el != nil {
		el.Click()
	}
}

func (a *App) keyUp(k string) {
	a.doc.Dispatch(surface.Event{Type: surface.EventKeyUp, Key: k})
}

// handleMouse maps terminal mouse reports onto pointer and touch events. A
// press and release on the same cell is also a click on whatever lies there.
func (a *App) handleMouse(msg tea.MouseMsg) {
	l := a.layout()
	root := a.car.Root()
	target := l.hit(root, msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		a.hover = nil
		if target == nil {
			a.pointerLeft()
			return
		}
		a.inside = true
		if target != root {
			a.hover = target
		}
		target.Dispatch(surface.Event{Type: surface.EventMouseMove, ScreenX: float64(msg.X)})
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || target == nil {
			return
		}
		a.press = &pressState{x: msg.X, y: msg.Y, target: target}
		target.Dispatch(surface.Event{Type: surface.EventTouchStart, ScreenX: float64(msg.X)})
	case tea.MouseActionRelease:
		p := a.press
		if p == nil {
			return
		}
		a.press = nil
		p.target.Dispatch(surface.Event{Type: surface.EventTouchEnd, ScreenX: float64(msg.X)})
		if p.x == msg.X && p.y == msg.Y && target != nil && target != root {
			target.Click()
		}
	}
}

// pointerLeft fires mouseleave once per exit from the widget.
func (a *App) pointerLeft() {
	a.hover = nil
	if !a.inside {
		return
	}
	a.inside = false
	a.car.Root().Dispatch(surface.Event{Type: surface.EventMouseLeave})
}
