package tui

import (
	"sort"

	"github.com/jask/carousel/internal/carousel"
	"github.com/jask/carousel/internal/surface"
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// control is one clickable cell range on the controls row.
type control struct {
	col, width int
	label      string
	el         *surface.Element
	active     bool
}

type layout struct {
	full bool
	// widget is the carousel's root on screen; slide and the controls row
	// sit inside it.
	widget   rect
	slide    rect
	row      int
	controls []control
}

const (
	headerRows = 1
	footerRows = 2
	buttonW    = 3
)

func (a *App) layout() layout {
	var l layout
	w, h := max(a.width, 1), max(a.height, 1)
	l.full = a.car.FullScreen()

	inner := rect{0, 0, w, h}
	if l.full {
		l.widget = inner
	} else {
		l.widget = rect{0, headerRows, w, max(3, h-headerRows-footerRows)}
		inner = rect{l.widget.x + 2, l.widget.y + 1, max(1, l.widget.w-4), max(1, l.widget.h-2)}
	}
	l.slide = rect{inner.x, inner.y, inner.w, max(1, inner.h-1)}
	l.row = inner.y + inner.h - 1
	// Hidden controls are only invisible; they still take clicks.
	l.controls = a.placeControls(inner.x, inner.x+inner.w)
	return l
}

// placeControls lays the arrows at the edges, the full-screen toggle at the
// far right and the indicator dots centred between them. Dots that do not fit
// are left out.
func (a *App) placeControls(left, right int) []control {
	root := a.car.Root()
	var out []control
	if el := root.Query(carousel.ClassPrevious); el != nil {
		out = append(out, control{col: left, width: buttonW, label: " ‹ ", el: el})
		left += buttonW
	}
	if el := root.Query(carousel.ClassFullScreenBtn); el != nil {
		right -= buttonW
		label := " ⤢ "
		if a.car.FullScreen() {
			label = " ⤡ "
		}
		out = append(out, control{col: right, width: buttonW, label: label, el: el})
	}
	if el := root.Query(carousel.ClassNext); el != nil {
		right -= buttonW
		out = append(out, control{col: right, width: buttonW, label: " › ", el: el})
	}
	if nav := root.Query(carousel.ClassNav); nav != nil {
		links := nav.Children()
		need := 2*len(links) - 1
		if len(links) > 0 && need <= right-left-2 {
			start := left + (right-left-need)/2
			for i, li := range links {
				dot := "○"
				if li.HasClass(carousel.ClassActive) {
					dot = "●"
				}
				out = append(out, control{col: start + 2*i, width: 1, label: dot, el: li, active: li.HasClass(carousel.ClassActive)})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].col < out[j].col })
	return out
}

// hit returns the element under (x, y): a control, the carousel root when
// inside the widget, or nil.
func (l layout) hit(root *surface.Element, x, y int) *surface.Element {
	if !l.widget.contains(x, y) {
		return nil
	}
	if y == l.row {
		for _, c := range l.controls {
			if x >= c.col && x < c.col+c.width {
				return c.el
			}
		}
	}
	return root
}
