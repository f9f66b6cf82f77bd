package surface

// Event types understood by the carousel. Hosts may dispatch others.
const (
	EventClick      = "click"
	EventMouseMove  = "mousemove"
	EventMouseLeave = "mouseleave"
	EventTouchStart = "touchstart"
	EventTouchEnd   = "touchend"
	EventKeyUp      = "keyup"
)

// Key names carried by keyup events.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyEscape     = "Escape"
)

// Event is a platform event delivered to listeners.
type Event struct {
	Type string
	// Key is set for keyboard events.
	Key string
	// ScreenX is the horizontal screen coordinate of pointer and touch events.
	ScreenX float64
	Target  *Element
}

// mouseleave targets only the element it was dispatched to.
func bubbles(typ string) bool {
	return typ != EventMouseLeave
}

// On registers fn for events of typ and returns a function that removes it.
// The returned function is safe to call more than once.
func (e *Element) On(typ string, fn func(Event)) (off func()) {
	if e.listeners == nil {
		e.listeners = make(map[string][]*listener)
	}
	e.seq++
	l := &listener{id: e.seq, fn: fn}
	e.listeners[typ] = append(e.listeners[typ], l)
	return func() {
		list := e.listeners[typ]
		for i, cur := range list {
			if cur == l {
				e.listeners[typ] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns how many listeners of typ are registered on e.
func (e *Element) ListenerCount(typ string) int {
	return len(e.listeners[typ])
}

// Dispatch delivers ev to e and, for bubbling types, to each ancestor.
// Listeners added or removed while an event is in flight take effect for the
// next event.
func (e *Element) Dispatch(ev Event) {
	if ev.Target == nil {
		ev.Target = e
	}
	for n := e; n != nil; n = n.parent {
		for _, l := range append([]*listener(nil), n.listeners[ev.Type]...) {
			l.fn(ev)
		}
		if !bubbles(ev.Type) {
			return
		}
	}
}

// Click dispatches a click on e, the programmatic equivalent of a user click.
func (e *Element) Click() {
	e.Dispatch(Event{Type: EventClick})
}
