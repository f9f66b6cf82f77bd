// Package surface is a small retained element tree: the UI surface the
// carousel builds itself out of. Elements carry a tag, an ordered class list,
// a title, children and event listeners. A host renders the tree and feeds
// platform input back in through Dispatch.
//
// Nothing in this package is safe for concurrent use; all calls are expected
// on the host's event goroutine.
package surface

import "slices"

// Element is one node of the tree.
type Element struct {
	Tag   string
	Title string
	// Data is an opaque payload for the host renderer.
	Data any

	classes   []string
	children  []*Element
	parent    *Element
	listeners map[string][]*listener
	seq       int
}

type listener struct {
	id int
	fn func(Event)
}

// NewElement creates a detached element.
func NewElement(tag string, classes ...string) *Element {
	e := &Element{Tag: tag}
	e.AddClass(classes...)
	return e
}

// NewDocument creates the top-level element hosts dispatch global keys to.
func NewDocument() *Element {
	return NewElement("#document")
}

func (e *Element) AddClass(names ...string) {
	for _, n := range names {
		if n != "" && !slices.Contains(e.classes, n) {
			e.classes = append(e.classes, n)
		}
	}
}

func (e *Element) RemoveClass(names ...string) {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool {
		return slices.Contains(names, c)
	})
}

// ToggleClass flips name and reports whether it is now present.
func (e *Element) ToggleClass(name string) bool {
	if e.HasClass(name) {
		e.RemoveClass(name)
		return false
	}
	e.AddClass(name)
	return true
}

func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// Append adds children in order, detaching each from any previous parent.
func (e *Element) Append(children ...*Element) {
	for _, c := range children {
		if c == nil || c == e {
			continue
		}
		c.Remove()
		c.parent = e
		e.children = append(e.children, c)
	}
}

// Clear detaches every child.
func (e *Element) Clear() {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
}

// Remove detaches e from its parent. It is a no-op for detached elements.
func (e *Element) Remove() {
	if e.parent == nil {
		return
	}
	p := e.parent
	p.children = slices.DeleteFunc(p.children, func(c *Element) bool { return c == e })
	e.parent = nil
}

func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

func (e *Element) Parent() *Element { return e.parent }

// Root returns the top-most ancestor, or e itself when detached.
func (e *Element) Root() *Element {
	r := e
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Query returns the first descendant (depth first) carrying class.
func (e *Element) Query(class string) *Element {
	for _, c := range e.children {
		if c.HasClass(class) {
			return c
		}
		if found := c.Query(class); found != nil {
			return found
		}
	}
	return nil
}

// QueryAll returns every descendant carrying class in document order.
func (e *Element) QueryAll(class string) []*Element {
	var out []*Element
	for _, c := range e.children {
		if c.HasClass(class) {
			out = append(out, c)
		}
		out = append(out, c.QueryAll(class)...)
	}
	return out
}
