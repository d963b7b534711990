package molview

import "github.com/gogpu/gg"

// Stroke describes how an element's outline is drawn.
type Stroke struct {
	Width float64
	Color gg.RGBA
}

// Fill describes how an element's interior is painted.
// Translucency is carried in the color's alpha.
type Fill struct {
	Color gg.RGBA
}

// Element is one primitive drawn on a Canvas: a path in screen coordinates
// with an optional stroke and an optional fill.
type Element struct {
	Path   *gg.Path
	Stroke *Stroke
	Fill   *Fill
}

// Canvas is a retained drawing surface. Elements it returns can later be
// removed, which is how highlights are switched off.
type Canvas interface {
	// DrawPath adds a path to the canvas and returns the new element.
	// Either style may be nil.
	DrawPath(p *gg.Path, stroke *Stroke, fill *Fill) *Element

	// Remove deletes e from the canvas and reports whether it was present.
	Remove(e *Element) bool
}

// ElementArray collects the elements drawn for one logical object, such as
// a bond or its highlight, so they can be removed together.
//
// The zero value is an empty array ready to use.
type ElementArray struct {
	elems []*Element
}

// NewElementArray creates an empty ElementArray.
func NewElementArray() *ElementArray {
	return &ElementArray{}
}

// Add appends e. Nil elements are ignored.
func (a *ElementArray) Add(e *Element) {
	if e == nil {
		return
	}
	a.elems = append(a.elems, e)
}

// Len returns the number of elements.
func (a *ElementArray) Len() int {
	return len(a.elems)
}

// At returns the i-th element.
func (a *ElementArray) At(i int) *Element {
	return a.elems[i]
}

// Elements returns a copy of the elements in insertion order.
func (a *ElementArray) Elements() []*Element {
	out := make([]*Element, len(a.elems))
	copy(out, a.elems)
	return out
}

// Clear removes every element from c and empties the array.
// It returns how many elements the canvas actually removed.
func (a *ElementArray) Clear(c Canvas) int {
	n := 0
	for _, e := range a.elems {
		if c != nil && c.Remove(e) {
			n++
		}
	}
	a.elems = a.elems[:0]
	return n
}
