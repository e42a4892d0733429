package selection

import "math"

// Handle names one of the eight resize control points of a selection:
// four corners plus four edge midpoints.
type Handle string

const (
	HandleNW Handle = "nw"
	HandleN  Handle = "n"
	HandleNE Handle = "ne"
	HandleW  Handle = "w"
	HandleE  Handle = "e"
	HandleSW Handle = "sw"
	HandleS  Handle = "s"
	HandleSE Handle = "se"
)

// handleOrder fixes the hit-test priority: corners before edge midpoints, so
// a diagonal resize wins when a selection is small enough for handles to
// overlap within the hit radius.
var handleOrder = []Handle{HandleNW, HandleNE, HandleSW, HandleSE, HandleN, HandleS, HandleW, HandleE}

// Point is a canvas-space coordinate pair.
type Point struct {
	X, Y float64
}

// Rect is a selection rectangle in canvas-space float coordinates. The
// corners carry no ordering guarantee while a drag is in flight; Normalized
// establishes X0 <= X1 and Y0 <= Y1.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Normalized returns the rect with corners reordered to min/max per axis.
func (r Rect) Normalized() Rect {
	return Rect{
		X0: math.Min(r.X0, r.X1),
		Y0: math.Min(r.Y0, r.Y1),
		X1: math.Max(r.X0, r.X1),
		Y1: math.Max(r.Y0, r.Y1),
	}
}

func (r Rect) Width() float64  { return math.Abs(r.X1 - r.X0) }
func (r Rect) Height() float64 { return math.Abs(r.Y1 - r.Y0) }

// Translate returns the rect shifted by (dx, dy). Size is unchanged.
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X0: r.X0 + dx, Y0: r.Y0 + dy, X1: r.X1 + dx, Y1: r.Y1 + dy}
}

// Handles returns the eight control points of the normalized rect.
func (r Rect) Handles() map[Handle]Point {
	n := r.Normalized()
	mx, my := (n.X0+n.X1)/2, (n.Y0+n.Y1)/2
	return map[Handle]Point{
		HandleNW: {n.X0, n.Y0}, HandleN: {mx, n.Y0}, HandleNE: {n.X1, n.Y0},
		HandleW: {n.X0, my}, HandleE: {n.X1, my},
		HandleSW: {n.X0, n.Y1}, HandleS: {mx, n.Y1}, HandleSE: {n.X1, n.Y1},
	}
}

// Selection is the two-variant selection state: absent, or active with a
// rectangle. The zero value is absent and ready to use. Not safe for
// concurrent use; all mutation happens on the UI event thread.
type Selection struct {
	active bool
	rect   Rect
}

// Active reports whether a selection exists.
func (s *Selection) Active() bool { return s != nil && s.active }

// Rect returns the current rectangle. ok is false when the selection is
// absent; the returned rect is meaningless in that case.
func (s *Selection) Rect() (Rect, bool) {
	if !s.Active() {
		return Rect{}, false
	}
	return s.rect, true
}

// StartNew replaces any existing selection with a degenerate point rect at
// (x, y); it grows as the drag updates the second corner.
func (s *Selection) StartNew(x, y float64) {
	s.active = true
	s.rect = Rect{X0: x, Y0: y, X1: x, Y1: y}
}

// Set replaces the active rectangle. No-op when the selection is absent.
func (s *Selection) Set(r Rect) {
	if !s.Active() {
		return
	}
	s.rect = r
}

// Clear transitions to absent. Idempotent.
func (s *Selection) Clear() {
	if s == nil {
		return
	}
	s.active = false
	s.rect = Rect{}
}

// Normalize reorders the corners so X0<=X1 and Y0<=Y1. Called on gesture end.
func (s *Selection) Normalize() {
	if !s.Active() {
		return
	}
	s.rect = s.rect.Normalized()
}

// Handles returns the eight control points computed from the normalized rect,
// independent of draw order. ok is false when the selection is absent.
func (s *Selection) Handles() (map[Handle]Point, bool) {
	if !s.Active() {
		return nil, false
	}
	return s.rect.Handles(), true
}

// HitTestHandle returns the handle whose point lies within hitRadius of
// (x, y) in both axes (a Chebyshev box test, matching square handle chrome).
// Corners take priority over edge midpoints.
func (s *Selection) HitTestHandle(x, y, hitRadius float64) (Handle, bool) {
	handles, ok := s.Handles()
	if !ok {
		return "", false
	}
	for _, h := range handleOrder {
		p := handles[h]
		if math.Abs(x-p.X) <= hitRadius && math.Abs(y-p.Y) <= hitRadius {
			return h, true
		}
	}
	return "", false
}

// Contains reports whether (x, y) lies within the normalized rect, boundary
// inclusive. Always false when the selection is absent.
func (s *Selection) Contains(x, y float64) bool {
	if !s.Active() {
		return false
	}
	n := s.rect.Normalized()
	return n.X0 <= x && x <= n.X1 && n.Y0 <= y && y <= n.Y1
}
