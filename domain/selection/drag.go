package selection

import "strings"

// DragMode identifies the gesture a pointer-down started.
type DragMode int

const (
	DragNone DragMode = iota
	DragNew
	DragMove
	DragResize
)

func (m DragMode) String() string {
	switch m {
	case DragNew:
		return "new"
	case DragMove:
		return "move"
	case DragResize:
		return "resize"
	default:
		return "none"
	}
}

// Controller interprets pointer events against a Selection and owns the
// transient drag session state. All coordinates are canvas-space. The zero
// value has no active session and is ready to use.
type Controller struct {
	mode     DragMode
	handle   Handle
	originX  float64
	originY  float64
	snapshot Rect
}

// Mode returns the active session mode, DragNone when idle.
func (c *Controller) Mode() DragMode {
	if c == nil {
		return DragNone
	}
	return c.mode
}

// ResizeHandle returns the handle a resize session was started from.
func (c *Controller) ResizeHandle() (Handle, bool) {
	if c.Mode() != DragResize {
		return "", false
	}
	return c.handle, true
}

// Begin dispatches a pointer-down: a hit handle starts a resize session, a
// point inside the selection starts a move, anything else clears the
// selection and starts drawing a new one from a degenerate point.
func (c *Controller) Begin(sel *Selection, x, y, hitRadius float64) DragMode {
	if c == nil || sel == nil {
		return DragNone
	}
	c.originX, c.originY = x, y
	if h, ok := sel.HitTestHandle(x, y, hitRadius); ok {
		r, _ := sel.Rect()
		c.mode = DragResize
		c.handle = h
		c.snapshot = r.Normalized()
		return c.mode
	}
	if sel.Contains(x, y) {
		r, _ := sel.Rect()
		c.mode = DragMove
		c.snapshot = r
		return c.mode
	}
	sel.Clear()
	sel.StartNew(x, y)
	c.mode = DragNew
	return c.mode
}

// Update applies a pointer-move to the active session. New selections track
// the live pointer as their second corner; moves translate the snapshot by
// the delta from the gesture origin; resizes shift only the edges implicated
// by the handle. The rect may invert mid-drag; End resolves that.
func (c *Controller) Update(sel *Selection, x, y float64) {
	if c == nil || sel == nil {
		return
	}
	switch c.mode {
	case DragNew:
		r, ok := sel.Rect()
		if !ok {
			return
		}
		r.X1, r.Y1 = x, y
		sel.Set(r)
	case DragMove:
		sel.Set(c.snapshot.Translate(x-c.originX, y-c.originY))
	case DragResize:
		dx, dy := x-c.originX, y-c.originY
		r := c.snapshot
		h := string(c.handle)
		if strings.ContainsRune(h, 'w') {
			r.X0 += dx
		}
		if strings.ContainsRune(h, 'e') {
			r.X1 += dx
		}
		if strings.ContainsRune(h, 'n') {
			r.Y0 += dy
		}
		if strings.ContainsRune(h, 's') {
			r.Y1 += dy
		}
		sel.Set(r)
	}
}

// End finishes the session on pointer-up, normalizing the rect so min/max
// corner ordering holds. A pointer-up without a session is a no-op.
func (c *Controller) End(sel *Selection) {
	if c == nil || c.mode == DragNone {
		return
	}
	if sel != nil {
		sel.Normalize()
	}
	c.reset()
}

// Cancel terminates the session without touching the selection. Call it when
// the selection is cleared externally so a cleared selection can never remain
// the target of a later drag update.
func (c *Controller) Cancel() {
	if c == nil {
		return
	}
	c.reset()
}

func (c *Controller) reset() {
	c.mode = DragNone
	c.handle = ""
	c.snapshot = Rect{}
}
