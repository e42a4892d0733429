package presenter

import (
	"strconv"

	"cropstudio/domain/selection"
	"cropstudio/ui/model"
)

// HitRadius is the half-size in canvas pixels of the square zone around a
// selection handle that grabs pointer presses.
const HitRadius = 10

// EditorView updates UI elements affected by selection editing.
type EditorView interface {
	RenderDocument()
	RedrawSelection()
	SetCursor(string)
}

// EditorPresenter owns presentation logic for pointer-driven selection
// editing on the canvas.
type EditorPresenter struct {
	doc  *model.DocumentModel
	view EditorView
}

func NewEditorPresenter(doc *model.DocumentModel, view EditorView) *EditorPresenter {
	return &EditorPresenter{doc: doc, view: view}
}

// PointerDown routes a press to the drag controller: a handle starts a
// resize, a press inside the selection starts a move, anywhere else starts a
// fresh selection.
func (p *EditorPresenter) PointerDown(x, y float64) {
	if p == nil || p.doc == nil || p.view == nil {
		return
	}
	if !p.doc.HasImage() {
		return
	}
	p.doc.Drag.Begin(&p.doc.Selection, x, y, HitRadius)
	p.view.RedrawSelection()
}

// PointerDrag updates the active drag with the current pointer position.
func (p *EditorPresenter) PointerDrag(x, y float64) {
	if p == nil || p.doc == nil || p.view == nil {
		return
	}
	if p.doc.Drag.Mode() == selection.DragNone {
		return
	}
	p.doc.Drag.Update(&p.doc.Selection, x, y)
	p.view.RedrawSelection()
}

// PointerUp finishes the active drag, normalizing the selection.
func (p *EditorPresenter) PointerUp(x, y float64) {
	if p == nil || p.doc == nil || p.view == nil {
		return
	}
	if p.doc.Drag.Mode() == selection.DragNone {
		return
	}
	p.doc.Drag.End(&p.doc.Selection)
	p.view.RedrawSelection()
	p.view.SetCursor(p.cursorAt(x, y))
}

// PointerMove updates the cursor shape as the idle pointer crosses handles
// and the selection body.
func (p *EditorPresenter) PointerMove(x, y float64) {
	if p == nil || p.doc == nil || p.view == nil {
		return
	}
	if p.doc.Drag.Mode() != selection.DragNone {
		return
	}
	p.view.SetCursor(p.cursorAt(x, y))
}

// ParseResize converts the width and height strings a Configure event
// carries into pixel dimensions. Anything that is not a positive integer,
// such as the empty fields of a synthetic event, is rejected.
func ParseResize(ws, hs string) (w, h int, ok bool) {
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, false
	}
	h, err = strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// CanvasResized refits the document to the new canvas size and repaints.
func (p *EditorPresenter) CanvasResized(w, h int) {
	if p == nil || p.doc == nil || p.view == nil {
		return
	}
	p.doc.OnCanvasResize(w, h)
	p.view.RenderDocument()
}

// ClearSelection discards the selection, for the Escape binding.
func (p *EditorPresenter) ClearSelection() {
	if p == nil || p.doc == nil || p.view == nil {
		return
	}
	p.doc.ClearSelection()
	p.view.RedrawSelection()
	p.view.SetCursor("crosshair")
}

func (p *EditorPresenter) cursorAt(x, y float64) string {
	if h, ok := p.doc.Selection.HitTestHandle(x, y, HitRadius); ok {
		switch h {
		case selection.HandleNW, selection.HandleSE:
			return "size_nw_se"
		case selection.HandleNE, selection.HandleSW:
			return "size_ne_sw"
		case selection.HandleN, selection.HandleS:
			return "size_ns"
		case selection.HandleW, selection.HandleE:
			return "size_we"
		}
	}
	if p.doc.Selection.Contains(x, y) {
		return "fleur"
	}
	return "crosshair"
}
