package presenter

import (
	"testing"

	"cropstudio/ui/model"
)

type mockEditorView struct {
	renders, redraws int
	cursors          []string
}

func (v *mockEditorView) RenderDocument()    { v.renders++ }
func (v *mockEditorView) RedrawSelection()   { v.redraws++ }
func (v *mockEditorView) SetCursor(c string) { v.cursors = append(v.cursors, c) }

func (v *mockEditorView) lastCursor() string {
	if len(v.cursors) == 0 {
		return ""
	}
	return v.cursors[len(v.cursors)-1]
}

func loadedDoc() *model.DocumentModel {
	doc := &model.DocumentModel{}
	doc.SetImage("/photos/a.png", 1000, 800, 500, 400)
	return doc
}

func TestEditorPresenter_DragProducesNormalizedSelection(t *testing.T) {
	doc := loadedDoc()
	view := &mockEditorView{}
	p := NewEditorPresenter(doc, view)

	p.PointerDown(300, 250)
	p.PointerDrag(100, 50) // drag up-left, inverted while in progress
	p.PointerUp(100, 50)

	r, ok := doc.Selection.Rect()
	if !ok {
		t.Fatal("no selection after drag")
	}
	if r.X0 != 100 || r.Y0 != 50 || r.X1 != 300 || r.Y1 != 250 {
		t.Fatalf("selection %+v not normalized", r)
	}
	if view.redraws != 3 {
		t.Fatalf("redraws = %d, want one per pointer event", view.redraws)
	}
}

func TestEditorPresenter_NoImageIgnoresPointer(t *testing.T) {
	doc := &model.DocumentModel{}
	view := &mockEditorView{}
	p := NewEditorPresenter(doc, view)

	p.PointerDown(10, 10)
	p.PointerDrag(20, 20)
	if doc.Selection.Active() || view.redraws != 0 {
		t.Fatalf("pointer handled with no image: active=%v redraws=%d", doc.Selection.Active(), view.redraws)
	}
}

func TestEditorPresenter_CursorMapping(t *testing.T) {
	doc := loadedDoc()
	view := &mockEditorView{}
	p := NewEditorPresenter(doc, view)

	p.PointerDown(100, 100)
	p.PointerDrag(300, 200)
	p.PointerUp(300, 200)

	tests := []struct {
		name string
		x, y float64
		want string
	}{
		{"nw corner", 100, 100, "size_nw_se"},
		{"se corner", 300, 200, "size_nw_se"},
		{"ne corner", 300, 100, "size_ne_sw"},
		{"sw corner", 100, 200, "size_ne_sw"},
		{"n edge", 200, 100, "size_ns"},
		{"s edge", 200, 200, "size_ns"},
		{"w edge", 100, 150, "size_we"},
		{"e edge", 300, 150, "size_we"},
		{"inside", 180, 160, "fleur"},
		{"outside", 450, 350, "crosshair"},
	}
	for _, tt := range tests {
		p.PointerMove(tt.x, tt.y)
		if got := view.lastCursor(); got != tt.want {
			t.Fatalf("%s: cursor %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestEditorPresenter_CursorIdleOnlyDuringDrag(t *testing.T) {
	doc := loadedDoc()
	view := &mockEditorView{}
	p := NewEditorPresenter(doc, view)

	p.PointerDown(100, 100)
	before := len(view.cursors)
	p.PointerMove(200, 200)
	if len(view.cursors) != before {
		t.Fatal("cursor updated mid-drag")
	}
}

func TestParseResize(t *testing.T) {
	tests := []struct {
		ws, hs string
		w, h   int
		ok     bool
	}{
		{"640", "480", 640, 480, true},
		{"1", "1", 1, 1, true},
		{"0", "480", 0, 0, false},
		{"640", "0", 0, 0, false},
		{"-640", "480", 0, 0, false},
		{"", "", 0, 0, false},
		{"??", "480", 0, 0, false},
		{"640", "480px", 0, 0, false},
	}
	for _, tt := range tests {
		w, h, ok := ParseResize(tt.ws, tt.hs)
		if w != tt.w || h != tt.h || ok != tt.ok {
			t.Fatalf("ParseResize(%q, %q) = %d, %d, %v; want %d, %d, %v",
				tt.ws, tt.hs, w, h, ok, tt.w, tt.h, tt.ok)
		}
	}
}

func TestEditorPresenter_CanvasResizedClearsAndRenders(t *testing.T) {
	doc := loadedDoc()
	view := &mockEditorView{}
	p := NewEditorPresenter(doc, view)

	p.PointerDown(100, 100)
	p.PointerDrag(200, 200)
	p.PointerUp(200, 200)

	p.CanvasResized(250, 200)
	if doc.Selection.Active() {
		t.Fatal("selection survived resize")
	}
	if view.renders != 1 {
		t.Fatalf("renders = %d", view.renders)
	}
	if got := doc.Viewport().Scale; got != 0.25 {
		t.Fatalf("Scale = %v after resize", got)
	}
}

func TestEditorPresenter_ClearSelection(t *testing.T) {
	doc := loadedDoc()
	view := &mockEditorView{}
	p := NewEditorPresenter(doc, view)

	p.PointerDown(100, 100)
	p.PointerDrag(200, 200)
	p.PointerUp(200, 200)

	p.ClearSelection()
	if doc.Selection.Active() {
		t.Fatal("selection still active")
	}
	if got := view.lastCursor(); got != "crosshair" {
		t.Fatalf("cursor %q after clear", got)
	}
}
