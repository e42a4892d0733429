package view

import (
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"

	"cropstudio/domain/export"
	"cropstudio/ui/model"
	"cropstudio/ui/presenter"
	"cropstudio/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ImageLoader narrows what the view needs from the image provider: the
// decoded source image to scale for display.
type ImageLoader interface {
	Load(path string) (image.Image, error)
}

// Handlers carries the callbacks the view invokes on user actions. The
// container wires them to presenters after construction.
type Handlers struct {
	OnOpen     func()
	OnSaveCrop func()
	OnPrev     func()
	OnNext     func()
	OnClear    func()
	OnCapture  func()
	OnSettings func()
	OnHelp     func()
	OnExit     func()

	OnPointerDown  func(x, y float64)
	OnPointerDrag  func(x, y float64)
	OnPointerUp    func(x, y float64)
	OnPointerMove  func(x, y float64)
	OnCanvasResize func(w, h int)
}

// RootView composes the top-level application layout: menu bar, toolbar,
// canvas and the info/status bars. It implements the presenter view
// contracts and owns all widget state.
type RootView struct {
	doc         *model.DocumentModel
	browser     *model.BrowserModel
	loader      ImageLoader
	counter     *export.Counter
	logger      *slog.Logger
	placeholder image.Image

	Canvas *CanvasView

	infoLabel   *LabelWidget
	statusLabel *LabelWidget
}

func NewRootView(doc *model.DocumentModel, browser *model.BrowserModel, loader ImageLoader, counter *export.Counter, placeholder image.Image, logger *slog.Logger) *RootView {
	return &RootView{doc: doc, browser: browser, loader: loader, counter: counter, placeholder: placeholder, logger: logger}
}

// Build constructs the layout and binds canvas events. Handlers are invoked
// on user actions.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	theme.InitStyles()
	rv.buildMenu(h)

	// Row 0: toolbar
	toolbar := Frame(Background(theme.ColorSurface))
	Grid(toolbar, Row(0), Column(0), Sticky("we"))
	buttons := []struct {
		label string
		fn    func()
	}{
		{"Open", h.OnOpen},
		{"Prev", h.OnPrev},
		{"Next", h.OnNext},
		{"Save Crop", h.OnSaveCrop},
		{"Clear", h.OnClear},
		{"Settings", h.OnSettings},
	}
	for i, b := range buttons {
		btn := Button(Txt(b.label), Command(b.fn))
		Grid(btn, In(toolbar), Row(0), Column(i), Sticky("w"), Padx("0.3m"), Pady("0.3m"))
	}
	rv.infoLabel = Label(Txt("no image"), Anchor("e"))
	Grid(rv.infoLabel, In(toolbar), Row(0), Column(len(buttons)), Sticky("we"), Padx("0.5m"))
	GridColumnConfigure(toolbar, len(buttons), Weight(1))

	// Row 1: canvas, the expanding cell
	rv.Canvas = NewCanvasView()
	Grid(rv.Canvas.Widget(), Row(1), Column(0), Sticky("nsew"), Padx("0.3m"), Pady("0.3m"))
	GridRowConfigure(App, 1, Weight(1))
	GridColumnConfigure(App, 0, Weight(1))

	// Row 2: status bar
	rv.statusLabel = Label(Txt("open an image to start"), Anchor("w"), Borderwidth(1), Relief("groove"))
	Grid(rv.statusLabel, Row(2), Column(0), Sticky("we"))

	rv.bindCanvas(h)
	rv.Canvas.ShowPlaceholder(rv.placeholder)
}

func (rv *RootView) buildMenu(h Handlers) {
	menubar := Menu()

	fileMenu := menubar.Menu()
	fileMenu.AddCommand(Lbl("Open..."), Underline(0), Accelerator("Ctrl+O"), Command(h.OnOpen))
	fileMenu.AddCommand(Lbl("Save Crop"), Underline(0), Accelerator("Return"), Command(h.OnSaveCrop))
	fileMenu.AddCommand(Lbl("Capture Screen"), Underline(0), Command(h.OnCapture))
	fileMenu.AddSeparator()
	fileMenu.AddCommand(Lbl("Exit"), Underline(1), Command(h.OnExit))
	menubar.AddCascade(Lbl("File"), Underline(0), Mnu(fileMenu))

	editMenu := menubar.Menu()
	editMenu.AddCommand(Lbl("Clear Selection"), Underline(0), Accelerator("Esc"), Command(h.OnClear))
	editMenu.AddCommand(Lbl("Settings..."), Underline(0), Command(h.OnSettings))
	menubar.AddCascade(Lbl("Edit"), Underline(0), Mnu(editMenu))

	navMenu := menubar.Menu()
	navMenu.AddCommand(Lbl("Previous Image"), Underline(0), Accelerator("Left"), Command(h.OnPrev))
	navMenu.AddCommand(Lbl("Next Image"), Underline(0), Accelerator("Right"), Command(h.OnNext))
	menubar.AddCascade(Lbl("Navigate"), Underline(0), Mnu(navMenu))

	helpMenu := menubar.Menu()
	helpMenu.AddCommand(Lbl("Shortcuts"), Underline(0), Accelerator("F1"), Command(h.OnHelp))
	menubar.AddCascade(Lbl("Help"), Underline(0), Mnu(helpMenu))

	App.Configure(Mnu(menubar))
}

func (rv *RootView) bindCanvas(h Handlers) {
	canvas := rv.Canvas.Widget()
	Bind(canvas, "<ButtonPress-1>", Command(func(e *Event) {
		h.OnPointerDown(float64(e.X), float64(e.Y))
	}))
	Bind(canvas, "<B1-Motion>", Command(func(e *Event) {
		h.OnPointerDrag(float64(e.X), float64(e.Y))
	}))
	Bind(canvas, "<ButtonRelease-1>", Command(func(e *Event) {
		h.OnPointerUp(float64(e.X), float64(e.Y))
	}))
	Bind(canvas, "<Motion>", Command(func(e *Event) {
		h.OnPointerMove(float64(e.X), float64(e.Y))
	}))
	Bind(canvas, "<Configure>", Command(func(e *Event) {
		// Configure events report geometry as strings.
		w, h2, ok := presenter.ParseResize(e.Width, e.Height)
		if !ok {
			return
		}
		cw, ch := rv.Canvas.Size()
		if w == cw && h2 == ch {
			return
		}
		rv.Canvas.SetSize(w, h2)
		h.OnCanvasResize(w, h2)
	}))
}

// CanvasSize reports the live canvas geometry for viewport fitting.
func (rv *RootView) CanvasSize() (int, int) {
	if rv == nil || rv.Canvas == nil {
		return 0, 0
	}
	return rv.Canvas.Size()
}

// RenderDocument repaints the canvas from the document model: the scaled
// image when one is loaded, the placeholder art otherwise.
func (rv *RootView) RenderDocument() {
	if rv == nil || rv.Canvas == nil {
		return
	}
	if !rv.doc.HasImage() {
		rv.Canvas.ShowPlaceholder(rv.placeholder)
		return
	}
	img, err := rv.loader.Load(rv.doc.Path())
	if err != nil {
		rv.logger.Error("render failed", "path", rv.doc.Path(), "error", err)
		rv.SetStatus("cannot display " + filepath.Base(rv.doc.Path()))
		return
	}
	vp := rv.doc.Viewport()
	imgW, imgH := rv.doc.ImageSize()
	dw, dh := vp.DisplaySize(imgW, imgH)
	disp := imaging.Resize(img, dw, dh, imaging.Lanczos)
	rv.Canvas.ShowImage(disp, int(vp.OffsetX), int(vp.OffsetY))
	rv.RedrawSelection()
}

// RedrawSelection repaints only the selection overlay.
func (rv *RootView) RedrawSelection() {
	if rv == nil || rv.Canvas == nil {
		return
	}
	r, ok := rv.doc.Selection.Rect()
	if !ok {
		rv.Canvas.ClearSelection()
		return
	}
	vp := rv.doc.Viewport()
	imgW, imgH := rv.doc.ImageSize()
	dw, dh := vp.DisplaySize(imgW, imgH)
	rv.Canvas.DrawSelection(r,
		vp.OffsetX, vp.OffsetY,
		vp.OffsetX+float64(dw), vp.OffsetY+float64(dh))
}

// RefreshInfo updates the toolbar info label with file name, dimensions,
// size on disk, folder position and the saved-crop count.
func (rv *RootView) RefreshInfo() {
	if rv == nil || rv.infoLabel == nil {
		return
	}
	if !rv.doc.HasImage() {
		rv.infoLabel.Configure(Txt("no image"))
		return
	}
	w, h := rv.doc.ImageSize()
	size := "?"
	if fi, err := os.Stat(rv.doc.Path()); err == nil {
		size = humanize.Bytes(uint64(fi.Size()))
	}
	pos, n := rv.browser.Position()
	rv.infoLabel.Configure(Txt(presenter.InfoLine(
		filepath.Base(rv.doc.Path()), w, h, size, pos, n, rv.counter.Count(rv.doc.Path()))))
}

// SetStatus replaces the status bar text.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.statusLabel != nil {
		rv.statusLabel.Configure(Txt(text))
	}
}

// ShowToast proxies to the canvas toast.
func (rv *RootView) ShowToast(text string) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.ShowToast(text)
	}
}

// SetCursor proxies to the canvas cursor.
func (rv *RootView) SetCursor(name string) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.SetCursor(name)
	}
}

// PickFile opens the file dialog filtered to supported images and returns
// the chosen path, or "" when cancelled.
func (rv *RootView) PickFile(initialDir string) string {
	paths := GetOpenFile(
		Title("Open Image"),
		Initialdir(initialDir),
		Filetypes([]FileType{
			{TypeName: "Images", Extensions: []string{".png", ".jpg", ".jpeg", ".bmp", ".tiff", ".gif", ".webp"}},
			{TypeName: "All Files", Extensions: []string{"*"}},
		}),
	)
	if len(paths) == 0 {
		return ""
	}
	return paths[0]
}
