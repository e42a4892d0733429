package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	. "modernc.org/tk9.0"

	"cropstudio/capture"
	"cropstudio/config"
	"cropstudio/ui/view"
)

// startupDelay defers the initial image load until Tk has realized the
// canvas, so the first fit uses real geometry.
const startupDelay = 50 * time.Millisecond

// Application owns the Tk main window lifecycle around the assembled
// container.
type Application struct {
	c *AppContainer
}

func NewApp(cfg *config.Config, cfgPath string, logger *slog.Logger) *Application {
	return &Application{c: BuildContainer(cfg, cfgPath, logger)}
}

// Start builds the UI, binds shortcuts and runs the Tk event loop until the
// window closes. initialPath, when non-empty, is opened at startup and takes
// precedence over the remembered last file.
func (a *Application) Start(initialPath string) {
	c := a.c

	App.WmTitle("Crop Studio")
	WmGeometry(App, "1000x700+80+80")
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)

	c.RootView.Build(a.handlers())
	a.bindShortcuts()

	startPath := initialPath
	if startPath == "" {
		startPath = c.Config.LastFile
	}
	if startPath != "" {
		if _, err := os.Stat(startPath); err == nil {
			p := startPath
			TclAfter(startupDelay, func() { _ = c.Nav.OpenPath(p) })
		}
	}

	c.Logger.Info("started")
	App.Wait()
}

func (a *Application) handlers() view.Handlers {
	c := a.c
	return view.Handlers{
		OnOpen:     a.openDialog,
		OnSaveCrop: c.Export.SaveCrop,
		OnPrev:     c.Nav.PrevImage,
		OnNext:     c.Nav.NextImage,
		OnClear:    c.Editor.ClearSelection,
		OnCapture:  a.captureScreen,
		OnSettings: c.Settings.OpenOrFocus,
		OnHelp:     c.Help.OpenOrFocus,
		OnExit:     a.exitHandler,

		OnPointerDown:  c.Editor.PointerDown,
		OnPointerDrag:  c.Editor.PointerDrag,
		OnPointerUp:    c.Editor.PointerUp,
		OnPointerMove:  c.Editor.PointerMove,
		OnCanvasResize: c.Editor.CanvasResized,
	}
}

func (a *Application) bindShortcuts() {
	c := a.c
	Bind(App, "<Return>", Command(func() { c.Export.SaveCrop() }))
	Bind(App, "<space>", Command(func() { c.Export.SaveCrop() }))
	Bind(App, "<Left>", Command(func() { c.Nav.PrevImage() }))
	Bind(App, "<Right>", Command(func() { c.Nav.NextImage() }))
	Bind(App, "<Escape>", Command(func() { c.Editor.ClearSelection() }))
	Bind(App, "<Control-o>", Command(func() { a.openDialog() }))
	Bind(App, "<F1>", Command(func() { c.Help.OpenOrFocus() }))
}

func (a *Application) openDialog() {
	c := a.c
	initialDir := ""
	if c.Doc.HasImage() {
		initialDir = filepath.Dir(c.Doc.Path())
	} else if home, err := os.UserHomeDir(); err == nil {
		initialDir = home
	}
	if path := c.RootView.PickFile(initialDir); path != "" {
		_ = c.Nav.OpenPath(path)
	}
}

// captureScreen grabs the screen into a temp PNG and opens it like any
// other image, so it can be cropped and exported.
func (a *Application) captureScreen() {
	c := a.c
	path, err := capture.GrabToTempFile()
	if err != nil {
		c.Logger.Error("screen capture failed", "error", err)
		c.RootView.SetStatus("screen capture failed")
		return
	}
	_ = c.Nav.OpenPath(path)
}

func (a *Application) exitHandler() {
	a.c.Logger.Info("exiting")
	Destroy(App)
}
