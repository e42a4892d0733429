package presenter

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"cropstudio/domain/export"
	"cropstudio/ui/model"
)

// ImageStore narrows what presenters need from the image provider.
type ImageStore interface {
	Load(path string) (image.Image, error)
	Reload(path string) (image.Image, error)
	Crop(img image.Image, r export.PixelRect) image.Image
	Save(img image.Image, path string) error
	Prefetch(paths ...string)
}

// NavView updates UI elements affected by opening and switching images.
type NavView interface {
	RenderDocument()
	RefreshInfo()
	SetStatus(string)
}

// NavPresenter owns presentation logic for opening files and folder
// navigation.
type NavPresenter struct {
	doc     *model.DocumentModel
	browser *model.BrowserModel
	store   ImageStore
	view    NavView
	logger  *slog.Logger

	// canvasSize reports the live canvas geometry at open time.
	canvasSize func() (int, int)
	// listFolder scans the folder of a path for sibling images.
	listFolder func(string) ([]string, error)
	// onOpened is notified after a successful open, for session persistence.
	onOpened func(string)
}

func NewNavPresenter(doc *model.DocumentModel, browser *model.BrowserModel, store ImageStore, view NavView, logger *slog.Logger, canvasSize func() (int, int), listFolder func(string) ([]string, error), onOpened func(string)) *NavPresenter {
	return &NavPresenter{
		doc:        doc,
		browser:    browser,
		store:      store,
		view:       view,
		logger:     logger,
		canvasSize: canvasSize,
		listFolder: listFolder,
		onOpened:   onOpened,
	}
}

// OpenPath loads the image at path into the document, rescans its folder
// for navigation and warms the cache with the neighbors. Failures leave the
// current document untouched.
func (p *NavPresenter) OpenPath(path string) error {
	if p == nil || p.doc == nil || p.store == nil || p.view == nil {
		return nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if !export.IsReadableExt(filepath.Ext(abs)) {
		err := fmt.Errorf("unsupported file type: %s", filepath.Base(abs))
		p.view.SetStatus(err.Error())
		return err
	}
	if _, err := os.Stat(abs); err != nil {
		p.view.SetStatus("cannot open " + filepath.Base(abs))
		return err
	}
	img, err := p.store.Load(abs)
	if err != nil {
		p.logger.Error("open failed", "path", abs, "error", err)
		p.view.SetStatus("cannot open " + filepath.Base(abs))
		return err
	}
	b := img.Bounds()
	cw, ch := p.canvasSize()
	p.doc.SetImage(abs, b.Dx(), b.Dy(), cw, ch)

	entries, err := p.listFolder(abs)
	if err != nil {
		p.logger.Warn("folder scan failed", "path", abs, "error", err)
		entries = nil
	}
	p.browser.SetEntries(entries, abs)
	if neighbors := p.browser.Neighbors(); len(neighbors) > 0 {
		p.store.Prefetch(neighbors...)
	}

	p.view.RenderDocument()
	p.view.RefreshInfo()
	pos, n := p.browser.Position()
	p.view.SetStatus(fmt.Sprintf("%s (%d/%d)", filepath.Base(abs), pos, n))
	p.logger.Info("opened", "path", abs, "width", b.Dx(), "height", b.Dy())
	if p.onOpened != nil {
		p.onOpened(abs)
	}
	return nil
}

// NextImage opens the next image in the folder, wrapping at the end.
func (p *NavPresenter) NextImage() {
	p.step(func() string { return p.browser.Next() })
}

// PrevImage opens the previous image in the folder, wrapping at the start.
func (p *NavPresenter) PrevImage() {
	p.step(func() string { return p.browser.Prev() })
}

func (p *NavPresenter) step(advance func() string) {
	if p == nil || p.doc == nil || p.browser == nil {
		return
	}
	if !p.doc.HasImage() || p.browser.Len() < 2 {
		return
	}
	next := advance()
	if next == "" || next == p.doc.Path() {
		return
	}
	if err := p.OpenPath(next); err != nil {
		// Keep the cursor consistent with the document we are still showing.
		p.browser.SetEntries(nil, p.doc.Path())
	}
}
