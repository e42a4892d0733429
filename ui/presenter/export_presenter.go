package presenter

import (
	"errors"
	"log/slog"
	"path/filepath"

	"cropstudio/domain/export"
	"cropstudio/ui/model"
)

// ExportView updates UI elements affected by saving a crop.
type ExportView interface {
	RenderDocument()
	RedrawSelection()
	RefreshInfo()
	SetStatus(string)
	ShowToast(string)
}

// ExportPresenter owns presentation logic for turning the current selection
// into a file on disk.
type ExportPresenter struct {
	doc     *model.DocumentModel
	counter *export.Counter
	store   ImageStore
	view    ExportView
	logger  *slog.Logger

	// policy snapshots the export settings at save time, so settings edits
	// apply to the next save without restarting.
	policy func() export.Policy
	// canvasSize reports the live canvas geometry, needed when an overwrite
	// replaces the displayed image.
	canvasSize func() (int, int)
}

func NewExportPresenter(doc *model.DocumentModel, counter *export.Counter, store ImageStore, view ExportView, logger *slog.Logger, policy func() export.Policy, canvasSize func() (int, int)) *ExportPresenter {
	return &ExportPresenter{
		doc:        doc,
		counter:    counter,
		store:      store,
		view:       view,
		logger:     logger,
		policy:     policy,
		canvasSize: canvasSize,
	}
}

// SaveCrop clamps the selection to image pixels, plans the destination path
// and writes the cropped region. The per-source counter advances only after
// the file is on disk, so a failed save reuses its number.
func (p *ExportPresenter) SaveCrop() {
	if p == nil || p.doc == nil || p.store == nil || p.view == nil {
		return
	}
	if !p.doc.HasImage() {
		p.view.SetStatus("no image loaded")
		return
	}
	rect, ok := p.doc.Selection.Rect()
	if !ok {
		p.view.SetStatus("select a region first")
		return
	}
	imgW, imgH := p.doc.ImageSize()
	pol := p.policy()
	plan, err := export.Plan(rect, p.doc.Viewport(), imgW, imgH, pol, p.doc.Path(), p.counter)
	if err != nil {
		switch {
		case errors.Is(err, export.ErrSelectionTooSmall):
			p.view.SetStatus("selection too small")
		case errors.Is(err, export.ErrFolderCreateFailed):
			p.view.SetStatus("cannot create output folder")
			p.logger.Error("save failed", "path", p.doc.Path(), "error", err)
		default:
			p.view.SetStatus("save failed")
			p.logger.Error("save failed", "path", p.doc.Path(), "error", err)
		}
		return
	}

	img, err := p.store.Load(p.doc.Path())
	if err != nil {
		p.view.SetStatus("cannot read " + filepath.Base(p.doc.Path()))
		p.logger.Error("save failed", "path", p.doc.Path(), "error", err)
		return
	}
	cropped := p.store.Crop(img, plan.Rect)
	if err := p.store.Save(cropped, plan.Path); err != nil {
		p.view.SetStatus("cannot write " + filepath.Base(plan.Path))
		p.logger.Error("save failed", "path", plan.Path, "error", err)
		return
	}

	if plan.Overwrite {
		// The source file changed under us; drop the stale decode and show
		// the new, smaller image.
		fresh, err := p.store.Reload(plan.Path)
		if err != nil {
			p.logger.Error("reload after overwrite failed", "path", plan.Path, "error", err)
			p.view.SetStatus("saved, but reload failed")
			return
		}
		b := fresh.Bounds()
		cw, ch := p.canvasSize()
		p.doc.SetImage(plan.Path, b.Dx(), b.Dy(), cw, ch)
		p.view.RenderDocument()
	} else {
		p.counter.Commit(p.doc.Path())
		p.doc.ClearSelection()
		p.view.RedrawSelection()
	}

	p.view.RefreshInfo()
	p.view.SetStatus("saved " + filepath.Base(plan.Path))
	p.view.ShowToast("Saved " + filepath.Base(plan.Path))
	p.logger.Info("crop saved",
		"source", p.doc.Path(),
		"dest", plan.Path,
		"rect", plan.Rect,
		"overwrite", plan.Overwrite,
	)
}
