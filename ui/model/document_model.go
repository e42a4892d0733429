package model

import (
	"cropstudio/domain/geometry"
	"cropstudio/domain/selection"
)

// DocumentModel holds the state of the loaded image: its identity, pixel
// dimensions, the viewport mapping it to the canvas, and the in-progress
// selection. The zero value is an empty document with no image loaded.
// Not concurrency-safe; all access happens on the UI thread.
type DocumentModel struct {
	path       string
	imgW, imgH int
	viewport   geometry.Viewport

	Selection selection.Selection
	Drag      selection.Controller
}

// HasImage reports whether a document is loaded.
func (m *DocumentModel) HasImage() bool {
	return m.imgW > 0 && m.imgH > 0
}

// Path returns the source file path of the loaded image, or "".
func (m *DocumentModel) Path() string { return m.path }

// ImageSize returns the pixel dimensions of the loaded image.
func (m *DocumentModel) ImageSize() (int, int) { return m.imgW, m.imgH }

// Viewport returns the current canvas mapping.
func (m *DocumentModel) Viewport() geometry.Viewport { return m.viewport }

// SetImage replaces the document with a new image and fits it to the given
// canvas size. Any selection belonged to the old image and is discarded.
func (m *DocumentModel) SetImage(path string, imgW, imgH, canvasW, canvasH int) {
	m.path = path
	m.imgW, m.imgH = imgW, imgH
	m.viewport = geometry.Fit(imgW, imgH, canvasW, canvasH)
	m.ClearSelection()
}

// Refit recomputes the viewport for a new canvas size, keeping the image.
func (m *DocumentModel) Refit(canvasW, canvasH int) {
	if !m.HasImage() {
		return
	}
	m.viewport = geometry.Fit(m.imgW, m.imgH, canvasW, canvasH)
}

// OnCanvasResize handles a canvas geometry change. The selection is held in
// canvas coordinates, so it no longer points at the same pixels after a
// refit and is discarded rather than silently remapped.
func (m *DocumentModel) OnCanvasResize(canvasW, canvasH int) {
	m.ClearSelection()
	m.Refit(canvasW, canvasH)
}

// ClearSelection discards the selection and any drag in progress.
func (m *DocumentModel) ClearSelection() {
	m.Selection.Clear()
	m.Drag.Cancel()
}
