package view

import (
	"image"
	"time"

	"cropstudio/domain/selection"
	"cropstudio/ui/images"
	"cropstudio/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Canvas item tags. Deleting by tag replaces a whole layer at once.
const (
	tagImage     = "image"
	tagSelection = "selection"
	tagToast     = "toast"
)

const (
	handleHalf  = 4 // handle squares are 8px
	toastMargin = 14

	toastLinger   = 1000 * time.Millisecond // full brightness before fading
	toastFadeTick = 80 * time.Millisecond
	toastFadeLen  = 8
)

// toastFade darkens the toast toward its background on each fade step.
var toastFade = images.FadeRamp(theme.ColorToastText, theme.ColorToastBg, toastFadeLen)

// CanvasView owns the drawing surface: the scaled image, the selection
// overlay and transient toasts. It tracks its own size from Configure
// events so presenters can fit images to the live geometry.
type CanvasView struct {
	canvas *CanvasWidget
	photo  *Img // current Tk photo, disposed before replacement

	width, height int
	toastAfter    string // pending after id for the linger/fade chain
}

// NewCanvasView creates the canvas widget. The caller grids it.
func NewCanvasView() *CanvasView {
	cv := &CanvasView{
		width:  800,
		height: 600,
	}
	cv.canvas = Canvas(
		Width(cv.width),
		Height(cv.height),
		Background(theme.ColorCanvas),
		Highlightthickness(0),
	)
	return cv
}

// Widget exposes the underlying canvas for layout and event binding.
func (cv *CanvasView) Widget() *CanvasWidget { return cv.canvas }

// SetSize records the live canvas geometry reported by a Configure event.
func (cv *CanvasView) SetSize(w, h int) {
	if w > 0 && h > 0 {
		cv.width, cv.height = w, h
	}
}

// Size returns the last observed canvas geometry.
func (cv *CanvasView) Size() (int, int) { return cv.width, cv.height }

// ShowImage replaces the displayed image. img must already be scaled to
// display size; offX, offY position its top-left corner on the canvas.
// Any selection overlay belonged to the previous layout and is removed.
func (cv *CanvasView) ShowImage(img image.Image, offX, offY int) {
	if cv.canvas == nil || img == nil {
		return
	}
	cv.canvas.Delete(tagSelection)
	cv.canvas.Delete(tagImage)
	if cv.photo != nil {
		cv.photo.Delete()
	}
	cv.photo = NewPhoto(Data(images.EncodePNG(img)))
	cv.canvas.CreateImage(offX, offY, Image(cv.photo), Anchor("nw"), Tags(tagImage))
}

// ShowPlaceholder centers the given artwork on an otherwise empty canvas.
func (cv *CanvasView) ShowPlaceholder(img image.Image) {
	if cv.canvas == nil || img == nil {
		return
	}
	b := img.Bounds()
	offX := (cv.width - b.Dx()) / 2
	offY := (cv.height - b.Dy()) / 2
	cv.ShowImage(img, offX, offY)
}

// ClearSelection removes the selection overlay.
func (cv *CanvasView) ClearSelection() {
	if cv.canvas != nil {
		cv.canvas.Delete(tagSelection)
	}
}

// DrawSelection paints the overlay for r: dimmed surround, a double border
// for contrast on any background, rule-of-thirds guides and the eight
// resize handles. The display area (dispX0..dispY1) bounds the dimming.
func (cv *CanvasView) DrawSelection(r selection.Rect, dispX0, dispY0, dispX1, dispY1 float64) {
	if cv.canvas == nil {
		return
	}
	cv.canvas.Delete(tagSelection)
	n := r.Normalized()

	// Dim the unselected part of the image with a stipple so it stays
	// visible underneath.
	dims := [][4]float64{
		{dispX0, dispY0, dispX1, n.Y0}, // above
		{dispX0, n.Y1, dispX1, dispY1}, // below
		{dispX0, n.Y0, n.X0, n.Y1},     // left
		{n.X1, n.Y0, dispX1, n.Y1},     // right
	}
	for _, d := range dims {
		if d[2]-d[0] <= 0 || d[3]-d[1] <= 0 {
			continue
		}
		cv.canvas.CreateRectangle(d[0], d[1], d[2], d[3],
			Fill(theme.ColorDimFill), Stipple("gray50"), Width(0), Tags(tagSelection))
	}

	// Border: a wide dark line with the accent line on top.
	cv.canvas.CreateRectangle(n.X0, n.Y0, n.X1, n.Y1,
		Outline(theme.ColorSelectionOuter), Width(3), Tags(tagSelection))
	cv.canvas.CreateRectangle(n.X0, n.Y0, n.X1, n.Y1,
		Outline(theme.ColorAccent), Width(1), Tags(tagSelection))

	// Rule-of-thirds guides inside the selection.
	w, h := n.Width(), n.Height()
	if w > 30 && h > 30 {
		for i := 1; i <= 2; i++ {
			x := n.X0 + w*float64(i)/3
			y := n.Y0 + h*float64(i)/3
			cv.canvas.CreateLine(x, n.Y0, x, n.Y1, Fill(theme.ColorGridLine), Stipple("gray50"), Tags(tagSelection))
			cv.canvas.CreateLine(n.X0, y, n.X1, y, Fill(theme.ColorGridLine), Stipple("gray50"), Tags(tagSelection))
		}
	}

	for _, p := range n.Handles() {
		cv.canvas.CreateRectangle(p.X-handleHalf, p.Y-handleHalf, p.X+handleHalf, p.Y+handleHalf,
			Fill(theme.ColorHandleFill), Outline(theme.ColorSelectionOuter), Width(1), Tags(tagSelection))
	}
}

// ShowToast flashes a short confirmation in the bottom-right corner,
// replacing any toast still on screen. After a linger at full brightness it
// fades out, redrawn darker on each chained tick until removed.
func (cv *CanvasView) ShowToast(text string) {
	if cv.canvas == nil {
		return
	}
	cv.cancelToast()
	cv.drawToast(text, theme.ColorToastText)
	cv.toastAfter = TclAfter(toastLinger, func() { cv.fadeToast(text, 0) })
}

func (cv *CanvasView) drawToast(text, color string) {
	cv.canvas.Delete(tagToast)
	x := float64(cv.width - toastMargin)
	y := float64(cv.height - toastMargin)
	cv.canvas.CreateRectangle(x-8-7*float64(len(text)), y-22, x+6, y+6,
		Fill(theme.ColorToastBg), Outline(color), Width(1), Tags(tagToast))
	cv.canvas.CreateText(x-2, y, Txt(text), Fill(color), Anchor("se"), Tags(tagToast))
}

func (cv *CanvasView) fadeToast(text string, step int) {
	if step >= len(toastFade) {
		cv.canvas.Delete(tagToast)
		cv.toastAfter = ""
		return
	}
	cv.drawToast(text, toastFade[step])
	cv.toastAfter = TclAfter(toastFadeTick, func() { cv.fadeToast(text, step+1) })
}

func (cv *CanvasView) cancelToast() {
	if cv.toastAfter != "" {
		TclAfterCancel(cv.toastAfter)
		cv.toastAfter = ""
	}
	cv.canvas.Delete(tagToast)
}

// SetCursor switches the pointer shape over the canvas.
func (cv *CanvasView) SetCursor(name string) {
	if cv.canvas != nil {
		cv.canvas.Configure(Cursor(name))
	}
}
