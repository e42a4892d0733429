package geometry

import "math"

// Fallback canvas dimensions used before the first Configure event arrives,
// when the render surface has no laid-out size yet.
const (
	DefaultCanvasW = 800
	DefaultCanvasH = 600
)

// Viewport maps between source-image pixel space and canvas space for a
// letterboxed fit-to-window placement. It is a derived value: recompute it
// with Fit whenever the canvas is resized or a new image loads.
type Viewport struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Fit computes the transform that places an imgW x imgH image centered inside
// a canvasW x canvasH canvas at scale min(cw/iw, ch/ih). Non-positive canvas
// dimensions fall back to the defaults so a not-yet-mapped window never
// produces a division by zero.
func Fit(imgW, imgH, canvasW, canvasH int) Viewport {
	if canvasW <= 0 {
		canvasW = DefaultCanvasW
	}
	if canvasH <= 0 {
		canvasH = DefaultCanvasH
	}
	scale := math.Min(float64(canvasW)/float64(imgW), float64(canvasH)/float64(imgH))
	dispW := int(float64(imgW) * scale)
	dispH := int(float64(imgH) * scale)
	return Viewport{
		Scale:   scale,
		OffsetX: float64((canvasW - dispW) / 2),
		OffsetY: float64((canvasH - dispH) / 2),
	}
}

// DisplaySize returns the scaled image dimensions in canvas pixels.
func (v Viewport) DisplaySize(imgW, imgH int) (w, h int) {
	return int(float64(imgW) * v.Scale), int(float64(imgH) * v.Scale)
}

// ToImage converts a canvas-space point to image space. Exact inverse of
// ToCanvas for any Scale > 0.
func (v Viewport) ToImage(cx, cy float64) (ix, iy float64) {
	return (cx - v.OffsetX) / v.Scale, (cy - v.OffsetY) / v.Scale
}

// ToCanvas converts an image-space point to the canvas placement used when
// rendering: screenX = offsetX + imageX*scale.
func (v Viewport) ToCanvas(ix, iy float64) (cx, cy float64) {
	return v.OffsetX + ix*v.Scale, v.OffsetY + iy*v.Scale
}
