package geometry

import (
	"math"
	"testing"
)

func TestFit_HalfScaleNoLetterbox(t *testing.T) {
	vp := Fit(1000, 800, 500, 400)
	if vp.Scale != 0.5 {
		t.Fatalf("expected scale 0.5, got %v", vp.Scale)
	}
	if vp.OffsetX != 0 || vp.OffsetY != 0 {
		t.Fatalf("expected zero offsets, got (%v,%v)", vp.OffsetX, vp.OffsetY)
	}
}

func TestFit_LetterboxCentersImage(t *testing.T) {
	// 100x100 image into a 300x100 canvas: scale 1, 100px of slack split evenly.
	vp := Fit(100, 100, 300, 100)
	if vp.Scale != 1 {
		t.Fatalf("expected scale 1, got %v", vp.Scale)
	}
	if vp.OffsetX != 100 || vp.OffsetY != 0 {
		t.Fatalf("expected offsets (100,0), got (%v,%v)", vp.OffsetX, vp.OffsetY)
	}
}

func TestFit_UnknownCanvasUsesDefaults(t *testing.T) {
	vp := Fit(400, 300, 0, 0)
	want := Fit(400, 300, DefaultCanvasW, DefaultCanvasH)
	if vp != want {
		t.Fatalf("expected default-canvas transform %+v, got %+v", want, vp)
	}
	if vp.Scale <= 0 {
		t.Fatalf("scale must be positive, got %v", vp.Scale)
	}
}

func TestDisplaySize(t *testing.T) {
	vp := Fit(1000, 800, 500, 400)
	w, h := vp.DisplaySize(1000, 800)
	if w != 500 || h != 400 {
		t.Fatalf("expected display size 500x400, got %dx%d", w, h)
	}
}

func TestToImage_InvertsForwardPlacement(t *testing.T) {
	cases := []struct {
		imgW, imgH, cw, ch int
	}{
		{1000, 800, 500, 400},
		{640, 480, 1000, 700},
		{3000, 1000, 800, 600},
		{33, 777, 401, 399},
	}
	points := [][2]float64{{0, 0}, {13.5, 99.25}, {250, 200}, {-20, 100}}
	for _, c := range cases {
		vp := Fit(c.imgW, c.imgH, c.cw, c.ch)
		for _, pt := range points {
			ix, iy := vp.ToImage(pt[0], pt[1])
			cx, cy := vp.ToCanvas(ix, iy)
			if math.Abs(cx-pt[0]) > 1e-9 || math.Abs(cy-pt[1]) > 1e-9 {
				t.Fatalf("fit %+v: round trip of (%v,%v) gave (%v,%v)", c, pt[0], pt[1], cx, cy)
			}
		}
	}
}

func TestToImage_KnownMapping(t *testing.T) {
	vp := Fit(1000, 800, 500, 400) // scale 0.5, offsets 0
	ix, iy := vp.ToImage(100, 100)
	if ix != 200 || iy != 200 {
		t.Fatalf("expected image point (200,200), got (%v,%v)", ix, iy)
	}
}
