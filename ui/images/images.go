package images

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strconv"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// FadeRamp interpolates n "#rrggbb" colors stepping from one color toward
// another, excluding from and ending exactly on to. Invalid colors or a
// non-positive n yield nil.
func FadeRamp(from, to string, n int) []string {
	fr, fg, fb, ok := splitHex(from)
	if !ok {
		return nil
	}
	tr, tg, tb, ok := splitHex(to)
	if !ok || n <= 0 {
		return nil
	}
	ramp := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		ramp = append(ramp, fmt.Sprintf("#%02x%02x%02x",
			lerpChannel(fr, tr, t), lerpChannel(fg, tg, t), lerpChannel(fb, tb, t)))
	}
	return ramp
}

func splitHex(color string) (r, g, b uint8, ok bool) {
	if len(color) != 7 || color[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(color[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

func lerpChannel(from, to uint8, t float64) uint8 {
	return uint8(float64(from) + (float64(to)-float64(from))*t)
}
