package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/vova616/screenshot"
)

// Grab returns a screen capture of the current active monitor.
func Grab() (*image.RGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, err
	}
	return img, nil
}

// GrabRect returns a screen capture of the given area.
func GrabRect(area image.Rectangle) (*image.RGBA, error) {
	img, err := screenshot.CaptureRect(area)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// GrabToTempFile captures the screen and writes it to a uniquely named PNG
// in the temp directory, returning its path. The caller opens it like any
// other image and deletes it when done with it.
func GrabToTempFile() (string, error) {
	img, err := Grab()
	if err != nil {
		return "", fmt.Errorf("capture screen: %w", err)
	}
	path := filepath.Join(os.TempDir(), "capture_"+uuid.NewString()+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	return path, nil
}
