package export

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"cropstudio/domain/geometry"
	"cropstudio/domain/selection"
)

// Export failure taxonomy. Every error is recoverable at the call boundary:
// the caller reports it and the document state stays untouched.
var (
	ErrNoSelection        = errors.New("no selection")
	ErrSelectionTooSmall  = errors.New("selection too small")
	ErrFolderCreateFailed = errors.New("could not create output folder")
	ErrWriteFailed        = errors.New("could not write crop")
)

// FolderMode selects where crop files are written.
type FolderMode string

const (
	// FolderSubfolder writes into a named subfolder beside the source file.
	FolderSubfolder FolderMode = "subfolder"
	// FolderSame writes next to the source file.
	FolderSame FolderMode = "same"
	// FolderCustom writes into an explicit folder; a blank one falls back to
	// the source folder.
	FolderCustom FolderMode = "custom"
)

// DefaultSubfolder is the subfolder name used when none is configured.
const DefaultSubfolder = "cropped"

// Policy is the immutable per-export settings snapshot. The engine never
// reads persisted configuration itself.
type Policy struct {
	FolderMode   FolderMode
	Subfolder    string
	CustomFolder string
	Pattern      string
	Overwrite    bool
}

// PixelRect is a clamped crop rectangle in source-image pixels.
type PixelRect struct {
	Left, Top, Right, Bottom int
}

func (r PixelRect) Width() int  { return r.Right - r.Left }
func (r PixelRect) Height() int { return r.Bottom - r.Top }

// OutputDescriptor describes one resolved export: destination path, pixel
// rectangle and the crop number used for naming. The number is provisional
// until the caller commits it on the counter after a successful write.
type OutputDescriptor struct {
	Path      string
	Rect      PixelRect
	Number    int
	Overwrite bool
}

// ClampToImage maps a canvas-space selection into image pixels through the
// viewport's inverse and clamps it to the image bounds. A selection drawn
// partly outside the image is clamped, never rejected, unless clamping
// collapses it to zero area.
func ClampToImage(sel selection.Rect, vp geometry.Viewport, imgW, imgH int) (PixelRect, error) {
	n := sel.Normalized()
	ix0, iy0 := vp.ToImage(n.X0, n.Y0)
	ix1, iy1 := vp.ToImage(n.X1, n.Y1)

	left := int(math.Floor(math.Min(ix0, ix1)))
	top := int(math.Floor(math.Min(iy0, iy1)))
	right := int(math.Ceil(math.Max(ix0, ix1)))
	bottom := int(math.Ceil(math.Max(iy0, iy1)))

	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}
	if right > imgW {
		right = imgW
	}
	if bottom > imgH {
		bottom = imgH
	}
	if right <= left || bottom <= top {
		return PixelRect{}, ErrSelectionTooSmall
	}
	return PixelRect{Left: left, Top: top, Right: right, Bottom: bottom}, nil
}

// ResolveFolder applies the folder policy for a source image path.
func ResolveFolder(p Policy, sourcePath string) string {
	src := filepath.Dir(sourcePath)
	switch p.FolderMode {
	case FolderSame:
		return src
	case FolderCustom:
		if custom := strings.TrimSpace(p.CustomFolder); custom != "" {
			return custom
		}
		return src
	default:
		sub := strings.TrimSpace(p.Subfolder)
		if sub == "" {
			sub = DefaultSubfolder
		}
		return filepath.Join(src, sub)
	}
}

// Plan computes the clamped pixel rectangle and the output destination for
// one export, creating the output folder if needed. It writes no image data:
// the caller performs the encode/write and commits the counter only when
// that succeeds, so a failed save never consumes a crop number.
//
// Under the overwrite policy the destination is forced to the source path
// regardless of folder and naming settings.
func Plan(sel selection.Rect, vp geometry.Viewport, imgW, imgH int, p Policy, sourcePath string, counter *Counter) (OutputDescriptor, error) {
	rect, err := ClampToImage(sel, vp, imgW, imgH)
	if err != nil {
		return OutputDescriptor{}, err
	}
	n := counter.Peek(sourcePath)

	if p.Overwrite {
		return OutputDescriptor{Path: sourcePath, Rect: rect, Number: n, Overwrite: true}, nil
	}

	srcExt := filepath.Ext(sourcePath)
	base := strings.TrimSuffix(filepath.Base(sourcePath), srcExt)
	ext := OutputExt(srcExt)

	folder := ResolveFolder(p, sourcePath)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return OutputDescriptor{}, fmt.Errorf("%w: %s: %v", ErrFolderCreateFailed, folder, err)
	}

	stem := FormatStem(p.Pattern, base, n, ext)
	return OutputDescriptor{Path: filepath.Join(folder, stem+ext), Rect: rect, Number: n}, nil
}
