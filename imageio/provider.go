package imageio

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sourcegraph/conc/pool"

	// webp is readable but not writable; register its decoder.
	_ "golang.org/x/image/webp"

	"cropstudio/domain/export"
)

// cacheSize bounds the decoded-image cache. Folder navigation touches at
// most the current image and its two neighbors; the rest is headroom.
const cacheSize = 8

// Provider decodes, caches, crops and saves images. The LRU cache is safe
// for concurrent use, so Prefetch may warm it from background goroutines
// while the UI thread loads.
type Provider struct {
	cache       *lru.Cache[string, image.Image]
	logger      *slog.Logger
	JPEGQuality int
}

func NewProvider(logger *slog.Logger) *Provider {
	cache, _ := lru.New[string, image.Image](cacheSize)
	return &Provider{cache: cache, logger: logger, JPEGQuality: 90}
}

// Load decodes the image at path, consulting the cache first. EXIF
// orientation is applied at decode time.
func (p *Provider) Load(path string) (image.Image, error) {
	if img, ok := p.cache.Get(path); ok {
		return img, nil
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	p.cache.Add(path, img)
	return img, nil
}

// Reload drops any cached copy of path and decodes it again. Used after the
// source file was overwritten on disk, when the cached pixels are stale.
func (p *Provider) Reload(path string) (image.Image, error) {
	p.cache.Remove(path)
	return p.Load(path)
}

// Crop extracts the pixel rectangle from img as a new image.
func (p *Provider) Crop(img image.Image, r export.PixelRect) image.Image {
	return imaging.Crop(img, image.Rect(r.Left, r.Top, r.Right, r.Bottom))
}

// Save encodes img to path, choosing the codec by extension. Callers resolve
// the extension through the writable-format table first; anything else fails
// with ErrWriteFailed.
func (p *Provider) Save(img image.Image, path string) error {
	if err := imaging.Save(img, path, imaging.JPEGQuality(p.JPEGQuality)); err != nil {
		return fmt.Errorf("%w: %s: %v", export.ErrWriteFailed, path, err)
	}
	return nil
}

// Prefetch warms the cache with the given paths off the caller's thread,
// bounded by a worker pool. Failures are logged at debug level and otherwise
// ignored; the images will simply decode on demand later.
func (p *Provider) Prefetch(paths ...string) {
	go func() {
		workers := pool.New().WithMaxGoroutines(runtime.NumCPU())
		for _, path := range paths {
			if p.cache.Contains(path) {
				continue
			}
			workers.Go(func() {
				if _, err := p.Load(path); err != nil && p.logger != nil {
					p.logger.Debug("prefetch failed", "path", path, "error", err)
				}
			})
		}
		workers.Wait()
	}()
}

// ListFolder returns the supported image files in the folder containing
// path, sorted by name.
func ListFolder(path string) ([]string, error) {
	folder := filepath.Dir(path)
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", folder, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if export.IsReadableExt(filepath.Ext(e.Name())) {
			files = append(files, filepath.Join(folder, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
