package export

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

// DefaultPattern names crop files when no pattern is configured or the
// configured one cannot be applied.
const DefaultPattern = "{base}_cr{n}"

// fallbackExt is the lossless default used when the source has no extension
// or one outside the writable set.
const fallbackExt = ".png"

// writableFormats is the closed set of extensions crops can be encoded to,
// mapped to their codec.
var writableFormats = map[string]imaging.Format{
	".jpg":  imaging.JPEG,
	".jpeg": imaging.JPEG,
	".png":  imaging.PNG,
	".bmp":  imaging.BMP,
	".tiff": imaging.TIFF,
}

// readableExts lists the extensions the tool will open. gif and webp decode
// fine but always export as the png fallback.
var readableExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".bmp": true,
	".gif": true, ".tiff": true, ".webp": true,
}

// ReadableExts returns the sorted openable extensions, dot included.
func ReadableExts() []string {
	return []string{".bmp", ".gif", ".jpeg", ".jpg", ".png", ".tiff", ".webp"}
}

// IsReadableExt reports whether files with the given extension can be opened.
func IsReadableExt(ext string) bool {
	return readableExts[strings.ToLower(ext)]
}

// OutputExt picks the extension a crop of a source with sourceExt is written
// with: the source's own extension when writable, the png fallback otherwise.
func OutputExt(sourceExt string) string {
	ext := strings.ToLower(sourceExt)
	if _, ok := writableFormats[ext]; !ok {
		return fallbackExt
	}
	return ext
}

// FormatFor returns the codec for a writable extension.
func FormatFor(ext string) (imaging.Format, bool) {
	f, ok := writableFormats[strings.ToLower(ext)]
	return f, ok
}

var placeholderRe = regexp.MustCompile(`\{[^{}]*\}`)

// FormatStem substitutes {base}, {n} and {ext} into pattern and returns the
// output filename stem. A blank pattern or one that leaves placeholders
// unresolved falls back to DefaultPattern; naming never fails an export.
func FormatStem(pattern, base string, n int, ext string) string {
	if stem, ok := substitute(pattern, base, n, ext); ok {
		return stem
	}
	stem, _ := substitute(DefaultPattern, base, n, ext)
	return stem
}

// ValidPattern reports whether pattern formats cleanly with the recognized
// placeholders. Used by the settings dialog before persisting.
func ValidPattern(pattern string) bool {
	_, ok := substitute(pattern, "x", 1, ".jpg")
	return ok
}

func substitute(pattern, base string, n int, ext string) (string, bool) {
	if strings.TrimSpace(pattern) == "" {
		return "", false
	}
	r := strings.NewReplacer("{base}", base, "{n}", strconv.Itoa(n), "{ext}", ext)
	out := r.Replace(pattern)
	if placeholderRe.MatchString(out) {
		return "", false
	}
	return out, true
}
