package export

import (
	"testing"

	"github.com/disintegration/imaging"
)

func TestFormatStem_Substitution(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"{base}_cr{n}", "photo_cr3"},
		{"{base}-{n}{ext}", "photo-3.jpg"},
		{"crop_{n}", "crop_3"},
		{"fixedname", "fixedname"}, // no placeholders is legal, like the original
	}
	for _, tc := range cases {
		if got := FormatStem(tc.pattern, "photo", 3, ".jpg"); got != tc.want {
			t.Fatalf("pattern %q: expected %q, got %q", tc.pattern, tc.want, got)
		}
	}
}

func TestFormatStem_UnknownPlaceholderFallsBack(t *testing.T) {
	if got := FormatStem("{bogus}", "base", 1, ".jpg"); got != "base_cr1" {
		t.Fatalf("expected default-stem fallback, got %q", got)
	}
	if got := FormatStem("{base}_{oops}_{n}", "base", 2, ".jpg"); got != "base_cr2" {
		t.Fatalf("partially valid pattern must still fall back, got %q", got)
	}
}

func TestFormatStem_BlankPatternFallsBack(t *testing.T) {
	if got := FormatStem("   ", "img", 7, ".png"); got != "img_cr7" {
		t.Fatalf("expected fallback for blank pattern, got %q", got)
	}
}

func TestValidPattern(t *testing.T) {
	for pattern, want := range map[string]bool{
		"{base}_cr{n}":   true,
		"{base}.{n}":     true,
		"{bogus}":        false,
		"":               false,
		"  ":             false,
		"{base}_{wrong}": false,
	} {
		if got := ValidPattern(pattern); got != want {
			t.Fatalf("pattern %q: expected valid=%v, got %v", pattern, want, got)
		}
	}
}

func TestOutputExt(t *testing.T) {
	cases := map[string]string{
		".jpg":  ".jpg",
		".JPG":  ".jpg",
		".jpeg": ".jpeg",
		".png":  ".png",
		".bmp":  ".bmp",
		".tiff": ".tiff",
		".gif":  ".png", // readable, not writable
		".webp": ".png",
		"":      ".png",
		".xyz":  ".png",
	}
	for in, want := range cases {
		if got := OutputExt(in); got != want {
			t.Fatalf("OutputExt(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestFormatFor(t *testing.T) {
	if f, ok := FormatFor(".JPEG"); !ok || f != imaging.JPEG {
		t.Fatalf("expected JPEG codec, got %v ok=%v", f, ok)
	}
	if _, ok := FormatFor(".webp"); ok {
		t.Fatal("webp must not be writable")
	}
}

func TestIsReadableExt(t *testing.T) {
	for _, ext := range ReadableExts() {
		if !IsReadableExt(ext) {
			t.Fatalf("%s must be readable", ext)
		}
	}
	if IsReadableExt(".txt") || IsReadableExt("") {
		t.Fatal("non-image extensions must not be readable")
	}
	if !IsReadableExt(".PNG") {
		t.Fatal("extension matching must be case-insensitive")
	}
}
