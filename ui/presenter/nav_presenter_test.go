package presenter

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"cropstudio/domain/export"
	"cropstudio/ui/model"
)

// touch creates an empty file; image decoding is mocked, only Stat matters.
func touch(t *testing.T, path string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte{0}, 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
	return path
}

func listByExt(path string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && export.IsReadableExt(filepath.Ext(e.Name())) {
			files = append(files, filepath.Join(filepath.Dir(path), e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

type navFixture struct {
	p       *NavPresenter
	doc     *model.DocumentModel
	browser *model.BrowserModel
	store   *mockStore
	view    *mockAppView
	dir     string
	opened  string
}

func newNavFixture(t *testing.T) *navFixture {
	t.Helper()
	f := &navFixture{
		dir:     t.TempDir(),
		doc:     &model.DocumentModel{},
		browser: &model.BrowserModel{},
		store:   newMockStore(),
		view:    &mockAppView{},
	}
	f.p = NewNavPresenter(f.doc, f.browser, f.store, f.view, testLogger(),
		func() (int, int) { return 500, 400 },
		listByExt,
		func(path string) { f.opened = path })
	return f
}

func TestNavPresenter_OpenPath(t *testing.T) {
	f := newNavFixture(t)
	a := touch(t, filepath.Join(f.dir, "a.png"))
	b := touch(t, filepath.Join(f.dir, "b.png"))
	c := touch(t, filepath.Join(f.dir, "c.png"))
	touch(t, filepath.Join(f.dir, "notes.txt"))
	f.store.put(a, 1000, 800)
	f.store.put(b, 640, 480)
	f.store.put(c, 640, 480)

	if err := f.p.OpenPath(b); err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	if f.doc.Path() != b {
		t.Fatalf("doc path %q", f.doc.Path())
	}
	if w, h := f.doc.ImageSize(); w != 640 || h != 480 {
		t.Fatalf("doc size %dx%d", w, h)
	}
	if pos, n := f.browser.Position(); pos != 2 || n != 3 {
		t.Fatalf("browser position %d/%d", pos, n)
	}
	if len(f.store.prefetch) != 2 {
		t.Fatalf("prefetch %v, want both neighbors", f.store.prefetch)
	}
	if f.view.renders != 1 || f.view.infos != 1 {
		t.Fatalf("view calls: renders=%d infos=%d", f.view.renders, f.view.infos)
	}
	if got := f.view.lastStatus(); got != "b.png (2/3)" {
		t.Fatalf("status %q", got)
	}
	if f.opened != b {
		t.Fatalf("opened callback got %q", f.opened)
	}
}

func TestNavPresenter_OpenUnsupportedExtension(t *testing.T) {
	f := newNavFixture(t)
	path := touch(t, filepath.Join(f.dir, "notes.txt"))

	if err := f.p.OpenPath(path); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if f.doc.HasImage() {
		t.Fatal("document changed on failed open")
	}
}

func TestNavPresenter_OpenMissingFile(t *testing.T) {
	f := newNavFixture(t)
	if err := f.p.OpenPath(filepath.Join(f.dir, "gone.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if f.doc.HasImage() {
		t.Fatal("document changed on failed open")
	}
}

func TestNavPresenter_DecodeFailureKeepsDocument(t *testing.T) {
	f := newNavFixture(t)
	a := touch(t, filepath.Join(f.dir, "a.png"))
	broken := touch(t, filepath.Join(f.dir, "b.png"))
	f.store.put(a, 100, 100)
	// b.png exists on disk but the store has no decode for it.

	if err := f.p.OpenPath(a); err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	if err := f.p.OpenPath(broken); err == nil {
		t.Fatal("expected decode error")
	}
	if f.doc.Path() != a {
		t.Fatalf("document switched to broken file: %q", f.doc.Path())
	}
}

func TestNavPresenter_NextPrevWrap(t *testing.T) {
	f := newNavFixture(t)
	a := touch(t, filepath.Join(f.dir, "a.png"))
	b := touch(t, filepath.Join(f.dir, "b.png"))
	f.store.put(a, 100, 100)
	f.store.put(b, 100, 100)

	if err := f.p.OpenPath(b); err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	f.p.NextImage()
	if f.doc.Path() != a {
		t.Fatalf("NextImage wrapped to %q, want %q", f.doc.Path(), a)
	}
	f.p.PrevImage()
	if f.doc.Path() != b {
		t.Fatalf("PrevImage moved to %q, want %q", f.doc.Path(), b)
	}
}

func TestNavPresenter_NavigationNoopWithSingleFile(t *testing.T) {
	f := newNavFixture(t)
	a := touch(t, filepath.Join(f.dir, "a.png"))
	f.store.put(a, 100, 100)

	if err := f.p.OpenPath(a); err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	renders := f.view.renders
	f.p.NextImage()
	f.p.PrevImage()
	if f.view.renders != renders {
		t.Fatal("navigation re-rendered with a single file")
	}
	if f.doc.Path() != a {
		t.Fatalf("path changed: %q", f.doc.Path())
	}
}
