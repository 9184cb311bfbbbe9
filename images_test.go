package cbz2pdf

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFiles creates empty files under dir, making parent directories.
func writeFiles(t *testing.T, dir string, names []string) {
	t.Helper()
	for _, name := range names {
		full := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(full, []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
	}
}

func TestIsImagePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"page.jpg", true},
		{"page.JPG", true},
		{"page.jpeg", true},
		{"page.png", true},
		{"page.gif", true},
		{"page.webp", true},
		{"page.bmp", true},
		{"page.tif", true},
		{"page.TIFF", true},
		{"page.txt", false},
		{"page.xml", false},
		{"page", false},
		{"ComicInfo.xml", false},
	}

	for _, tt := range tests {
		if got := IsImagePath(tt.path); got != tt.want {
			t.Errorf("IsImagePath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestListPagesNaturalOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// Written in arbitrary order; page2 must sort before page10.
	writeFiles(t, dir, []string{
		"page10.jpg",
		"page1.jpg",
		"page11.jpg",
		"page2.jpg",
		"page3.jpg",
	})

	pages, err := ListPages(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"page1.jpg", "page2.jpg", "page3.jpg", "page10.jpg", "page11.jpg"}
	if len(pages) != len(want) {
		t.Fatalf("got %d pages, want %d", len(pages), len(want))
	}
	for i, w := range want {
		if filepath.Base(pages[i]) != w {
			t.Errorf("pages[%d] = %q, want %q", i, filepath.Base(pages[i]), w)
		}
	}
}

func TestListPagesFiltersNonImages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, []string{
		"page1.jpg",
		"page2.PNG",
		"ComicInfo.xml",
		"thumbs.db",
	})

	pages, err := ListPages(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 2 {
		t.Errorf("got %d pages, want 2 (jpg and PNG)", len(pages))
	}
}

func TestListPagesRecursesNestedDirs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, []string{
		"issue/page1.jpg",
		"issue/page2.jpg",
		"issue/extras/cover.png",
	})

	pages, err := ListPages(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 3 {
		t.Errorf("got %d pages, want 3", len(pages))
	}
}

func TestListPagesEmptyDir(t *testing.T) {
	t.Parallel()

	pages, err := ListPages(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 0 {
		t.Errorf("got %d pages, want 0", len(pages))
	}
}
