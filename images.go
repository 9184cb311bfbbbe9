package cbz2pdf

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// Recognized raster image extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// IsImagePath reports whether path carries a recognized raster image
// extension, compared case-insensitively.
func IsImagePath(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// ListPages collects recognized image files under dir (recursively, since
// archives may nest pages in a folder) and orders them with a natural sort:
// embedded numeric runs compare by value, so page2 precedes page10. Archives
// do not guarantee entry order, so page order depends entirely on this sort.
func ListPages(dir string) ([]string, error) {
	var pages []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if IsImagePath(path) {
			pages = append(pages, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(pages, func(i, j int) bool {
		return natural.Less(pages[i], pages[j])
	})
	return pages, nil
}
