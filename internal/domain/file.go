package domain

import (
	"path/filepath"
	"sort"
	"strings"
)

// File describes one discovered image. RelDir is the directory of the file
// relative to the scan root, "" when the file sits directly under the root.
// AbsPath is always join(root, RelDir, Name). Files are immutable once
// produced by a scan.
type File struct {
	Name    string
	RelDir  string
	AbsPath string
}

// RelPath is the path of the file relative to the scan root.
func (file File) RelPath() string {
	if file.RelDir == "" {
		return file.Name
	}
	return filepath.Join(file.RelDir, file.Name)
}

var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".bmp":  {},
	".webp": {},
}

// IsImageName reports whether the leaf name carries a supported image
// extension. The comparison is case-insensitive.
func IsImageName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	_, ok := imageExtensions[ext]
	return ok
}

// ImageExtensions returns the supported extension set in sorted order.
func ImageExtensions() []string {
	exts := make([]string, 0, len(imageExtensions))
	for ext := range imageExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
