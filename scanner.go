package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// isSupportedExt reports whether the file is one the viewer can display,
// judged by extension only (case-insensitive).
func isSupportedExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".bmp", ".gif", ".ico":
		return true
	default:
		return false
	}
}

// ScanDirectory lists the viewable image files directly inside dir
// (non-recursive) and orders them with the given strategy. Unreadable or
// unsupported entries are skipped; only a failure to list the directory
// itself is an error.
func ScanDirectory(dir string, strategy SortStrategy) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDirectoryUnreadable, dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isSupportedExt(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	return strategy.Sort(paths), nil
}
