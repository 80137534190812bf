package file

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FindRecentAfter walks dir and returns every regular file modified after
// startTime.
func FindRecentAfter(dir string, startTime time.Time) ([]string, error) {
	var recentFiles []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo,
		err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && info.ModTime().After(startTime) {
			recentFiles = append(recentFiles, path)
		}
		return nil
	})

	return recentFiles, err
}

// FilterByExt keeps only paths with the given extension (case-insensitive,
// including the dot).
func FilterByExt(paths []string, ext string) []string {
	ext = strings.ToLower(ext)
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if strings.ToLower(filepath.Ext(p)) == ext {
			out = append(out, p)
		}
	}
	return out
}
