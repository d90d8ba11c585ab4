package utils

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var RasterExtensions = []string{".tif", ".tiff"}

// ListFiles returns the regular files in folder whose extension matches one of
// exts (case-insensitive), sorted by name.
func ListFiles(folder string, exts ...string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", folder, err)
	}

	files := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if len(exts) > 0 && !slices.Contains(exts, ext) {
			continue
		}
		files = append(files, filepath.Join(folder, entry.Name()))
	}
	slices.Sort(files)
	return files, nil
}

// Stem is the file name without directory and extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func GetSortedKeys[K cmp.Ordered, V any](m map[K]V, asc bool) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b K) int {
		if asc {
			return cmp.Compare(a, b)
		}
		return cmp.Compare(b, a)
	})
	return keys
}
