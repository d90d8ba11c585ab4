package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFilesFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.tif", "a.TIF", "c.tiff", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.tif"), 0755))

	files, err := ListFiles(dir, RasterExtensions...)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.TIF"),
		filepath.Join(dir, "b.tif"),
		filepath.Join(dir, "c.tiff"),
	}, files)
}

func TestListFilesMissingFolder(t *testing.T) {
	_, err := ListFiles(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestStem(t *testing.T) {
	assert.Equal(t, "CM1_0042", Stem("/data/cm1/CM1_0042.tif"))
	assert.Equal(t, "archive.tar", Stem("archive.tar.gz"))
}

func TestGetSortedKeys(t *testing.T) {
	m := map[int]string{3: "c", 1: "a", 2: "b"}
	assert.Equal(t, []int{1, 2, 3}, GetSortedKeys(m, true))
	assert.Equal(t, []int{3, 2, 1}, GetSortedKeys(m, false))
}
