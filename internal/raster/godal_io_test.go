package raster

import (
	"path/filepath"
	"testing"

	"github.com/airbusgeo/godal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGodalIORoundTrip(t *testing.T) {
	rio := NewGodalIO()
	path := filepath.Join(t.TempDir(), "GT_CM1_0001.tif")

	grid, err := GridFromRows([][]uint8{
		{0, 1, 2},
		{2, 1, 0},
	})
	require.NoError(t, err)

	profile := Profile{
		Count:           1,
		DataType:        godal.Byte,
		GeoTransform:    [6]float64{100, 10, 0, 200, 0, -10},
		HasGeoTransform: true,
		NoData:          255,
		HasNoData:       true,
		Compress:        "LZW",
	}
	require.NoError(t, rio.Write(path, grid, profile))

	read, readProfile, err := rio.Open(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 2, 1, 0}, read.Data)
	assert.Equal(t, 3, readProfile.Width)
	assert.Equal(t, 2, readProfile.Height)
	assert.Equal(t, 1, readProfile.Count)
	assert.Equal(t, godal.Byte, readProfile.DataType)
	assert.True(t, readProfile.HasGeoTransform)
	assert.Equal(t, profile.GeoTransform, readProfile.GeoTransform)
	assert.True(t, readProfile.HasNoData)
	assert.Equal(t, 255.0, readProfile.NoData)
}

func TestGodalIOOpenMissingFile(t *testing.T) {
	_, _, err := NewGodalIO().Open(filepath.Join(t.TempDir(), "missing.tif"))
	assert.Error(t, err)
}
