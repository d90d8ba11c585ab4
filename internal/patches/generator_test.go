package patches

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/forest-guardian/cloudmask-training-data/internal/logger"
	"github.com/forest-guardian/cloudmask-training-data/internal/preprocess"
	"github.com/forest-guardian/cloudmask-training-data/internal/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identitySource keeps every augmentation draw in the identity bin.
type identitySource struct{}

func (identitySource) Uint64() uint64 {
	return 9 * (1 << 53) / 10
}

func identityPreprocessor() *preprocess.Preprocessor {
	return preprocess.NewPreprocessor(rand.New(identitySource{}))
}

func newTestGenerator(rio raster.IO) *Generator {
	g := NewGenerator(rio, logger.NewNop())
	g.Progress = false
	return g
}

func rampNDVI(width, height int) raster.Grid[float64] {
	grid := raster.NewGrid[float64](width, height)
	for i := range grid.Data {
		grid.Data[i] = float64(i%5)/2 - 1
	}
	return grid
}

func TestGeneratePatchesKeepsInformativeWindows(t *testing.T) {
	rio := raster.NewMemoryIO()
	gt := raster.NewGrid[float64](6, 6)
	gt.Set(0, 0, 1)
	rio.Put("NDVI_0001_S2.tif", rampNDVI(6, 6), raster.Profile{
		GeoTransform:    [6]float64{0, 1, 0, 60, 0, -1},
		HasGeoTransform: true,
	})
	rio.Put("GT_CM1_0001.tif", gt, raster.Profile{})

	pairs := []FilePair{{NDVI: "NDVI_0001_S2.tif", GroundTruth: "GT_CM1_0001.tif"}}
	samples, stats, err := newTestGenerator(rio).GeneratePatches(pairs, identityPreprocessor(), 4, 2)
	require.NoError(t, err)

	assert.Equal(t, ExtractionStats{Pairs: 1, Windows: 4, Kept: 1, Discarded: 3}, stats)
	require.Len(t, samples, 1)

	sample := samples[0]
	assert.Equal(t, "NDVI_0001_S2", sample.Source)
	assert.Equal(t, 0, sample.Row)
	assert.Equal(t, 0, sample.Col)
	assert.Equal(t, 1, sample.CloudPixels)
	assert.Equal(t, 0, sample.ShadowPixels)
	assert.Equal(t, uint8(1), sample.Mask.At(0, 0))
	assert.Equal(t, 4, sample.Mask.Width)

	assert.Equal(t, 3, sample.NDVI.Channels)
	assert.Equal(t, 4, sample.NDVI.Height)
	assert.Equal(t, 4, sample.NDVI.Width)
	// ramp value -1 normalizes to 0, 1 to 1.
	assert.Equal(t, float32(0), sample.NDVI.At(2, 0, 0))
	assert.Equal(t, float32(0.25), sample.NDVI.At(0, 0, 1))
	assert.Equal(t, float32(1), sample.NDVI.At(1, 1, 3))

	assert.Equal(t, 0.0, sample.Footprint.Min[0])
	assert.Equal(t, 4.0, sample.Footprint.Max[0])
	assert.Equal(t, 56.0, sample.Footprint.Min[1])
	assert.Equal(t, 60.0, sample.Footprint.Max[1])
}

func TestGeneratePatchesOrder(t *testing.T) {
	rio := raster.NewMemoryIO()
	cloudy := raster.NewGrid[float64](5, 5)
	for i := range cloudy.Data {
		cloudy.Data[i] = 1
	}
	for _, id := range []string{"0001", "0002"} {
		rio.Put("NDVI_"+id+".tif", rampNDVI(5, 5), raster.Profile{})
		rio.Put("GT_CM1_"+id+".tif", cloudy, raster.Profile{})
	}
	pairs := []FilePair{
		{NDVI: "NDVI_0002.tif", GroundTruth: "GT_CM1_0002.tif"},
		{NDVI: "NDVI_0001.tif", GroundTruth: "GT_CM1_0001.tif"},
	}

	samples, stats, err := newTestGenerator(rio).GeneratePatches(pairs, identityPreprocessor(), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 8, stats.Kept)

	type position struct {
		source   string
		row, col int
	}
	got := []position{}
	for _, s := range samples {
		got = append(got, position{s.Source, s.Row, s.Col})
	}
	assert.Equal(t, []position{
		{"NDVI_0002", 0, 0}, {"NDVI_0002", 0, 2}, {"NDVI_0002", 2, 0}, {"NDVI_0002", 2, 2},
		{"NDVI_0001", 0, 0}, {"NDVI_0001", 0, 2}, {"NDVI_0001", 2, 0}, {"NDVI_0001", 2, 2},
	}, got)
}

func TestGeneratePatchesAccountsForEveryWindow(t *testing.T) {
	rio := raster.NewMemoryIO()
	gt := raster.NewGrid[float64](7, 9)
	for col := range 7 {
		gt.Set(0, col, 2)
	}
	rio.Put("NDVI_0001.tif", rampNDVI(7, 9), raster.Profile{})
	rio.Put("GT_CM1_0001.tif", gt, raster.Profile{})

	pairs := []FilePair{{NDVI: "NDVI_0001.tif", GroundTruth: "GT_CM1_0001.tif"}}
	samples, stats, err := newTestGenerator(rio).GeneratePatches(pairs, identityPreprocessor(), 4, 2)
	require.NoError(t, err)

	// rows 0, 2, 4 and cols 0, 2; only the top row of windows sees shadow.
	assert.Equal(t, 6, stats.Windows)
	assert.Equal(t, stats.Windows, stats.Kept+stats.Discarded+stats.PreprocessFailed)
	assert.Zero(t, stats.PreprocessFailed)
	assert.Equal(t, 2, stats.Kept)
	assert.Len(t, samples, stats.Kept)
}

func TestGeneratePatchesSkipsBadPairs(t *testing.T) {
	rio := raster.NewMemoryIO()
	rio.Put("NDVI_0001.tif", rampNDVI(4, 4), raster.Profile{})
	rio.Put("GT_CM1_0001.tif", raster.NewGrid[float64](3, 4), raster.Profile{})
	rio.Put("NDVI_0002.tif", rampNDVI(4, 4), raster.Profile{})
	rio.Fail("GT_CM1_0002.tif", errors.New("truncated file"))

	pairs := []FilePair{
		{NDVI: "NDVI_0001.tif", GroundTruth: "GT_CM1_0001.tif"},
		{NDVI: "NDVI_0002.tif", GroundTruth: "GT_CM1_0002.tif"},
	}
	samples, stats, err := newTestGenerator(rio).GeneratePatches(pairs, identityPreprocessor(), 2, 2)
	require.NoError(t, err)
	assert.Empty(t, samples)
	assert.Equal(t, 2, stats.PairsSkipped)
}

func TestGeneratePatchesRejectsInvalidWindow(t *testing.T) {
	_, _, err := newTestGenerator(raster.NewMemoryIO()).GeneratePatches(nil, identityPreprocessor(), 0, 128)
	assert.ErrorIs(t, err, ErrInvalidWindow)
	_, _, err = newTestGenerator(raster.NewMemoryIO()).GeneratePatches(nil, identityPreprocessor(), 256, 0)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestGeneratePatchesSmallerThanPatch(t *testing.T) {
	rio := raster.NewMemoryIO()
	rio.Put("NDVI_0001.tif", rampNDVI(3, 3), raster.Profile{})
	rio.Put("GT_CM1_0001.tif", raster.NewGrid[float64](3, 3), raster.Profile{})

	samples, stats, err := newTestGenerator(rio).GeneratePatches(
		[]FilePair{{NDVI: "NDVI_0001.tif", GroundTruth: "GT_CM1_0001.tif"}}, identityPreprocessor(), 4, 2)
	require.NoError(t, err)
	assert.Empty(t, samples)
	assert.Zero(t, stats.Windows)
}
