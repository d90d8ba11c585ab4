package output

import (
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/forest-guardian/cloudmask-training-data/internal/groundtruth"
	"github.com/forest-guardian/cloudmask-training-data/internal/patches"
	"github.com/forest-guardian/cloudmask-training-data/internal/preprocess"
	"github.com/forest-guardian/cloudmask-training-data/internal/raster"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(source string, row, col int, values ...float64) patches.TrainingSample {
	grid := raster.Grid[float64]{Width: len(values), Height: 1, Data: values}
	return patches.TrainingSample{
		NDVI:        preprocess.ConvertToSAMFormat(grid),
		Mask:        raster.NewGrid[uint8](len(values), 1),
		Source:      source,
		Row:         row,
		Col:         col,
		CloudPixels: 3,
	}
}

func TestCreateClassStatisticsCSV(t *testing.T) {
	stats := groundtruth.NewStatistics()
	stats.Add(groundtruth.Histogram{Original: [4]int64{0, 0, 0, 16}, Remapped: [3]int64{0, 0, 16}})

	path := filepath.Join(t.TempDir(), "class_statistics.csv")
	require.NoError(t, CreateClassStatisticsCSV(stats, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "stage,class,pixels,percentage", lines[0])
	assert.Equal(t, "original,3,16,100", lines[4])
	assert.Equal(t, "remapped,2,16,100", lines[7])
}

func TestCreatePatchManifestCSV(t *testing.T) {
	samples := []patches.TrainingSample{
		sample("NDVI_0001", 0, 128, 0.25, 0.75),
		sample("NDVI_0002", 128, 0, 0.5, 0.5),
	}
	rows := ManifestRows(samples, "train")
	require.Len(t, rows, 2)
	assert.Equal(t, 0.5, rows[0].NDVIMean)
	assert.InDelta(t, 0.353553, rows[0].NDVIStd, 1e-6)
	assert.Equal(t, 1, rows[1].Index)

	path := filepath.Join(t.TempDir(), "train_manifest.csv")
	require.NoError(t, CreatePatchManifestCSV(samples, "train", path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "0,train,NDVI_0001,0,128,3,0,"))
}

func TestFootprintCollection(t *testing.T) {
	georeferenced := sample("NDVI_0001", 0, 0, 0.5)
	georeferenced.Footprint = orb.Bound{Min: orb.Point{10, 20}, Max: orb.Point{30, 40}}
	plain := sample("NDVI_0002", 0, 0, 0.5)

	path := filepath.Join(t.TempDir(), "footprints.geojson")
	require.NoError(t, CreateFootprintsGeoJson(map[string][]patches.TrainingSample{
		"train":      {georeferenced, plain},
		"validation": {georeferenced},
	}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded struct {
		Features []struct {
			Geometry   struct{ Type string }
			Properties map[string]interface{}
		}
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Features, 2)
	assert.Equal(t, "Polygon", decoded.Features[0].Geometry.Type)
	assert.Equal(t, "train", decoded.Features[0].Properties["split"])
	assert.Equal(t, "validation", decoded.Features[1].Properties["split"])
}

func TestCreateGroundTruthImage(t *testing.T) {
	mask, err := raster.GridFromRows([][]uint8{{0, 1}, {2, 7}})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "gt.png")
	require.NoError(t, CreateGroundTruthImage(mask, path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())

	r, g, b, _ := img.At(1, 0).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
	r, g, b, _ = img.At(1, 1).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0}, []uint32{r, g, b})

	assert.Error(t, CreateGroundTruthImage(raster.Grid[uint8]{}, path))
}

func TestCreateNDVIImage(t *testing.T) {
	ndvi, err := raster.GridFromRows([][]float64{{-1, 0, 1}})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "ndvi.jpeg")
	require.NoError(t, CreateNDVIImage(ndvi, path))
	assert.FileExists(t, path)
}

func TestValueToColor(t *testing.T) {
	assert.Equal(t, uint8(255), valueToColor(0).B)
	assert.Equal(t, uint8(255), valueToColor(0.5).G)
	assert.Equal(t, uint8(255), valueToColor(1).R)
	assert.Equal(t, 0.5, normalize(0, -1, 1))
	assert.Equal(t, 0.0, normalize(3, 1, 1))
}
