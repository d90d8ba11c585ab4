package patches

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/forest-guardian/cloudmask-training-data/internal/utils"
)

const GroundTruthPrefix = "GT_CM1_"

type FilePair struct {
	NDVI        string
	GroundTruth string
}

// SceneID is the second underscore-delimited token of the file stem.
func SceneID(path string) (string, bool) {
	tokens := strings.Split(utils.Stem(path), "_")
	if len(tokens) < 2 {
		return "", false
	}
	return tokens[1], true
}

// GroundTruthName is the file an NDVI raster is paired with.
func GroundTruthName(ndviPath string) (string, bool) {
	id, ok := SceneID(ndviPath)
	if !ok {
		return "", false
	}
	return GroundTruthPrefix + id + filepath.Ext(ndviPath), true
}

// GetFilePairs pairs NDVI rasters, in name order, with the ground truth sharing
// their scene id. NDVI rasters without a ground truth on disk are dropped.
func GetFilePairs(ndviFolder, gtFolder string) ([]FilePair, error) {
	ndviFiles, err := utils.ListFiles(ndviFolder, utils.RasterExtensions...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ndvi rasters: %w", err)
	}

	pairs := []FilePair{}
	for _, ndviFile := range ndviFiles {
		name, ok := GroundTruthName(ndviFile)
		if !ok {
			continue
		}
		gtFile := filepath.Join(gtFolder, name)
		if utils.FileExists(gtFile) {
			pairs = append(pairs, FilePair{NDVI: ndviFile, GroundTruth: gtFile})
		}
	}
	return pairs, nil
}
