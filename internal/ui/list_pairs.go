package ui

import (
	"fmt"
	"path/filepath"

	"github.com/forest-guardian/cloudmask-training-data/internal/patches"
	"github.com/forest-guardian/cloudmask-training-data/internal/properties"
)

func (a *App) ListPairs() {
	pairs, err := patches.GetFilePairs(properties.NDVIPath(), properties.GroundTruthPath())
	if err != nil {
		PrintError(err.Error())
		return
	}
	if len(pairs) == 0 {
		PrintWarning("No NDVI raster has a matching ground truth.")
		return
	}

	fmt.Printf("%s\nAvailable pairs:%s\n", ColorGreen, ColorReset)
	for _, pair := range pairs {
		fmt.Printf("%s- %s -> %s%s\n", ColorGreen, filepath.Base(pair.NDVI), filepath.Base(pair.GroundTruth), ColorReset)
	}
}
