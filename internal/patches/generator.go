package patches

import (
	"fmt"

	"github.com/forest-guardian/cloudmask-training-data/internal/logger"
	"github.com/forest-guardian/cloudmask-training-data/internal/preprocess"
	"github.com/forest-guardian/cloudmask-training-data/internal/raster"
	"github.com/forest-guardian/cloudmask-training-data/internal/utils"
	"github.com/paulmach/orb"
	"github.com/schollz/progressbar/v3"
)

const (
	DefaultPatchSize = 256
	DefaultStride    = 128
)

type TrainingSample struct {
	NDVI         preprocess.SAMInput
	Mask         raster.Grid[uint8]
	Source       string
	Row          int
	Col          int
	CloudPixels  int
	ShadowPixels int
	Footprint    orb.Bound
}

type ExtractionStats struct {
	Pairs            int
	PairsSkipped     int
	Windows          int
	Kept             int
	Discarded        int
	PreprocessFailed int
}

type Generator struct {
	IO       raster.IO
	Logger   *logger.Logger
	Progress bool
}

func NewGenerator(rio raster.IO, log *logger.Logger) *Generator {
	return &Generator{IO: rio, Logger: log, Progress: true}
}

type pairRasters struct {
	ndvi    raster.Grid[float64]
	mask    raster.Grid[uint8]
	profile raster.Profile
}

// GeneratePatches slides a patchSize window with the given stride over every
// pair and returns the preprocessed samples that pass KeepPatch, ordered by
// pair, then row, then column. Unreadable pairs and patches that fail
// preprocessing are skipped.
func (g *Generator) GeneratePatches(pairs []FilePair, preprocessor *preprocess.Preprocessor, patchSize, stride int) ([]TrainingSample, ExtractionStats, error) {
	stats := ExtractionStats{Pairs: len(pairs)}
	if err := validateWindow(patchSize, stride); err != nil {
		return nil, stats, err
	}

	var progressBar *progressbar.ProgressBar
	if g.Progress {
		progressBar = progressbar.Default(int64(len(pairs)), "Generating patches")
		defer progressBar.Finish()
	}

	samples := []TrainingSample{}
	for _, pair := range pairs {
		rasters, err := g.readPair(pair)
		if err != nil {
			g.Logger.Warn("Skipping pair", "ndvi", pair.NDVI, "ground_truth", pair.GroundTruth, "error", err)
			stats.PairsSkipped++
		} else {
			samples = append(samples, g.extract(rasters, utils.Stem(pair.NDVI), preprocessor, patchSize, stride, &stats)...)
		}
		if progressBar != nil {
			progressBar.Add(1)
		}
	}

	g.Logger.Info("Patch extraction finished",
		"pairs", stats.Pairs,
		"pairs_skipped", stats.PairsSkipped,
		"windows", stats.Windows,
		"kept", stats.Kept,
		"discarded", stats.Discarded,
		"preprocess_failed", stats.PreprocessFailed,
	)
	return samples, stats, nil
}

func (g *Generator) readPair(pair FilePair) (pairRasters, error) {
	ndvi, profile, err := g.IO.Open(pair.NDVI)
	if err != nil {
		return pairRasters{}, err
	}
	gt, _, err := g.IO.Open(pair.GroundTruth)
	if err != nil {
		return pairRasters{}, err
	}
	if ndvi.Width != gt.Width || ndvi.Height != gt.Height {
		return pairRasters{}, fmt.Errorf("ndvi is %dx%d but ground truth is %dx%d", ndvi.Height, ndvi.Width, gt.Height, gt.Width)
	}
	return pairRasters{ndvi: ndvi, mask: raster.ToMask(gt), profile: profile}, nil
}

func (g *Generator) extract(rasters pairRasters, source string, preprocessor *preprocess.Preprocessor, patchSize, stride int, stats *ExtractionStats) []TrainingSample {
	samples := []TrainingSample{}
	for _, row := range GridOffsets(rasters.ndvi.Height, patchSize, stride) {
		for _, col := range GridOffsets(rasters.ndvi.Width, patchSize, stride) {
			stats.Windows++

			// GridOffsets keeps every window inside the raster.
			maskPatch, _ := rasters.mask.Window(row, col, patchSize, patchSize)
			counts := CountMask(maskPatch)
			if !KeepPatch(counts) {
				stats.Discarded++
				continue
			}

			ndviPatch, _ := rasters.ndvi.Window(row, col, patchSize, patchSize)
			processed, err := preprocessor.PreprocessArray(ndviPatch, true)
			if err != nil {
				stats.PreprocessFailed++
				continue
			}

			stats.Kept++
			samples = append(samples, TrainingSample{
				NDVI:         processed.SAMInput,
				Mask:         maskPatch,
				Source:       source,
				Row:          row,
				Col:          col,
				CloudPixels:  counts.Cloud,
				ShadowPixels: counts.Shadow,
				Footprint:    raster.WindowBounds(rasters.profile, row, col, patchSize, patchSize),
			})
		}
	}
	return samples
}
