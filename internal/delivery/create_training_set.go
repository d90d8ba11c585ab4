package delivery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/forest-guardian/cloudmask-training-data/internal/logger"
	"github.com/forest-guardian/cloudmask-training-data/internal/patches"
	"github.com/forest-guardian/cloudmask-training-data/internal/preprocess"
	"github.com/forest-guardian/cloudmask-training-data/internal/properties"
	"github.com/forest-guardian/cloudmask-training-data/internal/raster"
	"github.com/forest-guardian/cloudmask-training-data/output"
)

const (
	TrainManifestFileName      = "train_manifest.csv"
	ValidationManifestFileName = "val_manifest.csv"
	FootprintsFileName         = "patch_footprints.geojson"
)

type TrainingSetConfig struct {
	NDVIFolder        string
	GroundTruthFolder string
	ResultFolder      string
	PatchSize         int
	Stride            int
	ValRatio          float64
	Seed              int64
	Preprocessor      *preprocess.Preprocessor
	Progress          bool
}

// DefaultTrainingSetConfig reads folders and parameters from properties.
func DefaultTrainingSetConfig() TrainingSetConfig {
	preprocessor := preprocess.NewPreprocessor(nil)
	if seed, ok := properties.AugmentSeed(); ok {
		preprocessor = preprocess.NewSeededPreprocessor(seed)
	}
	return TrainingSetConfig{
		NDVIFolder:        properties.NDVIPath(),
		GroundTruthFolder: properties.GroundTruthPath(),
		ResultFolder:      properties.ResultPath(),
		PatchSize:         properties.PatchSize(),
		Stride:            properties.PatchStride(),
		ValRatio:          properties.ValRatio(),
		Seed:              properties.SplitSeed(),
		Preprocessor:      preprocessor,
		Progress:          true,
	}
}

type TrainingSet struct {
	Pairs           int
	Train           []patches.TrainingSample
	Validation      []patches.TrainingSample
	TrainStats      patches.ExtractionStats
	ValidationStats patches.ExtractionStats
	Outputs         []string
}

// CreateTrainingSet pairs, splits and tiles the rasters, then writes the
// manifests and footprints into the result folder when one is configured.
func CreateTrainingSet(rio raster.IO, log *logger.Logger, cfg TrainingSetConfig) (*TrainingSet, error) {
	pairs, err := patches.GetFilePairs(cfg.NDVIFolder, cfg.GroundTruthFolder)
	if err != nil {
		return nil, err
	}
	log.Info("Paired rasters", "pairs", len(pairs), "ndvi", cfg.NDVIFolder, "ground_truth", cfg.GroundTruthFolder)

	trainPairs, valPairs, err := patches.CreateTrainValSplit(pairs, cfg.ValRatio, cfg.Seed)
	if err != nil {
		return nil, err
	}

	generator := patches.NewGenerator(rio, log)
	generator.Progress = cfg.Progress

	set := &TrainingSet{Pairs: len(pairs)}
	set.Train, set.TrainStats, err = generator.GeneratePatches(trainPairs, cfg.Preprocessor, cfg.PatchSize, cfg.Stride)
	if err != nil {
		return nil, fmt.Errorf("error generating training patches: %w", err)
	}
	set.Validation, set.ValidationStats, err = generator.GeneratePatches(valPairs, cfg.Preprocessor, cfg.PatchSize, cfg.Stride)
	if err != nil {
		return nil, fmt.Errorf("error generating validation patches: %w", err)
	}

	if cfg.ResultFolder == "" {
		return set, nil
	}
	if err := os.MkdirAll(cfg.ResultFolder, os.ModePerm); err != nil {
		return set, fmt.Errorf("failed to create result folder: %w", err)
	}

	trainManifest := filepath.Join(cfg.ResultFolder, TrainManifestFileName)
	if err := output.CreatePatchManifestCSV(set.Train, "train", trainManifest); err != nil {
		return set, err
	}
	valManifest := filepath.Join(cfg.ResultFolder, ValidationManifestFileName)
	if err := output.CreatePatchManifestCSV(set.Validation, "validation", valManifest); err != nil {
		return set, err
	}
	footprints := filepath.Join(cfg.ResultFolder, FootprintsFileName)
	if err := output.CreateFootprintsGeoJson(map[string][]patches.TrainingSample{
		"train":      set.Train,
		"validation": set.Validation,
	}, footprints); err != nil {
		return set, err
	}
	set.Outputs = []string{trainManifest, valManifest, footprints}

	return set, nil
}
