package ui

import (
	"fmt"
	"strings"

	"github.com/forest-guardian/cloudmask-training-data/internal/delivery"
	"github.com/forest-guardian/cloudmask-training-data/internal/notification"
	"github.com/forest-guardian/cloudmask-training-data/internal/patches"
)

// CreateTrainingSet handles the UI for generating patches
func (a *App) CreateTrainingSet() {
	PrintWarning("NDVI rasters named <prefix>_<id>_... are paired with GT_CM1_<id> ground truth rasters.")

	cfg := delivery.DefaultTrainingSetConfig()
	cfg.NDVIFolder = ReadStringWithDefault("Enter the NDVI folder ", cfg.NDVIFolder)
	cfg.GroundTruthFolder = ReadStringWithDefault("Enter the ground truth folder ", cfg.GroundTruthFolder)

	var err error
	if cfg.PatchSize, err = ReadPositiveIntWithDefault("Enter the patch size ", cfg.PatchSize); err != nil {
		PrintError(err.Error())
		return
	}
	if cfg.Stride, err = ReadPositiveIntWithDefault("Enter the stride ", cfg.Stride); err != nil {
		PrintError(err.Error())
		return
	}
	if cfg.ValRatio, err = ReadRatioWithDefault("Enter the validation ratio ", cfg.ValRatio); err != nil {
		PrintError(err.Error())
		return
	}

	a.RunTrainingSet(cfg)
}

// RunTrainingSet generates the patches and reports what was produced
func (a *App) RunTrainingSet(cfg delivery.TrainingSetConfig) bool {
	set, err := delivery.CreateTrainingSet(a.IO, a.Logger, cfg)
	if err != nil {
		PrintError(fmt.Sprintf("creating training set: %s", err.Error()))
		notification.SendDiscordErrorNotification(fmt.Sprintf("Error creating training set: %s", err.Error()))
		return false
	}

	summary := strings.Join([]string{
		fmt.Sprintf("Pairs: %d", set.Pairs),
		describeStats("Train", len(set.Train), set.TrainStats),
		describeStats("Validation", len(set.Validation), set.ValidationStats),
	}, "\n")
	PrintSuccess(summary)
	for _, path := range set.Outputs {
		PrintSuccess("Saved " + path)
	}
	notification.SendDiscordSuccessNotification("Training set created!\n\n" + summary)
	return true
}

func describeStats(name string, samples int, stats patches.ExtractionStats) string {
	return fmt.Sprintf("%s: %d samples from %d pairs (%d windows, %d discarded, %d failed, %d pairs skipped)",
		name, samples, stats.Pairs, stats.Windows, stats.Discarded, stats.PreprocessFailed, stats.PairsSkipped)
}
