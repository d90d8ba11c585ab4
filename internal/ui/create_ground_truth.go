package ui

import (
	"fmt"

	"github.com/forest-guardian/cloudmask-training-data/internal/delivery"
	"github.com/forest-guardian/cloudmask-training-data/internal/groundtruth"
	"github.com/forest-guardian/cloudmask-training-data/internal/notification"
	"github.com/forest-guardian/cloudmask-training-data/internal/properties"
	"github.com/forest-guardian/cloudmask-training-data/internal/utils"
)

// CreateGroundTruth handles the UI for converting CM1 masks
func (a *App) CreateGroundTruth() {
	PrintWarning("CM1 masks are read from the input folder and GT_<name> rasters are written to the output folder.")

	cm1Folder := ReadStringWithDefault("Enter the CM1 mask folder ", properties.CM1Path())
	gtFolder := ReadStringWithDefault("Enter the ground truth output folder ", properties.GroundTruthPath())

	a.RunGroundTruth(cm1Folder, gtFolder)
}

// RunGroundTruth converts the masks and prints the class distributions
func (a *App) RunGroundTruth(cm1Folder, gtFolder string) bool {
	result, err := delivery.CreateGroundTruth(a.IO, a.Logger, delivery.GroundTruthConfig{
		CM1Folder:         cm1Folder,
		GroundTruthFolder: gtFolder,
		ResultFolder:      properties.ResultPath(),
		Workers:           properties.RemapWorkers(),
	})
	if err != nil {
		PrintError(fmt.Sprintf("creating ground truth: %s", err.Error()))
		notification.SendDiscordErrorNotification(fmt.Sprintf("Error creating ground truth: %s", err.Error()))
		return false
	}

	PrintDistribution(result.Statistics)
	if result.Failed > 0 {
		PrintWarning(fmt.Sprintf("%d of %d masks could not be converted, see the log for details.", result.Failed, len(result.Files)))
	}
	PrintSuccess(fmt.Sprintf("Converted %d of %d masks into %s", len(result.Files)-result.Failed, len(result.Files), gtFolder))
	if result.ReportPath != "" {
		PrintSuccess("Class statistics saved at " + result.ReportPath)
	}
	notification.SendDiscordSuccessNotification(fmt.Sprintf("Ground truth created!\nFolder: %s\nFiles: %d (skipped %d)", gtFolder, len(result.Files), result.Failed))
	return true
}

func PrintDistribution(stats groundtruth.Statistics) {
	fmt.Println("Original Class Distribution:")
	originalPct := stats.OriginalPercentages()
	for _, class := range utils.GetSortedKeys(stats.Original, true) {
		fmt.Printf("  Class %d: %d pixels (%.1f%%)\n", class, stats.Original[class], originalPct[class])
	}

	fmt.Println("New Class Distribution:")
	remappedPct := stats.RemappedPercentages()
	for _, class := range utils.GetSortedKeys(stats.Remapped, true) {
		fmt.Printf("  Class %d (%s): %d pixels (%.1f%%)\n", class, properties.ClassNames[uint8(class)], stats.Remapped[class], remappedPct[class])
	}
}
