package delivery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/forest-guardian/cloudmask-training-data/internal/groundtruth"
	"github.com/forest-guardian/cloudmask-training-data/internal/logger"
	"github.com/forest-guardian/cloudmask-training-data/internal/notification"
	"github.com/forest-guardian/cloudmask-training-data/internal/raster"
	"github.com/forest-guardian/cloudmask-training-data/output"
)

const ClassStatisticsFileName = "class_statistics.csv"

type GroundTruthConfig struct {
	CM1Folder         string
	GroundTruthFolder string
	ResultFolder      string
	Workers           int
}

type GroundTruthResult struct {
	Statistics groundtruth.Statistics
	Files      []groundtruth.FileResult
	Failed     int
	ReportPath string
}

// CreateGroundTruth converts every CM1 mask and writes the class statistics
// report into the result folder when one is configured.
func CreateGroundTruth(rio raster.IO, log *logger.Logger, cfg GroundTruthConfig) (*GroundTruthResult, error) {
	converter := groundtruth.NewConverter(rio, log)
	converter.Workers = cfg.Workers

	stats, files, err := converter.Convert(cfg.CM1Folder, cfg.GroundTruthFolder)
	if err != nil {
		return nil, fmt.Errorf("error converting masks: %w", err)
	}

	result := &GroundTruthResult{Statistics: stats, Files: files}
	for _, file := range files {
		if file.Err != nil {
			result.Failed++
		}
	}

	if cfg.ResultFolder != "" {
		if err := os.MkdirAll(cfg.ResultFolder, os.ModePerm); err != nil {
			return result, fmt.Errorf("failed to create result folder: %w", err)
		}
		result.ReportPath = filepath.Join(cfg.ResultFolder, ClassStatisticsFileName)
		if err := output.CreateClassStatisticsCSV(stats, result.ReportPath); err != nil {
			return result, err
		}
	}

	if result.Failed > 0 {
		log.Warn("Some masks were skipped", "failed", result.Failed, "files", len(files))
		message := fmt.Sprintf("Ground truth conversion completed with %d of %d files skipped.", result.Failed, len(files))
		if err := notification.SendDiscordWarnNotification(message); err != nil {
			log.Warn("Failed to send notification", "error", err)
		}
	}
	log.Info("Ground truth conversion finished", "files", len(files), "failed", result.Failed, "output", cfg.GroundTruthFolder)
	return result, nil
}
