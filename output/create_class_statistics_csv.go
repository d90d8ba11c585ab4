package output

import (
	"fmt"
	"os"

	"github.com/forest-guardian/cloudmask-training-data/internal/groundtruth"
	"github.com/forest-guardian/cloudmask-training-data/internal/utils"
	"github.com/gocarina/gocsv"
)

type ClassStatisticsRow struct {
	Stage      string  `csv:"stage"`
	Class      int     `csv:"class"`
	Pixels     int64   `csv:"pixels"`
	Percentage float64 `csv:"percentage"`
}

func ClassStatisticsRows(stats groundtruth.Statistics) []*ClassStatisticsRow {
	rows := []*ClassStatisticsRow{}
	originalPct := stats.OriginalPercentages()
	for _, class := range utils.GetSortedKeys(stats.Original, true) {
		rows = append(rows, &ClassStatisticsRow{Stage: "original", Class: class, Pixels: stats.Original[class], Percentage: originalPct[class]})
	}
	remappedPct := stats.RemappedPercentages()
	for _, class := range utils.GetSortedKeys(stats.Remapped, true) {
		rows = append(rows, &ClassStatisticsRow{Stage: "remapped", Class: class, Pixels: stats.Remapped[class], Percentage: remappedPct[class]})
	}
	return rows
}

func CreateClassStatisticsCSV(stats groundtruth.Statistics, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create class statistics file: %w", err)
	}
	defer file.Close()

	rows := ClassStatisticsRows(stats)
	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("failed to write class statistics: %w", err)
	}
	return nil
}
