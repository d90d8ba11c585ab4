package output

import (
	"fmt"
	"os"

	"github.com/forest-guardian/cloudmask-training-data/internal/patches"
	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"
)

type ManifestRow struct {
	Index        int     `csv:"index"`
	Split        string  `csv:"split"`
	Source       string  `csv:"source"`
	Row          int     `csv:"row"`
	Col          int     `csv:"col"`
	CloudPixels  int     `csv:"cloud_pixels"`
	ShadowPixels int     `csv:"shadow_pixels"`
	NDVIMean     float64 `csv:"ndvi_mean"`
	NDVIStd      float64 `csv:"ndvi_std"`
}

func ManifestRows(samples []patches.TrainingSample, split string) []*ManifestRow {
	rows := make([]*ManifestRow, 0, len(samples))
	for i, sample := range samples {
		channel := sample.NDVI.Channel(0)
		values := make([]float64, len(channel))
		for j, v := range channel {
			values[j] = float64(v)
		}
		mean, std := stat.MeanStdDev(values, nil)
		rows = append(rows, &ManifestRow{
			Index:        i,
			Split:        split,
			Source:       sample.Source,
			Row:          sample.Row,
			Col:          sample.Col,
			CloudPixels:  sample.CloudPixels,
			ShadowPixels: sample.ShadowPixels,
			NDVIMean:     mean,
			NDVIStd:      std,
		})
	}
	return rows
}

// CreatePatchManifestCSV writes one row per sample in sample order.
func CreatePatchManifestCSV(samples []patches.TrainingSample, split, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create manifest file: %w", err)
	}
	defer file.Close()

	rows := ManifestRows(samples, split)
	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
