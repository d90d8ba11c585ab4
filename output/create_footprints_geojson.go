package output

import (
	"fmt"
	"os"

	"github.com/forest-guardian/cloudmask-training-data/internal/patches"
	"github.com/paulmach/orb/geojson"
)

// FootprintCollection has one polygon per sample. Samples without a
// georeferenced source are left out.
func FootprintCollection(samplesBySplit map[string][]patches.TrainingSample) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, split := range []string{"train", "validation"} {
		for i, sample := range samplesBySplit[split] {
			if sample.Footprint.IsZero() {
				continue
			}
			feature := geojson.NewFeature(sample.Footprint.ToPolygon())
			feature.Properties["split"] = split
			feature.Properties["index"] = i
			feature.Properties["source"] = sample.Source
			feature.Properties["row"] = sample.Row
			feature.Properties["col"] = sample.Col
			feature.Properties["cloud_pixels"] = sample.CloudPixels
			feature.Properties["shadow_pixels"] = sample.ShadowPixels
			fc.Append(feature)
		}
	}
	return fc
}

func CreateFootprintsGeoJson(samplesBySplit map[string][]patches.TrainingSample, outputPath string) error {
	data, err := FootprintCollection(samplesBySplit).MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode footprints: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write footprints: %w", err)
	}
	return nil
}
