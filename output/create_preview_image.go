package output

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"

	"github.com/fogleman/gg"
	"github.com/forest-guardian/cloudmask-training-data/internal/properties"
	"github.com/forest-guardian/cloudmask-training-data/internal/raster"
)

func normalize(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	norm := (value - min) / (max - min)
	if norm < 0 {
		return 0
	}
	if norm > 1 {
		return 1
	}
	return norm
}

func valueToColor(norm float64) color.RGBA {
	var r, g, b uint8
	if norm <= 0.5 {
		// blue to green
		ratio := norm / 0.5
		g = uint8(255 * ratio)
		b = uint8(255 * (1 - ratio))
	} else {
		// green to red
		ratio := (norm - 0.5) / 0.5
		r = uint8(255 * ratio)
		g = uint8(255 * (1 - ratio))
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// CreateGroundTruthImage renders each class with its properties.ColorMap colour.
// Unknown classes are drawn red.
func CreateGroundTruthImage(mask raster.Grid[uint8], outputPath string) error {
	if !mask.Valid() {
		return fmt.Errorf("cannot render an empty ground truth")
	}
	dc := gg.NewContext(mask.Width, mask.Height)
	for y := range mask.Height {
		for x := range mask.Width {
			clr, ok := properties.ColorMap[mask.At(y, x)]
			if !ok {
				clr = properties.Color{R: 255}
			}
			dc.SetRGB255(int(clr.R), int(clr.G), int(clr.B))
			dc.SetPixel(x, y)
		}
	}
	if err := dc.SavePNG(outputPath); err != nil {
		return fmt.Errorf("failed to save ground truth image: %w", err)
	}
	return nil
}

// CreateNDVIImage colours NDVI from blue (-1) through green to red (1).
func CreateNDVIImage(ndvi raster.Grid[float64], outputPath string) error {
	if !ndvi.Valid() {
		return fmt.Errorf("cannot render an empty ndvi raster")
	}
	newImage := image.NewRGBA(image.Rect(0, 0, ndvi.Width, ndvi.Height))
	for y := range ndvi.Height {
		for x := range ndvi.Width {
			newImage.Set(x, y, valueToColor(normalize(ndvi.At(y, x), -1, 1)))
		}
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create ndvi image: %w", err)
	}
	defer outputFile.Close()

	if err := jpeg.Encode(outputFile, newImage, &jpeg.Options{Quality: 100}); err != nil {
		return fmt.Errorf("failed to encode ndvi image: %w", err)
	}
	return nil
}
