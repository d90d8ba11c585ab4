package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/forest-guardian/cloudmask-training-data/internal/groundtruth"
	"github.com/forest-guardian/cloudmask-training-data/internal/properties"
	"github.com/forest-guardian/cloudmask-training-data/internal/raster"
	"github.com/forest-guardian/cloudmask-training-data/internal/utils"
	"github.com/forest-guardian/cloudmask-training-data/output"
)

// RenderPreview draws a ground truth (GT_ prefix) as a class map and anything
// else as an NDVI colour ramp.
func (a *App) RenderPreview() {
	path := ReadString("Enter the raster path: ")
	if path == "" {
		PrintError("raster path cannot be empty")
		return
	}

	grid, _, err := a.IO.Open(path)
	if err != nil {
		PrintError(err.Error())
		return
	}

	previewFolder := filepath.Join(properties.ResultPath(), "previews")
	if err := os.MkdirAll(previewFolder, os.ModePerm); err != nil {
		PrintError(fmt.Sprintf("failed to create preview folder: %v", err))
		return
	}

	stem := utils.Stem(path)
	var outputPath string
	if strings.HasPrefix(stem, groundtruth.OutputPrefix) {
		outputPath = filepath.Join(previewFolder, stem+".png")
		err = output.CreateGroundTruthImage(raster.ToMask(grid), outputPath)
	} else {
		outputPath = filepath.Join(previewFolder, stem+".jpeg")
		err = output.CreateNDVIImage(grid, outputPath)
	}
	if err != nil {
		PrintError(err.Error())
		return
	}
	PrintSuccess("Preview created at " + outputPath)
}
