package groundtruth

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/airbusgeo/godal"
	"github.com/forest-guardian/cloudmask-training-data/internal/logger"
	"github.com/forest-guardian/cloudmask-training-data/internal/raster"
	"github.com/forest-guardian/cloudmask-training-data/internal/utils"
	"github.com/gammazero/workerpool"
)

const (
	OutputPrefix     = "GT_"
	OutputCompress   = "LZW"
	progressInterval = 50
)

// FileResult is the outcome of converting one mask file. Output is empty and
// Err set when the file was skipped.
type FileResult struct {
	Name   string
	Output string
	Err    error
}

type Converter struct {
	IO      raster.IO
	Logger  *logger.Logger
	Workers int
}

func NewConverter(rio raster.IO, log *logger.Logger) *Converter {
	return &Converter{IO: rio, Logger: log, Workers: 1}
}

// OutputName is GT_<stem> with the input's extension.
func OutputName(inputPath string) string {
	return OutputPrefix + filepath.Base(inputPath)
}

// Convert remaps every mask in inputFolder into outputFolder. A file that cannot
// be read or written is logged and skipped; only setup failures return an error.
func (c *Converter) Convert(inputFolder, outputFolder string) (Statistics, []FileResult, error) {
	stats := NewStatistics()

	if err := os.MkdirAll(outputFolder, os.ModePerm); err != nil {
		return stats, nil, fmt.Errorf("failed to create output folder: %w", err)
	}
	files, err := utils.ListFiles(inputFolder, utils.RasterExtensions...)
	if err != nil {
		return stats, nil, err
	}

	var (
		mu        sync.Mutex
		processed int
		results   = make([]FileResult, len(files))
	)

	process := func(i int) {
		result, histogram := c.convertFile(files[i], outputFolder)

		mu.Lock()
		defer mu.Unlock()
		results[i] = result
		stats.Add(histogram)
		if result.Err != nil {
			c.Logger.Error("Error processing file", "file", result.Name, "error", result.Err)
			return
		}
		processed++
		if processed%progressInterval == 0 {
			c.Logger.Info(fmt.Sprintf("Processed %d/%d files...", processed, len(files)))
		}
	}

	if c.Workers <= 1 {
		for i := range files {
			process(i)
		}
		return stats, results, nil
	}

	wp := workerpool.New(c.Workers)
	for i := range files {
		wp.Submit(func() { process(i) })
	}
	wp.StopWait()

	return stats, results, nil
}

func (c *Converter) convertFile(inputPath, outputFolder string) (FileResult, Histogram) {
	result := FileResult{Name: filepath.Base(inputPath)}

	raw, profile, err := c.IO.Open(inputPath)
	if err != nil {
		result.Err = err
		return result, Histogram{}
	}

	groundTruth, histogram := RemapMask(raw)

	profile.Count = 1
	profile.DataType = godal.Byte
	profile.Compress = OutputCompress

	outputPath := filepath.Join(outputFolder, OutputName(inputPath))
	// The histogram is counted even when the write fails.
	if err := c.IO.Write(outputPath, groundTruth, profile); err != nil {
		result.Err = err
		return result, histogram
	}

	result.Output = outputPath
	return result, histogram
}
