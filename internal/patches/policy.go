package patches

import (
	"errors"
	"fmt"

	"github.com/forest-guardian/cloudmask-training-data/internal/groundtruth"
	"github.com/forest-guardian/cloudmask-training-data/internal/raster"
)

const (
	minInformativeFraction = 0.01
	minClassPixels         = 100
)

var ErrInvalidWindow = errors.New("invalid patch window")

// GridOffsets lists window origins 0, stride, 2*stride, ... for which the whole
// window fits in size pixels.
func GridOffsets(size, patchSize, stride int) []int {
	offsets := []int{}
	for offset := 0; offset+patchSize <= size; offset += stride {
		offsets = append(offsets, offset)
	}
	return offsets
}

func validateWindow(patchSize, stride int) error {
	if patchSize <= 0 || stride <= 0 {
		return fmt.Errorf("%w: patch size %d and stride %d must be positive", ErrInvalidWindow, patchSize, stride)
	}
	return nil
}

type MaskCounts struct {
	Cloud    int
	Shadow   int
	Total    int
	Distinct int
}

func CountMask(mask raster.Grid[uint8]) MaskCounts {
	counts := MaskCounts{Total: len(mask.Data)}
	var seen [256]bool
	for _, v := range mask.Data {
		switch v {
		case groundtruth.ClassCloud:
			counts.Cloud++
		case groundtruth.ClassShadow:
			counts.Shadow++
		}
		if !seen[v] {
			seen[v] = true
			counts.Distinct++
		}
	}
	return counts
}

// KeepPatch keeps patches with enough cloud or shadow content, or with more
// than one class. Each condition alone is sufficient.
func KeepPatch(counts MaskCounts) bool {
	return float64(counts.Cloud+counts.Shadow) > float64(counts.Total)*minInformativeFraction ||
		counts.Cloud > minClassPixels ||
		counts.Shadow > minClassPixels ||
		counts.Distinct > 1
}
