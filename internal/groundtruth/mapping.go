package groundtruth

import (
	"math"

	"github.com/forest-guardian/cloudmask-training-data/internal/raster"
)

// Raw CM1 classes.
const (
	CM1Clear = iota
	CM1ThickCloud
	CM1ThinCloud
	CM1Shadow

	cm1Classes = 4
)

// Ground-truth classes.
const (
	ClassClear uint8 = iota
	ClassCloud
	ClassShadow

	groundTruthClasses = 3
)

// ClassMapping is indexed by raw CM1 class. Thin clouds are treated as clear.
var ClassMapping = [cm1Classes]uint8{
	CM1Clear:      ClassClear,
	CM1ThickCloud: ClassCloud,
	CM1ThinCloud:  ClassClear,
	CM1Shadow:     ClassShadow,
}

type Histogram struct {
	Original [cm1Classes]int64
	Remapped [groundTruthClasses]int64
}

func rawClass(v float64) (int, bool) {
	if math.IsNaN(v) || v != math.Trunc(v) || v < 0 || v >= cm1Classes {
		return 0, false
	}
	return int(v), true
}

// RemapMask converts a raw CM1 mask to ground truth. Pixels holding a value
// outside the known classes keep the zero value and are not counted.
func RemapMask(raw raster.Grid[float64]) (raster.Grid[uint8], Histogram) {
	groundTruth := raster.NewGrid[uint8](raw.Width, raw.Height)
	var histogram Histogram
	for i, v := range raw.Data {
		class, ok := rawClass(v)
		if !ok {
			continue
		}
		mapped := ClassMapping[class]
		groundTruth.Data[i] = mapped
		histogram.Original[class]++
		histogram.Remapped[mapped]++
	}
	return groundTruth, histogram
}
