// Package preprocess turns single-band NDVI arrays into the 3-channel float32
// layout expected by the segmentation model's image encoder.
package preprocess

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/forest-guardian/cloudmask-training-data/internal/raster"
)

const (
	ndviMin = -1.0
	ndviMax = 1.0

	samChannels = 3
)

var ErrInvalidArray = errors.New("invalid ndvi array")

type Augmentation int

const (
	AugmentationNone Augmentation = iota
	AugmentationHorizontalFlip
	AugmentationVerticalFlip
	AugmentationRotate90
)

func (a Augmentation) String() string {
	switch a {
	case AugmentationHorizontalFlip:
		return "horizontal_flip"
	case AugmentationVerticalFlip:
		return "vertical_flip"
	case AugmentationRotate90:
		return "rotate_90"
	default:
		return "none"
	}
}

// SAMInput is a channel-first (Channels, Height, Width) float32 tensor.
type SAMInput struct {
	Channels int
	Height   int
	Width    int
	Data     []float32
}

func (s SAMInput) At(channel, row, col int) float32 {
	return s.Data[(channel*s.Height+row)*s.Width+col]
}

// Channel returns the slice backing one channel.
func (s SAMInput) Channel(channel int) []float32 {
	size := s.Height * s.Width
	return s.Data[channel*size : (channel+1)*size]
}

type Result struct {
	Cleaned      raster.Grid[float64]
	Augmented    raster.Grid[float64]
	Augmentation Augmentation
	Normalized   raster.Grid[float64]
	SAMInput     SAMInput
}

// Preprocessor holds no per-call state. Augmentation draws from rng, or from
// the process-wide generator when rng is nil. A seeded rng must not be shared
// between goroutines.
type Preprocessor struct {
	rng *rand.Rand
}

func NewPreprocessor(rng *rand.Rand) *Preprocessor {
	return &Preprocessor{rng: rng}
}

// NewSeededPreprocessor makes augmentation reproducible for a given seed.
func NewSeededPreprocessor(seed uint64) *Preprocessor {
	return NewPreprocessor(rand.New(rand.NewPCG(seed, seed)))
}

func (p *Preprocessor) draw() float64 {
	if p == nil || p.rng == nil {
		return rand.Float64()
	}
	return p.rng.Float64()
}

// CleanInvalidValues clips to [-1, 1] and replaces NaN with 0.
func CleanInvalidValues(array raster.Grid[float64]) raster.Grid[float64] {
	cleaned := array.Clone()
	for i, v := range cleaned.Data {
		cleaned.Data[i] = clip(v, ndviMin, ndviMax)
	}
	return cleaned
}

// ApplyCrossSensorAugmentation applies exactly one of a horizontal flip, a
// vertical flip, a 90 degree counter-clockwise rotation or nothing, each with
// probability 1/4.
func (p *Preprocessor) ApplyCrossSensorAugmentation(array raster.Grid[float64], applyAugmentation bool) (raster.Grid[float64], Augmentation) {
	if !applyAugmentation {
		return array, AugmentationNone
	}
	draw := p.draw()
	switch {
	case draw < 0.25:
		return FlipHorizontal(array), AugmentationHorizontalFlip
	case draw < 0.5:
		return FlipVertical(array), AugmentationVerticalFlip
	case draw < 0.75:
		return Rotate90(array), AugmentationRotate90
	default:
		return array, AugmentationNone
	}
}

// NormalizeForCrossSensor rescales the fixed NDVI domain [-1, 1] to [0, 1].
func NormalizeForCrossSensor(array raster.Grid[float64]) raster.Grid[float64] {
	normalized := array.Clone()
	for i, v := range normalized.Data {
		normalized.Data[i] = clip((v-ndviMin)/(ndviMax-ndviMin), 0, 1)
	}
	return normalized
}

// ConvertToSAMFormat stacks three copies of the array along a leading channel
// axis.
func ConvertToSAMFormat(array raster.Grid[float64]) SAMInput {
	size := array.Width * array.Height
	sam := SAMInput{
		Channels: samChannels,
		Height:   array.Height,
		Width:    array.Width,
		Data:     make([]float32, samChannels*size),
	}
	for i, v := range array.Data {
		for c := range samChannels {
			sam.Data[c*size+i] = float32(v)
		}
	}
	return sam
}

// PreprocessArray runs clean, augment, normalize and convert in that order and
// keeps every intermediate stage.
func (p *Preprocessor) PreprocessArray(array raster.Grid[float64], applyAugmentation bool) (*Result, error) {
	if !array.Valid() {
		return nil, fmt.Errorf("%w: %dx%d grid with %d values", ErrInvalidArray, array.Height, array.Width, len(array.Data))
	}

	cleaned := CleanInvalidValues(array)
	augmented, augmentation := p.ApplyCrossSensorAugmentation(cleaned, applyAugmentation)
	normalized := NormalizeForCrossSensor(augmented)

	return &Result{
		Cleaned:      cleaned,
		Augmented:    augmented,
		Augmentation: augmentation,
		Normalized:   normalized,
		SAMInput:     ConvertToSAMFormat(normalized),
	}, nil
}

func clip(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(lo, math.Min(hi, v))
}
