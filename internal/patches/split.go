package patches

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

const (
	DefaultValRatio = 0.2
	DefaultSeed     = 42
)

var ErrInvalidSplit = errors.New("invalid train/validation split")

// CreateTrainValSplit shuffles pairs with a generator seeded by seed and moves
// the first ceil(valRatio*n) of the permutation to validation.
func CreateTrainValSplit(pairs []FilePair, valRatio float64, seed int64) (train, validation []FilePair, err error) {
	if valRatio <= 0 || valRatio >= 1 {
		return nil, nil, fmt.Errorf("%w: validation ratio %v must be in (0, 1)", ErrInvalidSplit, valRatio)
	}
	n := len(pairs)
	valSize := int(math.Ceil(valRatio * float64(n)))
	if valSize == 0 || valSize >= n {
		return nil, nil, fmt.Errorf("%w: %d pairs cannot be split with validation ratio %v", ErrInvalidSplit, n, valRatio)
	}

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	permutation := rng.Perm(n)

	validation = make([]FilePair, 0, valSize)
	for _, i := range permutation[:valSize] {
		validation = append(validation, pairs[i])
	}
	train = make([]FilePair, 0, n-valSize)
	for _, i := range permutation[valSize:] {
		train = append(train, pairs[i])
	}
	return train, validation, nil
}
