package groundtruth

// Statistics holds pixel totals per class before and after remapping.
type Statistics struct {
	Original map[int]int64
	Remapped map[int]int64
}

func NewStatistics() Statistics {
	stats := Statistics{
		Original: make(map[int]int64, cm1Classes),
		Remapped: make(map[int]int64, groundTruthClasses),
	}
	for class := range cm1Classes {
		stats.Original[class] = 0
	}
	for class := range groundTruthClasses {
		stats.Remapped[class] = 0
	}
	return stats
}

func (s Statistics) Add(histogram Histogram) {
	for class, count := range histogram.Original {
		s.Original[class] += count
	}
	for class, count := range histogram.Remapped {
		s.Remapped[class] += count
	}
}

func (s Statistics) OriginalPercentages() map[int]float64 {
	return percentages(s.Original)
}

func (s Statistics) RemappedPercentages() map[int]float64 {
	return percentages(s.Remapped)
}

func percentages(counts map[int]int64) map[int]float64 {
	var total int64
	for _, count := range counts {
		total += count
	}
	result := make(map[int]float64, len(counts))
	for class, count := range counts {
		if total == 0 {
			result[class] = 0
			continue
		}
		result[class] = float64(count) / float64(total) * 100
	}
	return result
}
