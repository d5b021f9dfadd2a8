package core

import (
	"math"
	"sort"
)

// -----------------------------------------------------------------------------

// Sum adds up the values.
func Sum(values []int64) int64 {
	var total int64
	for _, v := range values {
		total += v
	}
	return total
}

// -----------------------------------------------------------------------------

// SumInWindow sums the values whose timestamp falls in [from, to], both
// bounds inclusive. Timestamps must be sorted ascending.
func SumInWindow(timestamps []int64, values []int64, from, to int64) int64 {
	startIdx := sort.Search(len(timestamps), func(i int) bool {
		return timestamps[i] >= from
	})
	endIdx := sort.Search(len(timestamps), func(i int) bool {
		return timestamps[i] > to
	})

	var total int64
	for i := startIdx; i < endIdx && i < len(values); i++ {
		total += values[i]
	}
	return total
}

// -----------------------------------------------------------------------------

// CalculateMeanStd computes mean and standard deviation.
func CalculateMeanStd(data []float64) (float64, float64) {
	if len(data) == 0 {
		return 0, 0
	}

	// Calculate mean
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	mean := sum / float64(len(data))

	// For single element, return std = 0
	if len(data) == 1 {
		return mean, 0
	}

	// Calculate standard deviation with N denominator (population std)
	varianceSum := 0.0
	for _, v := range data {
		varianceSum += (v - mean) * (v - mean)
	}
	std := math.Sqrt(varianceSum / float64(len(data)))
	return mean, std
}
