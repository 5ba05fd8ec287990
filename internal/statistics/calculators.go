package statistics

import (
	"slices"

	"github.com/amitbasuri/numstats-go/internal/models"
)

// Calculator computes one statistic over a non-empty list of numbers
type Calculator interface {
	// Operation returns the unique operation name for this calculator
	Operation() models.Operation

	// Compute returns the statistic for nums. nums must not be empty.
	Compute(nums []int64) models.StatisticResult
}

// Mean returns the arithmetic average of nums
func Mean(nums []int64) float64 {
	var sum float64
	for _, n := range nums {
		sum += float64(n)
	}
	return sum / float64(len(nums))
}

// Median returns the middle value of nums after sorting, or the average of
// the two middle values when the length is even. nums is left untouched.
func Median(nums []int64) float64 {
	sorted := slices.Clone(nums)
	slices.Sort(sorted)

	n := len(sorted)
	if n%2 != 0 {
		return float64(sorted[n/2])
	}
	return (float64(sorted[n/2-1]) + float64(sorted[n/2])) / 2
}

// Mode returns the most frequent value in nums.
// Among values tied for the highest count the largest one wins.
func Mode(nums []int64) int64 {
	frequency := make(map[int64]int, len(nums))
	for _, n := range nums {
		frequency[n]++
	}

	var mode int64
	maxCount := 0
	for value, count := range frequency {
		if count > maxCount || (count == maxCount && value > mode) {
			mode = value
			maxCount = count
		}
	}
	return mode
}

// MeanCalculator computes the arithmetic mean
type MeanCalculator struct{}

func (MeanCalculator) Operation() models.Operation { return models.OperationMean }

func (MeanCalculator) Compute(nums []int64) models.StatisticResult {
	return models.StatisticResult{Operation: models.OperationMean, Value: Mean(nums)}
}

// MedianCalculator computes the median
type MedianCalculator struct{}

func (MedianCalculator) Operation() models.Operation { return models.OperationMedian }

func (MedianCalculator) Compute(nums []int64) models.StatisticResult {
	return models.StatisticResult{Operation: models.OperationMedian, Value: Median(nums)}
}

// ModeCalculator computes the mode
type ModeCalculator struct{}

func (ModeCalculator) Operation() models.Operation { return models.OperationMode }

func (ModeCalculator) Compute(nums []int64) models.StatisticResult {
	return models.StatisticResult{Operation: models.OperationMode, Value: Mode(nums)}
}
