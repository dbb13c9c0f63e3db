// SPDX-License-Identifier: MPL-2.0

package bench

import (
	"math"
	"sort"
)

// Summary holds the timing statistics for one measured operation. All values
// are microseconds.
type Summary struct {
	Mean   float64 `json:"mean_us" toml:"mean_us"`
	Median float64 `json:"median_us" toml:"median_us"`
	Stdev  float64 `json:"stdev_us" toml:"stdev_us"`
	Min    float64 `json:"min_us" toml:"min_us"`
	Max    float64 `json:"max_us" toml:"max_us"`
}

// Compute summarizes per-call samples. The median of an even-sized sample is
// the mean of the two middle values; Stdev is the sample standard deviation
// (n-1 divisor) and is zero for fewer than two samples. The input slice is
// not modified.
func Compute(samples []float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	var sum float64
	for _, s := range sorted {
		sum += s
	}
	mean := sum / float64(len(sorted))

	var median float64
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		median = sorted[mid]
	} else {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	var stdev float64
	if len(sorted) > 1 {
		var variance float64
		for _, s := range sorted {
			d := s - mean
			variance += d * d
		}
		stdev = math.Sqrt(variance / float64(len(sorted)-1))
	}

	return Summary{
		Mean:   mean,
		Median: median,
		Stdev:  stdev,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
}
