package internal

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// rangePadding is the fraction of the standard deviation added above and below the data
const rangePadding = 0.5

// SharedRange computes the y-range applied to every panel of a figure:
// (min - 0.5σ, max + 0.5σ) over all bucket sums, using the sample standard deviation.
//
// When σ is undefined or zero (a single bucket, or all sums equal) the range is padded by
// 10% of the largest magnitude instead, and by at least 1, so it never collapses.
func SharedRange(buckets []Bucket) (YRange, error) {
	if len(buckets) == 0 {
		return YRange{}, ErrEmptyDataset
	}

	sums := Sums(buckets)
	for _, v := range sums {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return YRange{}, ErrDegenerateRange
		}
	}

	lo, hi := floats.Min(sums), floats.Max(sums)

	var pad float64
	if len(sums) > 1 {
		pad = stat.StdDev(sums, nil) * rangePadding
	}
	if math.IsNaN(pad) || pad == 0 {
		pad = fallbackPadding(lo, hi)
	}

	rng := YRange{Min: lo - pad, Max: hi + pad}
	if math.IsInf(rng.Min, 0) || math.IsInf(rng.Max, 0) || rng.Max <= rng.Min {
		return YRange{}, ErrDegenerateRange
	}
	return rng, nil
}

func fallbackPadding(lo, hi float64) float64 {
	pad := 0.1 * math.Max(math.Abs(lo), math.Abs(hi))
	if pad < 1 {
		pad = 1
	}
	return pad
}
