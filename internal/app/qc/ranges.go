package qc

import "math"

// PaddingFraction of the configured span is added on a side whose data
// extends past the configured limit.
const PaddingFraction = 0.1

// PaddedRange returns the display range for values against the configured
// [low, high]. A side moves only when an observed extreme is strictly past
// its limit, and then sits one padding beyond that extreme. NaN and
// infinite values are ignored; with no data the configured limits are returned.
func PaddedRange(values []float64, low, high float64) [2]float64 {
	pad := PaddingFraction * (high - low)
	minV, maxV := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	r := [2]float64{low, high}
	if minV < low {
		r[0] = minV - pad
	}
	if maxV > high {
		r[1] = maxV + pad
	}
	return r
}
