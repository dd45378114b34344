package echartsreport

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary holds the five-number summary plus mean and standard deviation
// of one panel's finite values.
type Summary struct {
	N      int
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	Mean   float64
	StdDev float64
}

// BoxValues returns the [min, q1, median, q3, max] order echarts expects.
func (s Summary) BoxValues() []float64 {
	return []float64{s.Min, s.Q1, s.Median, s.Q3, s.Max}
}

// Summarize drops NaN and infinite values and summarises the rest.
// ok is false when nothing is left.
func Summarize(values []float64) (s Summary, ok bool) {
	xs := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		xs = append(xs, v)
	}
	if len(xs) == 0 {
		return Summary{}, false
	}
	sort.Float64s(xs)
	s = Summary{
		N:      len(xs),
		Min:    xs[0],
		Q1:     stat.Quantile(0.25, stat.Empirical, xs, nil),
		Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, xs, nil),
		Max:    xs[len(xs)-1],
	}
	if len(xs) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)
	} else {
		s.Mean = xs[0]
	}
	return s, true
}
