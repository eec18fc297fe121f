package common

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Small numeric helpers shared by the profile and analyzer code, backed by gonum

// Epsilon is the floor below which a weight counts as zero
const Epsilon = 1e-10

// Mean calculates the arithmetic mean of a slice
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// StandardDeviation calculates the sample standard deviation
func StandardDeviation(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}
	return stat.StdDev(data, nil)
}

// Max returns the largest value, or 0 for an empty slice
func Max(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Max(data)
}

// ArgMaxAll returns every index holding the maximum value (within Epsilon),
// in ascending order. Ties are kept.
func ArgMaxAll(data []float64) []int {
	if len(data) == 0 {
		return nil
	}
	best := floats.Max(data)
	var idx []int
	for i, v := range data {
		if best-v <= Epsilon {
			idx = append(idx, i)
		}
	}
	return idx
}

// NormalizeSum returns a copy of data scaled to sum to 1. An all-zero
// input comes back as zeros.
func NormalizeSum(data []float64) []float64 {
	out := make([]float64, len(data))
	copy(out, data)
	sum := floats.Sum(out)
	if sum > Epsilon {
		floats.Scale(1/sum, out)
	}
	return out
}

// Entropy returns the Shannon entropy in bits of a distribution. The input is
// normalized first, so raw weights are fine.
func Entropy(weights []float64) float64 {
	p := NormalizeSum(weights)
	if floats.Sum(p) <= Epsilon {
		return 0.0
	}
	return stat.Entropy(p) / math.Ln2
}

// Correlation calculates the Pearson correlation coefficient between two
// series. Constant series have no defined correlation and report 0.
func Correlation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0.0
	}
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return 0.0
	}
	return r
}

// CosineSimilarity calculates the cosine of the angle between two vectors
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0.0
	}
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	if na <= Epsilon || nb <= Epsilon {
		return 0.0
	}
	return floats.Dot(a, b) / (na * nb)
}

// Clamp constrains value to [min, max]
func Clamp(value, min, max float64) float64 {
	return math.Max(min, math.Min(max, value))
}
