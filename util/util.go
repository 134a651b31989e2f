// Package util provides the numerically stable building blocks shared
// by the preprocessing and MASS routines: z-normalization, Kahan
// two-sum accumulation, and sliding mean / inverse standard deviation.
package util

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ZNormalize computes a z-normalized version of a slice of floats.
// This is represented by y[i] = (x[i] - mean(x))/std(x)
func ZNormalize(ts []float64) ([]float64, error) {
	var i int

	if len(ts) == 0 {
		return nil, fmt.Errorf("slice does not have any data")
	}

	m := stat.Mean(ts, nil)

	out := make([]float64, len(ts))
	for i = 0; i < len(ts); i++ {
		out[i] = ts[i] - m
	}

	var std float64
	for _, val := range out {
		std += val * val
	}
	std = math.Sqrt(std / float64(len(out)))

	if std == 0 {
		return out, fmt.Errorf("standard deviation is zero")
	}

	for i = 0; i < len(ts); i++ {
		out[i] = out[i] / std
	}

	return out, nil
}

// Sum2s computes the Neumaier-compensated (two-sum) sliding mean of
// every window of length w over a, in one O(n) pass. The incremental
// covariance walk downstream is itself numerically delicate and
// benefits from means computed with compensated summation rather than
// naive cumulative sums.
func Sum2s(a []float64, w int) []float64 {
	if len(a) < w {
		return nil
	}
	p := a[0]
	s := 0.0
	var x, z float64
	for i := 1; i < w; i++ {
		x = p + a[i]
		z = x - p
		s += (p - (x - z)) + (a[i] - z)
		p = x
	}

	res := make([]float64, len(a)-w+1)
	res[0] = (p + s) / float64(w)
	for i := w; i < len(a); i++ {
		x = p - a[i-w]
		z = x - p
		s += (p - (x - z)) - (a[i-w] + z)
		p = x

		x = p + a[i]
		z = x - p
		s += (p - (x - z)) + (a[i] - z)
		p = x

		res[i-w+1] = (p + s) / float64(w)
	}

	return res
}

// SlidingMeanInvStd computes, for every window of length w over a, the
// mean and the inverse standard deviation using compensated
// (Neumaier two-sum) accumulation of both the raw values and their
// squares. Whenever a window's standard deviation does not exceed
// stdThresh, its inverse standard deviation is reported as 0 and
// constant[i] is set true.
func SlidingMeanInvStd(a []float64, w int, stdThresh float64) (mean, invStd []float64, constant []bool) {
	mean = Sum2s(a, w)
	n := len(mean)
	invStd = make([]float64, n)
	constant = make([]bool, n)

	h := make([]float64, len(a))
	r := make([]float64, len(a))

	var muA, c float64
	var a1, a2, a3, p, s, x, z float64
	for i := 0; i < n; i++ {
		for j := i; j < i+w; j++ {
			muA = a[j] - mean[i]
			h[j] = muA * muA

			c = (math.Pow(2.0, 27.0) + 1) * muA
			a1 = c - (c - muA)
			a2 = muA - a1
			a3 = a1 * a2
			r[j] = a2*a2 - (((h[j] - a1*a1) - a3) - a3)
		}

		p = h[i]
		s = r[i]

		for j := i + 1; j < i+w; j++ {
			x = p + h[j]
			z = x - p
			s += ((p - (x - z)) + (h[j] - z)) + r[j]
			p = x
		}

		variance := (p + s) / float64(w)
		std := math.Sqrt(math.Max(variance, 0))
		if std <= stdThresh {
			constant[i] = true
			invStd[i] = 0.0
		} else {
			invStd[i] = 1.0 / std
		}
	}
	return mean, invStd, constant
}
