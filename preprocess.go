package matrixprofile

import (
	"math"

	"github.com/diagonalmp/go-matrixprofile/config"
	"github.com/diagonalmp/go-matrixprofile/util"
)

// series bundles everything the diagonal kernel needs from one input
// time series: the NaN/Inf-scrubbed values, sliding mean and inverse
// standard deviation at window m, the sliding mean at window m-1 (used
// only to seed the incremental covariance update), and the per-
// subsequence finiteness/constancy flags.
type series struct {
	clean      []float64
	mean       []float64
	invStd     []float64
	meanM1     []float64
	isFinite   []bool
	isConstant []bool
}

// preprocess scrubs non-finite samples to 0.0 so that downstream dot products are
// always defined, while independently recording, per subsequence,
// whether every one of its m original samples was finite.
func preprocess(T []float64, m int) (*series, error) {
	if m < 3 {
		return nil, wrapf(ErrWindowTooLarge, "window %d is smaller than the minimum of 3", m)
	}
	if m > len(T) {
		return nil, wrapf(ErrWindowTooLarge, "window %d exceeds series length %d", m, len(T))
	}

	clean := make([]float64, len(T))
	finiteSample := make([]bool, len(T))
	for i, v := range T {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			clean[i] = 0.0
			finiteSample[i] = false
		} else {
			clean[i] = v
			finiteSample[i] = true
		}
	}

	mean, invStd, constant := util.SlidingMeanInvStd(clean, m, config.StdDevThreshold)

	isFinite := make([]bool, len(mean))
	for i := range isFinite {
		ok := true
		for j := i; j < i+m; j++ {
			if !finiteSample[j] {
				ok = false
				break
			}
		}
		isFinite[i] = ok
	}

	var meanM1 []float64
	if m-1 >= 1 {
		meanM1, _, _ = util.SlidingMeanInvStd(clean, m-1, config.StdDevThreshold)
	}

	return &series{
		clean:      clean,
		mean:       mean,
		invStd:     invStd,
		meanM1:     meanM1,
		isFinite:   isFinite,
		isConstant: constant,
	}, nil
}

// covarianceSeeds holds the four read-only arrays that let the
// diagonal kernel update covariance incrementally instead of
// recomputing a centered dot product at every cell. They are pure
// functions of the two series' (m-1)-window means, so they are
// computed once, up front, and shared read-only across every worker,
// before any thread is spawned.
type covarianceSeeds struct {
	a, b, c, d []float64
}

// buildCovarianceSeeds derives cov_a..cov_d from the dilated,
// preprocessed query series qs (plays the role of T_A) and target
// series ts (plays the role of T_B), for the diagonal kernel's
// incremental covariance update.
func buildCovarianceSeeds(qs, ts *series, m int) covarianceSeeds {
	nB := len(ts.clean)
	nA := len(qs.clean)

	lenA := nA - m + 1
	lenB := nB - m + 1

	a := make([]float64, lenB)
	for j := 0; j < lenB; j++ {
		a[j] = ts.clean[m-1+j] - ts.meanM1[j]
	}

	b := make([]float64, lenA)
	for i := 0; i < lenA; i++ {
		b[i] = qs.clean[m-1+i] - qs.meanM1[i]
	}

	c := make([]float64, len(ts.meanM1))
	c[0] = ts.clean[nB-1] - ts.meanM1[0]
	for j := 1; j < len(c); j++ {
		c[j] = ts.clean[j-1] - ts.meanM1[j]
	}

	d := make([]float64, len(qs.meanM1))
	d[0] = qs.clean[nA-1] - qs.meanM1[0]
	for i := 1; i < len(d); i++ {
		d[i] = qs.clean[i-1] - qs.meanM1[i]
	}

	return covarianceSeeds{a: a, b: b, c: c, d: d}
}
