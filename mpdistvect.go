package matrixprofile

import (
	"container/list"
	"math"

	"github.com/diagonalmp/go-matrixprofile/config"
	"github.com/diagonalmp/go-matrixprofile/util"
	"gonum.org/v1/gonum/fourier"
)

// massDistanceRow computes the z-normalized Euclidean distance between
// query subsequence q and every window of T, using an FFT-based
// sliding dot product (the MASS technique), taking T's precomputed FFT
// coefficients and rolling mean/invStd directly.
func massDistanceRow(q []float64, tFFT []complex128, n, w int, tInvStd []float64, fft *fourier.FFT) ([]float64, error) {
	qnorm, err := util.ZNormalize(q)
	if err != nil {
		return nil, err
	}

	qpad := make([]float64, n)
	for i := 0; i < len(qnorm); i++ {
		qpad[i] = qnorm[w-i-1]
	}
	qf := fft.Coefficients(nil, qpad)
	for i := range qf {
		qf[i] = tFFT[i] * qf[i]
	}
	dot := fft.Sequence(nil, qf)
	for i := 0; i < n-w+1; i++ {
		dot[w-1+i] /= float64(n)
	}
	dot = dot[w-1:]

	row := make([]float64, n-w+1)
	for i := range row {
		row[i] = math.Sqrt(math.Abs(2 * (float64(w) - dot[i]*tInvStd[i])))
	}
	return row, nil
}

// slidingMin computes, for each window of width w over a, the
// minimum, in O(len(a)) via a monotonic deque.
func slidingMin(a []float64, w int) []float64 {
	if len(a) < w {
		return nil
	}
	out := make([]float64, len(a)-w+1)
	idxDeque := list.New()

	for i, v := range a {
		for idxDeque.Len() > 0 && a[idxDeque.Back().Value.(int)] >= v {
			idxDeque.Remove(idxDeque.Back())
		}
		idxDeque.PushBack(i)
		if idxDeque.Front().Value.(int) <= i-w {
			idxDeque.Remove(idxDeque.Front())
		}
		if i >= w-1 {
			out[i-w+1] = a[idxDeque.Front().Value.(int)]
		}
	}
	return out
}

// MPdistVect computes the MPdist-based distance profile of query Q
// against every window of T, returning a slice of length
// len(T)-len(Q)+1.
func MPdistVect(Q, T []float64, m int, sel Selector) ([]float64, error) {
	j := len(Q) - m + 1
	l := len(T) - m + 1
	if j < 1 || l < 1 || len(T) < len(Q) {
		return nil, wrapf(ErrWindowTooLarge, "m=%d", m)
	}

	_, tInvStd, _ := util.SlidingMeanInvStd(T, m, config.StdDevThreshold)

	n := len(T)
	fft := fourier.NewFFT(n)
	tFFT := fft.Coefficients(nil, T)

	distanceMatrix := make([][]float64, j)
	for r := 0; r < j; r++ {
		row, err := massDistanceRow(Q[r:r+m], tFFT, n, m, tInvStd, fft)
		if err != nil {
			return nil, err
		}
		distanceMatrix[r] = row
	}

	rollingRowMin := make([][]float64, j)
	for r := 0; r < j; r++ {
		rollingRowMin[r] = slidingMin(distanceMatrix[r], j)
	}

	colMin := make([]float64, l)
	for c := 0; c < l; c++ {
		min := math.Inf(1)
		for r := 0; r < j; r++ {
			if distanceMatrix[r][c] < min {
				min = distanceMatrix[r][c]
			}
		}
		colMin[c] = min
	}

	outLen := len(T) - len(Q) + 1
	out := make([]float64, outLen)
	pABBA := make([]float64, 2*j)

	sel = sel.resolve()

	for i := 0; i < outLen; i++ {
		for r := 0; r < j; r++ {
			pABBA[r] = rollingRowMin[r][i]
		}
		copy(pABBA[j:], colMin[i:i+j])

		if sel.Custom != nil {
			out[i] = sel.Custom(append([]float64(nil), pABBA...))
			continue
		}
		// Each offset compares Q's own rolling-min column against a
		// same-length slice of T's column, i.e. two length-j arrays,
		// so the combined length used for the percentage rank is
		// 2*len(Q), not len(Q)+len(T).
		k := sel.kPrime(len(Q), len(Q), len(pABBA))
		out[i] = selectKth(append([]float64(nil), pABBA...), k)
	}

	return out, nil
}
