package matrixprofile

import "math"

// Selector picks the reported MPdist value out of the unsorted
// concatenation of AB-join and BA-join top-1 profiles. The built-in
// selection rule (percentage or explicit k, then k'-th smallest) is
// applied when Custom is nil; Custom overrides it entirely.
type Selector struct {
	// Percentage of the combined series length len(TA)+len(TB) used
	// as the rank, in [0, 1].
	// Ignored when K is non-zero or Custom is set. Default 0.05.
	Percentage float64

	// K, when non-zero, picks the K-th smallest value directly
	// (clamped to len(P_ABBA)-1), overriding Percentage.
	K int

	// Custom, when set, receives P_ABBA and returns the reported
	// value directly; Percentage and K are ignored.
	Custom func(pABBA []float64) float64
}

func (s Selector) resolve() Selector {
	if s.Percentage == 0 && s.K == 0 && s.Custom == nil {
		s.Percentage = 0.05
	}
	if s.Percentage < 0 {
		s.Percentage = 0
	}
	if s.Percentage > 1 {
		s.Percentage = 1
	}
	return s
}

// kPrime resolves the selector's k-th-smallest rank for a P_ABBA of
// the given length.
func (s Selector) kPrime(nA, nB, pABBALen int) int {
	if s.K != 0 {
		k := s.K
		if k > pABBALen-1 {
			k = pABBALen - 1
		}
		return k
	}
	k := int(math.Ceil(s.Percentage * float64(nA+nB)))
	if k > pABBALen-1 {
		k = pABBALen - 1
	}
	return k
}

// selectKth returns the k-th smallest element (0-indexed) of a using
// Hoare-partition quickselect, without fully sorting a. a is
// partitioned in place; callers that need the original order
// preserved must pass a copy.
func selectKth(a []float64, k int) float64 {
	lo, hi := 0, len(a)-1
	for lo < hi {
		pivot := a[lo+(hi-lo)/2]
		i, j := lo, hi
		for i <= j {
			for a[i] < pivot {
				i++
			}
			for a[j] > pivot {
				j--
			}
			if i <= j {
				a[i], a[j] = a[j], a[i]
				i++
				j--
			}
		}
		if k <= j {
			hi = j
		} else if k >= i {
			lo = i
		} else {
			return a[k]
		}
	}
	return a[lo]
}

// MPdistOptions configures MPdist. M and Parallelism mirror Stump;
// Selector chooses the reported order statistic.
type MPdistOptions struct {
	M           int
	Selector    Selector
	Parallelism int
}

// MPdist computes the z-normalized matrix profile distance between TA
// and TB: the AB-join and BA-join top-1 profiles are concatenated and
// the selector's k'-th smallest value is reported.
func MPdist(TA, TB []float64, opts MPdistOptions) (float64, error) {
	abJoin, err := Stump(TA, Options{M: opts.M, TB: TB, IgnoreTrivial: false, K: 1, D: 1, Normalize: true, Parallelism: opts.Parallelism})
	if err != nil {
		return 0, err
	}
	baJoin, err := Stump(TB, Options{M: opts.M, TB: TA, IgnoreTrivial: false, K: 1, D: 1, Normalize: true, Parallelism: opts.Parallelism})
	if err != nil {
		return 0, err
	}

	pABBA := make([]float64, len(abJoin.Dist)+len(baJoin.Dist))
	for i, row := range abJoin.Dist {
		pABBA[i] = row[0]
	}
	for i, row := range baJoin.Dist {
		pABBA[len(abJoin.Dist)+i] = row[0]
	}

	sel := opts.Selector.resolve()
	if sel.Custom != nil {
		return sel.Custom(pABBA), nil
	}

	k := sel.kPrime(len(TA), len(TB), len(pABBA))
	return selectKth(pABBA, k), nil
}

// Joiner computes the top-1 column of an AB-join matrix profile,
// abstracting over the choice of backend (in-process Stump, or a
// distributed cluster). MPDistD takes a Joiner so that a distributed
// implementation can be substituted without this engine depending on
// any particular cluster framework; the distributed backend itself is
// out of scope.
type Joiner func(TA, TB []float64, m int) ([]float64, error)

// MPDistD computes MPdist using a caller-supplied Joiner in place of
// the built-in in-process Stump, leaving the actual distributed
// execution to the caller.
func MPDistD(TA, TB []float64, m int, join Joiner, sel Selector) (float64, error) {
	abCol, err := join(TA, TB, m)
	if err != nil {
		return 0, err
	}
	baCol, err := join(TB, TA, m)
	if err != nil {
		return 0, err
	}

	pABBA := make([]float64, len(abCol)+len(baCol))
	copy(pABBA, abCol)
	copy(pABBA[len(abCol):], baCol)

	sel = sel.resolve()
	if sel.Custom != nil {
		return sel.Custom(pABBA), nil
	}
	k := sel.kPrime(len(TA), len(TB), len(pABBA))
	return selectKth(pABBA, k), nil
}
