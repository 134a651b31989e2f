package matrixprofile

import (
	"math"
	"sync"
)

// threadScratch is the per-worker accumulator written exclusively by
// one goroutine while walking its assigned diagonal range: a top-k
// ascending buffer per output row, plus top-1 left/right profiles.
// Two workers can legally target the same row (they own disjoint
// diagonals, not disjoint rows), so results are merged only after
// every worker has finished.
type threadScratch struct {
	topK []topKBuffer

	rhoL, rhoR []float64
	idxL, idxR []int
}

func newThreadScratch(l, k int) *threadScratch {
	topK := make([]topKBuffer, l)
	for i := range topK {
		topK[i] = newTopKBuffer(k)
	}
	rhoL := make([]float64, l)
	rhoR := make([]float64, l)
	idxL := make([]int, l)
	idxR := make([]int, l)
	for i := 0; i < l; i++ {
		rhoL[i] = math.Inf(-1)
		rhoR[i] = math.Inf(-1)
		idxL[i] = -1
		idxR[i] = -1
	}
	return &threadScratch{topK: topK, rhoL: rhoL, rhoR: rhoR, idxL: idxL, idxR: idxR}
}

// kernelInput bundles everything the diagonal walk needs, shared
// read-only across every worker goroutine.
type kernelInput struct {
	qs, ts        *series // A plays query role, B plays target role
	seeds         covarianceSeeds
	dmA, dmB      dilationMap // the two series' dilation index maps; identical for self-joins
	m, d          int
	l             int // number of output rows = nA_dilated - ((m-1)*d+1) + 1, in dilated-but-original-index terms
	lastValidA    int // n_A - ((m-1)*d+1), the index-remap bound
	k             int
	exclZone      int
	ignoreTrivial bool
}

// walkDiagonal computes the Pearson correlation for every cell of
// diagonal g, updating scratch in place.
func walkDiagonal(g int, in *kernelInput, scratch *threadScratch) {
	nA := len(in.qs.clean)
	nB := len(in.ts.clean)
	m := in.m
	mInv := 1.0 / float64(m)
	constant := float64(m-1) * mInv * mInv
	lastValidB := nB - ((m-1)*in.d + 1)

	lo := 0
	if -g > lo {
		lo = -g
	}
	hi := nA - m + 1
	if alt := nB - m + 1 - g; alt < hi {
		hi = alt
	}
	if lo >= hi {
		return
	}

	var cov float64
	for i := lo; i < hi; i++ {
		j := i + g

		if i == 0 || j == 0 {
			cov = centeredDot(in.ts.clean, in.qs.clean, j, i, m, in.ts.mean[j], in.qs.mean[i]) * mInv
		} else {
			cov += constant * (in.seeds.a[j]*in.seeds.b[i] - in.seeds.c[j]*in.seeds.d[i])
		}

		if !(in.ts.isFinite[j] && in.qs.isFinite[i]) {
			continue
		}

		var pearson float64
		tConst := in.ts.isConstant[j]
		qConst := in.qs.isConstant[i]
		switch {
		case tConst && qConst:
			pearson = 1.0
		case tConst || qConst:
			pearson = 0.5
		default:
			pearson = cov * in.ts.invStd[j] * in.qs.invStd[i]
		}

		iFixed := in.dmA.toOriginal[i]
		jFixed := in.dmB.toOriginal[j]
		if iFixed > in.lastValidA || jFixed > lastValidB {
			continue
		}

		if in.ignoreTrivial && absInt(iFixed-jFixed) <= in.exclZone {
			continue
		}

		scratch.topK[iFixed].insert(pearson, jFixed)

		if in.ignoreTrivial {
			scratch.topK[jFixed].insert(pearson, iFixed)

			if iFixed != jFixed {
				left, right := iFixed, jFixed
				if left > right {
					left, right = right, left
				}
				if pearson > scratch.rhoL[right] {
					scratch.rhoL[right] = pearson
					scratch.idxL[right] = left
				}
				if pearson > scratch.rhoR[left] {
					scratch.rhoR[left] = pearson
					scratch.idxR[left] = right
				}
			}
		}
	}
}

func centeredDot(t, q []float64, j, i, m int, meanT, meanQ float64) float64 {
	var dot float64
	for x := 0; x < m; x++ {
		dot += (t[j+x] - meanT) * (q[i+x] - meanQ)
	}
	return dot
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// runDiagonalKernel starts one goroutine per entry of ranges, each
// walking a disjoint contiguous range of diags into its own threadScratch, and
// returns one threadScratch per worker for the reducer to merge.
// Uses the same goroutine + sync.WaitGroup fan-out as a row-partitioned
// worker pool would, generalized from row ranges to diagonal ranges.
func runDiagonalKernel(diags []int, ranges []diagonalRange, in *kernelInput) []*threadScratch {
	results := make([]*threadScratch, len(ranges))

	var wg sync.WaitGroup
	for t, r := range ranges {
		wg.Add(1)
		go func(t int, r diagonalRange) {
			defer wg.Done()
			scratch := newThreadScratch(in.l, in.k)
			for _, g := range diags[r.start:r.stop] {
				walkDiagonal(g, in, scratch)
			}
			results[t] = scratch
		}(t, r)
	}
	wg.Wait()

	return results
}
