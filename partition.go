package matrixprofile

// diagonalRange is a contiguous slice of the ordered diagonal list
// assigned to a single worker: the diagonals diags[start:stop].
type diagonalRange struct {
	start, stop int
}

// enumerateDiagonals builds the ordered list of diagonal offsets g to
// be walked. exclZone here is the value fed to the *outer* enumeration
// step only; by default this is called with exclZone 0 regardless of
// dilation, leaving the real dilation-aware exclusion check to the
// per-cell rejection in the kernel (see the exclusion check in
// walkDiagonal in diagonal.go). Options.PreciseDiagonalBounds opts
// into passing the correct bound here instead, which is faster but
// numerically identical.
func enumerateDiagonals(nA, nB, m, exclZone int, ignoreTrivial bool) []int {
	if ignoreTrivial {
		lo := exclZone + 1
		hi := nA - m
		diags := make([]int, 0, hi-lo+1)
		for g := lo; g <= hi; g++ {
			diags = append(diags, g)
		}
		return diags
	}

	lo := -(nA - m)
	hi := nB - m
	diags := make([]int, 0, hi-lo+1)
	for g := lo; g <= hi; g++ {
		diags = append(diags, g)
	}
	return diags
}

// diagonalCellCount returns N_g, the number of valid cells on
// diagonal g within the nA x nB distance-matrix rectangle.
func diagonalCellCount(g, nA, nB, m int) int {
	lo := 0
	if -g > lo {
		lo = -g
	}
	hiBound := nA - m + 1
	if alt := nB - m + 1 - g; alt < hiBound {
		hiBound = alt
	}
	n := hiBound - lo
	if n < 0 {
		return 0
	}
	return n
}

// splitDiagonals partitions the ordered diags slice into at most
// nThreads contiguous ranges whose total cell counts are as balanced
// as a greedy running-sum cut can make them. Threads whose share of
// the work would be empty are omitted.
func splitDiagonals(diags []int, nA, nB, m, nThreads int) []diagonalRange {
	if len(diags) == 0 {
		return nil
	}
	if nThreads < 1 {
		nThreads = 1
	}

	counts := make([]int, len(diags))
	total := 0
	for i, g := range diags {
		counts[i] = diagonalCellCount(g, nA, nB, m)
		total += counts[i]
	}

	if total == 0 || nThreads == 1 {
		return []diagonalRange{{start: 0, stop: len(diags)}}
	}

	target := (total + nThreads - 1) / nThreads
	ranges := make([]diagonalRange, 0, nThreads)

	start := 0
	running := 0
	for i := range diags {
		running += counts[i]
		isLast := i == len(diags)-1
		if running >= target && !isLast {
			ranges = append(ranges, diagonalRange{start: start, stop: i + 1})
			start = i + 1
			running = 0
		}
	}
	if start < len(diags) {
		ranges = append(ranges, diagonalRange{start: start, stop: len(diags)})
	}
	return ranges
}
