package matrixprofile

// dilationMap is the result of remapping a series under a dilation
// factor d: the reordered series such that every d-th sample becomes
// contiguous, plus the table that recovers the original index from a
// position in the remapped series.
type dilationMap struct {
	values     []float64
	toOriginal []int
}

// dilate regroups T so that samples (0, d, 2d, ...), then
// (1, d+1, 2d+1, ...), and so on for each of the d phases are laid out
// contiguously. A subsequence of length m that is contiguous in the
// dilated layout corresponds to a dilated subsequence T[i], T[i+d],
// ..., T[i+(m-1)*d] in the original series. The trailing partial-phase
// values (phases that cannot host a full window because their own
// remapped span is cut short) are still included in the mapping; a
// dilated window straddles a phase boundary exactly when its original
// start index exceeds len(T) - ((m-1)*d+1), which is the bound the
// diagonal kernel checks against directly (see lastValidA in
// diagonal.go) rather than re-deriving it per window.
func dilate(T []float64, d int) dilationMap {
	n := len(T)
	if d <= 1 {
		toOriginal := make([]int, n)
		for i := range toOriginal {
			toOriginal[i] = i
		}
		values := make([]float64, n)
		copy(values, T)
		return dilationMap{values: values, toOriginal: toOriginal}
	}

	values := make([]float64, 0, n)
	toOriginal := make([]int, 0, n)
	for phase := 0; phase < d; phase++ {
		for idx := phase; idx < n; idx += d {
			values = append(values, T[idx])
			toOriginal = append(toOriginal, idx)
		}
	}
	return dilationMap{values: values, toOriginal: toOriginal}
}
