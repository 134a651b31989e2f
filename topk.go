package matrixprofile

import (
	"math"
	"sort"
)

// topKBuffer keeps the k largest (Pearson correlation, index) pairs
// seen so far for a single row, stored ascending so that slot 0 is
// the smallest of the currently-kept k (the rejection threshold for
// new candidates) and slot k-1 is the best match found so far.
// Insertion is O(log k) to locate the slot via binary search plus
// O(k) to shift, which beats a heap for the small k values this
// kernel is tuned for. A higher Pearson correlation
// corresponds to a lower distance, so the reducer reverses this order
// when converting to the final ascending-distance profile.
type topKBuffer struct {
	k     int
	dist  []float64
	index []int
}

func newTopKBuffer(k int) topKBuffer {
	dist := make([]float64, k)
	index := make([]int, k)
	for i := range dist {
		dist[i] = math.Inf(-1)
		index[i] = -1
	}
	return topKBuffer{k: k, dist: dist, index: index}
}

// insert places (d, idx) into the buffer if d exceeds the current
// worst (smallest, slot 0) kept entry, preserving ascending order. It
// evicts slot 0 and inserts d at the position a sorted-insert would
// give, shifting the lower slots down by one.
func (b *topKBuffer) insert(d float64, idx int) {
	if b.k == 0 || d <= b.dist[0] {
		return
	}
	pos := sort.Search(b.k, func(i int) bool { return b.dist[i] > d })
	copy(b.dist[0:pos-1], b.dist[1:pos])
	copy(b.index[0:pos-1], b.index[1:pos])
	b.dist[pos-1] = d
	b.index[pos-1] = idx
}

// merge folds another ascending top-k buffer of the same size into b,
// keeping the k largest entries across both, ascending. Used by the
// reducer to combine the per-thread scratch rows that separate
// workers may have written for the same output row.
func (b *topKBuffer) merge(other topKBuffer) {
	merged := newTopKBuffer(b.k)
	i, j := b.k-1, b.k-1
	for t := b.k - 1; t >= 0; t-- {
		var d float64
		var idx int
		takeA := j < 0 || (i >= 0 && b.dist[i] >= other.dist[j])
		if takeA {
			d, idx = b.dist[i], b.index[i]
			i--
		} else {
			d, idx = other.dist[j], other.index[j]
			j--
		}
		merged.dist[t] = d
		merged.index[t] = idx
	}
	*b = merged
}
