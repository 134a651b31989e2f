package matrixprofile

import (
	"math"

	"github.com/diagonalmp/go-matrixprofile/config"
)

// Profile is the output of a matrix profile computation: for every
// subsequence in the query series, the top-k nearest-neighbor
// Euclidean distances (ascending) and their indices in the target
// series, plus the self-join-only top-1 left and right profiles.
type Profile struct {
	K int

	// Dist[i] holds the k ascending distances for row i; Index[i]
	// holds the corresponding target-series indices.
	Dist  [][]float64
	Index [][]int

	// Left/right profiles are only meaningful for self-joins;
	// otherwise every entry is +Inf / -1 (as is any self-join row
	// with no neighbour on that side).
	LeftDist   []float64
	LeftIndex  []int
	RightDist  []float64
	RightIndex []int
}

// pearsonToDistance converts a Pearson correlation to a z-normalized
// Euclidean distance, clamping near-zero squared distances to exactly
// zero via config.PNormThreshold before taking the square root.
func pearsonToDistance(rho float64, m int) float64 {
	pNorm := math.Abs(2 * float64(m) * (1 - rho))
	if pNorm < config.PNormThreshold {
		pNorm = 0.0
	}
	return math.Sqrt(pNorm)
}

// reduce merges the per-thread scratch buffers produced by
// runDiagonalKernel into a single Profile, converting Pearson
// correlations to distances only once, after every worker's
// contribution has been folded in.
func reduce(results []*threadScratch, m int, l, k int) (*Profile, error) {
	merged := newThreadScratch(l, k)
	for _, r := range results {
		for row := 0; row < l; row++ {
			merged.topK[row].merge(r.topK[row])
			if r.rhoL[row] > merged.rhoL[row] {
				merged.rhoL[row] = r.rhoL[row]
				merged.idxL[row] = r.idxL[row]
			}
			if r.rhoR[row] > merged.rhoR[row] {
				merged.rhoR[row] = r.rhoR[row]
				merged.idxR[row] = r.idxR[row]
			}
		}
	}

	p := &Profile{
		K:          k,
		Dist:       make([][]float64, l),
		Index:      make([][]int, l),
		LeftDist:   make([]float64, l),
		LeftIndex:  merged.idxL,
		RightDist:  make([]float64, l),
		RightIndex: merged.idxR,
	}

	for row := 0; row < l; row++ {
		dist := make([]float64, k)
		index := make([]int, k)
		// merged.topK[row] is ascending by Pearson correlation; a
		// higher correlation is a lower distance, so reverse it while
		// converting to obtain ascending distance order.
		for col := 0; col < k; col++ {
			src := k - 1 - col
			dist[col] = pearsonToDistance(merged.topK[row].dist[src], m)
			index[col] = merged.topK[row].index[src]
			if math.IsNaN(dist[col]) {
				return nil, wrapf(ErrDegenerateOutput, "row %d, col %d", row, col)
			}
		}
		p.Dist[row] = dist
		p.Index[row] = index

		p.LeftDist[row] = pearsonToDistance(merged.rhoL[row], m)
		p.RightDist[row] = pearsonToDistance(merged.rhoR[row], m)
	}

	return p, nil
}
