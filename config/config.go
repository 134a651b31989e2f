// Package config holds the process-wide tunables used by the matrix
// profile engine. They are exported mutable package variables rather
// than constants so that a host application can adjust them once at
// startup.
package config

import "runtime"

var (
	// ExclZoneDenom sets the self-join exclusion zone width as
	// ceil(w / ExclZoneDenom), where w is the covered span of a
	// subsequence.
	ExclZoneDenom = 4.0

	// StdDevThreshold is the minimum standard deviation for a
	// subsequence to be considered non-constant. Below this, the
	// subsequence's inverse standard deviation is reported as 0 and it
	// is flagged constant.
	StdDevThreshold = 1e-7

	// PNormThreshold is the minimum squared-distance value (2m(1-ρ))
	// below which a reported distance is clamped to exactly 0 rather
	// than the square root of a near-zero (possibly negative due to
	// floating point drift) value.
	PNormThreshold = 1e-14

	// NumThreads is the default degree of parallelism used to split
	// diagonal work across workers when a caller does not request a
	// specific parallelism.
	NumThreads = runtime.NumCPU()
)
