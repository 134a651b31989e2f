package matrixprofile

import (
	"math"

	"github.com/diagonalmp/go-matrixprofile/config"
)

// NonNormalized is the collaborator a caller must supply via
// Options.NonNormalized in order to use Normalize: false. The actual
// non-normalized (absolute, non-z-normalized) kernel is out of scope
// for this engine; this interface only defines the extension point a
// caller can implement and plug in.
type NonNormalized interface {
	Stump(TA, TB []float64, m int, ignoreTrivial bool, k int, d int, p float64) (*Profile, error)
}

// Options configures a Stump call. The zero value is not generally
// usable: K defaults to 1 when not positive and D to 1 only when left
// at 0, but callers should set at least M.
type Options struct {
	// M is the window length. Required, M >= 3.
	M int

	// TB is the second series. If nil, this is a self-join: TB = TA
	// and IgnoreTrivial is forced true.
	TB []float64

	// IgnoreTrivial requests self-join semantics (exclusion zone,
	// symmetric updates, left/right profiles). Ignored (forced true)
	// when TB is nil.
	IgnoreTrivial bool

	// K is the number of nearest neighbors to keep per row. Defaults
	// to 1.
	K int

	// D is the dilation factor. Defaults to 1 (no dilation).
	D int

	// Normalize selects z-normalized Euclidean distance (the only
	// kernel this engine implements). Zero value is false; use
	// NewOptions to get the conventional true default. Normalize:
	// false requires NonNormalized to be supplied.
	Normalize bool

	// NonNormalized, when Normalize is false, receives the call
	// instead of the built-in kernel.
	NonNormalized NonNormalized

	// P is the Minkowski p-norm exponent, used only when Normalize is
	// false. Defaults to 2.0.
	P float64

	// Parallelism is the number of worker goroutines. Defaults to
	// config.NumThreads.
	Parallelism int

	// PreciseDiagonalBounds opts into computing the outer diagonal
	// enumeration's lower bound from the real dilation-aware
	// exclusion zone, instead of the default hard-coded excl_zone=0
	// used by the outer enumeration step. Both settings produce the
	// same final profile; this only changes how many cells get
	// enumerated and then rejected.
	PreciseDiagonalBounds bool
}

// NewOptions returns Options populated with this engine's defaults:
// K=1, D=1, Normalize=true, Parallelism=config.NumThreads.
func NewOptions(m int) Options {
	return Options{
		M:           m,
		K:           1,
		D:           1,
		Normalize:   true,
		P:           2.0,
		Parallelism: config.NumThreads,
	}
}

func (o Options) resolve() Options {
	if o.K <= 0 {
		o.K = 1
	}
	if o.D == 0 {
		o.D = 1
	}
	if o.P == 0 {
		o.P = 2.0
	}
	if o.Parallelism <= 0 {
		o.Parallelism = config.NumThreads
	}
	return o
}

// Stump computes the (top-k) z-normalized matrix profile of TA (or of
// TA against opts.TB for an AB-join), using a diagonal-traversal
// incremental Pearson-correlation kernel with dilation support.
func Stump(TA []float64, opts Options) (*Profile, error) {
	opts = opts.resolve()

	if opts.D < 1 {
		return nil, wrapf(ErrInvalidDilation, "d=%d", opts.D)
	}
	if len(TA) == 0 {
		return nil, ErrInputShape
	}

	if !opts.Normalize {
		if opts.NonNormalized == nil {
			return nil, ErrNonNormalizedUnavailable
		}
		return opts.NonNormalized.Stump(TA, opts.TB, opts.M, opts.IgnoreTrivial, opts.K, opts.D, opts.P)
	}

	TB := opts.TB
	ignoreTrivial := opts.IgnoreTrivial
	if TB == nil {
		TB = TA
		ignoreTrivial = true
	}

	dmA := dilate(TA, opts.D)
	dmB := dmA
	if opts.TB != nil {
		dmB = dilate(TB, opts.D)
	}

	m := opts.M
	w := (m-1)*opts.D + 1

	if m < 3 || m > len(dmA.values) || m > len(dmB.values) {
		return nil, wrapf(ErrWindowTooLarge, "m=%d", m)
	}

	l := len(dmA.values) - w + 1
	if l < 1 {
		return nil, wrapf(ErrWindowTooLarge, "window coverage %d exceeds dilated series length %d", w, len(dmA.values))
	}

	qs, err := preprocess(dmA.values, m)
	if err != nil {
		return nil, err
	}
	ts := qs
	if opts.TB != nil {
		ts, err = preprocess(dmB.values, m)
		if err != nil {
			return nil, err
		}
	}

	seeds := buildCovarianceSeeds(qs, ts, m)

	nA := len(dmA.values)
	nB := len(dmB.values)

	outerExclZone := 0
	if opts.PreciseDiagonalBounds {
		// Diagonals are offsets in the dilated layout, where a step of
		// one within a phase is a step of D in the original series.
		outerExclZone = int(math.Ceil(float64(w)/config.ExclZoneDenom)) / opts.D
	}
	diags := enumerateDiagonals(nA, nB, m, outerExclZone, ignoreTrivial)
	ranges := splitDiagonals(diags, nA, nB, m, opts.Parallelism)

	lastValidA := nA - w

	kernelExclZone := int(math.Ceil(float64(w) / config.ExclZoneDenom))

	in := &kernelInput{
		qs: qs, ts: ts,
		seeds:         seeds,
		dmA:           dmA,
		dmB:           dmB,
		m:             m,
		d:             opts.D,
		l:             l,
		lastValidA:    lastValidA,
		k:             opts.K,
		exclZone:      kernelExclZone,
		ignoreTrivial: ignoreTrivial,
	}

	results := runDiagonalKernel(diags, ranges, in)

	return reduce(results, m, l, opts.K)
}
