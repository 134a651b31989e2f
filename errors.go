package matrixprofile

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Use errors.Is against these to branch on the
// kind of failure rather than matching message text, matching the
// sentinel-error idiom used elsewhere in the pack (e.g. lvlath's
// graph.ErrVertexNotFound).
var (
	ErrInputShape               = errors.New("series is not one-dimensional")
	ErrWindowTooLarge           = errors.New("window length is too large or too small for the series")
	ErrInvalidDilation          = errors.New("dilation factor must be at least 1")
	ErrInvalidSelector          = errors.New("selector percentage must be in [0, 1]")
	ErrDegenerateOutput         = errors.New("matrix profile contains a NaN after reduction")
	ErrNonNormalizedUnavailable = errors.New("normalize=false requires Options.NonNormalized to be supplied by the caller")
)

func wrapf(err error, format string, args ...interface{}) error {
	return fmt.Errorf("matrixprofile: %s: %w", fmt.Sprintf(format, args...), err)
}
