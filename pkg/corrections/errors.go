// Package corrections implements pixel-wise corrections for stacks of 2D
// detector frames, following 'Everything SAXS: small-angle scattering pattern
// collection and correction' (https://doi.org/10.1088/0953-8984/25/38/383201)
// and 'The modular small-angle X-ray scattering data correction sequence'
// (https://doi.org/10.1107/S1600576717015096).
//
// Every correction is a pure function: it leaves its input untouched and
// returns a new stack. Masked input pixels stay masked in the output.
// Parameter misuse is reported as ErrInvalidParameter; numerically
// degenerate but physically reachable inputs, such as a zero flux sum,
// propagate as Inf or NaN instead.
package corrections

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is wrapped by every validation failure.
var ErrInvalidParameter = errors.New("invalid parameter")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

// perFrame resolves a per-frame parameter of length 1 or numFrames into a
// lookup by frame index.
func perFrame(name string, values []float64, numFrames int) (func(k int) float64, error) {
	switch len(values) {
	case 1:
		v := values[0]
		return func(int) float64 { return v }, nil
	case numFrames:
		vs := append([]float64(nil), values...)
		return func(k int) float64 { return vs[k] }, nil
	}
	return nil, invalidf("%s must have 1 or %d entries, got %d", name, numFrames, len(values))
}

func requirePositive(name string, values ...float64) error {
	for _, v := range values {
		if !(v > 0) {
			return invalidf("%s must be positive, got %v", name, v)
		}
	}
	return nil
}

func requireNonNegative(name string, v float64) error {
	if !(v >= 0) {
		return invalidf("%s must be non-negative, got %v", name, v)
	}
	return nil
}

func requireFraction(name string, v float64) error {
	if !(v >= 0 && v <= 1) {
		return invalidf("%s must lie in [0, 1], got %v", name, v)
	}
	return nil
}
