package corrections

import "adcorr/pkg/frames"

// CorrectDarkCurrent subtracts base, temporal and flux-dependent dark currents
// from a stack, as detailed in section 3.3.6 of 'Everything SAXS':
//
//	stack - base - temporal·countTime - fluxDependent·stack
//
// countTimes holds one entry for all frames or one per frame. Count times
// must be positive and the dark current rates non-negative.
func CorrectDarkCurrent(
	stack *frames.Stack,
	countTimes []float64,
	base, temporal, fluxDependent float64,
) (*frames.Stack, error) {
	countTime, err := darkCurrentParams(stack, countTimes, base, temporal, fluxDependent)
	if err != nil {
		return nil, err
	}
	return stack.MapFrames(func(k int, v float64) float64 {
		return v - base - temporal*countTime(k) - fluxDependent*v
	}), nil
}

// CorrectDarkCurrentIncidentFlux is CorrectDarkCurrent with the
// flux-dependent term driven by a measured per-frame incident flux rather
// than by the pixel counts:
//
//	stack - base - temporal·countTime - fluxDependent·incidentFlux
//
// incidentFlux holds one entry for all frames or one per frame and must be
// non-negative.
func CorrectDarkCurrentIncidentFlux(
	stack *frames.Stack,
	countTimes, incidentFlux []float64,
	base, temporal, fluxDependent float64,
) (*frames.Stack, error) {
	countTime, err := darkCurrentParams(stack, countTimes, base, temporal, fluxDependent)
	if err != nil {
		return nil, err
	}
	for _, f := range incidentFlux {
		if err := requireNonNegative("incident flux", f); err != nil {
			return nil, err
		}
	}
	flux, err := perFrame("incident flux", incidentFlux, stack.NumFrames())
	if err != nil {
		return nil, err
	}
	return stack.MapFrames(func(k int, v float64) float64 {
		return v - base - temporal*countTime(k) - fluxDependent*flux(k)
	}), nil
}

func darkCurrentParams(stack *frames.Stack, countTimes []float64, base, temporal, fluxDependent float64) (func(int) float64, error) {
	if err := requirePositive("count times", countTimes...); err != nil {
		return nil, err
	}
	if err := requireNonNegative("base dark current", base); err != nil {
		return nil, err
	}
	if err := requireNonNegative("temporal dark current", temporal); err != nil {
		return nil, err
	}
	if err := requireNonNegative("flux dependent dark current", fluxDependent); err != nil {
		return nil, err
	}
	return perFrame("count times", countTimes, stack.NumFrames())
}
