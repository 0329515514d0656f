package corrections

import "adcorr/pkg/frames"

// NormalizeTransmittedFlux divides every frame by its total observed flux,
// the sum of its unmasked pixels, normalizing for incident flux and
// transmissibility as detailed in section 4 of 'The modular small-angle
// X-ray scattering data correction sequence'. A frame with zero total flux
// becomes ±Inf (or NaN where the pixel is zero too).
func NormalizeTransmittedFlux(stack *frames.Stack) (*frames.Stack, error) {
	sums := stack.FrameSums()
	return stack.MapFrames(func(k int, v float64) float64 {
		return v / sums[k]
	}), nil
}

// NormalizeIncidentFlux divides every frame by a separately measured flux,
// one entry for all frames or one per frame. Fluxes must be positive.
func NormalizeIncidentFlux(stack *frames.Stack, flux []float64) (*frames.Stack, error) {
	if err := requirePositive("flux", flux...); err != nil {
		return nil, err
	}
	frameFlux, err := perFrame("flux", flux, stack.NumFrames())
	if err != nil {
		return nil, err
	}
	return stack.MapFrames(func(k int, v float64) float64 {
		return v / frameFlux(k)
	}), nil
}
