package corrections

import "adcorr/pkg/frames"

// CorrectFlatfield applies a multiplicative flatfield map to correct for
// inter-pixel sensitivity, as described in section 3.xii of 'The modular
// small-angle X-ray scattering data correction sequence'.
func CorrectFlatfield(stack, flatfield *frames.Stack) (*frames.Stack, error) {
	return frames.Multiply(stack, flatfield)
}
