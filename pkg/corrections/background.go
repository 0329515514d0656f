package corrections

import "adcorr/pkg/frames"

// SubtractBackground subtracts a background frame from every frame of a
// stack, as detailed in section 3.4.6 of 'Everything SAXS'. The background
// must broadcast against the stack; pixels masked in either are masked in
// the result.
func SubtractBackground(stack, background *frames.Stack) (*frames.Stack, error) {
	return frames.Subtract(stack, background)
}
