package corrections

import "adcorr/pkg/frames"

// AverageAllFrames collapses every leading axis of a stack into a single
// frame by summing. It does not divide by the frame count; use MeanAllFrames
// for a true mean. A pixel is masked in the result only if it was masked in
// every frame.
func AverageAllFrames(stack *frames.Stack) (*frames.Stack, error) {
	return stack.SumLeading(), nil
}

// MeanAllFrames collapses every leading axis of a stack into the per-pixel
// mean of its unmasked values. A pixel masked in every frame stays masked.
func MeanAllFrames(stack *frames.Stack) (*frames.Stack, error) {
	return stack.MeanLeading(), nil
}
