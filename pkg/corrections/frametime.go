package corrections

import "adcorr/pkg/frames"

// NormalizeFrameTime divides each frame by its count time, as detailed in
// section 3.4.3 of 'Everything SAXS'. Count times must be positive.
func NormalizeFrameTime(stack *frames.Stack, countTimes []float64) (*frames.Stack, error) {
	if err := requirePositive("count times", countTimes...); err != nil {
		return nil, err
	}
	countTime, err := perFrame("count times", countTimes, stack.NumFrames())
	if err != nil {
		return nil, err
	}
	return stack.MapFrames(func(k int, v float64) float64 {
		return v / countTime(k)
	}), nil
}
