package corrections

import "adcorr/pkg/frames"

// NormalizeThickness divides pixel intensities by the thickness of the
// exposed sample, which must be positive.
func NormalizeThickness(stack *frames.Stack, sampleThickness float64) (*frames.Stack, error) {
	if err := requirePositive("sample thickness", sampleThickness); err != nil {
		return nil, err
	}
	return stack.Map(func(v float64) float64 { return v / sampleThickness }), nil
}
