package corrections

import "adcorr/pkg/frames"

// CorrectDisplacedVolume scales a stack by the fraction of solvent retained
// once the analyte has displaced displacedFraction of it, as described in
// section 3.xviii and appendix B of 'The modular small-angle X-ray
// scattering data correction sequence'. The fraction must lie in [0, 1].
func CorrectDisplacedVolume(stack *frames.Stack, displacedFraction float64) (*frames.Stack, error) {
	if err := requireFraction("displaced fraction", displacedFraction); err != nil {
		return nil, err
	}
	return stack.Scale(1 - displacedFraction), nil
}
