package corrections

import (
	"math"

	"adcorr/pkg/frames"
	"adcorr/pkg/geometry"
)

// CorrectSelfAbsorption corrects for transmission loss due to differences in
// observation angle, as detailed in section 3.4.7 of 'Everything SAXS'.
//
// For transmissibility T = exp(-μt) and sec = 1/cos θ each pixel is scaled by
//
//	(1 - T^(sec-1)) / (ln T · (1 - sec))
//
// which is a removable 0/0 wherever sec == 1 (on-axis pixels) or T == 1
// (μ or t zero). Those pixels take the limiting factor of exactly 1.
// A negative absorption coefficient or thickness is rejected.
func CorrectSelfAbsorption(
	stack *frames.Stack,
	beamCenter, pixelSizes geometry.Pair,
	distance float64,
	absorptionCoefficient, thickness float64,
) (*frames.Stack, error) {
	factors, err := SelfAbsorptionFactors(frameShape(stack), beamCenter, pixelSizes, distance, absorptionCoefficient, thickness)
	if err != nil {
		return nil, err
	}
	return frames.Multiply(stack, factors)
}

// SelfAbsorptionFactors returns the per-pixel self-absorption correction
// factors applied by CorrectSelfAbsorption.
func SelfAbsorptionFactors(
	shape geometry.Shape,
	beamCenter, pixelSizes geometry.Pair,
	distance float64,
	absorptionCoefficient, thickness float64,
) (*frames.Stack, error) {
	if err := requireNonNegative("absorption coefficient", absorptionCoefficient); err != nil {
		return nil, err
	}
	if err := requireNonNegative("thickness", thickness); err != nil {
		return nil, err
	}

	logT := -absorptionCoefficient * thickness
	transmissibility := math.Exp(logT)
	angles := scatteringAngles(shape, beamCenter, pixelSizes, distance)
	return angles.Map(func(theta float64) float64 {
		sec := 1 / math.Cos(theta)
		if sec == 1 || transmissibility == 1 {
			return 1
		}
		// 1 - T^(sec-1), without cancellation for sec close to 1
		num := -math.Expm1((sec - 1) * logT)
		return num / (logT * (1 - sec))
	}), nil
}
