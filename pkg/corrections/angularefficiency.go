package corrections

import (
	"math"

	"adcorr/pkg/frames"
	"adcorr/pkg/geometry"
)

// CorrectAngularEfficiency corrects for loss due to the angular efficiency of
// the detector head, as described in section 3.xiii and appendix C of 'The
// modular small-angle X-ray scattering data correction sequence'. Pixels are
// divided by the absorption efficiency 1 - exp(-μt / cos θ) of a detector
// layer with absorption coefficient μ and thickness t, both strictly positive.
func CorrectAngularEfficiency(
	stack *frames.Stack,
	beamCenter, pixelSizes geometry.Pair,
	distance float64,
	absorptionCoefficient, thickness float64,
) (*frames.Stack, error) {
	if err := requirePositive("absorption coefficient", absorptionCoefficient); err != nil {
		return nil, err
	}
	if err := requirePositive("thickness", thickness); err != nil {
		return nil, err
	}

	attenuation := absorptionCoefficient * thickness
	efficiency := scatteringAngles(frameShape(stack), beamCenter, pixelSizes, distance).
		Map(func(theta float64) float64 { return -math.Expm1(-attenuation / math.Cos(theta)) })
	return frames.Divide(stack, efficiency)
}
