package corrections

import (
	"math"

	"adcorr/pkg/frames"
	"adcorr/pkg/geometry"
)

// DefaultHorizontalPolarization describes an unpolarized source.
const DefaultHorizontalPolarization = 0.5

// CorrectPolarization corrects for the polarization of the incident beam, as
// detailed in section 3.4.1 of 'Everything SAXS'. Each pixel is multiplied by
//
//	h·(1 - (sin φ · sin θ)²) + (1 - h)·(1 - (cos φ · sin θ)²)
//
// where θ is the scattering angle, φ the unscaled azimuthal angle and h the
// fraction of radiation polarized in the horizontal plane, which must lie in
// [0, 1].
func CorrectPolarization(
	stack *frames.Stack,
	beamCenter, pixelSizes geometry.Pair,
	distance float64,
	horizontalPolarization float64,
) (*frames.Stack, error) {
	if err := requireFraction("horizontal polarization", horizontalPolarization); err != nil {
		return nil, err
	}

	shape := frameShape(stack)
	scattering := scatteringAngles(shape, beamCenter, pixelSizes, distance)
	azimuths := azimuthalAngles(shape, beamCenter)

	h := horizontalPolarization
	factors, err := frames.Combine(scattering, azimuths, func(theta, phi float64) float64 {
		sinTheta := math.Sin(theta)
		horizontal := math.Sin(phi) * sinTheta
		vertical := math.Cos(phi) * sinTheta
		return h*(1-horizontal*horizontal) + (1-h)*(1-vertical*vertical)
	})
	if err != nil {
		return nil, err
	}
	return frames.Multiply(stack, factors)
}
