package corrections

import (
	"math"

	"adcorr/pkg/frames"
	"adcorr/pkg/geometry"
)

// CorrectSolidAngle scales each pixel by the inverse of the solid angle it
// subtends, cos³θ, as detailed in section 3.4.6 of 'Everything SAXS'.
func CorrectSolidAngle(
	stack *frames.Stack,
	beamCenter, pixelSizes geometry.Pair,
	distance float64,
) (*frames.Stack, error) {
	subtended := scatteringAngles(frameShape(stack), beamCenter, pixelSizes, distance).
		Map(func(theta float64) float64 { return math.Pow(math.Cos(theta), 3) })
	return frames.Divide(stack, subtended)
}
