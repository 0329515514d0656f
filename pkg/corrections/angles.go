package corrections

import (
	"adcorr/pkg/frames"
	"adcorr/pkg/geometry"
)

// Angle-dependent corrections reach geometry only through these hooks and
// pass the beam centre, pixel sizes and distance through whole.
var (
	scatteringAngles = geometry.ScatteringAngles
	azimuthalAngles  = geometry.AzimuthalAngles
)

func frameShape(s *frames.Stack) geometry.Shape {
	h, w := s.FrameShape()
	return geometry.Shape{h, w}
}
