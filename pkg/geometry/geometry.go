// Package geometry derives per-pixel angles from a flat detector's geometry.
//
// Pixel displacements from the beam centre are measured at pixel centres:
// for row i and column j,
//
//	d0 = (i + 0.5 - beamCenter[0]) * pixelSizes[0]
//	d1 = (j + 0.5 - beamCenter[1]) * pixelSizes[1]
//
// so component 0 of every Pair refers to frame axis 0 (rows) and component 1
// to frame axis 1 (columns). Geometry parameters are never validated: a zero
// distance saturates scattering angles at π/2 and a negative distance flips
// their sign.
package geometry

import (
	"math"

	"adcorr/pkg/frames"
)

// Shape is the (height, width) of a frame.
type Shape [2]int

// Pair holds a per-axis quantity such as a beam centre in pixels or a pixel
// size in real-space units, indexed by frame axis.
type Pair [2]float64

// ScatteringAngles returns, for every pixel, the angle between the incident
// beam and the line from the sample to the pixel: atan(hypot(d0, d1) / distance).
func ScatteringAngles(shape Shape, beamCenter, pixelSizes Pair, distance float64) *frames.Stack {
	d0 := displacements(shape[0], beamCenter[0], pixelSizes[0])
	d1 := displacements(shape[1], beamCenter[1], pixelSizes[1])
	return angleMap(d0, d1, func(r, c float64) float64 {
		return math.Atan(math.Hypot(r, c) / distance)
	})
}

// AzimuthalAngles returns the in-plane angle of every pixel around the beam
// centre using unscaled pixel-index displacements.
func AzimuthalAngles(shape Shape, beamCenter Pair) *frames.Stack {
	return ScaledAzimuthalAngles(shape, beamCenter, Pair{1, 1})
}

// ScaledAzimuthalAngles returns the in-plane angle of every pixel around the
// beam centre, atan(d0 / d1), using real-space displacements. Pixels in line
// with the centre along axis 0 take the limiting value π/2 and the centre
// itself takes 0, so every angle lies in (-π/2, π/2].
func ScaledAzimuthalAngles(shape Shape, beamCenter, pixelSizes Pair) *frames.Stack {
	d0 := displacements(shape[0], beamCenter[0], pixelSizes[0])
	d1 := displacements(shape[1], beamCenter[1], pixelSizes[1])
	return angleMap(d0, d1, azimuth)
}

func azimuth(r, c float64) float64 {
	if c == 0 {
		if r == 0 {
			return 0
		}
		return math.Pi / 2
	}
	return math.Atan(r / c)
}

// displacements returns the signed distance of each pixel centre along one
// axis from the beam centre.
func displacements(n int, center, size float64) []float64 {
	d := make([]float64, max(n, 0))
	for i := range d {
		d[i] = (float64(i) + 0.5 - center) * size
	}
	return d
}

func angleMap(d0, d1 []float64, fn func(r, c float64) float64) *frames.Stack {
	data := make([]float64, 0, len(d0)*len(d1))
	for _, r := range d0 {
		for _, c := range d1 {
			data = append(data, fn(r, c))
		}
	}
	angles, err := frames.New([]int{len(d0), len(d1)}, data)
	if err != nil {
		// the shape is built from the displacement slices themselves
		panic(err)
	}
	return angles
}
