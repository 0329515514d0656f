package frames

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the valid pixels of a stack.
type Summary struct {
	// Valid and Masked count unmasked and masked elements.
	Valid  int
	Masked int

	// Mean and StdDev are the sample mean and standard deviation of the
	// valid elements. Mean is NaN without valid elements; StdDev needs two.
	Mean   float64
	StdDev float64

	Min float64
	Max float64
}

// Summarize computes statistics over the unmasked elements of s.
func Summarize(s *Stack) Summary {
	valid := make([]float64, 0, len(s.data))
	for i, v := range s.data {
		if s.mask == nil || !s.mask[i] {
			valid = append(valid, v)
		}
	}

	sum := Summary{
		Valid:  len(valid),
		Masked: len(s.data) - len(valid),
		Mean:   math.NaN(),
		StdDev: math.NaN(),
		Min:    math.NaN(),
		Max:    math.NaN(),
	}
	if len(valid) == 0 {
		return sum
	}

	sum.Min = floats.Min(valid)
	sum.Max = floats.Max(valid)
	if len(valid) == 1 {
		sum.Mean = valid[0]
		return sum
	}
	sum.Mean, sum.StdDev = stat.MeanStdDev(valid, nil)
	return sum
}
