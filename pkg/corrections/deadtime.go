package corrections

import (
	"math"

	"adcorr/pkg/frames"
)

// CorrectDeadtime scales photon counts according to the likelihood of
// overlapping events, as detailed in section 3.3.4 of 'Everything SAXS':
//
//	stack · exp(stack · (pulseSeparation + arrivalSeparation) / countTime)
//
// minimumPulseSeparation is the time required between a prior pulse and the
// current one, minimumArrivalSeparation the time required between the current
// pulse and the next. Both must be non-negative; count times must be positive.
func CorrectDeadtime(
	stack *frames.Stack,
	countTimes []float64,
	minimumPulseSeparation, minimumArrivalSeparation float64,
) (*frames.Stack, error) {
	if err := requirePositive("count times", countTimes...); err != nil {
		return nil, err
	}
	if err := requireNonNegative("minimum pulse separation", minimumPulseSeparation); err != nil {
		return nil, err
	}
	if err := requireNonNegative("minimum arrival separation", minimumArrivalSeparation); err != nil {
		return nil, err
	}
	countTime, err := perFrame("count times", countTimes, stack.NumFrames())
	if err != nil {
		return nil, err
	}

	separation := minimumPulseSeparation + minimumArrivalSeparation
	return stack.MapFrames(func(k int, v float64) float64 {
		return v * math.Exp(v*separation/countTime(k))
	}), nil
}
