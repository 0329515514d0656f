package corrections

import (
	"fmt"

	"adcorr/pkg/frames"
)

// MaskFrames marks the pixels set in mask as invalid in every frame of a
// stack, leaving values untouched. Pixels already masked stay masked. The
// mask must broadcast to the stack's shape.
func MaskFrames(stack *frames.Stack, mask *frames.Mask) (*frames.Stack, error) {
	masked, err := stack.WithMask(mask)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	return masked, nil
}
