// Package frames provides the N-dimensional frame stack container shared by
// the corrections. A Stack's trailing two axes are the height and width of a
// detector frame; any leading axes index frames (time series, repeats).
//
// A Stack may carry a mask. Masked elements are invalid: elementwise
// combinations propagate the mask and reductions skip masked elements.
package frames

import (
	"errors"
	"fmt"
)

var (
	// ErrShape is returned for shapes with negative extents or fewer than two axes.
	ErrShape = errors.New("invalid shape")

	// ErrLength is returned when a value or mask slice does not match a shape.
	ErrLength = errors.New("length does not match shape")

	// ErrNotBroadcastable is returned when two shapes cannot be broadcast together.
	ErrNotBroadcastable = errors.New("shapes are not broadcastable")
)

// Stack is an immutable stack of frames stored in row-major order.
type Stack struct {
	shape []int
	data  []float64
	mask  []bool // nil when every element is valid
}

// New creates a stack with the given shape, copying data.
func New(shape []int, data []float64) (*Stack, error) {
	return NewMasked(shape, data, nil)
}

// NewMasked creates a stack with the given shape, values and mask. A nil mask
// marks every element valid; otherwise it must have one entry per element.
func NewMasked(shape []int, data []float64, mask []bool) (*Stack, error) {
	if len(shape) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 axes, got %d", ErrShape, len(shape))
	}
	n, err := elements(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("%w: shape %v holds %d values, got %d", ErrLength, shape, n, len(data))
	}
	if mask != nil && len(mask) != n {
		return nil, fmt.Errorf("%w: shape %v holds %d mask bits, got %d", ErrLength, shape, n, len(mask))
	}

	s := &Stack{
		shape: append([]int(nil), shape...),
		data:  append(make([]float64, 0, n), data...),
	}
	if mask != nil {
		s.mask = append(make([]bool, 0, n), mask...)
	}
	return s, nil
}

// Zeros creates a zero-valued stack of the given shape.
func Zeros(shape ...int) (*Stack, error) {
	n, err := elements(shape)
	if err != nil {
		return nil, err
	}
	return New(shape, make([]float64, n))
}

// FromFrame creates a single-frame stack of shape (len(rows), len(rows[0])).
func FromFrame(rows [][]float64) (*Stack, error) {
	h, w := len(rows), 0
	if h > 0 {
		w = len(rows[0])
	}
	data := make([]float64, 0, h*w)
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, i, len(row), w)
		}
		data = append(data, row...)
	}
	return New([]int{h, w}, data)
}

// FromFrames creates a stack of shape (len(frames), height, width).
func FromFrames(frames [][][]float64) (*Stack, error) {
	n, h, w := len(frames), 0, 0
	if n > 0 {
		h = len(frames[0])
		if h > 0 {
			w = len(frames[0][0])
		}
	}
	data := make([]float64, 0, n*h*w)
	for k, frame := range frames {
		if len(frame) != h {
			return nil, fmt.Errorf("%w: frame %d has %d rows, want %d", ErrShape, k, len(frame), h)
		}
		for i, row := range frame {
			if len(row) != w {
				return nil, fmt.Errorf("%w: frame %d row %d has %d columns, want %d", ErrShape, k, i, len(row), w)
			}
			data = append(data, row...)
		}
	}
	return New([]int{n, h, w}, data)
}

// Shape returns a copy of the stack's shape.
func (s *Stack) Shape() []int {
	return append([]int(nil), s.shape...)
}

// NDim returns the number of axes.
func (s *Stack) NDim() int { return len(s.shape) }

// Len returns the total number of elements.
func (s *Stack) Len() int { return len(s.data) }

// FrameShape returns the height and width of a single frame.
func (s *Stack) FrameShape() (height, width int) {
	return s.shape[len(s.shape)-2], s.shape[len(s.shape)-1]
}

// FrameSize returns the number of pixels in a single frame.
func (s *Stack) FrameSize() int {
	h, w := s.FrameShape()
	return h * w
}

// NumFrames returns the number of frames, the product of all leading axes.
// A plain 2D frame counts as one.
func (s *Stack) NumFrames() int {
	n := 1
	for _, d := range s.shape[:len(s.shape)-2] {
		n *= d
	}
	return n
}

// HasMask reports whether the stack carries a mask.
func (s *Stack) HasMask() bool { return s.mask != nil }

// Values returns a copy of the stack's values, masked elements included.
func (s *Stack) Values() []float64 {
	return append([]float64(nil), s.data...)
}

// Mask returns a copy of the mask, or nil if the stack is unmasked.
func (s *Stack) Mask() []bool {
	if s.mask == nil {
		return nil
	}
	return append([]bool(nil), s.mask...)
}

// Filled returns the stack's values with masked elements replaced by v.
func (s *Stack) Filled(v float64) []float64 {
	out := s.Values()
	for i, m := range s.mask {
		if m {
			out[i] = v
		}
	}
	return out
}

// At returns the value at the given multi-index. It panics if the index is
// out of range.
func (s *Stack) At(idx ...int) float64 {
	return s.data[s.offset(idx)]
}

// MaskedAt reports whether the element at the given multi-index is masked.
func (s *Stack) MaskedAt(idx ...int) bool {
	if s.mask == nil {
		return false
	}
	return s.mask[s.offset(idx)]
}

// Clone returns a deep copy of the stack.
func (s *Stack) Clone() *Stack {
	return &Stack{shape: s.Shape(), data: s.Values(), mask: s.Mask()}
}

func (s *Stack) offset(idx []int) int {
	if len(idx) != len(s.shape) {
		panic(fmt.Sprintf("frames: index has %d axes, stack has %d", len(idx), len(s.shape)))
	}
	off := 0
	for ax, i := range idx {
		if i < 0 || i >= s.shape[ax] {
			panic(fmt.Sprintf("frames: index %d out of range for axis %d of size %d", i, ax, s.shape[ax]))
		}
		off = off*s.shape[ax] + i
	}
	return off
}

// derive builds a stack with the receiver's shape and mask and new values.
func (s *Stack) derive(data []float64) *Stack {
	return &Stack{shape: s.Shape(), data: data, mask: s.Mask()}
}

func elements(shape []int) (int, error) {
	n := 1
	for ax, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: axis %d has negative extent %d", ErrShape, ax, d)
		}
		n *= d
	}
	return n, nil
}
