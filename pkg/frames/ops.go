package frames

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Map applies fn to every element, keeping the shape and mask.
func (s *Stack) Map(fn func(v float64) float64) *Stack {
	out := make([]float64, len(s.data))
	for i, v := range s.data {
		out[i] = fn(v)
	}
	return s.derive(out)
}

// MapFrames applies fn to every element together with the index of the frame
// it belongs to, counting frames in flattened leading-axis order.
func (s *Stack) MapFrames(fn func(frame int, v float64) float64) *Stack {
	out := make([]float64, len(s.data))
	size := s.FrameSize()
	for i, v := range s.data {
		out[i] = fn(i/size, v)
	}
	return s.derive(out)
}

// Scale returns the stack multiplied by c.
func (s *Stack) Scale(c float64) *Stack {
	out := s.Values()
	floats.Scale(c, out)
	return s.derive(out)
}

// Combine applies fn elementwise to a and b broadcast against each other.
// The result is masked wherever either operand is masked.
func Combine(a, b *Stack, fn func(x, y float64) float64) (*Stack, error) {
	shape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, err
	}

	n, _ := elements(shape)
	ai, bi := identityOrMap(a.shape, shape), identityOrMap(b.shape, shape)
	data := make([]float64, n)
	for i := range data {
		data[i] = fn(a.data[at(ai, i)], b.data[at(bi, i)])
	}

	out := &Stack{shape: shape, data: data}
	if a.mask != nil || b.mask != nil {
		out.mask = make([]bool, n)
		for i := range out.mask {
			out.mask[i] = (a.mask != nil && a.mask[at(ai, i)]) || (b.mask != nil && b.mask[at(bi, i)])
		}
	}
	return out, nil
}

// Multiply returns a*b elementwise with broadcasting.
func Multiply(a, b *Stack) (*Stack, error) {
	return Combine(a, b, func(x, y float64) float64 { return x * y })
}

// Divide returns a/b elementwise with broadcasting.
func Divide(a, b *Stack) (*Stack, error) {
	return Combine(a, b, func(x, y float64) float64 { return x / y })
}

// Subtract returns a-b elementwise with broadcasting.
func Subtract(a, b *Stack) (*Stack, error) {
	return Combine(a, b, func(x, y float64) float64 { return x - y })
}

// WithMask returns a copy of the stack whose mask also covers every element
// set in m. The mask must broadcast to the stack's shape.
func (s *Stack) WithMask(m *Mask) (*Stack, error) {
	if !broadcastsTo(m.shape, s.shape) {
		return nil, fmt.Errorf("%w: mask %v onto stack %v", ErrNotBroadcastable, m.shape, s.shape)
	}
	out := s.Clone()
	if out.mask == nil {
		out.mask = make([]bool, len(out.data))
	}
	mi := identityOrMap(m.shape, s.shape)
	for i := range out.mask {
		out.mask[i] = out.mask[i] || m.bits[at(mi, i)]
	}
	return out, nil
}

// identityOrMap returns nil when no broadcasting is needed.
func identityOrMap(src, dst []int) []int {
	if equalShapes(src, dst) {
		return nil
	}
	return indexMap(src, dst)
}

func at(m []int, i int) int {
	if m == nil {
		return i
	}
	return m[i]
}
