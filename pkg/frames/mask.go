package frames

import "fmt"

// Mask is a boolean array in which true marks an invalid pixel. It is applied
// to a Stack with Stack.WithMask, broadcasting against the stack's shape.
type Mask struct {
	shape []int
	bits  []bool
}

// NewMask creates a mask with the given shape, copying bits.
func NewMask(shape []int, bits []bool) (*Mask, error) {
	n, err := elements(shape)
	if err != nil {
		return nil, err
	}
	if len(bits) != n {
		return nil, fmt.Errorf("%w: shape %v holds %d mask bits, got %d", ErrLength, shape, n, len(bits))
	}
	return &Mask{shape: append([]int(nil), shape...), bits: append([]bool(nil), bits...)}, nil
}

// MaskFromFrame creates a 2D mask from rows of bits.
func MaskFromFrame(rows [][]bool) (*Mask, error) {
	h, w := len(rows), 0
	if h > 0 {
		w = len(rows[0])
	}
	bits := make([]bool, 0, h*w)
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, i, len(row), w)
		}
		bits = append(bits, row...)
	}
	return NewMask([]int{h, w}, bits)
}

// Shape returns a copy of the mask's shape.
func (m *Mask) Shape() []int {
	return append([]int(nil), m.shape...)
}

// Bits returns a copy of the mask bits in row-major order.
func (m *Mask) Bits() []bool {
	return append([]bool(nil), m.bits...)
}

// Count returns the number of masked entries.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}
