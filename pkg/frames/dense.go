package frames

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromDense builds a stack from gonum matrices. A single matrix gives a 2D
// frame; several give a stack of shape (len(ms), rows, cols). All matrices
// must share dimensions.
func FromDense(ms ...mat.Matrix) (*Stack, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("%w: no matrices", ErrShape)
	}
	r, c := ms[0].Dims()
	data := make([]float64, 0, len(ms)*r*c)
	for k, m := range ms {
		mr, mc := m.Dims()
		if mr != r || mc != c {
			return nil, fmt.Errorf("%w: matrix %d is %dx%d, want %dx%d", ErrShape, k, mr, mc, r, c)
		}
		for i := 0; i < r; i++ {
			data = append(data, mat.Row(nil, i, m)...)
		}
	}
	if len(ms) == 1 {
		return New([]int{r, c}, data)
	}
	return New([]int{len(ms), r, c}, data)
}

// Frame returns a copy of the k-th frame's values as a matrix, counting frames
// in flattened leading-axis order. Masked pixels keep their stored values.
// An empty frame yields an empty matrix. Frame panics if k is out of range.
func (s *Stack) Frame(k int) *mat.Dense {
	if k < 0 || k >= s.NumFrames() {
		panic(fmt.Sprintf("frames: frame %d out of range [0,%d)", k, s.NumFrames()))
	}
	h, w := s.FrameShape()
	if h == 0 || w == 0 {
		return &mat.Dense{}
	}
	size := h * w
	return mat.NewDense(h, w, append([]float64(nil), s.data[k*size:(k+1)*size]...))
}
