package frames

import "gonum.org/v1/gonum/floats"

// FrameSums returns the sum of each frame's unmasked pixels, one entry per
// frame in flattened leading-axis order.
func (s *Stack) FrameSums() []float64 {
	n, size := s.NumFrames(), s.FrameSize()
	sums := make([]float64, n)
	for k := range sums {
		frame := s.data[k*size : (k+1)*size]
		if s.mask == nil {
			sums[k] = floats.Sum(frame)
			continue
		}
		bits := s.mask[k*size : (k+1)*size]
		for i, v := range frame {
			if !bits[i] {
				sums[k] += v
			}
		}
	}
	return sums
}

// SumLeading collapses every leading axis, summing unmasked contributions
// per pixel into a single (height, width) frame. A pixel is masked in the
// result only if all of its contributions were masked.
func (s *Stack) SumLeading() *Stack {
	sum, _ := s.reduceLeading()
	return sum
}

// MeanLeading collapses every leading axis into the per-pixel mean of the
// unmasked contributions. A pixel with no unmasked contributions is masked
// and holds zero.
func (s *Stack) MeanLeading() *Stack {
	mean, counts := s.reduceLeading()
	for i, c := range counts {
		if c > 0 {
			mean.data[i] /= float64(c)
		}
	}
	return mean
}

func (s *Stack) reduceLeading() (*Stack, []int) {
	h, w := s.FrameShape()
	size := h * w
	out := &Stack{shape: []int{h, w}, data: make([]float64, size)}
	counts := make([]int, size)

	for k := 0; k < s.NumFrames(); k++ {
		frame := s.data[k*size : (k+1)*size]
		if s.mask == nil {
			floats.Add(out.data, frame)
			for i := range counts {
				counts[i]++
			}
			continue
		}
		bits := s.mask[k*size : (k+1)*size]
		for i, v := range frame {
			if !bits[i] {
				out.data[i] += v
				counts[i]++
			}
		}
	}

	if s.mask != nil {
		out.mask = make([]bool, size)
		for i, c := range counts {
			out.mask[i] = c == 0
		}
	}
	return out, counts
}
