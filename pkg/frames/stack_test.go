package frames

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewValidatesShape(t *testing.T) {
	_, err := New([]int{4}, make([]float64, 4))
	assert.ErrorIs(t, err, ErrShape)

	_, err = New([]int{2, -1}, nil)
	assert.ErrorIs(t, err, ErrShape)

	_, err = New([]int{2, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrLength)

	_, err = NewMasked([]int{2, 2}, []float64{1, 2, 3, 4}, []bool{true})
	assert.ErrorIs(t, err, ErrLength)
}

func TestNewCopiesInput(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	s, err := New([]int{2, 2}, data)
	require.NoError(t, err)

	data[0] = 100
	assert.Equal(t, 1.0, s.At(0, 0))

	values := s.Values()
	values[1] = 100
	assert.Equal(t, 2.0, s.At(0, 1))
}

func TestFrameAccounting(t *testing.T) {
	s, err := Zeros(2, 3, 4, 5)
	require.NoError(t, err)

	h, w := s.FrameShape()
	assert.Equal(t, 4, h)
	assert.Equal(t, 5, w)
	assert.Equal(t, 20, s.FrameSize())
	assert.Equal(t, 6, s.NumFrames())
	assert.Equal(t, 120, s.Len())
	assert.Equal(t, 4, s.NDim())

	single, err := FromFrame([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 1, single.NumFrames())
}

func TestFromFrameRejectsRaggedRows(t *testing.T) {
	_, err := FromFrame([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrShape)

	_, err = FromFrames([][][]float64{{{1, 2}}, {{1, 2}, {3, 4}}})
	assert.ErrorIs(t, err, ErrShape)
}

func TestZeroSizedStack(t *testing.T) {
	s, err := Zeros(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, []float64{0}, s.FrameSums())
	assert.Equal(t, 0, s.SumLeading().Len())
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want []int
		err  bool
	}{
		{name: "equal", a: []int{2, 3}, b: []int{2, 3}, want: []int{2, 3}},
		{name: "frame onto stack", a: []int{4, 2, 3}, b: []int{2, 3}, want: []int{4, 2, 3}},
		{name: "per frame column", a: []int{4, 2, 3}, b: []int{4, 1, 1}, want: []int{4, 2, 3}},
		{name: "ones expand", a: []int{1, 3}, b: []int{2, 1}, want: []int{2, 3}},
		{name: "mismatch", a: []int{2, 2}, b: []int{2, 3}, err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BroadcastShapes(tt.a, tt.b)
			if tt.err {
				assert.ErrorIs(t, err, ErrNotBroadcastable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCombineBroadcastsFrameOverStack(t *testing.T) {
	stack, err := FromFrames([][][]float64{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}})
	require.NoError(t, err)
	frame, err := FromFrame([][]float64{{10, 20}, {30, 40}})
	require.NoError(t, err)

	sum, err := Combine(stack, frame, func(x, y float64) float64 { return x + y })
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2}, sum.Shape())
	assert.Equal(t, []float64{11, 22, 33, 44, 15, 26, 37, 48}, sum.Values())
	assert.False(t, sum.HasMask())
}

func TestCombinePropagatesMask(t *testing.T) {
	a, err := NewMasked([]int{2, 2}, []float64{1, 2, 3, 4}, []bool{true, false, false, false})
	require.NoError(t, err)
	b, err := NewMasked([]int{2, 2}, []float64{1, 1, 1, 1}, []bool{false, false, false, true})
	require.NoError(t, err)

	out, err := Multiply(a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, true}, out.Mask())
}

func TestCombineRejectsMismatchedShapes(t *testing.T) {
	a, _ := Zeros(2, 2)
	b, _ := Zeros(2, 3)
	_, err := Subtract(a, b)
	assert.ErrorIs(t, err, ErrNotBroadcastable)
}

func TestMapFramesSeesFrameIndex(t *testing.T) {
	stack, err := Zeros(2, 3, 1, 2)
	require.NoError(t, err)

	out := stack.MapFrames(func(k int, v float64) float64 { return float64(k) })
	assert.Equal(t, []float64{0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5}, out.Values())
}

func TestWithMask(t *testing.T) {
	stack, err := FromFrames([][][]float64{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}})
	require.NoError(t, err)
	mask, err := MaskFromFrame([][]bool{{true, false}, {false, true}})
	require.NoError(t, err)

	masked, err := stack.WithMask(mask)
	require.NoError(t, err)
	assert.Equal(t, stack.Values(), masked.Values())
	assert.Equal(t, []bool{true, false, false, true, true, false, false, true}, masked.Mask())
	assert.Equal(t, 2, mask.Count())

	wide, err := MaskFromFrame([][]bool{{true, false, true}, {false, true, false}})
	require.NoError(t, err)
	_, err = stack.WithMask(wide)
	assert.ErrorIs(t, err, ErrNotBroadcastable)
}

func TestWithMaskRejectsLargerMask(t *testing.T) {
	frame, err := FromFrame([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	mask, err := NewMask([]int{2, 2, 2}, make([]bool, 8))
	require.NoError(t, err)

	_, err = frame.WithMask(mask)
	assert.ErrorIs(t, err, ErrNotBroadcastable)
}

func TestFrameSumsSkipMasked(t *testing.T) {
	stack, err := NewMasked([]int{2, 2, 2},
		[]float64{1, 2, 3, 4, 5, 6, 7, 8},
		[]bool{true, false, false, true, false, false, false, false})
	require.NoError(t, err)

	assert.Equal(t, []float64{5, 26}, stack.FrameSums())
}

func TestSumAndMeanLeading(t *testing.T) {
	stack, err := NewMasked([]int{2, 2, 2},
		[]float64{1, 2, 3, 4, 5, 6, 7, 8},
		[]bool{true, false, false, true, true, false, false, true})
	require.NoError(t, err)

	sum := stack.SumLeading()
	assert.Equal(t, []int{2, 2}, sum.Shape())
	assert.Equal(t, []float64{0, 8, 10, 0}, sum.Values())
	assert.Equal(t, []bool{true, false, false, true}, sum.Mask())

	mean := stack.MeanLeading()
	assert.Equal(t, []float64{0, 4, 5, 0}, mean.Values())
	assert.Equal(t, []bool{true, false, false, true}, mean.Mask())
}

func TestFilled(t *testing.T) {
	stack, err := NewMasked([]int{1, 2}, []float64{1, 2}, []bool{true, false})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 2}, stack.Filled(-1))
}

func TestDenseRoundTrip(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	b := mat.NewDense(2, 2, []float64{5, 6, 7, 8})

	stack, err := FromDense(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2}, stack.Shape())
	assert.True(t, mat.Equal(b, stack.Frame(1)))

	_, err = FromDense(a, mat.NewDense(1, 2, nil))
	assert.ErrorIs(t, err, ErrShape)

	assert.Panics(t, func() { stack.Frame(2) })
}

func TestYAMLDocument(t *testing.T) {
	stack, err := NewMasked([]int{1, 2, 2}, []float64{1, 2, 3, 4}, []bool{false, true, false, false})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, stack))

	decoded, err := ReadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, stack.Shape(), decoded.Shape())
	assert.Equal(t, stack.Values(), decoded.Values())
	assert.Equal(t, stack.Mask(), decoded.Mask())
}

func TestReadYAMLRejectsBadLength(t *testing.T) {
	_, err := ReadYAML(bytes.NewBufferString("shape: [2, 2]\nvalues: [1, 2, 3]\n"))
	assert.ErrorIs(t, err, ErrLength)

	mask, err := ReadMaskYAML(bytes.NewBufferString("shape: [1, 2]\nmask: [true, false]\n"))
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, mask.Bits())
}
