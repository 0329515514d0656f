package corrections

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adcorr/pkg/frames"
)

// isClose mirrors the tolerances used for the published reference values.
var isClose = cmpopts.EquateApprox(1e-5, 1e-8)

func frame2x2(t *testing.T) *frames.Stack {
	t.Helper()
	s, err := frames.FromFrame([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	return s
}

func frame3x3(t *testing.T) *frames.Stack {
	t.Helper()
	s, err := frames.FromFrame([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)
	return s
}

func stack2x2x2(t *testing.T) *frames.Stack {
	t.Helper()
	s, err := frames.FromFrames([][][]float64{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}})
	require.NoError(t, err)
	return s
}

// diagonalMasked2x2 is frame2x2 with its main diagonal masked.
func diagonalMasked2x2(t *testing.T) *frames.Stack {
	t.Helper()
	s, err := frames.NewMasked([]int{2, 2}, []float64{1, 2, 3, 4}, []bool{true, false, false, true})
	require.NoError(t, err)
	return s
}

func assertValues(t *testing.T, want []float64, got *frames.Stack) {
	t.Helper()
	if diff := cmp.Diff(want, got.Values(), isClose); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

// assertMasked compares the unmasked values of got, with masked entries of
// want ignored, and requires the mask to match exactly.
func assertMasked(t *testing.T, want []float64, mask []bool, got *frames.Stack) {
	t.Helper()
	require.Equal(t, mask, got.Mask())
	wantFilled := append([]float64(nil), want...)
	for i, m := range mask {
		if m {
			wantFilled[i] = 0
		}
	}
	if diff := cmp.Diff(wantFilled, got.Filled(0), isClose); diff != "" {
		t.Errorf("unmasked values mismatch (-want +got):\n%s", diff)
	}
}

func assertInvalid(t *testing.T, err error) {
	t.Helper()
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
