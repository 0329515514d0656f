package frames

import "fmt"

// BroadcastShapes returns the shape obtained by broadcasting a against b.
// Shapes are aligned on their trailing axes; each aligned pair must be equal
// or contain a 1.
func BroadcastShapes(a, b []int) ([]int, error) {
	n := max(len(a), len(b))
	out := make([]int, n)
	for i := 1; i <= n; i++ {
		da, db := 1, 1
		if i <= len(a) {
			da = a[len(a)-i]
		}
		if i <= len(b) {
			db = b[len(b)-i]
		}
		switch {
		case da == db, db == 1:
			out[n-i] = da
		case da == 1:
			out[n-i] = db
		default:
			return nil, fmt.Errorf("%w: %v and %v", ErrNotBroadcastable, a, b)
		}
	}
	return out, nil
}

// broadcastsTo reports whether src can be broadcast to exactly dst.
func broadcastsTo(src, dst []int) bool {
	out, err := BroadcastShapes(src, dst)
	return err == nil && equalShapes(out, dst)
}

// indexMap returns, for every flat index of dst, the flat index of the src
// element broadcast onto it. src must broadcast to dst.
func indexMap(src, dst []int) []int {
	n := 1
	for _, d := range dst {
		n *= d
	}
	idx := make([]int, n)
	if n == 0 {
		return idx
	}

	// stride in src per dst axis, zero along broadcast axes
	strides := make([]int, len(dst))
	shift := len(dst) - len(src)
	step := 1
	for ax := len(src) - 1; ax >= 0; ax-- {
		if src[ax] != 1 {
			strides[ax+shift] = step
		}
		step *= src[ax]
	}

	counter := make([]int, len(dst))
	pos := 0
	for i := range idx {
		idx[i] = pos
		for ax := len(dst) - 1; ax >= 0; ax-- {
			counter[ax]++
			pos += strides[ax]
			if counter[ax] < dst[ax] {
				break
			}
			pos -= strides[ax] * counter[ax]
			counter[ax] = 0
		}
	}
	return idx
}

func equalShapes(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
