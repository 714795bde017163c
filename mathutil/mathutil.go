// Package mathutil provides the small numeric helpers shared by the
// other packages.
package mathutil

import "golang.org/x/exp/constraints"

type signedOrFloat interface {
	constraints.Signed | constraints.Float
}

// Clamp limits v to the [lo, hi] range.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Min returns the smallest of the given values.
func Min[T constraints.Ordered](first T, rest ...T) T {
	result := first
	for _, v := range rest {
		if v < result {
			result = v
		}
	}
	return result
}

// Max returns the largest of the given values.
func Max[T constraints.Ordered](first T, rest ...T) T {
	result := first
	for _, v := range rest {
		if v > result {
			result = v
		}
	}
	return result
}

func Abs[T signedOrFloat](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
