package util

import "golang.org/x/exp/constraints"

// Number is any type that supports both ordering and arithmetic.
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp returns Max(lo, Min(v, hi)). If lo > hi, lo wins.
func Clamp[T constraints.Ordered](lo, v, hi T) T {
	return Max(lo, Min(v, hi))
}

// Max returns the largest provided argument. If no arguments are provided, it
// returns the zero value for T.
func Max[T constraints.Ordered](v ...T) T {
	if len(v) == 0 {
		var z T
		return z
	}

	m := v[0]
	for _, o := range v[1:] {
		if o > m {
			m = o
		}
	}

	return m
}

// Min returns the smallest provided argument. If no arguments are provided, it
// returns the zero value for T.
func Min[T constraints.Ordered](v ...T) T {
	if len(v) == 0 {
		var z T
		return z
	}

	m := v[0]
	for _, o := range v[1:] {
		if o < m {
			m = o
		}
	}

	return m
}

// Abs returns the absolute value of v. For floats, -0 stays -0.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
