package assert

import (
	"math"
	"reflect"
	"testing"
)

// Equal asserts that the two inputs are identical according to
// reflect.DeepEqual.
func Equal[T any](t *testing.T, expected, actual T) bool {
	t.Helper()

	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("expected: %#v, actual: %#v", expected, actual)
		return false
	}

	return true
}

// InDelta asserts that actual is within delta of expected.
func InDelta(t *testing.T, expected, actual, delta float64) bool {
	t.Helper()

	if math.IsNaN(actual) || math.Abs(expected-actual) > delta {
		t.Errorf("expected: %v ± %v, actual: %v", expected, delta, actual)
		return false
	}

	return true
}

// Len asserts that the slice has exactly n elements.
func Len[T any](t *testing.T, n int, s []T) bool {
	t.Helper()

	if len(s) != n {
		t.Errorf("expected length %d, actual length %d: %#v", n, len(s), s)
		return false
	}

	return true
}

// NoError asserts that err is nil.
func NoError(t *testing.T, err error) bool {
	t.Helper()

	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return false
	}

	return true
}

// False asserts that the input is false.
func False(t *testing.T, actual bool) bool {
	t.Helper()

	return Equal(t, false, actual)
}

// True asserts that the input is true.
func True(t *testing.T, actual bool) bool {
	t.Helper()

	return Equal(t, true, actual)
}

// Zero asserts that the input is equal to T's zero value according to
// reflect.DeepEqual.
func Zero[T any](t *testing.T, actual T) bool {
	t.Helper()

	var zero T
	return Equal(t, zero, actual)
}
