package functions

import (
	"fmt"
	"io"
	"slices"
)

// Any reports whether pred holds for at least one element of s.
func Any[T any](s []T, pred func(T) bool) bool {
	for _, v := range s {
		if pred(v) {
			return true
		}
	}
	return false
}

// Find returns the first element satisfying pred. ok is false when none does
// and v is then the zero value.
func Find[T any](s []T, pred func(T) bool) (v T, ok bool) {
	for _, x := range s {
		if pred(x) {
			return x, true
		}
	}
	return v, false
}

func demoSearch(w io.Writer) {
	is2 := func(x int) bool { return x == 2 }

	vec1 := []int{1, 2, 3}
	vec2 := []int{4, 5, 6}
	fmt.Fprintf(w, "  2 in vec1: %v\n", Any(vec1, is2))
	fmt.Fprintf(w, "  2 in vec2: %v\n", Any(vec2, is2))

	// Arrays are values; slicing one gives a view without copying.
	array1 := [3]int{1, 2, 3}
	array2 := [3]int{4, 5, 6}
	fmt.Fprintf(w, "  2 in array1: %v\n", Any(array1[:], is2))
	fmt.Fprintf(w, "  2 in array2: %v\n", Any(array2[:], is2))

	v, ok := Find(vec1, is2)
	fmt.Fprintf(w, "  find 2 in vec1: (%d, %v)\n", v, ok)
	v, ok = Find(vec2, is2)
	fmt.Fprintf(w, "  find 2 in vec2: (%d, %v)\n", v, ok)

	vec := []int{1, 9, 3, 3, 13, 2}
	fmt.Fprintf(w, "  index of first even: %d\n", slices.IndexFunc(vec, func(x int) bool { return x%2 == 0 }))
	fmt.Fprintf(w, "  index of first negative: %d\n", slices.IndexFunc(vec, func(x int) bool { return x < 0 }))
}
