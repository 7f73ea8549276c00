package functions

import (
	"fmt"
	"io"
	"iter"
)

// Number is the set of element types Sum can add.
type Number interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float64
}

// Naturals yields 0, 1, 2, ... until the consumer stops. Nothing is computed
// ahead of the consumer.
func Naturals() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for n := uint32(0); ; n++ {
			if !yield(n) {
				return
			}
		}
	}
}

// Map transforms every element of seq with f, lazily.
func Map[T, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Filter keeps the elements for which keep returns true.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// TakeWhile yields elements until pred first fails, then stops pulling from
// seq. This is what makes an infinite source usable.
func TakeWhile[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !pred(v) || !yield(v) {
				return
			}
		}
	}
}

// Reduce folds seq into a single value, left to right, starting at init.
func Reduce[T, U any](seq iter.Seq[T], init U, f func(U, T) U) U {
	acc := init
	for v := range seq {
		acc = f(acc, v)
	}
	return acc
}

// Sum adds every element of seq.
func Sum[T Number](seq iter.Seq[T]) T {
	return Reduce(seq, T(0), func(acc, v T) T { return acc + v })
}

func isOdd(n uint64) bool { return n%2 == 1 }

// SumOfSquaredOddNumbersImperative sums the odd squares below upper with a
// plain loop and an accumulator. Squares are computed in uint64 so n*n
// cannot wrap back under upper.
func SumOfSquaredOddNumbersImperative(upper uint32) uint64 {
	var acc uint64
	for n := uint64(0); ; n++ {
		nSquared := n * n
		if nSquared >= uint64(upper) {
			break
		}
		if isOdd(nSquared) {
			acc += nSquared
		}
	}
	return acc
}

// SumOfSquaredOddNumbers computes the same value as a pipeline:
// naturals → square → take while below upper → keep odd → sum.
func SumOfSquaredOddNumbers(upper uint32) uint64 {
	squares := Map(Naturals(), func(n uint32) uint64 { return uint64(n) * uint64(n) })
	below := TakeWhile(squares, func(sq uint64) bool { return sq < uint64(upper) })
	return Sum(Filter(below, isOdd))
}

func demoHigherOrder(w io.Writer) {
	const upper = 1000
	fmt.Fprintf(w, "  sum of all odd squares below %d\n", upper)
	fmt.Fprintf(w, "  imperative style: %d\n", SumOfSquaredOddNumbersImperative(upper))
	fmt.Fprintf(w, "  functional style: %d\n", SumOfSquaredOddNumbers(upper))
}
