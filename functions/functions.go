// Package functions covers functions, methods, closures, functions as values
// in and out of other functions, lazy iterator pipelines and functions that
// never return.
package functions

import (
	"fmt"
	"io"
	"strconv"

	"github.com/marcodamonte/concepts/internal/ruler"
)

// Run prints every functions demo to w, in order.
func Run(w io.Writer) {
	ruler.Section(w, "Functions — early return, no-result functions, fizzbuzz")
	FizzBuzzTo(w, 100)

	ruler.Section(w, "Methods — constructors, value vs pointer receivers, consuming")
	demoMethods(w)

	ruler.Section(w, "Closures — literals, annotated vs inferred")
	demoClosures(w)

	ruler.Section(w, "Capture — by reference, mutation, copy-then-capture")
	demoCapture(w)

	ruler.Section(w, "Closures as inputs — func parameters")
	demoInputs(w)

	ruler.Section(w, "Closures as outputs — factories, stateful, once")
	demoOutputs(w)

	ruler.Section(w, "Search — Any, Find, slices.IndexFunc")
	demoSearch(w)

	ruler.Section(w, "Higher-order — sum of odd squares, imperative vs iter.Seq")
	demoHigherOrder(w)

	ruler.Section(w, "Diverging — panic, continue, functions that never return")
	demoDiverging(w)
}

// IsDivisibleBy reports whether lhs is a multiple of rhs. Division by zero
// is answered early with false.
func IsDivisibleBy(lhs, rhs uint32) bool {
	if rhs == 0 {
		return false
	}
	return lhs%rhs == 0
}

// FizzBuzz returns the fizzbuzz word for n, or n itself.
func FizzBuzz(n uint32) string {
	switch {
	case IsDivisibleBy(n, 15):
		return "fizzbuzz"
	case IsDivisibleBy(n, 3):
		return "fizz"
	case IsDivisibleBy(n, 5):
		return "buzz"
	default:
		return strconv.FormatUint(uint64(n), 10)
	}
}

// FizzBuzzTo writes FizzBuzz(1..n) to w, one per line. A function with no
// result list returns nothing at all; there is no unit value to ignore.
func FizzBuzzTo(w io.Writer, n uint32) {
	FizzBuzzRange(w, 1, n)
}

// FizzBuzzRange writes FizzBuzz(from..to), both ends included. The counter
// is a uint64 so to == math.MaxUint32 still terminates.
func FizzBuzzRange(w io.Writer, from, to uint32) {
	for i := uint64(from); i <= uint64(to); i++ {
		fmt.Fprintln(w, " ", FizzBuzz(uint32(i)))
	}
}
