package functions

import (
	"fmt"
	"io"
)

// Never panics unconditionally. Go has no "never" type; the compiler
// accepts a panic as a terminating statement, so no return is required.
func Never() int {
	panic("this call never returns")
}

func someFn() {}

// SumOddNumbers adds the odd numbers in [0, upTo). continue skips the
// rest of the loop body, the way a diverging branch would.
func SumOddNumbers(upTo uint32) uint32 {
	var acc uint32
	for i := uint32(0); i < upTo; i++ {
		if !isOdd(uint64(i)) {
			continue
		}
		acc += i
	}
	return acc
}

// recoverNever calls Never and turns the panic back into a value.
func recoverNever() (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprint(r)
		}
	}()
	_ = Never()
	return "unreachable"
}

func demoDiverging(w io.Writer) {
	someFn()
	fmt.Fprintln(w, "  this function returns and you can see this line")

	fmt.Fprintf(w, "  Never() recovered: %s\n", recoverNever())

	fmt.Fprintf(w, "  sum of odd numbers up to 9 (excluding): %d\n", SumOddNumbers(9))
}
