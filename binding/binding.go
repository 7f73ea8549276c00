// Package binding covers how names get bound to values: declaration and
// inference, mutability, block scope and shadowing, declare-then-assign, and
// the closest Go gets to "freezing" a value.
package binding

import (
	"fmt"
	"io"

	"github.com/marcodamonte/concepts/internal/ruler"
)

// Run prints every binding demo to w, in order.
func Run(w io.Writer) {
	ruler.Section(w, "Binding — :=, var, inference, the blank identifier")
	demoBinding(w)

	ruler.Section(w, "Mutability — every variable is mutable, const is not")
	demoMutability(w)

	ruler.Section(w, "Scope and shadowing — blocks, := in an inner scope")
	demoScopeAndShadowing(w)

	ruler.Section(w, "Declare first — var now, assign later")
	demoDeclareFirst(w)

	ruler.Section(w, "Freezing — copy into an inner scope")
	demoFreezing(w)
}

func demoBinding(w io.Writer) {
	anInteger := uint32(1)
	aBoolean := true
	unit := struct{}{} // the empty struct is Go's unit value

	// Copies the value; the two variables are independent from here on.
	copiedInteger := anInteger

	fmt.Fprintf(w, "  an integer: %v\n", copiedInteger)
	fmt.Fprintf(w, "  a boolean: %v\n", aBoolean)
	fmt.Fprintf(w, "  meet the unit value: %v\n", unit)

	// An unused local is a compile error in Go, not a warning. Assigning to
	// the blank identifier marks it as used on purpose.
	noisyUnusedVariable := uint32(2)
	_ = noisyUnusedVariable
}

func demoMutability(w io.Writer) {
	// Go has no immutable local variables. Constants are the immutable
	// binding, and they only hold compile-time values.
	const immutableBinding = 1
	mutableBinding := 1

	fmt.Fprintf(w, "  before mutation: %d\n", mutableBinding)
	mutableBinding++
	fmt.Fprintf(w, "  after mutation: %d\n", mutableBinding)

	// immutableBinding++ // compile error: cannot assign to immutableBinding
	_ = immutableBinding
}

func demoScopeAndShadowing(w io.Writer) {
	longLivedBinding := 1

	{
		shortLivedBinding := 2
		fmt.Fprintf(w, "  inner short: %d\n", shortLivedBinding)
		fmt.Fprintf(w, "  outer long: %d\n", longLivedBinding)
	}
	// fmt.Println(shortLivedBinding) // compile error: undefined
	fmt.Fprintf(w, "  outer long: %d\n", longLivedBinding)

	shadowedBinding := 1
	{
		fmt.Fprintf(w, "  before being shadowed: %v\n", shadowedBinding)

		// := in a new block declares a NEW variable, even with a new type.
		shadowedBinding := "abc"
		fmt.Fprintf(w, "  shadowed in inner block: %v\n", shadowedBinding)
	}
	fmt.Fprintf(w, "  outside inner block: %v\n", shadowedBinding)

	// In the same scope := cannot redeclare, so this is a plain assignment.
	// Go only shadows across scopes.
	shadowedBinding = 2
	fmt.Fprintf(w, "  reassigned in outer block: %v\n", shadowedBinding)
}

func demoDeclareFirst(w io.Writer) {
	var aBinding int
	{
		x := 2
		aBinding = x * x
	}
	fmt.Fprintf(w, "  a binding: %d\n", aBinding)

	// Unlike languages that reject reading an unassigned variable, Go gives
	// every declared variable its zero value.
	var anotherBinding int
	fmt.Fprintf(w, "  another binding before assignment: %d\n", anotherBinding)
	anotherBinding = 1
	fmt.Fprintf(w, "  another binding: %d\n", anotherBinding)
}

func demoFreezing(w io.Writer) {
	mutableInteger := int32(7)
	{
		// A shadowing copy: writes to the inner name never reach the outer
		// one, which is as close to "frozen" as a Go variable gets.
		mutableInteger := mutableInteger
		mutableInteger = 50
		fmt.Fprintf(w, "  inner copy: %d\n", mutableInteger)
	}
	fmt.Fprintf(w, "  outer after inner scope: %d\n", mutableInteger)
	mutableInteger = 3
	fmt.Fprintf(w, "  mutable integer: %d\n", mutableInteger)
}
