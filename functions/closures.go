package functions

import (
	"fmt"
	"io"
	"slices"
	"sync"
)

func demoClosures(w io.Writer) {
	// A nested named function isn't allowed in Go; a func literal is.
	function := func(i int32) int32 { return i + 1 }

	// Parameter and result types are always written out. "Inferred" here
	// means the variable's type comes from the literal.
	var closureAnnotated func(int32) int32 = func(i int32) int32 { return i + 1 }
	closureInferred := func(i int32) int32 { return i + 1 }

	i := int32(1)
	fmt.Fprintf(w, "  function: %d\n", function(i))
	fmt.Fprintf(w, "  closure annotated: %d\n", closureAnnotated(i))
	fmt.Fprintf(w, "  closure inferred: %d\n", closureInferred(i))

	one := func() int32 { return 1 }
	fmt.Fprintf(w, "  closure returning one: %d\n", one())

	// Called immediately.
	fmt.Fprintf(w, "  immediately invoked: %d\n", func(a, b int32) int32 { return a + b }(3, 4))
}

func demoCapture(w io.Writer) {
	color := "green"

	// Go closures always capture variables, never values: printColor sees the
	// current content of color every time it runs.
	printColor := func() { fmt.Fprintf(w, "  color: %s\n", color) }
	printColor()
	color = "red"
	printColor()

	count := 0
	inc := func() {
		count++
		fmt.Fprintf(w, "  count: %d\n", count)
	}
	for range 4 {
		inc()
	}
	fmt.Fprintf(w, "  count after closure: %d\n", count)

	// To capture a value instead, copy it into a variable the closure owns.
	// Here haystack is copied, so later writes to the original don't leak in.
	original := []int{1, 2, 3}
	haystack := slices.Clone(original)
	contains := func(needle int) bool { return slices.Contains(haystack, needle) }
	original[0] = 7

	fmt.Fprintf(w, "  contains(1): %v\n", contains(1))
	fmt.Fprintf(w, "  contains(7): %v\n", contains(7))
}

// Apply calls f. Any func() fits: named function, method value or closure.
func Apply(f func()) {
	f()
}

// ApplyTo3 calls f with 3.
func ApplyTo3(f func(int32) int32) int32 {
	return f(3)
}

// CallMe is Apply under another name; both accept plain functions too.
func CallMe(f func()) {
	f()
}

func demoInputs(w io.Writer) {
	greeting := "hello"
	farewell := "goodbye"

	diary := func() {
		fmt.Fprintf(w, "  I said %s.\n", greeting)
		farewell += "!!!"
		fmt.Fprintf(w, "  Then I screamed %s.\n", farewell)
		fmt.Fprintln(w, "  Now I can sleep. zzzzz")
	}
	Apply(diary)

	double := func(x int32) int32 { return 2 * x }
	fmt.Fprintf(w, "  3 doubled: %d\n", ApplyTo3(double))

	x := 7
	Apply(func() { fmt.Fprintf(w, "  captured x: %d\n", x) })

	// A named function and a closure both satisfy func().
	CallMe(func() { fmt.Fprintln(w, "  I'm a closure!") })
	CallMe(iAmAFunction(w))
}

func iAmAFunction(w io.Writer) func() {
	return func() { fmt.Fprintln(w, "  I'm a function!") }
}

// CreateFn returns a closure over its own copy of text.
func CreateFn(w io.Writer) func() {
	text := "Fn"
	return func() { fmt.Fprintf(w, "  a: %s\n", text) }
}

// CreateCounter returns a closure that keeps state between calls.
func CreateCounter() func() int {
	n := 0
	return func() int {
		n++
		return n
	}
}

// CreateOnce returns a closure whose body runs on the first call only.
func CreateOnce(w io.Writer) func() {
	text := "Once"
	return sync.OnceFunc(func() { fmt.Fprintf(w, "  a: %s\n", text) })
}

func demoOutputs(w io.Writer) {
	fnPlain := CreateFn(w)
	next := CreateCounter()
	fnOnce := CreateOnce(w)

	fnPlain()
	fnPlain()

	next()
	fmt.Fprintf(w, "  counter: %d\n", next())

	fnOnce()
	fnOnce() // no output: already ran
}
