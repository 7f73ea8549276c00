// Package conversion shows conversions between user-defined types: one that
// always succeeds, one that can fail with an error, rendering to a string
// and parsing from one.
//
// Go has no conversion traits. The idioms are constructor functions
// (NumberFrom), methods on the source type (Int32.IntoNumber), the
// fmt.Stringer interface, and Parse functions returning (T, error).
package conversion

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/marcodamonte/concepts/internal/ruler"
)

// Run prints every conversion demo to w, in order.
func Run(w io.Writer) {
	ruler.Section(w, "From / Into — conversions that always succeed")
	demoFromInto(w)

	ruler.Section(w, "TryFrom / TryInto — conversions that return an error")
	demoTryFrom(w)

	ruler.Section(w, "String() — fmt.Stringer")
	demoToString(w)

	ruler.Section(w, "Parsing — strconv and a custom Parse function")
	demoParse(w)
}

// ── From / Into ──────────────────────────────────────────────────────────────

// Number wraps an int32.
type Number struct {
	Value int32
}

// NumberFrom builds a Number. It cannot fail, so it returns no error.
func NumberFrom(v int32) Number {
	return Number{Value: v}
}

// From is satisfied by a type T that knows how to build itself from an S.
// The method is called on T's zero value, so it must not read its receiver.
type From[S, T any] interface {
	From(S) T
}

// From implements From[int32, Number] by delegating to NumberFrom.
func (Number) From(v int32) Number {
	return NumberFrom(v)
}

// Into converts s to any T that implements From for S. T is named at the
// call site and S is inferred:
//
//	n := Into[Number](int32(5))
func Into[T From[S, T], S any](s S) T {
	var zero T
	return zero.From(s)
}

// Int32 is a named source type so conversions can hang off it as methods.
type Int32 int32

// IntoNumber is the reverse direction of NumberFrom, defined in terms of it.
func (i Int32) IntoNumber() Number {
	return NumberFrom(int32(i))
}

func demoFromInto(w io.Writer) {
	num := NumberFrom(30)
	fmt.Fprintf(w, "  my number is %+v\n", num)

	i := Int32(5)
	num = i.IntoNumber()
	fmt.Fprintf(w, "  my number is %+v\n", num)

	num = Into[Number](int32(7))
	fmt.Fprintf(w, "  my number is %+v\n", num)
}

// ── TryFrom / TryInto ────────────────────────────────────────────────────────

// ErrOddNumber is returned when an odd value is converted to EvenNumber.
var ErrOddNumber = errors.New("odd number")

// EvenNumber only ever holds an even value when built via EvenNumberFrom.
type EvenNumber int32

// EvenNumberFrom rejects odd values with an error wrapping ErrOddNumber.
func EvenNumberFrom(v int32) (EvenNumber, error) {
	if v%2 != 0 {
		return 0, fmt.Errorf("EvenNumberFrom(%d): %w", v, ErrOddNumber)
	}
	return EvenNumber(v), nil
}

// TryIntoEven is the method form of EvenNumberFrom.
func (i Int32) TryIntoEven() (EvenNumber, error) {
	return EvenNumberFrom(int32(i))
}

func demoTryFrom(w io.Writer) {
	for _, v := range []int32{8, 5} {
		even, err := EvenNumberFrom(v)
		switch {
		case errors.Is(err, ErrOddNumber):
			fmt.Fprintf(w, "  EvenNumberFrom(%d) → rejected: %v\n", v, err)
		case err != nil:
			fmt.Fprintf(w, "  EvenNumberFrom(%d) → unexpected error: %v\n", v, err)
		default:
			fmt.Fprintf(w, "  EvenNumberFrom(%d) → %d\n", v, even)
		}
	}

	for _, i := range []Int32{8, 5} {
		even, err := i.TryIntoEven()
		fmt.Fprintf(w, "  Int32(%d).TryIntoEven() → (%d, %v)\n", i, even, err)
	}
}

// ── String / Parse ───────────────────────────────────────────────────────────

// Circle renders itself through fmt.Stringer, so %v and Println use it.
type Circle struct {
	Radius int32
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle of radius %d", c.Radius)
}

// ErrBadCircle is returned by ParseCircle for input it cannot read.
var ErrBadCircle = errors.New("malformed circle")

// ParseCircle reads the format produced by Circle.String. The strconv error,
// if any, stays in the chain next to ErrBadCircle.
func ParseCircle(s string) (Circle, error) {
	const prefix = "Circle of radius "
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return Circle{}, fmt.Errorf("parse %q: %w", s, ErrBadCircle)
	}
	r, err := strconv.ParseInt(rest, 10, 32)
	if err != nil {
		return Circle{}, fmt.Errorf("parse %q: %w", s, errors.Join(ErrBadCircle, err))
	}
	return Circle{Radius: int32(r)}, nil
}

func demoToString(w io.Writer) {
	circle := Circle{Radius: 6}
	fmt.Fprintln(w, " ", circle.String())
	fmt.Fprintf(w, "  via %%v: %v\n", circle)
}

func demoParse(w io.Writer) {
	parsed, err := strconv.Atoi("5")
	if err != nil {
		fmt.Fprintf(w, "  parse error: %v\n", err)
		return
	}
	other, err := strconv.ParseInt("10", 10, 32)
	if err != nil {
		fmt.Fprintf(w, "  parse error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "  sum: %d\n", parsed+int(other))

	if _, err := strconv.Atoi("five"); err != nil {
		fmt.Fprintf(w, "  strconv.Atoi(\"five\") → %v\n", err)
	}

	c, err := ParseCircle("Circle of radius 6")
	fmt.Fprintf(w, "  ParseCircle → %v (err=%v)\n", c, err)
}
