package functions

import (
	"fmt"
	"io"
	"math"
)

// Point is a 2-D coordinate.
type Point struct {
	X, Y float64
}

// Origin is a constructor: Go has no associated functions, so constructors
// are package-level functions named after what they return.
func Origin() Point { return Point{X: 0, Y: 0} }

// NewPoint builds a Point from its coordinates.
func NewPoint(x, y float64) Point { return Point{X: x, Y: y} }

// Rectangle is defined by two opposite corners.
type Rectangle struct {
	P1, P2 Point
}

// Area uses a value receiver: it gets a copy and cannot modify r.
func (r Rectangle) Area() float64 {
	return math.Abs((r.P1.X - r.P2.X) * (r.P1.Y - r.P2.Y))
}

// Perimeter is twice the sum of the side lengths.
func (r Rectangle) Perimeter() float64 {
	return 2 * (math.Abs(r.P1.X-r.P2.X) + math.Abs(r.P1.Y-r.P2.Y))
}

// Translate uses a pointer receiver, so it moves the caller's rectangle.
func (r *Rectangle) Translate(x, y float64) {
	r.P1.X += x
	r.P2.X += x
	r.P1.Y += y
	r.P2.Y += y
}

// Pair owns two heap-allocated integers.
type Pair struct {
	first, second *int
}

// NewPair allocates both halves.
func NewPair(a, b int) *Pair {
	return &Pair{first: &a, second: &b}
}

// Destroy "consumes" the pair: it reports the values and drops the
// references. A second call, or a call on a nil *Pair, finds nothing left
// and says so.
func (p *Pair) Destroy(w io.Writer) {
	if p == nil || p.first == nil {
		fmt.Fprintln(w, "  pair already destroyed")
		return
	}
	fmt.Fprintf(w, "  destroying Pair(%d, %d)\n", *p.first, *p.second)
	p.first, p.second = nil, nil
}

func demoMethods(w io.Writer) {
	rectangle := Rectangle{
		P1: Origin(),
		P2: NewPoint(3, 4),
	}

	// rectangle.Perimeter() is sugar for Rectangle.Perimeter(rectangle).
	fmt.Fprintf(w, "  rectangle perimeter: %v\n", rectangle.Perimeter())
	fmt.Fprintf(w, "  rectangle area: %v\n", Rectangle.Area(rectangle))

	// square is addressable, so Go takes &square for the pointer receiver.
	square := Rectangle{P1: Origin(), P2: NewPoint(1, 1)}
	square.Translate(1, 1)
	fmt.Fprintf(w, "  translated square: %+v\n", square)

	pair := NewPair(1, 2)
	pair.Destroy(w)
	pair.Destroy(w)
}
