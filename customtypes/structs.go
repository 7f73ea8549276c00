package customtypes

import (
	"fmt"
	"io"
	"unsafe"
)

// Go has one kind of struct, but it covers three shapes:
//
//   - classic: named fields (Person, Point)
//   - tuple-like: short positional fields, built with a positional literal (Pair)
//   - unit: no fields at all, zero bytes (Unit); useful as a marker or map value

// Person has named fields. %+v prints them with their names.
type Person struct {
	Name string
	Age  uint8
}

// Unit carries no data. Every Unit value is identical.
type Unit struct{}

// Pair is tuple-like: positional literal, fields named after their slot.
type Pair struct {
	A int32
	B float32
}

// Point is a 2-D coordinate.
type Point struct {
	X, Y float32
}

// Rectangle nests two Points.
type Rectangle struct {
	TopLeft     Point
	BottomRight Point
}

// Area multiplies the side lengths. The sign follows the corner order, so a
// rectangle whose corners are swapped on one axis reports a negative area.
func (r Rectangle) Area() float32 {
	return (r.TopLeft.X - r.BottomRight.X) * (r.TopLeft.Y - r.BottomRight.Y)
}

// Square builds a side×side square whose top-left corner is p.
func (r Rectangle) Square(p Point, side float32) Rectangle {
	x, y := p.X, p.Y // "destructuring" is just two field reads
	return Rectangle{
		TopLeft:     p,
		BottomRight: Point{X: x + side, Y: y + side},
	}
}

func demoStructs(w io.Writer) {
	// Field names can't be elided as in some languages; a local variable with
	// the same name is still written out: Person{Name: name, Age: age}.
	name := "Peter"
	age := uint8(27)
	peter := Person{Name: name, Age: age}
	fmt.Fprintf(w, "  %+v\n", peter)

	point := Point{X: 10.3, Y: 0.4}
	fmt.Fprintf(w, "  point: (%v, %v)\n", point.X, point.Y)

	// "Struct update": copy the value, then overwrite what differs.
	// Structs are values, so bottomRight is independent of point.
	bottomRight := point
	bottomRight.X = 5.2
	fmt.Fprintf(w, "  second point: (%v, %v)\n", bottomRight.X, bottomRight.Y)

	leftEdge, topEdge := point.X, point.Y
	rectangle := Rectangle{
		TopLeft:     Point{X: leftEdge, Y: topEdge},
		BottomRight: bottomRight,
	}

	// Unit takes no memory, which makes it the usual value type for sets.
	unit := Unit{}
	fmt.Fprintf(w, "  unit: %+v (size %d)\n", unit, unsafe.Sizeof(unit))
	seen := map[string]Unit{"peter": {}}
	_, ok := seen["peter"]
	fmt.Fprintf(w, "  set of names has peter: %v\n", ok)

	pair := Pair{1, 0.1}
	fmt.Fprintf(w, "  pair contains %v and %v\n", pair.A, pair.B)

	integer, decimal := pair.A, pair.B
	fmt.Fprintf(w, "  pair unpacked: %v and %v\n", integer, decimal)

	fmt.Fprintf(w, "  rectangle area: %v\n", rectangle.Area())
	fmt.Fprintf(w, "  square: %+v\n", rectangle.Square(point, 13.1))
}
