// Package list is a singly linked list of uint32 built as a recursive sum
// type: a List is either Nil (the end) or a Cons cell holding one value and
// the rest of the list.
//
// Go has no enums with payloads, so the two variants are two types behind a
// sealed interface. Matching on the variant is a type switch:
//
//	switch l := l.(type) {
//	case list.Cons:
//		// l.Head(), l.Tail()
//	case list.Nil:
//		// end of list
//	}
//
// Both variants are plain values. A Cons stores its tail by value inside the
// interface, so a list can never point back at itself: every list is finite.
package list

import "fmt"

// List is either Nil or Cons. The unexported method keeps the set of
// variants closed.
type List interface {
	// Prepend consumes the receiver and returns a new list whose head is v
	// and whose tail is the receiver. Rebind the result and stop using the
	// old value:
	//
	//	l = l.Prepend(1)
	Prepend(v uint32) List

	// Len counts the Cons cells. Recursion depth equals the length.
	Len() uint32

	// String renders the elements separated by ", " and ending in "Nil".
	String() string

	isList()
}

// Nil is the empty list.
type Nil struct{}

// Cons is one cell: a value plus the rest of the list.
type Cons struct {
	head uint32
	tail List
}

var (
	_ List = Nil{}
	_ List = Cons{}
)

// New returns the empty list.
func New() List { return Nil{} }

func (Nil) Prepend(v uint32) List { return Cons{head: v, tail: Nil{}} }
func (Nil) Len() uint32           { return 0 }
func (Nil) String() string        { return "Nil" }
func (Nil) isList()               {}

func (c Cons) Prepend(v uint32) List { return Cons{head: v, tail: c} }

// Len is 1 plus the length of the tail.
func (c Cons) Len() uint32 { return 1 + Len(c.tail) }

func (c Cons) String() string { return fmt.Sprintf("%d, %s", c.head, String(c.tail)) }
func (Cons) isList()          {}

// Head returns the value stored in the cell.
func (c Cons) Head() uint32 { return c.head }

// Tail returns the rest of the list. It is never nil.
func (c Cons) Tail() List { return orNil(c.tail) }

// Len is List.Len that also accepts a nil interface, which counts as Nil.
func Len(l List) uint32 { return orNil(l).Len() }

// String is List.String that also accepts a nil interface.
func String(l List) string { return orNil(l).String() }

func orNil(l List) List {
	if l == nil {
		return Nil{}
	}
	return l
}
