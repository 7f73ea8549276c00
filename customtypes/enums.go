package customtypes

import (
	"fmt"
	"io"
)

// ── Sum types ────────────────────────────────────────────────────────────────
// Go has no enum-with-payload. The idiom is an interface whose only method is
// unexported ("sealed"): only types in this package can implement it, so the
// set of variants is closed. Each variant is its own type and carries its
// own data; a type switch plays the role of pattern matching.

// WebEvent is one of PageLoad, PageUnload, KeyPress, Paste or Click.
type WebEvent interface {
	isWebEvent()
}

type (
	// PageLoad and PageUnload carry no data (unit-like variants).
	PageLoad   struct{}
	PageUnload struct{}

	// KeyPress and Paste carry one value (tuple-like variants).
	KeyPress rune
	Paste    string

	// Click has named fields (struct-like variant).
	Click struct{ X, Y int64 }
)

func (PageLoad) isWebEvent()   {}
func (PageUnload) isWebEvent() {}
func (KeyPress) isWebEvent()   {}
func (Paste) isWebEvent()      {}
func (Click) isWebEvent()      {}

// Inspect describes ev. The default branch is unreachable for the five
// variants above but keeps a nil WebEvent from silently matching nothing.
func Inspect(ev WebEvent) string {
	switch e := ev.(type) {
	case PageLoad:
		return "page loaded"
	case PageUnload:
		return "page unloaded"
	case KeyPress:
		return fmt.Sprintf("pressed '%c'.", rune(e))
	case Paste:
		return fmt.Sprintf("pasted %q.", string(e))
	case Click:
		return fmt.Sprintf("clicked at x=%d, y=%d.", e.X, e.Y)
	default:
		return fmt.Sprintf("unknown event %T", ev)
	}
}

func demoWebEvents(w io.Writer) {
	events := []WebEvent{
		KeyPress('x'),
		Paste("my text"),
		Click{X: 20, Y: 80},
		PageLoad{},
		PageUnload{},
	}
	for _, ev := range events {
		fmt.Fprintf(w, "  %-28T → %s\n", ev, Inspect(ev))
	}
}

// ── Type aliases ─────────────────────────────────────────────────────────────

// VeryVerboseEnumOfThingsToDoWithNumbers is a deliberately long name.
type VeryVerboseEnumOfThingsToDoWithNumbers int

const (
	Add VeryVerboseEnumOfThingsToDoWithNumbers = iota
	Subtract
)

// Operations is an alias (note the =): the same type under a shorter name,
// not a new type. Methods, constants and conversions are shared.
type Operations = VeryVerboseEnumOfThingsToDoWithNumbers

// Run applies the operation to x and y.
func (op VeryVerboseEnumOfThingsToDoWithNumbers) Run(x, y int32) int32 {
	switch op {
	case Add:
		return x + y
	case Subtract:
		return x - y
	}
	panic(fmt.Sprintf("unknown operation %d", int(op)))
}

func (op VeryVerboseEnumOfThingsToDoWithNumbers) String() string {
	switch op {
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	}
	return fmt.Sprintf("Operations(%d)", int(op))
}

func demoAlias(w io.Writer) {
	var x Operations = Add
	fmt.Fprintf(w, "  x: %v\n", x)
	fmt.Fprintf(w, "  x.Run(10, 20): %d\n", x.Run(10, 20))
}

// ── Scoped names ─────────────────────────────────────────────────────────────
// Constants declared at package level are already unqualified inside the
// package; other packages reach them as customtypes.Poor. There is no
// per-enum namespace, so variant names must be unique in the package.

// Status is an enum-like type.
type Status int

const (
	Rich Status = iota
	Poor
)

// Work is an enum-like type.
type Work int

const (
	Civilian Work = iota
	Soldier
)

func demoScopedNames(w io.Writer) {
	status := Poor
	work := Civilian

	switch status {
	case Rich:
		fmt.Fprintln(w, "  the rich have lots of money!")
	case Poor:
		fmt.Fprintln(w, "  the poor have no money, but they hold on...")
	}

	switch work {
	case Civilian:
		fmt.Fprintln(w, "  civilians work!")
	case Soldier:
		fmt.Fprintln(w, "  soldiers fight!")
	}
}

// ── C-like enums ─────────────────────────────────────────────────────────────

// Number counts up from zero with iota. Ten breaks the sequence explicitly.
type Number int

const (
	Zero Number = iota
	One
	Two
	Ten Number = 10
)

// Color constants are explicit values.
type Color uint32

const (
	Red   Color = 0xff0000
	Green Color = 0x00ff00
	Blue  Color = 0x0000ff
)

func demoCLike(w io.Writer) {
	// A named integer type converts to its underlying type with a plain cast.
	fmt.Fprintf(w, "  zero is %d\n", int(Zero))
	fmt.Fprintf(w, "  one is %d\n", int(One))
	fmt.Fprintf(w, "  ten is %d\n", int(Ten))

	fmt.Fprintf(w, "  roses are #%06x\n", uint32(Red))
	fmt.Fprintf(w, "  violets are #%06x\n", uint32(Blue))
}
