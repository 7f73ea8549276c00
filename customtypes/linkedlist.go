package customtypes

import (
	"fmt"
	"io"

	"github.com/marcodamonte/concepts/list"
)

// head describes the first cell of l by matching on its variant.
func head(l list.List) string {
	switch c := l.(type) {
	case list.Cons:
		return fmt.Sprintf("Cons(%d, …)", c.Head())
	default:
		return "Nil"
	}
}

func demoLinkedList(w io.Writer) {
	l := list.New()
	fmt.Fprintf(w, "  empty list: %v (head: %s)\n", l, head(l))

	// Prepend consumes l; rebinding the same name is how ownership "moves".
	l = l.Prepend(1)
	l = l.Prepend(2)
	l = l.Prepend(3)

	fmt.Fprintf(w, "  linked list has length: %d\n", l.Len())
	fmt.Fprintf(w, "  %v\n", l)
	fmt.Fprintf(w, "  head: %s\n", head(l))
}
