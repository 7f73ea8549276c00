// Package customtypes walks through user-defined types: structs, sum types
// built from interfaces, enum-like constants and package-level constants.
package customtypes

import (
	"io"

	"github.com/marcodamonte/concepts/internal/ruler"
)

// Run prints every custom-type demo to w, in order.
func Run(w io.Writer) {
	ruler.Section(w, "Structs — named fields, tuple-like, unit, nesting, methods")
	demoStructs(w)

	ruler.Section(w, "Enums — sum types as a sealed interface + type switch")
	demoWebEvents(w)

	ruler.Section(w, "Type aliases — a short name for a long one")
	demoAlias(w)

	ruler.Section(w, "Scoped names — dot-free access to variants")
	demoScopedNames(w)

	ruler.Section(w, "C-like enums — iota and explicit values")
	demoCLike(w)

	ruler.Section(w, "Example — a recursive linked list")
	demoLinkedList(w)

	ruler.Section(w, "Constants — const blocks and package-level vars")
	demoConstants(w)
}
