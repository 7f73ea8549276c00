package customtypes

import (
	"fmt"
	"io"
)

// Language is a package-level variable: addressable, could be reassigned.
var Language = "Go"

// Threshold is a compile-time constant. Untyped constants take the type
// their use needs.
const Threshold = 10

// IsBig reports whether n is above Threshold.
func IsBig(n int32) bool {
	return n > Threshold
}

func demoConstants(w io.Writer) {
	n := int32(16)

	fmt.Fprintf(w, "  this is %s\n", Language)
	fmt.Fprintf(w, "  the threshold is %d\n", Threshold)

	verdict := "small"
	if IsBig(n) {
		verdict = "big"
	}
	fmt.Fprintf(w, "  %d is %s\n", n, verdict)
}
