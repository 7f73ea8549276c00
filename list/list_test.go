package list_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/concepts/list"
)

// build prepends vals in order, so the last value ends up at the head.
func build(vals ...uint32) list.List {
	l := list.New()
	for _, v := range vals {
		l = l.Prepend(v)
	}
	return l
}

// values walks the list with a type switch, the way callers match variants.
func values(l list.List) []uint32 {
	var out []uint32
	for {
		switch c := l.(type) {
		case list.Cons:
			out = append(out, c.Head())
			l = c.Tail()
		case list.Nil:
			return out
		}
	}
}

// ── Empty list ───────────────────────────────────────────────────────────────

func TestNewIsEmpty(t *testing.T) {
	l := list.New()
	assert.Equal(t, uint32(0), l.Len())
	assert.Equal(t, "Nil", l.String())
	assert.IsType(t, list.Nil{}, l)
}

// ── Length ───────────────────────────────────────────────────────────────────

func TestLenCountsPrepends(t *testing.T) {
	for _, n := range []int{0, 1, 2, 10, 1000} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			vals := make([]uint32, n)
			for i := range vals {
				vals[i] = uint32(i * 7)
			}
			assert.Equal(t, uint32(n), build(vals...).Len())
		})
	}
}

// ── Rendering ────────────────────────────────────────────────────────────────

// TestPrependReversesOrder checks the canonical walkthrough: 1, 2, 3 in,
// "3, 2, 1, Nil" out.
func TestPrependReversesOrder(t *testing.T) {
	l := list.New()
	l = l.Prepend(1)
	l = l.Prepend(2)
	l = l.Prepend(3)

	require.Equal(t, uint32(3), l.Len())
	assert.Equal(t, "3, 2, 1, Nil", l.String())
	assert.Equal(t, "3, 2, 1, Nil", fmt.Sprint(l))

	if diff := cmp.Diff([]uint32{3, 2, 1}, values(l)); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestStringLargeValues(t *testing.T) {
	l := build(0, 4294967295)
	assert.Equal(t, "4294967295, 0, Nil", l.String())
}

// ── Read-only traversal ──────────────────────────────────────────────────────

// TestTraversalIsIdempotent calls Len and String twice and expects the same
// answers: neither mutates the list.
func TestTraversalIsIdempotent(t *testing.T) {
	l := build(5, 6, 7)

	firstLen, firstStr := l.Len(), l.String()
	secondLen, secondStr := l.Len(), l.String()

	assert.Equal(t, firstLen, secondLen)
	assert.Equal(t, firstStr, secondStr)
}

// TestPrependLeavesTailUntouched checks that prepend builds a new value and
// the tail it wraps still renders the same.
func TestPrependLeavesTailUntouched(t *testing.T) {
	tail := build(1, 2)
	l := tail.Prepend(3)

	assert.Equal(t, "2, 1, Nil", tail.String())
	assert.Equal(t, "3, 2, 1, Nil", l.String())

	c, ok := l.(list.Cons)
	require.True(t, ok)
	assert.Equal(t, uint32(3), c.Head())
	assert.Equal(t, tail, c.Tail())
}

// ── nil handling ─────────────────────────────────────────────────────────────

func TestNilInterfaceCountsAsEmpty(t *testing.T) {
	var l list.List
	assert.Equal(t, uint32(0), list.Len(l))
	assert.Equal(t, "Nil", list.String(l))
}

func TestZeroConsIsSingleCell(t *testing.T) {
	var c list.Cons
	assert.Equal(t, uint32(1), c.Len())
	assert.Equal(t, "0, Nil", c.String())
	assert.Equal(t, list.Nil{}, c.Tail())
}

func ExampleList() {
	l := list.New()
	l = l.Prepend(1)
	l = l.Prepend(2)
	l = l.Prepend(3)
	fmt.Println(l.Len())
	fmt.Println(l)
	// Output:
	// 3
	// 3, 2, 1, Nil
}
