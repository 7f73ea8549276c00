package customtypes_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcodamonte/concepts/customtypes"
)

func TestInspect(t *testing.T) {
	tests := []struct {
		name string
		ev   customtypes.WebEvent
		want string
	}{
		{"load", customtypes.PageLoad{}, "page loaded"},
		{"unload", customtypes.PageUnload{}, "page unloaded"},
		{"key", customtypes.KeyPress('x'), "pressed 'x'."},
		{"paste", customtypes.Paste("my text"), `pasted "my text".`},
		{"click", customtypes.Click{X: 20, Y: 80}, "clicked at x=20, y=80."},
		{"nil", nil, "unknown event <nil>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, customtypes.Inspect(tt.ev))
		})
	}
}

func TestRectangle(t *testing.T) {
	r := customtypes.Rectangle{
		TopLeft:     customtypes.Point{X: 0, Y: 0},
		BottomRight: customtypes.Point{X: 3, Y: 4},
	}
	assert.Equal(t, float32(12), r.Area())

	sq := r.Square(customtypes.Point{X: 1, Y: 2}, 5)
	assert.Equal(t, customtypes.Point{X: 1, Y: 2}, sq.TopLeft)
	assert.Equal(t, customtypes.Point{X: 6, Y: 7}, sq.BottomRight)
}

func TestOperationsAlias(t *testing.T) {
	var op customtypes.Operations = customtypes.Add
	assert.Equal(t, int32(30), op.Run(10, 20))
	assert.Equal(t, int32(-10), customtypes.Subtract.Run(10, 20))
	assert.Equal(t, "Add", op.String())
	assert.Panics(t, func() { customtypes.Operations(9).Run(1, 1) })
}

func TestEnumValues(t *testing.T) {
	assert.Equal(t, 0, int(customtypes.Zero))
	assert.Equal(t, 2, int(customtypes.Two))
	assert.Equal(t, 10, int(customtypes.Ten))
	assert.Equal(t, uint32(0x0000ff), uint32(customtypes.Blue))
}

func TestIsBig(t *testing.T) {
	assert.True(t, customtypes.IsBig(16))
	assert.False(t, customtypes.IsBig(10))
}

func TestRunOutput(t *testing.T) {
	var buf bytes.Buffer
	customtypes.Run(&buf)
	out := buf.String()

	for _, want := range []string{
		"=== Structs",
		"{Name:Peter Age:27}",
		"pair contains 1 and 0.1",
		"unit: {} (size 0)",
		"set of names has peter: true",
		"clicked at x=20, y=80.",
		"x.Run(10, 20): 30",
		"the poor have no money",
		"roses are #ff0000",
		"violets are #0000ff",
		"linked list has length: 3",
		"3, 2, 1, Nil",
		"head: Cons(3, …)",
		"16 is big",
	} {
		assert.Contains(t, out, want)
	}
}
