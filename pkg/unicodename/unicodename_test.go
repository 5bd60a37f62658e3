package unicodename

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		r    rune
		name string
	}{
		{0x0000, "NULL"},
		{0x0007, "BELL"},
		{0x0009, "HORIZONTAL TAB"},
		{0x000A, "LINE FEED"},
		{0x000D, "CARRIAGE RETURN"},
		{0x00A0, "NO-BREAK SPACE"},
		{0x200B, "ZERO WIDTH SPACE"},
		{0x200D, "ZERO WIDTH JOINER"},
		{0x202E, "RIGHT-TO-LEFT OVERRIDE"},
		{0x2060, "WORD JOINER"},
		{0xFEFF, "BYTE ORDER MARK"},
		{0x3000, "IDEOGRAPHIC SPACE"},
	}
	for _, c := range cases {
		name, ok := Lookup(c.r)
		assert.True(t, ok, "U+%04X", c.r)
		assert.Equal(t, c.name, name, "U+%04X", c.r)
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, r := range []rune{'a', 'é', '😀', ' '} {
		_, ok := Lookup(r)
		assert.False(t, ok, "U+%04X has no entry", r)
	}
}
