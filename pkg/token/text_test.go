package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText_Ownership(t *testing.T) {
	borrowed := Borrowed("field")
	assert.False(t, borrowed.IsOwned())
	assert.Equal(t, "field", borrowed.String())
	assert.Equal(t, 5, borrowed.Len())

	owned := borrowed.ToOwned()
	assert.True(t, owned.IsOwned())
	assert.Equal(t, "field", owned.String())

	// already owned text passes through unchanged
	assert.Equal(t, owned, owned.ToOwned())

	assert.True(t, Owned("x").IsOwned())
}

func TestToken_Display(t *testing.T) {
	assert.Equal(t, "hero", Token{Kind: NAME, Text: Borrowed("hero")}.Display())
	assert.Equal(t, "42", Token{Kind: INTEGER, Text: Borrowed("42")}.Display())
	assert.Equal(t, "...", Token{Kind: SPREAD}.Display())
	assert.Equal(t, "string", Token{Kind: STRING, Text: Borrowed(`"x"`)}.Display())
	assert.Equal(t, "tokenization error: bad input", Token{Kind: ERROR, Message: "bad input"}.Display())
}
