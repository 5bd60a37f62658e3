package tokensource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wundergraph/gqlparse/pkg/token"
)

func nameToken(text string) token.Token {
	return token.Token{Kind: token.NAME, Text: token.Owned(text)}
}

func newTestStream(names ...string) *Stream {
	tokens := make([]token.Token, 0, len(names)+1)
	for _, name := range names {
		tokens = append(tokens, nameToken(name))
	}
	tokens = append(tokens, token.Token{Kind: token.EOF})
	return NewStream(NewSliceSource(tokens, false))
}

func TestStream_PeekDoesNotConsume(t *testing.T) {
	s := newTestStream("a", "b")

	first, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", first.Text.String())

	again, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", again.Text.String())

	read, ok := s.Read()
	require.True(t, ok)
	assert.Equal(t, "a", read.Text.String())
}

func TestStream_PeekNth(t *testing.T) {
	s := newTestStream("a", "b", "c")

	for n, want := range []string{"a", "b", "c"} {
		tok, ok := s.PeekNth(n)
		require.True(t, ok)
		assert.Equal(t, want, tok.Text.String())
	}

	eof, ok := s.PeekNth(3)
	require.True(t, ok)
	assert.Equal(t, token.EOF, eof.Kind)

	_, ok = s.PeekNth(4)
	assert.False(t, ok)

	// lookahead leaves the consumption point untouched
	tok, ok := s.Read()
	require.True(t, ok)
	assert.Equal(t, "a", tok.Text.String())
}

func TestStream_Current(t *testing.T) {
	s := newTestStream("a", "b")

	_, ok := s.Current()
	assert.False(t, ok, "no current token before the first Read")

	s.Read()
	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "a", current.Text.String())

	s.Read()
	current, ok = s.Current()
	require.True(t, ok)
	assert.Equal(t, "b", current.Text.String())
}

func TestStream_AtEnd(t *testing.T) {
	s := newTestStream("a")
	assert.False(t, s.AtEnd())

	s.Read()
	assert.True(t, s.AtEnd(), "EOF next counts as end")

	s.Read() // consume EOF
	assert.True(t, s.AtEnd(), "exhausted source counts as end")
}

func TestStream_ReadPastEnd(t *testing.T) {
	s := newTestStream()

	eof, ok := s.Read()
	require.True(t, ok)
	assert.Equal(t, token.EOF, eof.Kind)

	_, ok = s.Read()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)

	// the EOF token stays current
	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, token.EOF, current.Kind)
}

func TestStream_CompactBuffer(t *testing.T) {
	s := newTestStream("a", "b", "c", "d")

	s.Read()
	s.Read()
	s.Read()
	assert.Equal(t, 3, s.BufferLen())

	s.CompactBuffer()
	assert.Equal(t, 1, s.BufferLen(), "only the current token survives compaction")

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "c", current.Text.String())

	next, ok := s.Read()
	require.True(t, ok)
	assert.Equal(t, "d", next.Text.String())
}

func TestStream_CompactBufferEarly(t *testing.T) {
	s := newTestStream("a", "b")

	// nothing consumed yet: compaction is a no-op
	s.Peek()
	s.CompactBuffer()

	tok, ok := s.Read()
	require.True(t, ok)
	assert.Equal(t, "a", tok.Text.String())

	// one consumed token: still nothing to drop
	s.CompactBuffer()
	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "a", current.Text.String())
}

func TestSliceSource(t *testing.T) {
	source := NewSliceSource([]token.Token{nameToken("x"), {Kind: token.EOF}}, false)
	assert.False(t, source.TracksUTF16Columns())

	first, ok := source.Read()
	require.True(t, ok)
	assert.Equal(t, "x", first.Text.String())

	second, ok := source.Read()
	require.True(t, ok)
	assert.Equal(t, token.EOF, second.Kind)

	_, ok = source.Read()
	assert.False(t, ok)

	assert.True(t, NewSliceSource(nil, true).TracksUTF16Columns())
}
