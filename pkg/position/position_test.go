package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_Advance(t *testing.T) {
	t.Run("ascii advances every counter by one", func(t *testing.T) {
		p := Position{}.AdvanceColumn('a')
		assert.Equal(t, Position{Line: 0, Column: 1, ColumnUTF16: 1, Offset: 1}, p)
	})
	t.Run("bmp code point advances offset by its encoding size", func(t *testing.T) {
		p := Position{}.AdvanceColumn('é')
		assert.Equal(t, Position{Line: 0, Column: 1, ColumnUTF16: 1, Offset: 2}, p)
	})
	t.Run("supplementary plane code point counts two utf16 units", func(t *testing.T) {
		p := Position{}.AdvanceColumn('😀')
		assert.Equal(t, Position{Line: 0, Column: 1, ColumnUTF16: 2, Offset: 4}, p)
	})
	t.Run("line terminator resets both column counters", func(t *testing.T) {
		p := Position{}.AdvanceColumn('😀').AdvanceLine(1)
		assert.Equal(t, Position{Line: 1, Column: 0, ColumnUTF16: 0, Offset: 5}, p)
	})
	t.Run("crlf moves only the byte offset", func(t *testing.T) {
		p := Position{}.AdvanceLine(1).AdvanceCRLF()
		assert.Equal(t, Position{Line: 1, Column: 0, ColumnUTF16: 0, Offset: 2}, p)
	})
}

func TestPosition_Before(t *testing.T) {
	a := Position{Offset: 3}
	b := Position{Offset: 7}
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestPosition_String(t *testing.T) {
	// rendered one based for humans, stored zero based
	assert.Equal(t, "1:1", Position{}.String())
	assert.Equal(t, "3:5", Position{Line: 2, Column: 4}.String())
}

func TestSpan(t *testing.T) {
	start := Position{Line: 0, Column: 2, Offset: 2}
	end := Position{Line: 0, Column: 6, Offset: 6}

	t.Run("len counts bytes", func(t *testing.T) {
		assert.Equal(t, 4, Span{Start: start, End: end}.Len())
	})
	t.Run("empty span has zero length", func(t *testing.T) {
		s := EmptySpan(start)
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, start, s.Start)
		assert.Equal(t, start, s.End)
	})
	t.Run("to merges two spans", func(t *testing.T) {
		first := Span{Start: start, End: Position{Offset: 3, Column: 3}}
		second := Span{Start: Position{Offset: 5, Column: 5}, End: end}
		merged := first.To(second)
		assert.Equal(t, start, merged.Start)
		assert.Equal(t, end, merged.End)
	})
	t.Run("with path tags the span", func(t *testing.T) {
		s := Span{Start: start, End: end}.WithPath("schema.graphql")
		assert.Equal(t, "schema.graphql", s.Path)
	})
	t.Run("string renders one based start and end", func(t *testing.T) {
		assert.Equal(t, "1:3-1:7", Span{Start: start, End: end}.String())
	})
}
