// Package position tracks source coordinates for tokens and diagnostics.
package position

import (
	"fmt"
	"unicode/utf8"
)

// Position is a location inside a source buffer. Line is zero based. Column
// counts code points, ColumnUTF16 counts UTF-16 code units; the two are equal
// for any code point inside the Basic Multilingual Plane and diverge only on
// supplementary plane code points, which occupy two UTF-16 code units. Offset
// is the absolute byte offset.
type Position struct {
	Line        int
	Column      int
	ColumnUTF16 int
	Offset      int
}

// AdvanceColumn returns the position after consuming r inside the current line.
func (p Position) AdvanceColumn(r rune) Position {
	p.Offset += utf8.RuneLen(r)
	p.Column++
	if r > 0xFFFF {
		p.ColumnUTF16 += 2
	} else {
		p.ColumnUTF16++
	}
	return p
}

// AdvanceLine returns the position after consuming a line terminator occupying
// size bytes. Both column counters reset, the byte offset keeps growing.
func (p Position) AdvanceLine(size int) Position {
	p.Offset += size
	p.Line++
	p.Column = 0
	p.ColumnUTF16 = 0
	return p
}

// AdvanceCRLF accounts for the trailing '\n' of a "\r\n" pair. The '\r'
// already advanced the line, so only the byte offset moves.
func (p Position) AdvanceCRLF() Position {
	p.Offset++
	return p
}

// Before reports whether p is located before another position.
func (p Position) Before(another Position) bool {
	return p.Offset < another.Offset
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// Span is a half open source range: End points at the first position after
// the spanned text. Path is an optional source identifier used only when
// rendering diagnostics.
type Span struct {
	Start Position
	End   Position
	Path  string
}

// EmptySpan returns a zero width span at the given position.
func EmptySpan(at Position) Span {
	return Span{Start: at, End: at}
}

// WithPath returns a copy of the span tagged with a source identifier.
func (s Span) WithPath(path string) Span {
	s.Path = path
	return s
}

// To merges the span with a later one into a single range covering both.
func (s Span) To(end Span) Span {
	s.End = end.End
	return s
}

// Len is the number of bytes the span covers.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
