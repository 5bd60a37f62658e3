// Package report holds the diagnostic model shared by the lexer and parser
// and the result type returned by every parse entry point.
package report

import (
	"strings"

	"github.com/wundergraph/gqlparse/pkg/position"
)

// Error is a single parse diagnostic: what went wrong, where, which part of
// the closed taxonomy it belongs to, and any attached notes.
type Error struct {
	Message string
	Span    position.Span
	Kind    ErrorKind
	Notes   []Note
}

func (e Error) Error() string {
	return e.FormatOneline()
}

// WithNote returns a copy of the error with the note appended.
func (e Error) WithNote(note Note) Error {
	notes := make([]Note, 0, len(e.Notes)+1)
	notes = append(notes, e.Notes...)
	notes = append(notes, note)
	e.Notes = notes
	return e
}

// ErrorList aggregates diagnostics in the order they were recorded.
type ErrorList []Error

func (l ErrorList) Error() string {
	out := make([]string, len(l))
	for i := range l {
		out[i] = l[i].FormatOneline()
	}
	return strings.Join(out, "\n")
}

// HasErrors reports whether any diagnostic was recorded.
func (l ErrorList) HasErrors() bool {
	return len(l) > 0
}
