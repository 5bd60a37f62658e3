// Package token defines the lexical tokens of the GraphQL language, the
// trivia attached to them and the decoding of literal payloads.
package token

import (
	"github.com/wundergraph/gqlparse/pkg/position"
	"github.com/wundergraph/gqlparse/pkg/report"
)

// Token is a single lexeme together with its source span and the trivia
// collected since the previous token.
//
// Literal kinds carry raw source text only, e.g. a STRING still includes its
// quotes and escape sequences. Decoding is a separate step, see
// ParseStringValue. Negative numbers like `-123` lex as a single INTEGER
// token, not as a minus followed by a number.
type Token struct {
	Kind Kind
	// Text is the raw source text for NAME, INTEGER, FLOAT and STRING.
	Text Text
	// Trivia holds the comments and commas preceding this token, in order.
	Trivia []Trivia
	Span   position.Span
	// Message describes what went wrong, set for ERROR only.
	Message string
	// Notes carries additional context for ERROR tokens.
	Notes []report.Note
}

// Display returns the token as it appears in diagnostics, e.g. `...` for
// SPREAD, the raw text for a NAME or INTEGER, and "string" for a STRING.
func (t Token) Display() string {
	switch t.Kind {
	case NAME, INTEGER, FLOAT:
		return t.Text.String()
	case ERROR:
		return "tokenization error: " + t.Message
	default:
		return t.Kind.Display()
	}
}
