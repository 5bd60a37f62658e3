package token

import (
	"fmt"

	"github.com/wundergraph/gqlparse/pkg/position"
)

// TriviaKind enumerates the source pieces that do not affect parsing.
type TriviaKind int

const (
	TriviaKindUndefined TriviaKind = iota
	// TriviaKindComment is a `#` comment running to the end of the line.
	TriviaKindComment
	// TriviaKindComma is a comma, which the grammar treats as whitespace.
	TriviaKindComma
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaKindComment:
		return "COMMENT"
	case TriviaKindComma:
		return "COMMA"
	default:
		return fmt.Sprintf("#undefined TriviaKind case for %d# (see trivia.go)", k)
	}
}

// Trivia is preserved for formatters and linters. It attaches to the token
// that follows it, so the parser never has to skip it explicitly.
type Trivia struct {
	Kind TriviaKind
	// Text is the comment text without the leading `#`. Empty for commas.
	Text Text
	Span position.Span
}
