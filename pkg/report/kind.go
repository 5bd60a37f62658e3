package report

import "fmt"

// ErrorKind classifies a diagnostic. The set is closed so callers can switch
// on it exhaustively.
type ErrorKind int

const (
	ErrorKindUndefined ErrorKind = iota
	// ErrorKindLexer wraps a token the lexer already reported as invalid.
	ErrorKindLexer
	// ErrorKindUnexpectedToken marks a token that cannot appear at this point.
	ErrorKindUnexpectedToken
	// ErrorKindUnexpectedEOF marks input that ended mid construct.
	ErrorKindUnexpectedEOF
	// ErrorKindUnclosedDelimiter marks a bracket or brace left open at the
	// point the parser gave up on it.
	ErrorKindUnclosedDelimiter
	// ErrorKindMismatchedDelimiter marks a closing bracket that does not pair
	// with the innermost open one.
	ErrorKindMismatchedDelimiter
	// ErrorKindInvalidValue marks a literal that lexed but cannot be decoded,
	// e.g. an integer out of range or a malformed escape sequence.
	ErrorKindInvalidValue
	// ErrorKindReservedName marks a name the grammar reserves, e.g. an enum
	// value spelled true, false or null.
	ErrorKindReservedName
	// ErrorKindWrongDocumentKind marks an executable definition in a schema
	// document or the other way around.
	ErrorKindWrongDocumentKind
	// ErrorKindInvalidEmptyConstruct marks braces or parens that must not be
	// empty, e.g. an empty selection set.
	ErrorKindInvalidEmptyConstruct
	// ErrorKindInvalidSyntax covers structural errors with no broader class,
	// e.g. exceeding the nesting depth limit.
	ErrorKindInvalidSyntax
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindLexer:
		return "LexerError"
	case ErrorKindUnexpectedToken:
		return "UnexpectedToken"
	case ErrorKindUnexpectedEOF:
		return "UnexpectedEof"
	case ErrorKindUnclosedDelimiter:
		return "UnclosedDelimiter"
	case ErrorKindMismatchedDelimiter:
		return "MismatchedDelimiter"
	case ErrorKindInvalidValue:
		return "InvalidValue"
	case ErrorKindReservedName:
		return "ReservedName"
	case ErrorKindWrongDocumentKind:
		return "WrongDocumentKind"
	case ErrorKindInvalidEmptyConstruct:
		return "InvalidEmptyConstruct"
	case ErrorKindInvalidSyntax:
		return "InvalidSyntax"
	default:
		return fmt.Sprintf("#undefined ErrorKind case for %d# (see kind.go)", k)
	}
}
