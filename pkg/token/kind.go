package token

import "fmt"

// Kind classifies a token. The literal texts true, false and null lex as
// distinct kinds rather than NAME because a few grammar positions must reject
// them while most accept them as ordinary names; that decision belongs to the
// parser, so the lexer keeps them apart.
type Kind int

const (
	UNDEFINED Kind = iota

	BANG
	DOLLAR
	AND
	LPAREN
	RPAREN
	SPREAD
	COLON
	EQUALS
	AT
	LBRACK
	RBRACK
	LBRACE
	RBRACE
	PIPE

	NAME
	INTEGER
	FLOAT
	STRING
	TRUE
	FALSE
	NULL

	EOF
	ERROR
)

func (k Kind) String() string {
	switch k {
	case UNDEFINED:
		return "UNDEFINED"
	case BANG:
		return "BANG"
	case DOLLAR:
		return "DOLLAR"
	case AND:
		return "AND"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case SPREAD:
		return "SPREAD"
	case COLON:
		return "COLON"
	case EQUALS:
		return "EQUALS"
	case AT:
		return "AT"
	case LBRACK:
		return "LBRACK"
	case RBRACK:
		return "RBRACK"
	case LBRACE:
		return "LBRACE"
	case RBRACE:
		return "RBRACE"
	case PIPE:
		return "PIPE"
	case NAME:
		return "NAME"
	case INTEGER:
		return "INTEGER"
	case FLOAT:
		return "FLOAT"
	case STRING:
		return "STRING"
	case TRUE:
		return "TRUE"
	case FALSE:
		return "FALSE"
	case NULL:
		return "NULL"
	case EOF:
		return "EOF"
	case ERROR:
		return "ERROR"
	default:
		return fmt.Sprintf("#undefined String case for %d# (see kind.go)", int(k))
	}
}

// Display returns the way the kind is referred to inside diagnostics, e.g.
// "expected `}`". Token aware rendering of a found token lives on Token.
func (k Kind) Display() string {
	switch k {
	case BANG:
		return "!"
	case DOLLAR:
		return "$"
	case AND:
		return "&"
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	case SPREAD:
		return "..."
	case COLON:
		return ":"
	case EQUALS:
		return "="
	case AT:
		return "@"
	case LBRACK:
		return "["
	case RBRACK:
		return "]"
	case LBRACE:
		return "{"
	case RBRACE:
		return "}"
	case PIPE:
		return "|"
	case NAME:
		return "name"
	case INTEGER:
		return "integer"
	case FLOAT:
		return "float"
	case STRING:
		return "string"
	case TRUE:
		return "true"
	case FALSE:
		return "false"
	case NULL:
		return "null"
	case EOF:
		return "end of input"
	case ERROR:
		return "tokenization error"
	default:
		return "undefined"
	}
}

// IsPunctuator reports whether the kind is one of the 14 punctuators.
func (k Kind) IsPunctuator() bool {
	return k >= BANG && k <= PIPE
}

// IsClosingDelimiter reports whether the kind closes a bracketed construct.
func (k Kind) IsClosingDelimiter() bool {
	return k == RPAREN || k == RBRACK || k == RBRACE
}
