// Package lexer turns a source string into the token sequence consumed by the
// parser. Lexing never fails: invalid input becomes ERROR tokens so callers
// can keep going and collect every problem in one pass.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wundergraph/gqlparse/pkg/lexer/runes"
	"github.com/wundergraph/gqlparse/pkg/position"
	"github.com/wundergraph/gqlparse/pkg/report"
	"github.com/wundergraph/gqlparse/pkg/token"
	"github.com/wundergraph/gqlparse/pkg/unicodename"
)

const (
	spreadAddHelp   = "Add one more `.` to form the spread operator `...`"
	spreadGapHelp   = "These dots may have been intended to form a `...` spread operator. Try removing the extra spacing between the dots."
	spreadThirdHelp = "This `.` may have been intended to complete a `...` spread operator. Try removing the extra spacing between the dots."
)

// Lexer produces the token sequence for a single source string. Token text
// borrows from the source, so holding on to tokens pins the whole source
// buffer, see token.Text.
//
// The sequence is finite and ends in exactly one EOF token. Comments and
// commas are not tokens of their own; they attach to the next token as
// trivia, the EOF token included.
type Lexer struct {
	source        string
	pos           position.Position
	lastWasCR     bool
	pendingTrivia []token.Trivia
	finished      bool
	path          string
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithPath attaches a file path to every span the Lexer produces.
func WithPath(path string) Option {
	return func(l *Lexer) {
		l.path = path
	}
}

// New returns a Lexer positioned at the start of source.
func New(source string, opts ...Option) *Lexer {
	l := &Lexer{
		source: source,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Read returns the next token. Once the EOF token has been returned, ok is
// false for every further call.
func (l *Lexer) Read() (t token.Token, ok bool) {
	if l.finished {
		return t, false
	}
	t = l.next()
	if t.Kind == token.EOF {
		l.finished = true
	}
	return t, true
}

// TracksUTF16Columns reports that spans carry UTF-16 column information.
func (l *Lexer) TracksUTF16Columns() bool {
	return true
}

func (l *Lexer) next() token.Token {
	for {
		l.skipWhitespace()

		start := l.pos

		r, ok := l.peekRune()
		if !ok {
			return l.makeToken(token.EOF, l.makeSpan(start))
		}

		switch r {
		case runes.HASHTAG:
			l.readComment(start)
			continue
		case runes.COMMA:
			l.readRune()
			l.pendingTrivia = append(l.pendingTrivia, token.Trivia{
				Kind: token.TriviaKindComma,
				Span: l.makeSpan(start),
			})
			continue
		}

		if kind, isPunctuator := punctuatorKind(r); isPunctuator {
			l.readRune()
			return l.makeToken(kind, l.makeSpan(start))
		}

		switch {
		case r == runes.DOT:
			return l.readDots(start)
		case r == runes.QUOTE:
			return l.readString(start)
		case isNameStart(r):
			return l.readName(start)
		case r == runes.SUB || isDigit(r):
			return l.readNumber(start)
		default:
			return l.readInvalidCharacter(start)
		}
	}
}

// skipWhitespace swallows the ignored characters: space, tab and the three
// line terminator spellings. A byte order mark is ignored at offset 0 only;
// anywhere else it is an ordinary invalid character.
func (l *Lexer) skipWhitespace() {
	for {
		r, ok := l.peekRune()
		if !ok {
			return
		}
		switch r {
		case runes.SPACE, runes.TAB, runes.LINETERMINATOR, runes.CARRIAGERETURN:
			l.readRune()
		case runes.BOM:
			if l.pos.Offset != 0 {
				return
			}
			l.readRune()
		default:
			return
		}
	}
}

func (l *Lexer) skipSameLineWhitespace() {
	for {
		r, ok := l.peekRune()
		if !ok || (r != runes.SPACE && r != runes.TAB) {
			return
		}
		l.readRune()
	}
}

func (l *Lexer) readComment(start position.Position) {
	l.readRune()
	contentStart := l.pos.Offset

	for {
		r, ok := l.peekRune()
		if !ok || r == runes.LINETERMINATOR || r == runes.CARRIAGERETURN {
			break
		}
		l.readRune()
	}

	l.pendingTrivia = append(l.pendingTrivia, token.Trivia{
		Kind: token.TriviaKindComment,
		Text: token.Borrowed(l.source[contentStart:l.pos.Offset]),
		Span: l.makeSpan(start),
	})
}

// readDots lexes `...` or diagnoses the dot arrangement that was found
// instead. Dots separated by whitespace on the same line fold into one error
// describing the shape; a dot followed by a line break stays a plain single
// dot error.
func (l *Lexer) readDots(start position.Position) token.Token {
	l.readRune()
	l.skipSameLineWhitespace()

	if r, ok := l.peekRune(); !ok || r != runes.DOT {
		// A lone dot could be many things, e.g. `Foo.Bar`, so no hint.
		return l.makeErrorToken("Unexpected `.`", l.makeSpan(start))
	}

	secondStart := l.pos
	firstTwoAdjacent := secondStart.Offset == start.Offset+1
	l.readRune()
	l.skipSameLineWhitespace()

	if r, ok := l.peekRune(); !ok || r != runes.DOT {
		span := l.makeSpan(start)
		if firstTwoAdjacent {
			return l.makeErrorToken("Unexpected `..` (use `...` for spread operator)", span,
				report.HelpNote(spreadAddHelp))
		}
		return l.makeErrorToken("Unexpected `. .` (use `...` for spread operator)", span,
			report.HelpNote(spreadGapHelp))
	}

	thirdStart := l.pos
	secondThirdAdjacent := thirdStart.Offset == secondStart.Offset+1
	l.readRune()
	span := l.makeSpan(start)

	switch {
	case firstTwoAdjacent && secondThirdAdjacent:
		return l.makeToken(token.SPREAD, span)
	case firstTwoAdjacent:
		return l.makeErrorToken("Unexpected `.. .`", span, report.HelpNote(spreadThirdHelp))
	case secondThirdAdjacent:
		return l.makeErrorToken("Unexpected `. ..`", span, report.HelpNote(spreadGapHelp))
	default:
		return l.makeErrorToken("Unexpected `. . .`", span, report.HelpNote(spreadGapHelp))
	}
}

func (l *Lexer) readName(start position.Position) token.Token {
	nameStart := l.pos.Offset
	l.readRune()

	for {
		r, ok := l.peekRune()
		if !ok || !isNameContinue(r) {
			break
		}
		l.readRune()
	}

	name := l.source[nameStart:l.pos.Offset]
	span := l.makeSpan(start)

	switch name {
	case "true":
		return l.makeToken(token.TRUE, span)
	case "false":
		return l.makeToken(token.FALSE, span)
	case "null":
		return l.makeToken(token.NULL, span)
	default:
		return l.makeTextToken(token.NAME, name, span)
	}
}

func (l *Lexer) readNumber(start position.Position) token.Token {
	numStart := l.pos.Offset
	isFloat := false

	if r, ok := l.peekRune(); ok && r == runes.SUB {
		l.readRune()
	}

	r, ok := l.peekRune()
	switch {
	case ok && r == '0':
		l.readRune()
		if r, ok = l.peekRune(); ok && isDigit(r) {
			return l.numberError(start, numStart,
				"Invalid number: leading zeros are not allowed",
				"https://spec.graphql.org/September2025/#sec-Int-Value")
		}
	case ok && isDigit(r):
		l.readRune()
		l.swallowDigits()
	default:
		return l.makeErrorToken("Unexpected `-`", l.makeSpan(start))
	}

	// A dot only starts a fraction when a digit follows, so `1.` stays an
	// integer followed by a dot.
	if r, ok = l.peekRune(); ok && r == runes.DOT {
		if rem := l.remaining(); len(rem) >= 2 && isDigitByte(rem[1]) {
			isFloat = true
			l.readRune()
			l.swallowDigits()
		}
	}

	if r, ok = l.peekRune(); ok && (r == 'e' || r == 'E') {
		isFloat = true
		l.readRune()
		if r, ok = l.peekRune(); ok && (r == '+' || r == runes.SUB) {
			l.readRune()
		}
		if r, ok = l.peekRune(); !ok || !isDigit(r) {
			return l.numberError(start, numStart,
				"Invalid number: exponent must have at least one digit",
				"https://spec.graphql.org/September2025/#sec-Float-Value")
		}
		l.swallowDigits()
	}

	text := l.source[numStart:l.pos.Offset]
	span := l.makeSpan(start)
	if isFloat {
		return l.makeTextToken(token.FLOAT, text, span)
	}
	return l.makeTextToken(token.INTEGER, text, span)
}

// numberError swallows the remaining number-like characters so the error
// token covers the whole malformed literal and lexing resumes cleanly after
// it.
func (l *Lexer) numberError(start position.Position, numStart int, message, specURL string) token.Token {
	for {
		r, ok := l.peekRune()
		if !ok {
			break
		}
		if !isDigit(r) && r != runes.DOT && r != 'e' && r != 'E' && r != '+' && r != runes.SUB {
			break
		}
		l.readRune()
	}

	text := l.source[numStart:l.pos.Offset]
	return l.makeErrorToken(
		fmt.Sprintf("%s: `%s`", message, text),
		l.makeSpan(start),
		report.SpecNote(specURL),
	)
}

func (l *Lexer) readString(start position.Position) token.Token {
	strStart := l.pos.Offset

	if strings.HasPrefix(l.remaining(), `"""`) {
		return l.readBlockString(start, strStart)
	}

	l.readRune()

	// Unescaped control characters are diagnosed only once the literal is
	// known to be terminated; an unterminated string wins.
	var ctrl rune
	ctrlSeen := false

	for {
		r, ok := l.peekRune()
		if !ok {
			return l.makeErrorToken("Unterminated string literal", l.makeSpan(start),
				report.GeneralNoteAt("String started here", l.makeSpan(start)),
				report.HelpNote("Add closing `\"`"))
		}
		switch {
		case r == runes.LINETERMINATOR || r == runes.CARRIAGERETURN:
			// Consume the newline so the span covers it.
			l.readRune()
			if l.lastWasCR {
				if r, ok = l.peekRune(); ok && r == runes.LINETERMINATOR {
					l.readRune()
				}
			}
			return l.makeErrorToken("Unterminated string literal", l.makeSpan(start),
				report.GeneralNote("Single-line strings cannot contain unescaped newlines"),
				report.HelpNote("Use a block string (triple quotes) for multi-line strings, or escape the newline with `\\n`"))
		case r == runes.QUOTE:
			l.readRune()
			if ctrlSeen {
				return l.makeErrorToken(
					fmt.Sprintf("Unexpected control character %s in string literal", describeRune(ctrl)),
					l.makeSpan(start))
			}
			return l.makeTextToken(token.STRING, l.source[strStart:l.pos.Offset], l.makeSpan(start))
		case r == runes.BACKSLASH:
			l.readRune()
			if _, ok = l.peekRune(); ok {
				l.readRune()
			}
		case unicode.IsControl(r) && r != runes.TAB:
			if !ctrlSeen {
				ctrl, ctrlSeen = r, true
			}
			l.readRune()
		default:
			l.readRune()
		}
	}
}

func (l *Lexer) readBlockString(start position.Position, strStart int) token.Token {
	l.swallowAmount(3)

	for {
		r, ok := l.peekRune()
		if !ok {
			return l.makeErrorToken("Unterminated block string", l.makeSpan(start),
				report.GeneralNoteAt("Block string started here", l.makeSpan(start)),
				report.HelpNote("Add closing `\"\"\"`"))
		}
		switch {
		case r == runes.BACKSLASH && strings.HasPrefix(l.remaining(), `\"""`):
			l.swallowAmount(4)
		case r == runes.QUOTE && strings.HasPrefix(l.remaining(), `"""`):
			l.swallowAmount(3)
			return l.makeTextToken(token.STRING, l.source[strStart:l.pos.Offset], l.makeSpan(start))
		default:
			l.readRune()
		}
	}
}

func (l *Lexer) readInvalidCharacter(start position.Position) token.Token {
	r := l.readRune()
	return l.makeErrorToken(
		fmt.Sprintf("Unexpected character %s", describeRune(r)),
		l.makeSpan(start))
}

// readRune consumes the next rune and advances the position, counting `\n`,
// `\r` and `\r\n` as one line terminator each.
func (l *Lexer) readRune() (r rune) {
	r, size := utf8.DecodeRuneInString(l.remaining())
	switch r {
	case runes.LINETERMINATOR:
		if l.lastWasCR {
			// The \n of a \r\n pair. The line already advanced at the \r.
			l.pos = l.pos.AdvanceCRLF()
			l.lastWasCR = false
		} else {
			l.pos = l.pos.AdvanceLine(size)
		}
	case runes.CARRIAGERETURN:
		l.pos = l.pos.AdvanceLine(size)
		l.lastWasCR = true
	default:
		l.pos = l.pos.AdvanceColumn(r)
		l.lastWasCR = false
	}
	return r
}

func (l *Lexer) peekRune() (r rune, ok bool) {
	if l.pos.Offset >= len(l.source) {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(l.remaining())
	return r, true
}

func (l *Lexer) swallowAmount(amount int) {
	for i := 0; i < amount; i++ {
		l.readRune()
	}
}

func (l *Lexer) swallowDigits() {
	for {
		r, ok := l.peekRune()
		if !ok || !isDigit(r) {
			return
		}
		l.readRune()
	}
}

func (l *Lexer) remaining() string {
	return l.source[l.pos.Offset:]
}

func (l *Lexer) makeSpan(start position.Position) position.Span {
	return position.Span{Start: start, End: l.pos, Path: l.path}
}

func (l *Lexer) makeToken(kind token.Kind, span position.Span) token.Token {
	return token.Token{
		Kind:   kind,
		Trivia: l.takeTrivia(),
		Span:   span,
	}
}

func (l *Lexer) makeTextToken(kind token.Kind, text string, span position.Span) token.Token {
	t := l.makeToken(kind, span)
	t.Text = token.Borrowed(text)
	return t
}

func (l *Lexer) makeErrorToken(message string, span position.Span, notes ...report.Note) token.Token {
	t := l.makeToken(token.ERROR, span)
	t.Message = message
	t.Notes = notes
	return t
}

func (l *Lexer) takeTrivia() []token.Trivia {
	trivia := l.pendingTrivia
	l.pendingTrivia = nil
	return trivia
}

func punctuatorKind(r rune) (token.Kind, bool) {
	switch r {
	case runes.BANG:
		return token.BANG, true
	case runes.DOLLAR:
		return token.DOLLAR, true
	case runes.AND:
		return token.AND, true
	case runes.LPAREN:
		return token.LPAREN, true
	case runes.RPAREN:
		return token.RPAREN, true
	case runes.COLON:
		return token.COLON, true
	case runes.EQUALS:
		return token.EQUALS, true
	case runes.AT:
		return token.AT, true
	case runes.LBRACK:
		return token.LBRACK, true
	case runes.RBRACK:
		return token.RBRACK, true
	case runes.LBRACE:
		return token.LBRACE, true
	case runes.RBRACE:
		return token.RBRACE, true
	case runes.PIPE:
		return token.PIPE, true
	default:
		return token.UNDEFINED, false
	}
}

// describeRune renders a character for an error message. Invisible characters
// carry their code point and, when known, their Unicode name, because they
// render as nothing in a terminal.
func describeRune(r rune) string {
	if name, ok := unicodename.Lookup(r); ok {
		return fmt.Sprintf("`%c` (U+%04X: %s)", r, r, name)
	}
	if unicode.IsControl(r) || (unicode.IsSpace(r) && r != runes.SPACE) {
		return fmt.Sprintf("`%c` (U+%04X)", r, r)
	}
	return fmt.Sprintf("`%c`", r)
}

func isNameStart(r rune) bool {
	return r == runes.UNDERSCORE || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func isNameContinue(r rune) bool {
	return isNameStart(r) || isDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
