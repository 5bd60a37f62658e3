package astparser

import (
	"fmt"

	"github.com/wundergraph/gqlparse/pkg/position"
	"github.com/wundergraph/gqlparse/pkg/report"
	"github.com/wundergraph/gqlparse/pkg/token"
)

func (p *Parser) record(err report.Error) {
	p.errors = append(p.errors, err)
}

// expect consumes the next token when it has the wanted kind. On any other
// token it records a diagnostic and leaves the token in place so the caller
// can resynchronize on it. A wrong closing delimiter at a position where the
// innermost open delimiter wants kind is reported as mismatched rather than
// merely unexpected.
func (p *Parser) expect(kind token.Kind) (token.Token, bool) {
	tok, ok := p.stream.Peek()
	if !ok {
		p.record(report.Error{
			Message: fmt.Sprintf("expected `%s`", kind.Display()),
			Span:    p.eofSpan(),
			Kind:    report.ErrorKindUnexpectedEOF,
		})
		return token.Token{}, false
	}
	if tok.Kind != kind {
		if kind.IsClosingDelimiter() && tok.Kind.IsClosingDelimiter() && p.expectedCloser() == kind {
			opener := p.delimiters[len(p.delimiters)-1]
			p.record(report.Error{
				Message: fmt.Sprintf("mismatched closing delimiter `%s`", tok.Kind.Display()),
				Span:    tok.Span,
				Kind:    report.ErrorKindMismatchedDelimiter,
			}.WithNote(report.GeneralNoteAt("delimiter opened here", opener.span)))
			return token.Token{}, false
		}
		p.record(report.Error{
			Message: fmt.Sprintf("expected `%s`, found `%s`", kind.Display(), tok.Display()),
			Span:    tok.Span,
			Kind:    report.ErrorKindUnexpectedToken,
		})
		return token.Token{}, false
	}
	p.stream.Read()
	return tok, true
}

// expectName consumes a name token and returns its text and span.
func (p *Parser) expectName() (string, position.Span, bool) {
	span := p.eofSpan()
	if tok, ok := p.stream.Peek(); ok {
		span = tok.Span
	}
	name, ok := p.expectNameOnly()
	return name, span, ok
}

// expectNameOnly consumes a name token and returns its text. The literals
// `true`, `false` and `null` count as names here, they carry no text of
// their own so the spelling is synthesized.
func (p *Parser) expectNameOnly() (string, bool) {
	tok, ok := p.stream.Peek()
	if !ok {
		p.record(report.Error{
			Message: "expected name",
			Span:    p.eofSpan(),
			Kind:    report.ErrorKindUnexpectedEOF,
		})
		return "", false
	}
	switch tok.Kind {
	case token.NAME:
		p.stream.Read()
		return tok.Text.String(), true
	case token.TRUE:
		p.stream.Read()
		return "true", true
	case token.FALSE:
		p.stream.Read()
		return "false", true
	case token.NULL:
		p.stream.Read()
		return "null", true
	}
	p.record(report.Error{
		Message: fmt.Sprintf("expected name, found `%s`", tok.Display()),
		Span:    tok.Span,
		Kind:    report.ErrorKindUnexpectedToken,
	})
	return "", false
}

// expectKeyword consumes a name token spelled exactly keyword and returns
// its span.
func (p *Parser) expectKeyword(keyword string) (position.Span, bool) {
	tok, ok := p.stream.Peek()
	if !ok {
		p.record(report.Error{
			Message: fmt.Sprintf("expected `%s`", keyword),
			Span:    p.eofSpan(),
			Kind:    report.ErrorKindUnexpectedEOF,
		})
		return position.Span{}, false
	}
	if tok.Kind == token.NAME && tok.Text.String() == keyword {
		p.stream.Read()
		return tok.Span, true
	}
	p.record(report.Error{
		Message: fmt.Sprintf("expected `%s`, found `%s`", keyword, tok.Display()),
		Span:    tok.Span,
		Kind:    report.ErrorKindUnexpectedToken,
	})
	return position.Span{}, false
}

func (p *Parser) peekIs(kind token.Kind) bool {
	tok, ok := p.stream.Peek()
	return ok && tok.Kind == kind
}

func (p *Parser) peekIsKeyword(keyword string) bool {
	tok, ok := p.stream.Peek()
	return ok && tok.Kind == token.NAME && tok.Text.String() == keyword
}

// eofSpan is the anchor for diagnostics on an exhausted stream: an empty
// span directly after the last consumed token.
func (p *Parser) eofSpan() position.Span {
	if tok, ok := p.stream.Current(); ok {
		return position.EmptySpan(tok.Span.End).WithPath(tok.Span.Path)
	}
	return position.EmptySpan(position.Position{})
}

// peekContext returns the span and display of the next token, or the end of
// input stand-ins when the stream is exhausted.
func (p *Parser) peekContext() (position.Span, string) {
	tok, ok := p.stream.Peek()
	if !ok {
		return p.eofSpan(), "end of input"
	}
	return tok.Span, tok.Display()
}

// handleLexerError converts an error token into a diagnostic and consumes
// it, the surrounding construct then resynchronizes past it.
func (p *Parser) handleLexerError(tok token.Token) {
	p.record(report.Error{
		Message: tok.Message,
		Span:    tok.Span,
		Kind:    report.ErrorKindLexer,
		Notes:   tok.Notes,
	})
	p.stream.Read()
}
