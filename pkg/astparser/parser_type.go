package astparser

import (
	"fmt"

	"github.com/wundergraph/gqlparse/pkg/ast"
	"github.com/wundergraph/gqlparse/pkg/report"
	"github.com/wundergraph/gqlparse/pkg/token"
)

// parseType parses a type annotation: a named type or a list type, each
// optionally made non-null with a trailing `!`. List types nest and charge
// the depth bound.
func (p *Parser) parseType() (ast.Type, bool) {
	tok, ok := p.stream.Peek()
	if !ok || tok.Kind == token.EOF {
		p.record(report.Error{
			Message: "expected name",
			Span:    p.eofSpan(),
			Kind:    report.ErrorKindUnexpectedEOF,
		})
		return ast.Type{}, false
	}

	var parsed ast.Type
	switch {
	case tok.Kind == token.LBRACK:
		parsed, ok = p.parseListType(tok)
		if !ok {
			return ast.Type{}, false
		}
	case isNameToken(tok.Kind):
		name, _ := p.expectNameOnly()
		parsed = ast.NamedType(name)
	case tok.Kind == token.ERROR:
		p.handleLexerError(tok)
		return ast.Type{}, false
	default:
		p.record(report.Error{
			Message: fmt.Sprintf("expected name, found `%s`", tok.Display()),
			Span:    tok.Span,
			Kind:    report.ErrorKindUnexpectedToken,
		})
		return ast.Type{}, false
	}

	if p.peekIs(token.BANG) {
		p.stream.Read()
		parsed = ast.NonNullType(parsed)
	}
	return parsed, true
}

func (p *Parser) parseListType(lbrack token.Token) (ast.Type, bool) {
	p.stream.Read()
	if !p.enterNesting(lbrack.Span) {
		return ast.Type{}, false
	}
	defer p.leaveNesting()
	p.pushDelimiter('[', lbrack.Span, DelimiterContextListType)

	ofType, ok := p.parseType()
	if !ok {
		p.popDelimiter()
		return ast.Type{}, false
	}

	tok, peeked := p.stream.Peek()
	if !peeked || tok.Kind == token.EOF {
		p.handleUnclosedBracket()
		return ast.ListType(ofType), true
	}
	if _, ok = p.expect(token.RBRACK); !ok {
		p.popDelimiter()
		return ast.Type{}, false
	}
	p.popDelimiter()
	return ast.ListType(ofType), true
}
