package astparser

import (
	"github.com/wundergraph/gqlparse/pkg/ast"
	"github.com/wundergraph/gqlparse/pkg/report"
	"github.com/wundergraph/gqlparse/pkg/token"
)

// parseDirectives parses zero or more `@name(args)` annotations. The const
// context propagates into argument values: definition position directives
// must not reference variables.
func (p *Parser) parseDirectives(context constContext) ([]ast.Directive, bool) {
	var directives []ast.Directive
	for p.peekIs(token.AT) {
		directive, ok := p.parseDirective(context)
		if !ok {
			return directives, false
		}
		directives = append(directives, directive)
	}
	return directives, true
}

func (p *Parser) parseDirective(context constContext) (ast.Directive, bool) {
	at, _ := p.stream.Read()
	name, ok := p.expectNameOnly()
	if !ok {
		return ast.Directive{}, false
	}
	directive := ast.Directive{
		Position: at.Span.Start,
		Name:     name,
	}
	if p.peekIs(token.LPAREN) {
		directive.Arguments, ok = p.parseArguments(context, DelimiterContextDirectiveArguments)
		if !ok {
			return directive, false
		}
	}
	return directive, true
}

// parseArguments parses a parenthesized `name: value` list. The parentheses
// must hold at least one argument; empty parens are a diagnostic, not a node.
func (p *Parser) parseArguments(context constContext, delimContext DelimiterContext) ([]ast.Argument, bool) {
	lparen, _ := p.stream.Read()
	p.pushDelimiter('(', lparen.Span, delimContext)

	if p.peekIs(token.RPAREN) {
		closing, _ := p.stream.Read()
		p.popDelimiter()
		p.record(report.Error{
			Message: "argument list cannot be empty; omit the parentheses instead",
			Span:    lparen.Span.To(closing.Span),
			Kind:    report.ErrorKindInvalidEmptyConstruct,
		})
		return nil, true
	}

	var arguments []ast.Argument
	for {
		tok, ok := p.stream.Peek()
		if !ok || tok.Kind == token.EOF {
			p.handleUnclosedParen()
			return arguments, true
		}
		if tok.Kind == token.RPAREN {
			p.stream.Read()
			p.popDelimiter()
			return arguments, true
		}
		if tok.Kind.IsClosingDelimiter() {
			p.recordMismatchedCloser(tok)
			p.stream.Read()
			continue
		}
		if tok.Kind == token.ERROR {
			p.handleLexerError(tok)
			continue
		}
		name, nameSpan, ok := p.expectName()
		if !ok {
			p.popDelimiter()
			return arguments, false
		}
		if _, ok = p.expect(token.COLON); !ok {
			p.popDelimiter()
			return arguments, false
		}
		value, ok := p.parseValue(context)
		if !ok {
			p.popDelimiter()
			return arguments, false
		}
		arguments = append(arguments, ast.Argument{
			Position: nameSpan.Start,
			Name:     name,
			Value:    value,
		})
	}
}
