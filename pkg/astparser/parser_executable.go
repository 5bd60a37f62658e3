package astparser

import (
	"fmt"

	"github.com/wundergraph/gqlparse/pkg/ast"
	"github.com/wundergraph/gqlparse/pkg/report"
	"github.com/wundergraph/gqlparse/pkg/token"
)

func (p *Parser) parseOperationDefinition() (ast.OperationDefinition, bool) {
	if p.peekIs(token.LBRACE) {
		// Shorthand form: a bare selection set is an anonymous query.
		tok, _ := p.stream.Peek()
		definition := ast.OperationDefinition{
			OperationType: ast.OperationTypeQuery,
			Shorthand:     true,
			Position:      tok.Span.Start,
		}
		var ok bool
		definition.SelectionSet, ok = p.parseSelectionSet()
		return definition, ok
	}

	keywordTok, _ := p.stream.Read()
	definition := ast.OperationDefinition{
		Position: keywordTok.Span.Start,
	}
	switch keywordTok.Text.String() {
	case "query":
		definition.OperationType = ast.OperationTypeQuery
	case "mutation":
		definition.OperationType = ast.OperationTypeMutation
	case "subscription":
		definition.OperationType = ast.OperationTypeSubscription
	}

	if tok, ok := p.stream.Peek(); ok && isNameToken(tok.Kind) {
		definition.Name, _ = p.expectNameOnly()
	}

	var ok bool
	if p.peekIs(token.LPAREN) {
		definition.VariableDefinitions, ok = p.parseVariableDefinitions()
		if !ok {
			return definition, false
		}
	}
	definition.Directives, ok = p.parseDirectives(contextAny)
	if !ok {
		return definition, false
	}
	definition.SelectionSet, ok = p.parseSelectionSet()
	return definition, ok
}

func (p *Parser) parseVariableDefinitions() ([]ast.VariableDefinition, bool) {
	lparen, _ := p.stream.Read()
	p.pushDelimiter('(', lparen.Span, DelimiterContextVariableDefinitions)

	if p.peekIs(token.RPAREN) {
		closing, _ := p.stream.Read()
		p.popDelimiter()
		p.record(report.Error{
			Message: "variable definitions cannot be empty; omit the parentheses instead",
			Span:    lparen.Span.To(closing.Span),
			Kind:    report.ErrorKindInvalidEmptyConstruct,
		})
		return nil, true
	}

	var definitions []ast.VariableDefinition
	for {
		tok, ok := p.stream.Peek()
		if !ok || tok.Kind == token.EOF {
			p.handleUnclosedParen()
			return definitions, true
		}
		if tok.Kind == token.RPAREN {
			p.stream.Read()
			p.popDelimiter()
			return definitions, true
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

		definition, ok := p.parseVariableDefinition()
		if !ok {
			p.popDelimiter()
			return definitions, false
		}
		definitions = append(definitions, definition)
	}
}

func (p *Parser) parseVariableDefinition() (ast.VariableDefinition, bool) {
	dollar, ok := p.expect(token.DOLLAR)
	if !ok {
		return ast.VariableDefinition{}, false
	}
	definition := ast.VariableDefinition{
		Position: dollar.Span.Start,
	}
	definition.Name, ok = p.expectNameOnly()
	if !ok {
		return definition, false
	}
	if _, ok = p.expect(token.COLON); !ok {
		return definition, false
	}
	definition.Type, ok = p.parseType()
	if !ok {
		return definition, false
	}
	if p.peekIs(token.EQUALS) {
		p.stream.Read()
		definition.HasDefaultValue = true
		definition.DefaultValue, ok = p.parseValue(contextVariableDefaults)
		if !ok {
			return definition, false
		}
	}
	definition.Directives, ok = p.parseDirectives(contextDirectiveArguments)
	return definition, ok
}

func (p *Parser) parseSelectionSet() (ast.SelectionSet, bool) {
	lbrace, ok := p.expect(token.LBRACE)
	if !ok {
		return ast.SelectionSet{}, false
	}
	if !p.enterNesting(lbrace.Span) {
		return ast.SelectionSet{}, false
	}
	defer p.leaveNesting()
	p.pushDelimiter('{', lbrace.Span, DelimiterContextSelectionSet)

	set := ast.SelectionSet{
		LBrace: lbrace.Span.Start,
	}

	if p.peekIs(token.RBRACE) {
		closing, _ := p.stream.Read()
		p.popDelimiter()
		set.RBrace = closing.Span.Start
		p.record(report.Error{
			Message: "selection set cannot be empty",
			Span:    lbrace.Span.To(closing.Span),
			Kind:    report.ErrorKindInvalidEmptyConstruct,
		})
		return set, true
	}

	for {
		tok, ok := p.stream.Peek()
		if !ok || tok.Kind == token.EOF {
			p.handleUnclosedBrace()
			return set, true
		}
		if tok.Kind == token.RBRACE {
			p.stream.Read()
			p.popDelimiter()
			set.RBrace = tok.Span.Start
			return set, true
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

		selection, ok := p.parseSelection(tok)
		if !ok {
			p.popDelimiter()
			return set, false
		}
		set.Selections = append(set.Selections, selection)
	}
}

func (p *Parser) parseSelection(tok token.Token) (ast.Selection, bool) {
	switch {
	case tok.Kind == token.SPREAD:
		return p.parseFragmentSelection()
	case isNameToken(tok.Kind):
		return p.parseField()
	default:
		p.record(report.Error{
			Message: fmt.Sprintf("expected name, found `%s`", tok.Display()),
			Span:    tok.Span,
			Kind:    report.ErrorKindUnexpectedToken,
		})
		return nil, false
	}
}

func (p *Parser) parseField() (ast.Field, bool) {
	name, span, ok := p.expectName()
	if !ok {
		return ast.Field{}, false
	}
	field := ast.Field{
		Position: span.Start,
		Name:     name,
	}

	if p.peekIs(token.COLON) {
		p.stream.Read()
		field.Alias = field.Name
		field.Name, ok = p.expectNameOnly()
		if !ok {
			return field, false
		}
	}

	if p.peekIs(token.LPAREN) {
		field.Arguments, ok = p.parseArguments(contextAny, DelimiterContextFieldArguments)
		if !ok {
			return field, false
		}
	}
	field.Directives, ok = p.parseDirectives(contextAny)
	if !ok {
		return field, false
	}
	if p.peekIs(token.LBRACE) {
		field.HasSelections = true
		field.SelectionSet, ok = p.parseSelectionSet()
		if !ok {
			return field, false
		}
	}
	return field, true
}

// parseFragmentSelection parses everything behind a `...`: a fragment spread
// when a plain name follows, an inline fragment when `on`, a directive or a
// selection set follows.
func (p *Parser) parseFragmentSelection() (ast.Selection, bool) {
	spread, _ := p.stream.Read()

	tok, ok := p.stream.Peek()
	if !ok || tok.Kind == token.EOF {
		p.record(report.Error{
			Message: "expected name",
			Span:    p.eofSpan(),
			Kind:    report.ErrorKindUnexpectedEOF,
		})
		return nil, false
	}

	if isNameToken(tok.Kind) && !(tok.Kind == token.NAME && tok.Text.String() == "on") {
		name, _ := p.expectNameOnly()
		fragmentSpread := ast.FragmentSpread{
			Position:     spread.Span.Start,
			FragmentName: name,
		}
		fragmentSpread.Directives, ok = p.parseDirectives(contextAny)
		return fragmentSpread, ok
	}

	inline := ast.InlineFragment{
		Position: spread.Span.Start,
	}
	if p.peekIsKeyword("on") {
		p.stream.Read()
		typeName, ok := p.expectNameOnly()
		if !ok {
			return inline, false
		}
		inline.HasTypeCondition = true
		inline.TypeCondition = ast.TypeCondition{On: typeName}
	}
	inline.Directives, ok = p.parseDirectives(contextAny)
	if !ok {
		return inline, false
	}
	inline.SelectionSet, ok = p.parseSelectionSet()
	return inline, ok
}

func (p *Parser) parseFragmentDefinition() (ast.FragmentDefinition, bool) {
	keywordSpan, _ := p.expectKeyword("fragment")
	definition := ast.FragmentDefinition{
		Position: keywordSpan.Start,
	}

	name, nameSpan, ok := p.expectName()
	if !ok {
		return definition, false
	}
	definition.Name = name
	// `on` stays in the node; the diagnostic alone marks it invalid.
	if name == "on" {
		p.record(report.Error{
			Message: "fragment name cannot be `on`",
			Span:    nameSpan,
			Kind:    report.ErrorKindReservedName,
		}.WithNote(report.SpecNote("https://spec.graphql.org/September2025/#FragmentName")))
	}

	if _, ok = p.expectKeyword("on"); !ok {
		return definition, false
	}
	typeName, ok := p.expectNameOnly()
	if !ok {
		return definition, false
	}
	definition.TypeCondition = ast.TypeCondition{On: typeName}

	definition.Directives, ok = p.parseDirectives(contextAny)
	if !ok {
		return definition, false
	}
	definition.SelectionSet, ok = p.parseSelectionSet()
	return definition, ok
}
