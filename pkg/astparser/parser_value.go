package astparser

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/wundergraph/gqlparse/pkg/ast"
	"github.com/wundergraph/gqlparse/pkg/report"
	"github.com/wundergraph/gqlparse/pkg/token"
)

// constContext labels the position a const value appears in. The empty
// context is an ordinary value position where variables are legal.
type constContext string

const (
	contextAny                constContext = ""
	contextVariableDefaults   constContext = "variable default values"
	contextDirectiveArguments constContext = "directive arguments"
	contextInputFieldDefaults constContext = "input field default values"
)

// parseValue parses any value literal. In a const context a variable is
// diagnosed but still returned as a node, so the tree stays complete.
func (p *Parser) parseValue(context constContext) (ast.Value, bool) {
	tok, ok := p.stream.Peek()
	if !ok {
		p.record(report.Error{
			Message: "expected value",
			Span:    p.eofSpan(),
			Kind:    report.ErrorKindUnexpectedEOF,
		})
		return ast.Value{}, false
	}

	switch tok.Kind {
	case token.DOLLAR:
		return p.parseVariableValue(context)
	case token.INTEGER:
		return p.parseIntValue(tok)
	case token.FLOAT:
		return p.parseFloatValue(tok)
	case token.STRING:
		return p.parseStringValue(tok)
	case token.TRUE:
		p.stream.Read()
		return ast.Value{Kind: ast.ValueKindBoolean, BooleanValue: true}, true
	case token.FALSE:
		p.stream.Read()
		return ast.Value{Kind: ast.ValueKindBoolean, BooleanValue: false}, true
	case token.NULL:
		p.stream.Read()
		return ast.Value{Kind: ast.ValueKindNull}, true
	case token.NAME:
		p.stream.Read()
		return ast.Value{Kind: ast.ValueKindEnum, EnumValue: tok.Text.String()}, true
	case token.LBRACK:
		return p.parseListValue(context)
	case token.LBRACE:
		return p.parseObjectValue(context)
	case token.ERROR:
		p.handleLexerError(tok)
		return ast.Value{}, false
	case token.EOF:
		p.record(report.Error{
			Message: "expected value",
			Span:    tok.Span,
			Kind:    report.ErrorKindUnexpectedEOF,
		})
		return ast.Value{}, false
	default:
		p.record(report.Error{
			Message: fmt.Sprintf("expected value, found `%s`", tok.Display()),
			Span:    tok.Span,
			Kind:    report.ErrorKindUnexpectedToken,
		})
		return ast.Value{}, false
	}
}

func (p *Parser) parseVariableValue(context constContext) (ast.Value, bool) {
	dollar, _ := p.stream.Read()
	if context != contextAny {
		p.record(report.Error{
			Message: fmt.Sprintf("variables are not allowed in %s", context),
			Span:    dollar.Span,
			Kind:    report.ErrorKindInvalidSyntax,
		})
	}
	name, ok := p.expectNameOnly()
	if !ok {
		return ast.Value{}, false
	}
	return ast.Value{Kind: ast.ValueKindVariable, VariableName: name}, true
}

func (p *Parser) parseIntValue(tok token.Token) (ast.Value, bool) {
	p.stream.Read()
	raw := tok.Text.String()
	value, err := tok.ParseIntValue()
	if err != nil || value < math.MinInt32 || value > math.MaxInt32 {
		message := fmt.Sprintf("invalid integer `%s`", raw)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			message = fmt.Sprintf("integer `%s` overflows 32-bit integer", raw)
		}
		p.record(report.Error{
			Message: message,
			Span:    tok.Span,
			Kind:    report.ErrorKindInvalidValue,
		})
		return ast.Value{Kind: ast.ValueKindInt}, true
	}
	return ast.Value{Kind: ast.ValueKindInt, IntValue: int32(value)}, true
}

func (p *Parser) parseFloatValue(tok token.Token) (ast.Value, bool) {
	p.stream.Read()
	raw := tok.Text.String()
	value, err := tok.ParseFloatValue()
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		message := fmt.Sprintf("invalid float `%s`", raw)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			message = fmt.Sprintf("float `%s` is not a finite number", raw)
		}
		p.record(report.Error{
			Message: message,
			Span:    tok.Span,
			Kind:    report.ErrorKindInvalidValue,
		})
		return ast.Value{Kind: ast.ValueKindFloat}, true
	}
	return ast.Value{Kind: ast.ValueKindFloat, FloatValue: value}, true
}

func (p *Parser) parseStringValue(tok token.Token) (ast.Value, bool) {
	p.stream.Read()
	value, err := tok.ParseStringValue()
	if err != nil {
		p.record(report.Error{
			Message: fmt.Sprintf("invalid string: %s", err),
			Span:    tok.Span,
			Kind:    report.ErrorKindInvalidValue,
		})
		return ast.Value{Kind: ast.ValueKindString}, true
	}
	return ast.Value{Kind: ast.ValueKindString, StringValue: value}, true
}

func (p *Parser) parseListValue(context constContext) (ast.Value, bool) {
	lbrack, _ := p.stream.Read()
	if !p.enterNesting(lbrack.Span) {
		return ast.Value{}, false
	}
	defer p.leaveNesting()
	p.pushDelimiter('[', lbrack.Span, DelimiterContextListValue)

	value := ast.Value{Kind: ast.ValueKindList, ListValue: []ast.Value{}}
	for {
		tok, ok := p.stream.Peek()
		if !ok || tok.Kind == token.EOF {
			p.handleUnclosedBracket()
			return value, true
		}
		if tok.Kind == token.RBRACK {
			p.stream.Read()
			p.popDelimiter()
			return value, true
		}
		if tok.Kind.IsClosingDelimiter() {
			p.recordMismatchedCloser(tok)
			p.stream.Read()
			continue
		}
		element, ok := p.parseValue(context)
		if !ok {
			p.popDelimiter()
			return value, false
		}
		value.ListValue = append(value.ListValue, element)
	}
}

func (p *Parser) parseObjectValue(context constContext) (ast.Value, bool) {
	lbrace, _ := p.stream.Read()
	if !p.enterNesting(lbrace.Span) {
		return ast.Value{}, false
	}
	defer p.leaveNesting()
	p.pushDelimiter('{', lbrace.Span, DelimiterContextObjectValue)

	value := ast.Value{Kind: ast.ValueKindObject, ObjectValue: []ast.ObjectField{}}
	for {
		tok, ok := p.stream.Peek()
		if !ok || tok.Kind == token.EOF {
			p.handleUnclosedBrace()
			return value, true
		}
		if tok.Kind == token.RBRACE {
			p.stream.Read()
			p.popDelimiter()
			return value, true
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
		name, ok := p.expectNameOnly()
		if !ok {
			p.popDelimiter()
			return value, false
		}
		if _, ok = p.expect(token.COLON); !ok {
			p.popDelimiter()
			return value, false
		}
		fieldValue, ok := p.parseValue(context)
		if !ok {
			p.popDelimiter()
			return value, false
		}
		value.ObjectValue = append(value.ObjectValue, ast.ObjectField{Name: name, Value: fieldValue})
	}
}
