package astparser

import (
	"fmt"

	"github.com/jensneuse/abstractlogger"

	"github.com/wundergraph/gqlparse/pkg/position"
	"github.com/wundergraph/gqlparse/pkg/report"
	"github.com/wundergraph/gqlparse/pkg/token"
)

// DelimiterContext names the construct an open delimiter belongs to, for the
// "opening `X` in ... here" notes on unclosed and mismatched delimiters.
type DelimiterContext int

const (
	DelimiterContextSchemaDefinition DelimiterContext = iota
	DelimiterContextObjectTypeDefinition
	DelimiterContextInterfaceDefinition
	DelimiterContextEnumDefinition
	DelimiterContextInputObjectDefinition
	DelimiterContextSelectionSet
	DelimiterContextFieldArguments
	DelimiterContextDirectiveArguments
	DelimiterContextVariableDefinitions
	DelimiterContextListType
	DelimiterContextListValue
	DelimiterContextObjectValue
	DelimiterContextArgumentDefinitions
)

func (c DelimiterContext) description() string {
	switch c {
	case DelimiterContextSchemaDefinition:
		return "schema definition"
	case DelimiterContextObjectTypeDefinition:
		return "object type definition"
	case DelimiterContextInterfaceDefinition:
		return "interface definition"
	case DelimiterContextEnumDefinition:
		return "enum definition"
	case DelimiterContextInputObjectDefinition:
		return "input object definition"
	case DelimiterContextSelectionSet:
		return "selection set"
	case DelimiterContextFieldArguments:
		return "field arguments"
	case DelimiterContextDirectiveArguments:
		return "directive arguments"
	case DelimiterContextVariableDefinitions:
		return "variable definitions"
	case DelimiterContextListType:
		return "list type annotation"
	case DelimiterContextListValue:
		return "list value"
	case DelimiterContextObjectValue:
		return "object value"
	case DelimiterContextArgumentDefinitions:
		return "argument definitions"
	default:
		return "unknown"
	}
}

// openDelimiter is one entry of the bracket stack.
type openDelimiter struct {
	kind    byte
	span    position.Span
	context DelimiterContext
}

func (p *Parser) pushDelimiter(kind byte, span position.Span, context DelimiterContext) {
	p.delimiters = append(p.delimiters, openDelimiter{kind: kind, span: span, context: context})
}

func (p *Parser) popDelimiter() {
	if len(p.delimiters) > 0 {
		p.delimiters = p.delimiters[:len(p.delimiters)-1]
	}
}

// expectedCloser is the closing kind matching the innermost open delimiter,
// or UNDEFINED when the stack is empty.
func (p *Parser) expectedCloser() token.Kind {
	if len(p.delimiters) == 0 {
		return token.UNDEFINED
	}
	switch p.delimiters[len(p.delimiters)-1].kind {
	case '(':
		return token.RPAREN
	case '[':
		return token.RBRACK
	case '{':
		return token.RBRACE
	}
	return token.UNDEFINED
}

// handleUnclosedParen records an unclosed `(` for the innermost open
// delimiter and pops it. Callers invoke it only while their own paren is the
// innermost entry.
func (p *Parser) handleUnclosedParen() {
	delim := p.delimiters[len(p.delimiters)-1]
	p.popDelimiter()
	p.record(report.Error{
		Message: "unclosed `(`",
		Span:    p.eofSpan(),
		Kind:    report.ErrorKindUnclosedDelimiter,
	}.WithNote(report.GeneralNoteAt("opening `(` in "+delim.context.description()+" here", delim.span)))
}

// handleUnclosedBrace is handleUnclosedParen for `{`.
func (p *Parser) handleUnclosedBrace() {
	delim := p.delimiters[len(p.delimiters)-1]
	p.popDelimiter()
	p.record(report.Error{
		Message: "unclosed `{`",
		Span:    p.eofSpan(),
		Kind:    report.ErrorKindUnclosedDelimiter,
	}.WithNote(report.GeneralNoteAt("opening `{` in "+delim.context.description()+" here", delim.span)))
}

// handleUnclosedBracket records an unclosed `[`. The list value note stays
// bare: the construct is obvious from the bracket itself.
func (p *Parser) handleUnclosedBracket() {
	delim := p.delimiters[len(p.delimiters)-1]
	p.popDelimiter()
	p.record(report.Error{
		Message: "unclosed `[`",
		Span:    p.eofSpan(),
		Kind:    report.ErrorKindUnclosedDelimiter,
	}.WithNote(report.GeneralNoteAt("opening `[` here", delim.span)))
}

// recordMismatchedCloser records a closing delimiter that does not pair with
// the innermost open one. The caller decides whether to consume it.
func (p *Parser) recordMismatchedCloser(tok token.Token) {
	err := report.Error{
		Message: fmt.Sprintf("mismatched closing delimiter `%s`", tok.Kind.Display()),
		Span:    tok.Span,
		Kind:    report.ErrorKindMismatchedDelimiter,
	}
	if len(p.delimiters) > 0 {
		opener := p.delimiters[len(p.delimiters)-1]
		err = err.WithNote(report.GeneralNoteAt("delimiter opened here", opener.span))
	}
	p.record(err)
}

// enterNesting charges one level against the depth bound. When the bound is
// exceeded it records a diagnostic once per definition and returns false;
// the caller abandons the construct.
func (p *Parser) enterNesting(at position.Span) bool {
	p.depth++
	if p.depth > p.maxDepth {
		if !p.depthExceeded {
			p.depthExceeded = true
			p.record(report.Error{
				Message: "maximum nesting depth exceeded",
				Span:    at,
				Kind:    report.ErrorKindInvalidSyntax,
			})
			p.log.Debug("Parser.enterNesting",
				abstractlogger.Int("maxDepth", p.maxDepth),
			)
		}
		p.depth--
		return false
	}
	return true
}

func (p *Parser) leaveNesting() {
	p.depth--
}
