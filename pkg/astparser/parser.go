// Package astparser turns token streams into the syntax trees declared in
// pkg/ast.
//
// The parser is recursive descent with multi error recovery: a defect inside
// one definition is recorded as a diagnostic and parsing resynchronizes at
// the next plausible definition start, so a single pass reports every broken
// definition while the intact ones still produce nodes.
package astparser

import (
	"fmt"

	"github.com/jensneuse/abstractlogger"

	"github.com/wundergraph/gqlparse/pkg/ast"
	"github.com/wundergraph/gqlparse/pkg/lexer"
	"github.com/wundergraph/gqlparse/pkg/position"
	"github.com/wundergraph/gqlparse/pkg/report"
	"github.com/wundergraph/gqlparse/pkg/token"
	"github.com/wundergraph/gqlparse/pkg/tokensource"
)

// DefaultMaxNestingDepth bounds how deep selection sets, list values, object
// values and list type annotations may nest. The parser recurses per nesting
// level, so the bound must fail closed with a diagnostic before adversarial
// input exhausts the goroutine stack.
const DefaultMaxNestingDepth = 128

// Parser is a recursive descent parser over a token stream.
//
// Diagnostics accumulate instead of aborting the parse. Each parse method
// returns its node and an ok flag; a false flag means the defect is already
// recorded and the caller decides how to resynchronize. A Parser consumes
// its stream once, create a fresh one per document.
type Parser struct {
	stream     *tokensource.Stream
	errors     report.ErrorList
	delimiters []openDelimiter

	depth         int
	maxDepth      int
	depthExceeded bool

	log abstractlogger.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger for recovery events, e.g. discarded tokens.
// Defaults to a noop logger.
func WithLogger(log abstractlogger.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// WithMaxNestingDepth overrides DefaultMaxNestingDepth.
func WithMaxNestingDepth(maxDepth int) Option {
	return func(p *Parser) {
		p.maxDepth = maxDepth
	}
}

// New returns a Parser reading from source.
func New(source tokensource.Source, opts ...Option) *Parser {
	p := &Parser{
		stream:   tokensource.NewStream(source),
		maxDepth: DefaultMaxNestingDepth,
		log:      abstractlogger.NoopLogger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseSchemaDocumentString parses source as a schema document. Sources that
// need a path on their diagnostics go through lexer.WithPath and New instead.
func ParseSchemaDocumentString(source string, opts ...Option) report.Result[ast.SchemaDocument] {
	return New(lexer.New(source), opts...).ParseSchemaDocument()
}

// ParseExecutableDocumentString parses source as an executable document.
func ParseExecutableDocumentString(source string, opts ...Option) report.Result[ast.ExecutableDocument] {
	return New(lexer.New(source), opts...).ParseExecutableDocument()
}

// ParseMixedDocumentString parses source as a mixed document.
func ParseMixedDocumentString(source string, opts ...Option) report.Result[ast.MixedDocument] {
	return New(lexer.New(source), opts...).ParseMixedDocument()
}

// ParseSchemaDocument parses the stream as a schema document: type
// definitions, directive definitions, schema definitions and type extensions.
func (p *Parser) ParseSchemaDocument() report.Result[ast.SchemaDocument] {
	var document ast.SchemaDocument
	for !p.stream.AtEnd() {
		definition, ok := p.parseSchemaDefinitionItem()
		if ok {
			document.Definitions = append(document.Definitions, definition)
		} else {
			p.recoverToNextDefinition()
		}
		p.stream.CompactBuffer()
	}
	if p.errors.HasErrors() {
		return report.Recovered(document, p.errors)
	}
	return report.Success(document)
}

// ParseExecutableDocument parses the stream as an executable document:
// operations and fragment definitions.
func (p *Parser) ParseExecutableDocument() report.Result[ast.ExecutableDocument] {
	var document ast.ExecutableDocument
	for !p.stream.AtEnd() {
		definition, ok := p.parseExecutableDefinitionItem()
		if ok {
			document.Definitions = append(document.Definitions, definition)
		} else {
			p.recoverToNextDefinition()
		}
		p.stream.CompactBuffer()
	}
	if p.errors.HasErrors() {
		return report.Recovered(document, p.errors)
	}
	return report.Success(document)
}

// ParseMixedDocument parses the stream as a mixed document, preserving the
// interleaved order of schema and executable definitions.
func (p *Parser) ParseMixedDocument() report.Result[ast.MixedDocument] {
	var document ast.MixedDocument
	for !p.stream.AtEnd() {
		definition, ok := p.parseMixedDefinitionItem()
		if ok {
			document.Definitions = append(document.Definitions, definition)
		} else {
			p.recoverToNextDefinition()
		}
		p.stream.CompactBuffer()
	}
	if p.errors.HasErrors() {
		return report.Recovered(document, p.errors)
	}
	return report.Success(document)
}

func (p *Parser) parseSchemaDefinitionItem() (ast.TypeSystemDefinition, bool) {
	if tok, ok := p.stream.Peek(); ok && tok.Kind == token.ERROR {
		p.handleLexerError(tok)
		return nil, false
	}

	description := p.parseDescription()

	switch {
	case p.peekIsKeyword("schema"):
		node, ok := p.parseSchemaDefinition(description)
		return node, ok
	case p.peekIsKeyword("scalar"):
		node, ok := p.parseScalarTypeDefinition(description)
		return node, ok
	case p.peekIsKeyword("type"):
		node, ok := p.parseObjectTypeDefinition(description)
		return node, ok
	case p.peekIsKeyword("interface"):
		node, ok := p.parseInterfaceTypeDefinition(description)
		return node, ok
	case p.peekIsKeyword("union"):
		node, ok := p.parseUnionTypeDefinition(description)
		return node, ok
	case p.peekIsKeyword("enum"):
		node, ok := p.parseEnumTypeDefinition(description)
		return node, ok
	case p.peekIsKeyword("input"):
		node, ok := p.parseInputObjectTypeDefinition(description)
		return node, ok
	case p.peekIsKeyword("directive"):
		node, ok := p.parseDirectiveDefinition(description)
		return node, ok
	case p.peekIsKeyword("extend"):
		p.rejectExtensionDescription(description)
		node, ok := p.parseTypeExtension()
		return node, ok
	case p.peekIsKeyword("query"), p.peekIsKeyword("mutation"),
		p.peekIsKeyword("subscription"), p.peekIsKeyword("fragment"),
		p.peekIs(token.LBRACE):
		what := "operation definition"
		if p.peekIsKeyword("fragment") {
			what = "fragment definition"
		}
		span, _ := p.peekContext()
		err := report.Error{
			Message: what + " not allowed in schema document",
			Span:    span,
			Kind:    report.ErrorKindWrongDocumentKind,
		}
		if description.IsDefined {
			err = err.WithNote(report.GeneralNoteAt("the preceding description belongs to this definition",
				position.EmptySpan(description.Position).WithPath(span.Path)))
		}
		p.record(err)
		// Recovery stops at definition keywords and `{`, so the offending
		// definition has to be skipped in full here.
		p.skipDefinition()
		return nil, false
	default:
		span, found := p.peekContext()
		p.record(report.Error{
			Message: fmt.Sprintf("expected schema definition, found `%s`", found),
			Span:    span,
			Kind:    report.ErrorKindUnexpectedToken,
		})
		return nil, false
	}
}

func (p *Parser) parseExecutableDefinitionItem() (ast.ExecutableDefinition, bool) {
	if tok, ok := p.stream.Peek(); ok && tok.Kind == token.ERROR {
		p.handleLexerError(tok)
		return nil, false
	}

	switch {
	case p.peekIsKeyword("query"), p.peekIsKeyword("mutation"),
		p.peekIsKeyword("subscription"), p.peekIs(token.LBRACE):
		node, ok := p.parseOperationDefinition()
		return node, ok
	case p.peekIsKeyword("fragment"):
		node, ok := p.parseFragmentDefinition()
		return node, ok
	case p.peekIsTypeSystemKeyword():
		what := "type definition"
		switch {
		case p.peekIsKeyword("directive"):
			what = "directive definition"
		case p.peekIsKeyword("schema"), p.peekIsKeyword("extend"):
			what = "schema definition"
		}
		span, _ := p.peekContext()
		p.record(report.Error{
			Message: what + " not allowed in executable document",
			Span:    span,
			Kind:    report.ErrorKindWrongDocumentKind,
		})
		p.skipDefinition()
		return nil, false
	default:
		// A string directly before a type system keyword is a description,
		// so the whole construct is a misplaced type definition and the
		// diagnostic points at the description rather than dropping it.
		if p.peekIs(token.STRING) {
			if next, ok := p.stream.PeekNth(1); ok && next.Kind == token.NAME && isTypeSystemKeyword(next.Text.String()) {
				span, _ := p.peekContext()
				p.record(report.Error{
					Message: "type definition not allowed in executable document",
					Span:    span,
					Kind:    report.ErrorKindWrongDocumentKind,
				})
				// Drop the description, then the definition behind it.
				p.stream.Read()
				p.skipDefinition()
				return nil, false
			}
		}
		span, found := p.peekContext()
		p.record(report.Error{
			Message: fmt.Sprintf("expected operation or fragment definition, found `%s`", found),
			Span:    span,
			Kind:    report.ErrorKindUnexpectedToken,
		})
		return nil, false
	}
}

func (p *Parser) parseMixedDefinitionItem() (ast.Definition, bool) {
	if tok, ok := p.stream.Peek(); ok && tok.Kind == token.ERROR {
		p.handleLexerError(tok)
		return nil, false
	}

	description := p.parseDescription()

	switch {
	case p.peekIsKeyword("schema"):
		node, ok := p.parseSchemaDefinition(description)
		return node, ok
	case p.peekIsKeyword("scalar"):
		node, ok := p.parseScalarTypeDefinition(description)
		return node, ok
	case p.peekIsKeyword("type"):
		node, ok := p.parseObjectTypeDefinition(description)
		return node, ok
	case p.peekIsKeyword("interface"):
		node, ok := p.parseInterfaceTypeDefinition(description)
		return node, ok
	case p.peekIsKeyword("union"):
		node, ok := p.parseUnionTypeDefinition(description)
		return node, ok
	case p.peekIsKeyword("enum"):
		node, ok := p.parseEnumTypeDefinition(description)
		return node, ok
	case p.peekIsKeyword("input"):
		node, ok := p.parseInputObjectTypeDefinition(description)
		return node, ok
	case p.peekIsKeyword("directive"):
		node, ok := p.parseDirectiveDefinition(description)
		return node, ok
	case p.peekIsKeyword("extend"):
		p.rejectExtensionDescription(description)
		node, ok := p.parseTypeExtension()
		return node, ok
	case p.peekIsKeyword("query"), p.peekIsKeyword("mutation"),
		p.peekIsKeyword("subscription"), p.peekIs(token.LBRACE):
		p.rejectExecutableDescription("operation definitions", description)
		node, ok := p.parseOperationDefinition()
		return node, ok
	case p.peekIsKeyword("fragment"):
		p.rejectExecutableDescription("fragment definitions", description)
		node, ok := p.parseFragmentDefinition()
		return node, ok
	default:
		span, found := p.peekContext()
		p.record(report.Error{
			Message: fmt.Sprintf("expected definition, found `%s`", found),
			Span:    span,
			Kind:    report.ErrorKindUnexpectedToken,
		})
		return nil, false
	}
}

// rejectExtensionDescription diagnoses a description in front of `extend`.
// Extensions cannot carry one, and dropping it silently would hide the typo.
func (p *Parser) rejectExtensionDescription(description ast.Description) {
	if !description.IsDefined {
		return
	}
	span, _ := p.peekContext()
	p.record(report.Error{
		Message: "type extensions cannot have a description",
		Span:    position.EmptySpan(description.Position).WithPath(span.Path),
		Kind:    report.ErrorKindInvalidSyntax,
	})
}

// rejectExecutableDescription diagnoses a description in front of an
// operation or fragment definition in a mixed document.
func (p *Parser) rejectExecutableDescription(what string, description ast.Description) {
	if !description.IsDefined {
		return
	}
	span, _ := p.peekContext()
	p.record(report.Error{
		Message: what + " cannot have a description",
		Span:    position.EmptySpan(description.Position).WithPath(span.Path),
		Kind:    report.ErrorKindInvalidSyntax,
	})
}

// skipDefinition consumes one whole definition the current document kind
// rejects: the leading token, everything up to its brace balanced body, and
// the body itself. Stops early at the next plausible definition start so a
// malformed offender cannot swallow its neighbors.
func (p *Parser) skipDefinition() {
	depth := 0
	tok, ok := p.stream.Read()
	if !ok || tok.Kind == token.EOF {
		return
	}
	if tok.Kind == token.LBRACE {
		depth = 1
	}
	for {
		tok, ok = p.stream.Peek()
		if !ok || tok.Kind == token.EOF {
			return
		}
		switch {
		case tok.Kind == token.LBRACE:
			depth++
		case tok.Kind == token.RBRACE:
			if depth == 0 {
				// stray close, recovery deals with it
				return
			}
			depth--
			p.stream.Read()
			if depth == 0 {
				return
			}
			continue
		case depth == 0 && tok.Kind == token.NAME && p.looksLikeDefinitionStart(tok.Text.String()):
			return
		}
		p.stream.Read()
	}
}

// recoverToNextDefinition discards tokens until something that could start a
// definition: a definition keyword with a plausible follow token, a string
// directly before a type system keyword (a description), or an opening brace
// (a shorthand operation). The delimiter stack and the nesting flag are
// cleared, the next definition starts fresh.
func (p *Parser) recoverToNextDefinition() {
	discarded := 0
	for {
		tok, ok := p.stream.Peek()
		if !ok || tok.Kind == token.EOF || tok.Kind == token.LBRACE {
			break
		}
		if tok.Kind == token.NAME && p.looksLikeDefinitionStart(tok.Text.String()) {
			break
		}
		if tok.Kind == token.STRING {
			if next, ok := p.stream.PeekNth(1); ok && next.Kind == token.NAME && isTypeSystemKeyword(next.Text.String()) {
				break
			}
		}
		p.stream.Read()
		discarded++
	}
	p.delimiters = p.delimiters[:0]
	p.depthExceeded = false
	p.log.Debug("Parser.recoverToNextDefinition",
		abstractlogger.Int("discardedTokens", discarded),
	)
}

// looksLikeDefinitionStart reports whether keyword begins a new definition,
// judged by the shape of the token after it. The lookahead avoids false
// recovery points like `type: String`, where `type` is a field name.
func (p *Parser) looksLikeDefinitionStart(keyword string) bool {
	next, ok := p.stream.PeekNth(1)
	switch keyword {
	case "type", "interface", "union", "enum", "scalar", "input":
		return ok && isNameToken(next.Kind)
	case "directive":
		return ok && next.Kind == token.AT
	case "schema":
		return ok && (next.Kind == token.LBRACE || next.Kind == token.AT)
	case "extend":
		if !ok || next.Kind != token.NAME {
			return false
		}
		switch next.Text.String() {
		case "type", "interface", "union", "enum", "scalar", "input", "schema":
			return true
		}
		return false
	case "query", "mutation", "subscription":
		if !ok {
			// an operation keyword at the very end of input still reads
			// as a definition start
			return true
		}
		switch next.Kind {
		case token.NAME, token.TRUE, token.FALSE, token.NULL,
			token.LBRACE, token.LPAREN, token.AT:
			return true
		}
		return false
	case "fragment":
		if !ok {
			return false
		}
		if next.Kind == token.NAME {
			return next.Text.String() != "on"
		}
		return next.Kind == token.TRUE || next.Kind == token.FALSE || next.Kind == token.NULL
	default:
		return false
	}
}

// isNameToken reports whether kind is accepted wherever the grammar wants a
// name. The literals `true`, `false` and `null` are ordinary names in every
// position that does not reserve them.
func isNameToken(kind token.Kind) bool {
	switch kind {
	case token.NAME, token.TRUE, token.FALSE, token.NULL:
		return true
	}
	return false
}

// isTypeSystemKeyword reports whether name introduces a type system
// definition or extension.
func isTypeSystemKeyword(name string) bool {
	switch name {
	case "type", "interface", "union", "enum", "scalar", "input", "directive", "schema", "extend":
		return true
	}
	return false
}

func (p *Parser) peekIsTypeSystemKeyword() bool {
	tok, ok := p.stream.Peek()
	return ok && tok.Kind == token.NAME && isTypeSystemKeyword(tok.Text.String())
}
