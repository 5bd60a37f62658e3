package astparser

import (
	"fmt"

	"github.com/agnivade/levenshtein"

	"github.com/wundergraph/gqlparse/pkg/position"

	"github.com/wundergraph/gqlparse/pkg/ast"
	"github.com/wundergraph/gqlparse/pkg/report"
	"github.com/wundergraph/gqlparse/pkg/token"
)

// parseDescription captures the optional string literal preceding a
// definition. A decode failure keeps the description defined with empty
// content and records the failure, so nothing is silently dropped.
func (p *Parser) parseDescription() ast.Description {
	tok, ok := p.stream.Peek()
	if !ok || tok.Kind != token.STRING {
		return ast.Description{}
	}
	p.stream.Read()

	description := ast.Description{
		IsDefined:     true,
		IsBlockString: tok.Text.Len() >= 3 && tok.Text.String()[:3] == `"""`,
		Position:      tok.Span.Start,
	}
	content, err := tok.ParseStringValue()
	if err != nil {
		p.record(report.Error{
			Message: fmt.Sprintf("invalid string: %s", err),
			Span:    tok.Span,
			Kind:    report.ErrorKindInvalidValue,
		})
		return description
	}
	description.Content = content
	return description
}

func (p *Parser) parseSchemaDefinition(description ast.Description) (ast.SchemaDefinition, bool) {
	keywordSpan, _ := p.expectKeyword("schema")
	definition := ast.SchemaDefinition{
		Description: description,
		Position:    keywordSpan.Start,
	}

	var ok bool
	definition.Directives, ok = p.parseDirectives(contextDirectiveArguments)
	if !ok {
		return definition, false
	}

	lbrace, ok := p.expect(token.LBRACE)
	if !ok {
		return definition, false
	}
	p.pushDelimiter('{', lbrace.Span, DelimiterContextSchemaDefinition)

	for {
		tok, peeked := p.stream.Peek()
		if !peeked || tok.Kind == token.EOF {
			p.handleUnclosedBrace()
			return definition, true
		}
		if tok.Kind == token.RBRACE {
			p.stream.Read()
			p.popDelimiter()
			return definition, true
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

		operationType, span, ok := p.expectName()
		if !ok {
			p.popDelimiter()
			return definition, false
		}
		switch operationType {
		case "query", "mutation", "subscription":
		default:
			p.record(report.Error{
				Message: fmt.Sprintf("unknown operation type `%s`; expected `query`, `mutation`, or `subscription`", operationType),
				Span:    span,
				Kind:    report.ErrorKindInvalidSyntax,
			})
		}
		if _, ok = p.expect(token.COLON); !ok {
			p.popDelimiter()
			return definition, false
		}
		rootType, ok := p.expectNameOnly()
		if !ok {
			p.popDelimiter()
			return definition, false
		}
		switch operationType {
		case "query":
			definition.Query = rootType
		case "mutation":
			definition.Mutation = rootType
		case "subscription":
			definition.Subscription = rootType
		}
	}
}

func (p *Parser) parseScalarTypeDefinition(description ast.Description) (ast.ScalarTypeDefinition, bool) {
	keywordSpan, _ := p.expectKeyword("scalar")
	definition := ast.ScalarTypeDefinition{
		Description: description,
		Position:    keywordSpan.Start,
	}

	var ok bool
	definition.Name, ok = p.expectNameOnly()
	if !ok {
		return definition, false
	}
	definition.Directives, ok = p.parseDirectives(contextDirectiveArguments)
	return definition, ok
}

func (p *Parser) parseObjectTypeDefinition(description ast.Description) (ast.ObjectTypeDefinition, bool) {
	keywordSpan, _ := p.expectKeyword("type")
	definition := ast.ObjectTypeDefinition{
		Description: description,
		Position:    keywordSpan.Start,
	}

	var ok bool
	definition.Name, ok = p.expectNameOnly()
	if !ok {
		return definition, false
	}
	definition.ImplementsInterfaces, ok = p.parseImplementsInterfaces()
	if !ok {
		return definition, false
	}
	definition.Directives, ok = p.parseDirectives(contextDirectiveArguments)
	if !ok {
		return definition, false
	}
	if p.peekIs(token.LBRACE) {
		definition.FieldDefinitions, ok = p.parseFieldDefinitions(DelimiterContextObjectTypeDefinition)
		if !ok {
			return definition, false
		}
	}
	return definition, true
}

func (p *Parser) parseInterfaceTypeDefinition(description ast.Description) (ast.InterfaceTypeDefinition, bool) {
	keywordSpan, _ := p.expectKeyword("interface")
	definition := ast.InterfaceTypeDefinition{
		Description: description,
		Position:    keywordSpan.Start,
	}

	var ok bool
	definition.Name, ok = p.expectNameOnly()
	if !ok {
		return definition, false
	}
	definition.ImplementsInterfaces, ok = p.parseImplementsInterfaces()
	if !ok {
		return definition, false
	}
	definition.Directives, ok = p.parseDirectives(contextDirectiveArguments)
	if !ok {
		return definition, false
	}
	if p.peekIs(token.LBRACE) {
		definition.FieldDefinitions, ok = p.parseFieldDefinitions(DelimiterContextInterfaceDefinition)
		if !ok {
			return definition, false
		}
	}
	return definition, true
}

func (p *Parser) parseUnionTypeDefinition(description ast.Description) (ast.UnionTypeDefinition, bool) {
	keywordSpan, _ := p.expectKeyword("union")
	definition := ast.UnionTypeDefinition{
		Description: description,
		Position:    keywordSpan.Start,
	}

	var ok bool
	definition.Name, ok = p.expectNameOnly()
	if !ok {
		return definition, false
	}
	definition.Directives, ok = p.parseDirectives(contextDirectiveArguments)
	if !ok {
		return definition, false
	}
	if p.peekIs(token.EQUALS) {
		p.stream.Read()
		definition.UnionMemberTypes, ok = p.parseUnionMemberTypes()
		if !ok {
			return definition, false
		}
	}
	return definition, true
}

// parseUnionMemberTypes parses `A | B | C` with an optional leading `|`.
func (p *Parser) parseUnionMemberTypes() ([]string, bool) {
	if p.peekIs(token.PIPE) {
		p.stream.Read()
	}
	var members []string
	for {
		member, ok := p.expectNameOnly()
		if !ok {
			return members, false
		}
		members = append(members, member)
		if !p.peekIs(token.PIPE) {
			return members, true
		}
		p.stream.Read()
	}
}

func (p *Parser) parseEnumTypeDefinition(description ast.Description) (ast.EnumTypeDefinition, bool) {
	keywordSpan, _ := p.expectKeyword("enum")
	definition := ast.EnumTypeDefinition{
		Description: description,
		Position:    keywordSpan.Start,
	}

	var ok bool
	definition.Name, ok = p.expectNameOnly()
	if !ok {
		return definition, false
	}
	definition.Directives, ok = p.parseDirectives(contextDirectiveArguments)
	if !ok {
		return definition, false
	}
	if p.peekIs(token.LBRACE) {
		definition.EnumValuesDefinition, ok = p.parseEnumValuesDefinition()
		if !ok {
			return definition, false
		}
	}
	return definition, true
}

func (p *Parser) parseEnumValuesDefinition() ([]ast.EnumValueDefinition, bool) {
	lbrace, _ := p.stream.Read()
	p.pushDelimiter('{', lbrace.Span, DelimiterContextEnumDefinition)

	values := []ast.EnumValueDefinition{}
	for {
		tok, peeked := p.stream.Peek()
		if !peeked || tok.Kind == token.EOF {
			p.handleUnclosedBrace()
			return values, true
		}
		if tok.Kind == token.RBRACE {
			p.stream.Read()
			p.popDelimiter()
			return values, true
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

		valueDescription := p.parseDescription()
		name, span, ok := p.expectName()
		if !ok {
			p.popDelimiter()
			return values, false
		}
		// An enum value named true, false or null lexes fine and keeps its
		// node, it is the diagnostic that marks it invalid.
		switch name {
		case "true", "false", "null":
			p.record(report.Error{
				Message: fmt.Sprintf("enum value cannot be `%s`", name),
				Span:    span,
				Kind:    report.ErrorKindReservedName,
			}.WithNote(report.SpecNote("https://spec.graphql.org/September2025/#sec-Enum-Value")))
		}
		directives, ok := p.parseDirectives(contextDirectiveArguments)
		if !ok {
			p.popDelimiter()
			return values, false
		}
		values = append(values, ast.EnumValueDefinition{
			Description: valueDescription,
			Position:    span.Start,
			Name:        name,
			Directives:  directives,
		})
	}
}

func (p *Parser) parseInputObjectTypeDefinition(description ast.Description) (ast.InputObjectTypeDefinition, bool) {
	keywordSpan, _ := p.expectKeyword("input")
	definition := ast.InputObjectTypeDefinition{
		Description: description,
		Position:    keywordSpan.Start,
	}

	var ok bool
	definition.Name, ok = p.expectNameOnly()
	if !ok {
		return definition, false
	}
	definition.Directives, ok = p.parseDirectives(contextDirectiveArguments)
	if !ok {
		return definition, false
	}
	if p.peekIs(token.LBRACE) {
		definition.InputFieldsDefinition, ok = p.parseInputFieldsDefinition()
		if !ok {
			return definition, false
		}
	}
	return definition, true
}

func (p *Parser) parseInputFieldsDefinition() ([]ast.InputValueDefinition, bool) {
	lbrace, _ := p.stream.Read()
	p.pushDelimiter('{', lbrace.Span, DelimiterContextInputObjectDefinition)

	fields := []ast.InputValueDefinition{}
	for {
		tok, peeked := p.stream.Peek()
		if !peeked || tok.Kind == token.EOF {
			p.handleUnclosedBrace()
			return fields, true
		}
		if tok.Kind == token.RBRACE {
			p.stream.Read()
			p.popDelimiter()
			return fields, true
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

		field, ok := p.parseInputValueDefinition()
		if !ok {
			p.popDelimiter()
			return fields, false
		}
		fields = append(fields, field)
	}
}

// parseInputValueDefinition parses `name: Type = default @dir`, shared by
// input object fields and argument definitions.
func (p *Parser) parseInputValueDefinition() (ast.InputValueDefinition, bool) {
	description := p.parseDescription()
	name, span, ok := p.expectName()
	if !ok {
		return ast.InputValueDefinition{}, false
	}
	definition := ast.InputValueDefinition{
		Description: description,
		Position:    span.Start,
		Name:        name,
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
		definition.DefaultValue, ok = p.parseValue(contextInputFieldDefaults)
		if !ok {
			return definition, false
		}
	}
	definition.Directives, ok = p.parseDirectives(contextDirectiveArguments)
	return definition, ok
}

// parseImplementsInterfaces parses `implements A & B` with an optional
// leading `&`. Returns nil when the keyword is absent.
func (p *Parser) parseImplementsInterfaces() ([]string, bool) {
	if !p.peekIsKeyword("implements") {
		return nil, true
	}
	p.stream.Read()
	if p.peekIs(token.AND) {
		p.stream.Read()
	}
	var interfaces []string
	for {
		name, ok := p.expectNameOnly()
		if !ok {
			return interfaces, false
		}
		interfaces = append(interfaces, name)
		if !p.peekIs(token.AND) {
			return interfaces, true
		}
		p.stream.Read()
	}
}

func (p *Parser) parseFieldDefinitions(context DelimiterContext) ([]ast.FieldDefinition, bool) {
	lbrace, _ := p.stream.Read()
	p.pushDelimiter('{', lbrace.Span, context)

	fields := []ast.FieldDefinition{}
	for {
		tok, peeked := p.stream.Peek()
		if !peeked || tok.Kind == token.EOF {
			p.handleUnclosedBrace()
			return fields, true
		}
		if tok.Kind == token.RBRACE {
			p.stream.Read()
			p.popDelimiter()
			return fields, true
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

		field, ok := p.parseFieldDefinition()
		if !ok {
			p.popDelimiter()
			return fields, false
		}
		fields = append(fields, field)
	}
}

func (p *Parser) parseFieldDefinition() (ast.FieldDefinition, bool) {
	description := p.parseDescription()
	name, span, ok := p.expectName()
	if !ok {
		return ast.FieldDefinition{}, false
	}
	field := ast.FieldDefinition{
		Description: description,
		Position:    span.Start,
		Name:        name,
	}
	if p.peekIs(token.LPAREN) {
		field.ArgumentsDefinition, ok = p.parseArgumentsDefinition()
		if !ok {
			return field, false
		}
	}
	if _, ok = p.expect(token.COLON); !ok {
		return field, false
	}
	field.Type, ok = p.parseType()
	if !ok {
		return field, false
	}
	field.Directives, ok = p.parseDirectives(contextDirectiveArguments)
	return field, ok
}

// parseArgumentsDefinition parses the parenthesized input value definitions
// of a field or directive definition.
func (p *Parser) parseArgumentsDefinition() ([]ast.InputValueDefinition, bool) {
	lparen, _ := p.stream.Read()
	p.pushDelimiter('(', lparen.Span, DelimiterContextArgumentDefinitions)

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

	var arguments []ast.InputValueDefinition
	for {
		tok, peeked := p.stream.Peek()
		if !peeked || tok.Kind == token.EOF {
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

		argument, ok := p.parseInputValueDefinition()
		if !ok {
			p.popDelimiter()
			return arguments, false
		}
		arguments = append(arguments, argument)
	}
}

func (p *Parser) parseDirectiveDefinition(description ast.Description) (ast.DirectiveDefinition, bool) {
	keywordSpan, _ := p.expectKeyword("directive")
	definition := ast.DirectiveDefinition{
		Description: description,
		Position:    keywordSpan.Start,
	}

	if _, ok := p.expect(token.AT); !ok {
		return definition, false
	}
	var ok bool
	definition.Name, ok = p.expectNameOnly()
	if !ok {
		return definition, false
	}
	if p.peekIs(token.LPAREN) {
		definition.ArgumentsDefinition, ok = p.parseArgumentsDefinition()
		if !ok {
			return definition, false
		}
	}
	if p.peekIsKeyword("repeatable") {
		p.stream.Read()
		definition.Repeatable = true
	}
	if _, ok = p.expectKeyword("on"); !ok {
		return definition, false
	}
	definition.DirectiveLocations, ok = p.parseDirectiveLocations()
	return definition, ok
}

// parseDirectiveLocations parses `LOC | LOC` with an optional leading `|`.
// Unknown location names are diagnosed with a typo suggestion and left out of
// the node.
func (p *Parser) parseDirectiveLocations() ([]ast.DirectiveLocation, bool) {
	if p.peekIs(token.PIPE) {
		p.stream.Read()
	}
	var locations []ast.DirectiveLocation
	for {
		name, span, ok := p.expectName()
		if !ok {
			return locations, false
		}
		location, known := ast.ParseDirectiveLocation(name)
		if known {
			locations = append(locations, location)
		} else {
			err := report.Error{
				Message: fmt.Sprintf("unknown directive location `%s`", name),
				Span:    span,
				Kind:    report.ErrorKindInvalidSyntax,
			}
			if suggestion, found := suggestDirectiveLocation(name); found {
				err = err.WithNote(report.HelpNote(fmt.Sprintf("did you mean `%s`?", suggestion)))
			}
			p.record(err)
		}
		if !p.peekIs(token.PIPE) {
			return locations, true
		}
		p.stream.Read()
	}
}

// suggestDirectiveLocation finds the closest legal location name within an
// edit distance of 3, the typo radius that still suggests QUERY for `QUER`
// without matching wildly unrelated names.
func suggestDirectiveLocation(name string) (string, bool) {
	best := ""
	bestDistance := 4
	for _, candidate := range ast.DirectiveLocationNames() {
		if distance := levenshtein.ComputeDistance(name, candidate); distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}
	return best, best != ""
}

func (p *Parser) parseTypeExtension() (ast.TypeSystemDefinition, bool) {
	extendSpan, _ := p.expectKeyword("extend")

	tok, ok := p.stream.Peek()
	if !ok || tok.Kind == token.EOF {
		p.record(report.Error{
			Message: "expected type extension keyword (`schema`, `scalar`, `type`, `interface`, `union`, `enum`, `input`)",
			Span:    p.eofSpan(),
			Kind:    report.ErrorKindUnexpectedEOF,
		})
		return nil, false
	}

	keyword := ""
	if tok.Kind == token.NAME {
		keyword = tok.Text.String()
	}
	switch keyword {
	case "schema":
		return p.skipSchemaExtension(extendSpan)
	case "scalar":
		return p.parseScalarTypeExtension(extendSpan)
	case "type":
		return p.parseObjectTypeExtension(extendSpan)
	case "interface":
		return p.parseInterfaceTypeExtension(extendSpan)
	case "union":
		return p.parseUnionTypeExtension(extendSpan)
	case "enum":
		return p.parseEnumTypeExtension(extendSpan)
	case "input":
		return p.parseInputObjectTypeExtension(extendSpan)
	default:
		p.record(report.Error{
			Message: fmt.Sprintf("expected type extension keyword (`schema`, `scalar`, `type`, `interface`, `union`, `enum`, `input`), found `%s`", tok.Display()),
			Span:    tok.Span,
			Kind:    report.ErrorKindUnexpectedToken,
		})
		return nil, false
	}
}

// skipSchemaExtension consumes an `extend schema` construct without building
// a node. The body is skipped delimiter aware so the diagnostic does not
// cascade into the following definitions.
func (p *Parser) skipSchemaExtension(extendSpan position.Span) (ast.TypeSystemDefinition, bool) {
	schemaSpan, _ := p.expectKeyword("schema")
	p.record(report.Error{
		Message: "schema extensions (`extend schema`) are not yet supported",
		Span:    extendSpan.To(schemaSpan),
		Kind:    report.ErrorKindInvalidSyntax,
	})

	for p.peekIs(token.AT) {
		if _, ok := p.parseDirective(contextDirectiveArguments); !ok {
			return nil, false
		}
	}
	if p.peekIs(token.LBRACE) {
		depth := 0
		for {
			tok, ok := p.stream.Peek()
			if !ok || tok.Kind == token.EOF {
				break
			}
			if tok.Kind == token.LBRACE {
				depth++
			}
			if tok.Kind == token.RBRACE {
				depth--
			}
			p.stream.Read()
			if depth == 0 {
				break
			}
		}
	}
	return nil, false
}

func (p *Parser) parseScalarTypeExtension(extendSpan position.Span) (ast.TypeSystemDefinition, bool) {
	p.expectKeyword("scalar")
	extension := ast.ScalarTypeExtension{Position: extendSpan.Start}

	var ok bool
	extension.Name, ok = p.expectNameOnly()
	if !ok {
		return extension, false
	}
	extension.Directives, ok = p.parseDirectives(contextDirectiveArguments)
	if !ok {
		return extension, false
	}
	if len(extension.Directives) == 0 {
		p.recordEmptyExtension("scalar", extendSpan)
	}
	return extension, true
}

func (p *Parser) parseObjectTypeExtension(extendSpan position.Span) (ast.TypeSystemDefinition, bool) {
	p.expectKeyword("type")
	extension := ast.ObjectTypeExtension{Position: extendSpan.Start}

	var ok bool
	extension.Name, ok = p.expectNameOnly()
	if !ok {
		return extension, false
	}
	extension.ImplementsInterfaces, ok = p.parseImplementsInterfaces()
	if !ok {
		return extension, false
	}
	extension.Directives, ok = p.parseDirectives(contextDirectiveArguments)
	if !ok {
		return extension, false
	}
	if p.peekIs(token.LBRACE) {
		extension.FieldDefinitions, ok = p.parseFieldDefinitions(DelimiterContextObjectTypeDefinition)
		if !ok {
			return extension, false
		}
	}
	if len(extension.ImplementsInterfaces) == 0 && len(extension.Directives) == 0 && extension.FieldDefinitions == nil {
		p.recordEmptyExtension("type", extendSpan)
	}
	return extension, true
}

func (p *Parser) parseInterfaceTypeExtension(extendSpan position.Span) (ast.TypeSystemDefinition, bool) {
	p.expectKeyword("interface")
	extension := ast.InterfaceTypeExtension{Position: extendSpan.Start}

	var ok bool
	extension.Name, ok = p.expectNameOnly()
	if !ok {
		return extension, false
	}
	extension.ImplementsInterfaces, ok = p.parseImplementsInterfaces()
	if !ok {
		return extension, false
	}
	extension.Directives, ok = p.parseDirectives(contextDirectiveArguments)
	if !ok {
		return extension, false
	}
	if p.peekIs(token.LBRACE) {
		extension.FieldDefinitions, ok = p.parseFieldDefinitions(DelimiterContextInterfaceDefinition)
		if !ok {
			return extension, false
		}
	}
	if len(extension.ImplementsInterfaces) == 0 && len(extension.Directives) == 0 && extension.FieldDefinitions == nil {
		p.recordEmptyExtension("interface", extendSpan)
	}
	return extension, true
}

func (p *Parser) parseUnionTypeExtension(extendSpan position.Span) (ast.TypeSystemDefinition, bool) {
	p.expectKeyword("union")
	extension := ast.UnionTypeExtension{Position: extendSpan.Start}

	var ok bool
	extension.Name, ok = p.expectNameOnly()
	if !ok {
		return extension, false
	}
	extension.Directives, ok = p.parseDirectives(contextDirectiveArguments)
	if !ok {
		return extension, false
	}
	if p.peekIs(token.EQUALS) {
		p.stream.Read()
		extension.UnionMemberTypes, ok = p.parseUnionMemberTypes()
		if !ok {
			return extension, false
		}
	}
	if len(extension.Directives) == 0 && len(extension.UnionMemberTypes) == 0 {
		p.recordEmptyExtension("union", extendSpan)
	}
	return extension, true
}

func (p *Parser) parseEnumTypeExtension(extendSpan position.Span) (ast.TypeSystemDefinition, bool) {
	p.expectKeyword("enum")
	extension := ast.EnumTypeExtension{Position: extendSpan.Start}

	var ok bool
	extension.Name, ok = p.expectNameOnly()
	if !ok {
		return extension, false
	}
	extension.Directives, ok = p.parseDirectives(contextDirectiveArguments)
	if !ok {
		return extension, false
	}
	if p.peekIs(token.LBRACE) {
		extension.EnumValuesDefinition, ok = p.parseEnumValuesDefinition()
		if !ok {
			return extension, false
		}
	}
	if len(extension.Directives) == 0 && extension.EnumValuesDefinition == nil {
		p.recordEmptyExtension("enum", extendSpan)
	}
	return extension, true
}

func (p *Parser) parseInputObjectTypeExtension(extendSpan position.Span) (ast.TypeSystemDefinition, bool) {
	p.expectKeyword("input")
	extension := ast.InputObjectTypeExtension{Position: extendSpan.Start}

	var ok bool
	extension.Name, ok = p.expectNameOnly()
	if !ok {
		return extension, false
	}
	extension.Directives, ok = p.parseDirectives(contextDirectiveArguments)
	if !ok {
		return extension, false
	}
	if p.peekIs(token.LBRACE) {
		extension.InputFieldsDefinition, ok = p.parseInputFieldsDefinition()
		if !ok {
			return extension, false
		}
	}
	if len(extension.Directives) == 0 && extension.InputFieldsDefinition == nil {
		p.recordEmptyExtension("input", extendSpan)
	}
	return extension, true
}

// recordEmptyExtension diagnoses an extension that extends nothing. The node
// is still built so consumers see the extension target.
func (p *Parser) recordEmptyExtension(keyword string, extendSpan position.Span) {
	p.record(report.Error{
		Message: fmt.Sprintf("%s extension cannot be empty", keyword),
		Span:    extendSpan,
		Kind:    report.ErrorKindInvalidEmptyConstruct,
	})
}
