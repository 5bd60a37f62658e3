package ast

import (
	"github.com/wundergraph/gqlparse/pkg/position"
)

// ObjectTypeDefinition as specified in:
// https://spec.graphql.org/September2025/#ObjectTypeDefinition
type ObjectTypeDefinition struct {
	Description          Description       // optional, e.g. "type Person is ..."
	Position             position.Position // at the type keyword
	Name                 string            // e.g. Person
	ImplementsInterfaces []string          // e.g. implements NamedEntity & Node
	Directives           []Directive       // optional, const arguments only
	FieldDefinitions     []FieldDefinition // e.g. { name: String age: Int }
}

func (d ObjectTypeDefinition) OfKind() NodeKind { return NodeKindObjectTypeDefinition }

func (ObjectTypeDefinition) typeSystemDefinitionNode() {}

var _ TypeSystemDefinition = ObjectTypeDefinition{}

// ObjectTypeExtension as specified in:
// https://spec.graphql.org/September2025/#ObjectTypeExtension
// example: extend type Person { age: Int }
type ObjectTypeExtension struct {
	Position             position.Position // at the extend keyword
	Name                 string
	ImplementsInterfaces []string
	Directives           []Directive
	FieldDefinitions     []FieldDefinition
}

func (d ObjectTypeExtension) OfKind() NodeKind { return NodeKindObjectTypeExtension }

func (ObjectTypeExtension) typeSystemDefinitionNode() {}

var _ TypeSystemDefinition = ObjectTypeExtension{}

// FieldDefinition as specified in:
// https://spec.graphql.org/September2025/#FieldDefinition
// example: picture(size: Int): Url
type FieldDefinition struct {
	Description         Description
	Position            position.Position // at the field name
	Name                string            // e.g. picture
	ArgumentsDefinition []InputValueDefinition
	Type                Type // e.g. Url
	Directives          []Directive
}
