package ast

import (
	"github.com/wundergraph/gqlparse/pkg/position"
)

// InterfaceTypeDefinition as specified in:
// https://spec.graphql.org/September2025/#InterfaceTypeDefinition
type InterfaceTypeDefinition struct {
	Description          Description
	Position             position.Position // at the interface keyword
	Name                 string            // e.g. NamedEntity
	ImplementsInterfaces []string
	Directives           []Directive // optional, const arguments only
	FieldDefinitions     []FieldDefinition
}

func (d InterfaceTypeDefinition) OfKind() NodeKind { return NodeKindInterfaceTypeDefinition }

func (InterfaceTypeDefinition) typeSystemDefinitionNode() {}

var _ TypeSystemDefinition = InterfaceTypeDefinition{}

// InterfaceTypeExtension as specified in:
// https://spec.graphql.org/September2025/#InterfaceTypeExtension
// example: extend interface NamedEntity { nickname: String }
type InterfaceTypeExtension struct {
	Position             position.Position // at the extend keyword
	Name                 string
	ImplementsInterfaces []string
	Directives           []Directive
	FieldDefinitions     []FieldDefinition
}

func (d InterfaceTypeExtension) OfKind() NodeKind { return NodeKindInterfaceTypeExtension }

func (InterfaceTypeExtension) typeSystemDefinitionNode() {}

var _ TypeSystemDefinition = InterfaceTypeExtension{}
