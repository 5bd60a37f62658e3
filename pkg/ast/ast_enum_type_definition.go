package ast

import (
	"github.com/wundergraph/gqlparse/pkg/position"
)

// EnumTypeDefinition as specified in:
// https://spec.graphql.org/September2025/#EnumTypeDefinition
type EnumTypeDefinition struct {
	Description          Description           // optional, e.g. "enum Direction is ..."
	Position             position.Position     // at the enum keyword
	Name                 string                // e.g. Direction
	Directives           []Directive           // optional, const arguments only
	EnumValuesDefinition []EnumValueDefinition // e.g. { NORTH EAST SOUTH WEST }
}

func (d EnumTypeDefinition) OfKind() NodeKind { return NodeKindEnumTypeDefinition }

func (EnumTypeDefinition) typeSystemDefinitionNode() {}

var _ TypeSystemDefinition = EnumTypeDefinition{}

// EnumTypeExtension as specified in:
// https://spec.graphql.org/September2025/#EnumTypeExtension
// example: extend enum Direction { NORTH_EAST }
type EnumTypeExtension struct {
	Position             position.Position // at the extend keyword
	Name                 string
	Directives           []Directive
	EnumValuesDefinition []EnumValueDefinition
}

func (d EnumTypeExtension) OfKind() NodeKind { return NodeKindEnumTypeExtension }

func (EnumTypeExtension) typeSystemDefinitionNode() {}

var _ TypeSystemDefinition = EnumTypeExtension{}

// EnumValueDefinition as specified in:
// https://spec.graphql.org/September2025/#EnumValueDefinition
// example: "east direction" EAST @deprecated
type EnumValueDefinition struct {
	Description Description
	Position    position.Position // at the value name
	Name        string            // literal text, even for reserved names
	Directives  []Directive
}
