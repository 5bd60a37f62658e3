package ast

import (
	"github.com/wundergraph/gqlparse/pkg/position"
)

// InputObjectTypeDefinition as specified in:
// https://spec.graphql.org/September2025/#InputObjectTypeDefinition
type InputObjectTypeDefinition struct {
	Description           Description            // optional, e.g. "input Point2D is ..."
	Position              position.Position      // at the input keyword
	Name                  string                 // e.g. Point2D
	Directives            []Directive            // optional, const arguments only
	InputFieldsDefinition []InputValueDefinition // e.g. { x: Float y: Float }
}

func (d InputObjectTypeDefinition) OfKind() NodeKind { return NodeKindInputObjectTypeDefinition }

func (InputObjectTypeDefinition) typeSystemDefinitionNode() {}

var _ TypeSystemDefinition = InputObjectTypeDefinition{}

// InputObjectTypeExtension as specified in:
// https://spec.graphql.org/September2025/#InputObjectTypeExtension
// example: extend input Point2D { z: Float }
type InputObjectTypeExtension struct {
	Position              position.Position // at the extend keyword
	Name                  string
	Directives            []Directive
	InputFieldsDefinition []InputValueDefinition
}

func (d InputObjectTypeExtension) OfKind() NodeKind { return NodeKindInputObjectTypeExtension }

func (InputObjectTypeExtension) typeSystemDefinitionNode() {}

var _ TypeSystemDefinition = InputObjectTypeExtension{}

// InputValueDefinition as specified in:
// https://spec.graphql.org/September2025/#InputValueDefinition
// example: size: Int = 100 @lowerBound(min: 1)
type InputValueDefinition struct {
	Description     Description
	Position        position.Position // at the value name
	Name            string            // e.g. size
	Type            Type              // e.g. Int
	HasDefaultValue bool
	DefaultValue    Value       // e.g. 100
	Directives      []Directive // optional, const arguments only
}
