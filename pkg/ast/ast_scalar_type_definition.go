package ast

import (
	"github.com/wundergraph/gqlparse/pkg/position"
)

// ScalarTypeDefinition as specified in:
// https://spec.graphql.org/September2025/#ScalarTypeDefinition
// example: scalar JSON @specifiedBy(url: "https://json.org")
type ScalarTypeDefinition struct {
	Description Description
	Position    position.Position // at the scalar keyword
	Name        string            // e.g. JSON
	Directives  []Directive       // optional, const arguments only
}

func (d ScalarTypeDefinition) OfKind() NodeKind { return NodeKindScalarTypeDefinition }

func (ScalarTypeDefinition) typeSystemDefinitionNode() {}

var _ TypeSystemDefinition = ScalarTypeDefinition{}

// ScalarTypeExtension as specified in:
// https://spec.graphql.org/September2025/#ScalarTypeExtension
// example: extend scalar JSON @specifiedBy(url: "https://json.org")
type ScalarTypeExtension struct {
	Position   position.Position // at the extend keyword
	Name       string
	Directives []Directive
}

func (d ScalarTypeExtension) OfKind() NodeKind { return NodeKindScalarTypeExtension }

func (ScalarTypeExtension) typeSystemDefinitionNode() {}

var _ TypeSystemDefinition = ScalarTypeExtension{}
