package ast

import (
	"github.com/wundergraph/gqlparse/pkg/position"
)

// UnionTypeDefinition as specified in:
// https://spec.graphql.org/September2025/#UnionTypeDefinition
// example: union SearchResult = Photo | Person
type UnionTypeDefinition struct {
	Description      Description
	Position         position.Position // at the union keyword
	Name             string            // e.g. SearchResult
	Directives       []Directive       // optional, const arguments only
	UnionMemberTypes []string          // e.g. Photo, Person
}

func (d UnionTypeDefinition) OfKind() NodeKind { return NodeKindUnionTypeDefinition }

func (UnionTypeDefinition) typeSystemDefinitionNode() {}

var _ TypeSystemDefinition = UnionTypeDefinition{}

// UnionTypeExtension as specified in:
// https://spec.graphql.org/September2025/#UnionTypeExtension
// example: extend union SearchResult = Audio
type UnionTypeExtension struct {
	Position         position.Position // at the extend keyword
	Name             string
	Directives       []Directive
	UnionMemberTypes []string
}

func (d UnionTypeExtension) OfKind() NodeKind { return NodeKindUnionTypeExtension }

func (UnionTypeExtension) typeSystemDefinitionNode() {}

var _ TypeSystemDefinition = UnionTypeExtension{}
