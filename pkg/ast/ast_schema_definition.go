package ast

import (
	"github.com/wundergraph/gqlparse/pkg/position"
)

// SchemaDefinition as specified in:
// https://spec.graphql.org/September2025/#SchemaDefinition
type SchemaDefinition struct {
	Description  Description
	Position     position.Position // at the schema keyword
	Directives   []Directive       // optional, const arguments only
	Query        string            // root query type name; empty when absent
	Mutation     string            // root mutation type name; empty when absent
	Subscription string            // root subscription type name; empty when absent
}

func (d SchemaDefinition) OfKind() NodeKind { return NodeKindSchemaDefinition }

func (SchemaDefinition) typeSystemDefinitionNode() {}

var _ TypeSystemDefinition = SchemaDefinition{}
