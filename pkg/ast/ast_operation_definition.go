package ast

import (
	"fmt"

	"github.com/wundergraph/gqlparse/pkg/position"
)

// OperationType is the type of an operation.
type OperationType int

const (
	OperationTypeUnknown OperationType = iota
	OperationTypeQuery
	OperationTypeMutation
	OperationTypeSubscription
)

func (t OperationType) String() string {
	switch t {
	case OperationTypeQuery:
		return "query"
	case OperationTypeMutation:
		return "mutation"
	case OperationTypeSubscription:
		return "subscription"
	default:
		return fmt.Sprintf("#undefined String case for %d# (see ast_operation_definition.go)", int(t))
	}
}

// OperationDefinition as specified in:
// https://spec.graphql.org/September2025/#OperationDefinition
type OperationDefinition struct {
	OperationType OperationType // one of query, mutation, subscription
	// Shorthand marks the bare `{ ... }` form. A shorthand operation is a
	// query and carries no name, variable definitions or directives.
	Shorthand           bool
	Position            position.Position // at the operation type keyword
	Name                string            // optional, e.g. MyQuery; empty when anonymous
	VariableDefinitions []VariableDefinition
	Directives          []Directive
	SelectionSet        SelectionSet
}

func (d OperationDefinition) OfKind() NodeKind { return NodeKindOperationDefinition }

func (OperationDefinition) executableDefinitionNode() {}

var _ ExecutableDefinition = OperationDefinition{}

// VariableDefinition as specified in:
// https://spec.graphql.org/September2025/#VariableDefinition
// example: $devicePicSize: Int = 100 @foo
type VariableDefinition struct {
	Position        position.Position // at the `$`
	Name            string            // without the `$`, e.g. devicePicSize
	Type            Type
	HasDefaultValue bool
	DefaultValue    Value
	Directives      []Directive // optional, const arguments only
}
