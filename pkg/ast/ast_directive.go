package ast

import (
	"github.com/wundergraph/gqlparse/pkg/position"
)

// Directive as specified in:
// https://spec.graphql.org/September2025/#Directive
// example: @include(if: $foo)
type Directive struct {
	Position  position.Position // at the `@`
	Name      string            // without the `@`, e.g. include
	Arguments []Argument
}

// Argument as specified in:
// https://spec.graphql.org/September2025/#Argument
// example: if: $foo
type Argument struct {
	Position position.Position // at the argument name
	Name     string            // e.g. if
	Value    Value             // e.g. $foo
}
