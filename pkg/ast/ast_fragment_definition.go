package ast

import (
	"github.com/wundergraph/gqlparse/pkg/position"
)

// FragmentDefinition as specified in:
// https://spec.graphql.org/September2025/#FragmentDefinition
type FragmentDefinition struct {
	Position      position.Position // at the fragment keyword
	Name          string            // e.g. friendFields, must not be `on`
	TypeCondition TypeCondition     // e.g. on User
	Directives    []Directive
	SelectionSet  SelectionSet
}

func (d FragmentDefinition) OfKind() NodeKind { return NodeKindFragmentDefinition }

func (FragmentDefinition) executableDefinitionNode() {}

var _ ExecutableDefinition = FragmentDefinition{}
