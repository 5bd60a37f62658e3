package ast

import (
	"fmt"

	"github.com/wundergraph/gqlparse/pkg/position"
)

// SelectionKind marks which kind of selection a Selection is.
type SelectionKind int

const (
	SelectionKindUnknown SelectionKind = iota
	SelectionKindField
	SelectionKindFragmentSpread
	SelectionKindInlineFragment
)

func (k SelectionKind) String() string {
	switch k {
	case SelectionKindField:
		return "Field"
	case SelectionKindFragmentSpread:
		return "FragmentSpread"
	case SelectionKindInlineFragment:
		return "InlineFragment"
	default:
		return fmt.Sprintf("#undefined String case for %d# (see ast_selection.go)", int(k))
	}
}

// SelectionSet as specified in:
// https://spec.graphql.org/September2025/#SelectionSet
type SelectionSet struct {
	LBrace     position.Position
	RBrace     position.Position
	Selections []Selection
}

// Selection is a field, fragment spread or inline fragment.
type Selection interface {
	OfKind() SelectionKind
}

// Field as specified in:
// https://spec.graphql.org/September2025/#Field
// example: preview: photo(size: 80) @include(if: $preview) { url }
type Field struct {
	Position      position.Position
	Alias         string // optional, e.g. preview; empty when none
	Name          string // e.g. photo
	Arguments     []Argument
	Directives    []Directive
	HasSelections bool
	SelectionSet  SelectionSet
}

func (f Field) OfKind() SelectionKind { return SelectionKindField }

var _ Selection = Field{}

// FragmentSpread as specified in:
// https://spec.graphql.org/September2025/#FragmentSpread
// example: ...friendFields @skip(if: $compact)
type FragmentSpread struct {
	Position     position.Position // at the `...`
	FragmentName string            // e.g. friendFields
	Directives   []Directive
}

func (s FragmentSpread) OfKind() SelectionKind { return SelectionKindFragmentSpread }

var _ Selection = FragmentSpread{}

// InlineFragment as specified in:
// https://spec.graphql.org/September2025/#InlineFragment
// example: ... on User @defer { friends { count } }
type InlineFragment struct {
	Position         position.Position // at the `...`
	HasTypeCondition bool
	TypeCondition    TypeCondition
	Directives       []Directive
	SelectionSet     SelectionSet
}

func (f InlineFragment) OfKind() SelectionKind { return SelectionKindInlineFragment }

var _ Selection = InlineFragment{}

// TypeCondition as specified in:
// https://spec.graphql.org/September2025/#TypeCondition
// example: on User
type TypeCondition struct {
	On string // the named type, e.g. User
}
