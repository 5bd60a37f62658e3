// Package ast declares the syntax tree the parser produces: three document
// shapes and the definition, selection, value and type nodes they contain.
//
// Nodes are plain data carrying decoded names and source positions. The node
// set is closed; consumers discriminate with OfKind or a type switch. A tree
// built from broken input is still complete: nodes the parser could finish
// appear in full, invalid names stay in the tree verbatim, and the defects
// are reported through the accompanying diagnostics instead of holes in the
// tree.
package ast

import (
	"fmt"

	"github.com/wundergraph/gqlparse/pkg/position"
)

// NodeKind discriminates top level definitions.
type NodeKind int

const (
	NodeKindUnknown NodeKind = iota
	NodeKindSchemaDefinition
	NodeKindScalarTypeDefinition
	NodeKindObjectTypeDefinition
	NodeKindInterfaceTypeDefinition
	NodeKindUnionTypeDefinition
	NodeKindEnumTypeDefinition
	NodeKindInputObjectTypeDefinition
	NodeKindDirectiveDefinition
	NodeKindScalarTypeExtension
	NodeKindObjectTypeExtension
	NodeKindInterfaceTypeExtension
	NodeKindUnionTypeExtension
	NodeKindEnumTypeExtension
	NodeKindInputObjectTypeExtension
	NodeKindOperationDefinition
	NodeKindFragmentDefinition
)

func (k NodeKind) String() string {
	switch k {
	case NodeKindUnknown:
		return "Unknown"
	case NodeKindSchemaDefinition:
		return "SchemaDefinition"
	case NodeKindScalarTypeDefinition:
		return "ScalarTypeDefinition"
	case NodeKindObjectTypeDefinition:
		return "ObjectTypeDefinition"
	case NodeKindInterfaceTypeDefinition:
		return "InterfaceTypeDefinition"
	case NodeKindUnionTypeDefinition:
		return "UnionTypeDefinition"
	case NodeKindEnumTypeDefinition:
		return "EnumTypeDefinition"
	case NodeKindInputObjectTypeDefinition:
		return "InputObjectTypeDefinition"
	case NodeKindDirectiveDefinition:
		return "DirectiveDefinition"
	case NodeKindScalarTypeExtension:
		return "ScalarTypeExtension"
	case NodeKindObjectTypeExtension:
		return "ObjectTypeExtension"
	case NodeKindInterfaceTypeExtension:
		return "InterfaceTypeExtension"
	case NodeKindUnionTypeExtension:
		return "UnionTypeExtension"
	case NodeKindEnumTypeExtension:
		return "EnumTypeExtension"
	case NodeKindInputObjectTypeExtension:
		return "InputObjectTypeExtension"
	case NodeKindOperationDefinition:
		return "OperationDefinition"
	case NodeKindFragmentDefinition:
		return "FragmentDefinition"
	default:
		return fmt.Sprintf("#undefined String case for %d# (see ast.go)", int(k))
	}
}

// Definition is a single top level construct of a document.
type Definition interface {
	OfKind() NodeKind
}

// TypeSystemDefinition is a Definition legal in a schema document: the schema
// definition, type and directive definitions, and type extensions.
type TypeSystemDefinition interface {
	Definition
	typeSystemDefinitionNode()
}

// ExecutableDefinition is a Definition legal in an executable document:
// operation and fragment definitions.
type ExecutableDefinition interface {
	Definition
	executableDefinitionNode()
}

// SchemaDocument holds type system definitions in source order.
type SchemaDocument struct {
	Definitions []TypeSystemDefinition
}

// ExecutableDocument holds operation and fragment definitions in source order.
type ExecutableDocument struct {
	Definitions []ExecutableDefinition
}

// MixedDocument interleaves type system and executable definitions in their
// original source order, so a formatter can reproduce the input ordering.
type MixedDocument struct {
	Definitions []Definition
}

// Description is the optional string literal preceding a definition. Content
// holds the decoded value, so an empty block string and a missing description
// are told apart by IsDefined.
type Description struct {
	IsDefined     bool
	IsBlockString bool // true if -> """content""" ; else "content"
	Content       string
	Position      position.Position
}
