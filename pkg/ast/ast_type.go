package ast

import (
	"fmt"
)

// TypeKind marks which shape a type annotation has.
type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindNamed
	TypeKindList
	TypeKindNonNull
)

func (k TypeKind) String() string {
	switch k {
	case TypeKindNamed:
		return "Named"
	case TypeKindList:
		return "List"
	case TypeKindNonNull:
		return "NonNull"
	default:
		return fmt.Sprintf("#undefined String case for %d# (see ast_type.go)", int(k))
	}
}

// Type as specified in:
// https://spec.graphql.org/September2025/#Type
// example: [String!]!
type Type struct {
	Kind   TypeKind
	Name   string // set for Named, e.g. String
	OfType *Type  // set for List and NonNull
}

func (t Type) String() string {
	switch t.Kind {
	case TypeKindNamed:
		return t.Name
	case TypeKindList:
		return "[" + t.OfType.String() + "]"
	case TypeKindNonNull:
		return t.OfType.String() + "!"
	default:
		return t.Kind.String()
	}
}

// NamedType builds a named type annotation.
func NamedType(name string) Type {
	return Type{Kind: TypeKindNamed, Name: name}
}

// ListType wraps ofType in a list annotation.
func ListType(ofType Type) Type {
	return Type{Kind: TypeKindList, OfType: &ofType}
}

// NonNullType wraps ofType in a non-null annotation.
func NonNullType(ofType Type) Type {
	return Type{Kind: TypeKindNonNull, OfType: &ofType}
}
