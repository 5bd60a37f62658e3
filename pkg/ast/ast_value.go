package ast

import (
	"fmt"
)

// ValueKind marks which variant of Value is populated.
type ValueKind int

const (
	ValueKindUnknown ValueKind = iota
	ValueKindVariable
	ValueKindInt
	ValueKindFloat
	ValueKindString
	ValueKindBoolean
	ValueKindNull
	ValueKindEnum
	ValueKindList
	ValueKindObject
)

func (k ValueKind) String() string {
	switch k {
	case ValueKindVariable:
		return "Variable"
	case ValueKindInt:
		return "Int"
	case ValueKindFloat:
		return "Float"
	case ValueKindString:
		return "String"
	case ValueKindBoolean:
		return "Boolean"
	case ValueKindNull:
		return "Null"
	case ValueKindEnum:
		return "Enum"
	case ValueKindList:
		return "List"
	case ValueKindObject:
		return "Object"
	default:
		return fmt.Sprintf("#undefined String case for %d# (see ast_value.go)", int(k))
	}
}

// Value as specified in:
// https://spec.graphql.org/September2025/#Value
// Only the field selected by Kind carries data. String and numeric payloads
// are fully decoded, not raw source text.
type Value struct {
	Kind         ValueKind
	VariableName string  // without the `$`, e.g. devicePicSize
	IntValue     int32   // integers must fit 32 bits
	FloatValue   float64 // finite by construction
	StringValue  string
	BooleanValue bool
	EnumValue    string
	ListValue    []Value
	ObjectValue  []ObjectField // source order, duplicates preserved
}

// ObjectField as specified in:
// https://spec.graphql.org/September2025/#ObjectField
// example: lon: 12.43
type ObjectField struct {
	Name  string
	Value Value
}
