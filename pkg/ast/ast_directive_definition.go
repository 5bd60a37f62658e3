package ast

import (
	"fmt"

	"github.com/wundergraph/gqlparse/pkg/position"
)

// DirectiveDefinition as specified in:
// https://spec.graphql.org/September2025/#DirectiveDefinition
// example: directive @example on FIELD
type DirectiveDefinition struct {
	Description         Description
	Position            position.Position // at the directive keyword
	Name                string            // without the `@`, e.g. example
	ArgumentsDefinition []InputValueDefinition
	Repeatable          bool
	DirectiveLocations  []DirectiveLocation // e.g. FIELD
}

func (d DirectiveDefinition) OfKind() NodeKind { return NodeKindDirectiveDefinition }

func (DirectiveDefinition) typeSystemDefinitionNode() {}

var _ TypeSystemDefinition = DirectiveDefinition{}

// DirectiveLocation as specified in:
// https://spec.graphql.org/September2025/#DirectiveLocations
type DirectiveLocation int

const (
	DirectiveLocationUnknown DirectiveLocation = iota

	// executable directive locations

	DirectiveLocationQuery
	DirectiveLocationMutation
	DirectiveLocationSubscription
	DirectiveLocationField
	DirectiveLocationFragmentDefinition
	DirectiveLocationFragmentSpread
	DirectiveLocationInlineFragment
	DirectiveLocationVariableDefinition

	// type system directive locations

	DirectiveLocationSchema
	DirectiveLocationScalar
	DirectiveLocationObject
	DirectiveLocationFieldDefinition
	DirectiveLocationArgumentDefinition
	DirectiveLocationInterface
	DirectiveLocationUnion
	DirectiveLocationEnum
	DirectiveLocationEnumValue
	DirectiveLocationInputObject
	DirectiveLocationInputFieldDefinition
)

var directiveLocationNames = map[DirectiveLocation]string{
	DirectiveLocationQuery:                "QUERY",
	DirectiveLocationMutation:             "MUTATION",
	DirectiveLocationSubscription:         "SUBSCRIPTION",
	DirectiveLocationField:                "FIELD",
	DirectiveLocationFragmentDefinition:   "FRAGMENT_DEFINITION",
	DirectiveLocationFragmentSpread:       "FRAGMENT_SPREAD",
	DirectiveLocationInlineFragment:       "INLINE_FRAGMENT",
	DirectiveLocationVariableDefinition:   "VARIABLE_DEFINITION",
	DirectiveLocationSchema:               "SCHEMA",
	DirectiveLocationScalar:               "SCALAR",
	DirectiveLocationObject:               "OBJECT",
	DirectiveLocationFieldDefinition:      "FIELD_DEFINITION",
	DirectiveLocationArgumentDefinition:   "ARGUMENT_DEFINITION",
	DirectiveLocationInterface:            "INTERFACE",
	DirectiveLocationUnion:                "UNION",
	DirectiveLocationEnum:                 "ENUM",
	DirectiveLocationEnumValue:            "ENUM_VALUE",
	DirectiveLocationInputObject:          "INPUT_OBJECT",
	DirectiveLocationInputFieldDefinition: "INPUT_FIELD_DEFINITION",
}

var directiveLocationValues = func() map[string]DirectiveLocation {
	values := make(map[string]DirectiveLocation, len(directiveLocationNames))
	for location, name := range directiveLocationNames {
		values[name] = location
	}
	return values
}()

func (l DirectiveLocation) String() string {
	name, ok := directiveLocationNames[l]
	if !ok {
		return fmt.Sprintf("#undefined String case for %d# (see ast_directive_definition.go)", int(l))
	}
	return name
}

// ParseDirectiveLocation resolves an all-caps location name like
// FRAGMENT_SPREAD. ok is false for unknown names.
func ParseDirectiveLocation(name string) (location DirectiveLocation, ok bool) {
	location, ok = directiveLocationValues[name]
	return location, ok
}

// DirectiveLocationNames lists the valid all-caps location names in
// declaration order, for suggestion lookups.
func DirectiveLocationNames() []string {
	names := make([]string, 0, len(directiveLocationNames))
	for l := DirectiveLocationQuery; l <= DirectiveLocationInputFieldDefinition; l++ {
		names = append(names, directiveLocationNames[l])
	}
	return names
}
