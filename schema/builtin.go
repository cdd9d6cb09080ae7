package schema

import (
	language "github.com/gqlkit/schemakit/language"
)

// DefaultDeprecationReason is the default for @deprecated(reason:).
const DefaultDeprecationReason = "No longer supported"

var builtinTypeNames = map[string]bool{
	"String":  true,
	"Int":     true,
	"Float":   true,
	"Boolean": true,
	"ID":      true,
}

var builtinDirectiveNames = map[string]bool{
	"include":     true,
	"skip":        true,
	"deprecated":  true,
	"specifiedBy": true,
	"oneOf":       true,
}

// builtinTypes returns fresh built-in scalar types. Each schema owns its
// types and visitors mutate them in place, so the built-ins cannot be
// shared between schemas.
func builtinTypes() []*Type {
	return []*Type{
		{
			Name:        "String",
			Kind:        TypeKindScalar,
			Description: "The `String` scalar type represents textual data, represented as UTF-8 character sequences.",
		},
		{
			Name:        "Int",
			Kind:        TypeKindScalar,
			Description: "The `Int` scalar type represents non-fractional signed whole numeric values.",
		},
		{
			Name:        "Float",
			Kind:        TypeKindScalar,
			Description: "The `Float` scalar type represents signed double-precision fractional values.",
		},
		{
			Name:        "Boolean",
			Kind:        TypeKindScalar,
			Description: "The `Boolean` scalar type represents `true` or `false`.",
		},
		{
			Name:        "ID",
			Kind:        TypeKindScalar,
			Description: "The `ID` scalar type represents a unique identifier, often used to refetch an object or as a key for caching.",
		},
	}
}

// builtinDirectives returns fresh built-in directive declarations.
func builtinDirectives() []*Directive {
	return []*Directive{
		{
			Name:        "include",
			Description: "Directs the executor to include this field or fragment only when the `if` argument is true.",
			Arguments: []*InputValue{
				{
					Name:        "if",
					Description: "Included when true.",
					Type:        NonNullType(NamedType("Boolean")),
				},
			},
			Locations: []language.DirectiveLocation{
				language.LocationField,
				language.LocationFragmentSpread,
				language.LocationInlineFragment,
			},
		},
		{
			Name:        "skip",
			Description: "Directs the executor to skip this field or fragment when the `if` argument is true.",
			Arguments: []*InputValue{
				{
					Name:        "if",
					Description: "Skipped when true.",
					Type:        NonNullType(NamedType("Boolean")),
				},
			},
			Locations: []language.DirectiveLocation{
				language.LocationField,
				language.LocationFragmentSpread,
				language.LocationInlineFragment,
			},
		},
		{
			Name:        "deprecated",
			Description: "Marks an element of a GraphQL schema as no longer supported.",
			Arguments: []*InputValue{
				{
					Name:         "reason",
					Description:  "Explains why this element was deprecated, usually also including a suggestion for how to access supported similar data.",
					Type:         NamedType("String"),
					DefaultValue: DefaultDeprecationReason,
				},
			},
			Locations: []language.DirectiveLocation{
				language.LocationFieldDefinition,
				language.LocationArgumentDefinition,
				language.LocationInputFieldDefinition,
				language.LocationEnumValue,
			},
		},
		{
			Name:        "specifiedBy",
			Description: "Exposes a URL that specifies the behavior of this scalar.",
			Arguments: []*InputValue{
				{
					Name:        "url",
					Description: "The URL that specifies the behavior of this scalar.",
					Type:        NonNullType(NamedType("String")),
				},
			},
			Locations: []language.DirectiveLocation{
				language.LocationScalar,
			},
		},
		{
			Name:        "oneOf",
			Description: "Indicates exactly one field must be supplied and this field must not be null.",
			Locations: []language.DirectiveLocation{
				language.LocationInputObject,
			},
		},
	}
}
