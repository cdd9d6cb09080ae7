package directives

import (
	language "github.com/gqlkit/schemakit/language"
	schema "github.com/gqlkit/schemakit/schema"
)

// Element is the visited schema element as a closed tagged variant. The
// location kind determines which slots are set:
//
//	SCHEMA                 Schema
//	SCALAR, OBJECT,
//	INTERFACE, UNION,
//	ENUM, INPUT_OBJECT     Type
//	FIELD_DEFINITION       Type, Field
//	ARGUMENT_DEFINITION    Type, Field, Argument
//	ENUM_VALUE             Type, EnumValue
//	INPUT_FIELD_DEFINITION Type, InputField
//
// Parent slots stay set on child elements, so a field handler can reach
// its owning type and an argument handler its owning field.
type Element struct {
	Schema     *schema.Schema
	Type       *schema.Type
	Field      *schema.Field
	Argument   *schema.InputValue
	EnumValue  *schema.EnumValue
	InputField *schema.InputValue
}

// Selector is called once per visited element with its location kind.
// An error aborts the remaining traversal immediately.
type Selector func(el Element, loc language.DirectiveLocation) error

// Classifier derives the location kind reported for a named type. The
// most specific applicable kind wins; the default rule falls back to the
// generic kind for the type's variant because the schema-language
// location taxonomy defines nothing more specific for root objects.
type Classifier func(t *schema.Type, s *schema.Schema) language.DirectiveLocation

// ClassifyType is the default Classifier.
func ClassifyType(t *schema.Type, s *schema.Schema) language.DirectiveLocation {
	switch t.Kind {
	case schema.TypeKindScalar:
		return language.LocationScalar
	case schema.TypeKindObject:
		return language.LocationObject
	case schema.TypeKindInterface:
		return language.LocationInterface
	case schema.TypeKindUnion:
		return language.LocationUnion
	case schema.TypeKindEnum:
		return language.LocationEnum
	case schema.TypeKindInputObject:
		return language.LocationInputObject
	}
	return language.LocationObject
}

// Walk traverses the schema root, then every named type in registry
// order, then each type's children in declaration order, offering each
// element to sel exactly once. Element lists are snapshotted before
// iteration, so a selector may register new types or append fields to
// the type being visited without those additions being visited in the
// same pass.
func Walk(s *schema.Schema, sel Selector) error {
	return WalkWith(s, sel, ClassifyType)
}

// WalkWith is Walk with a caller-supplied type classification rule.
func WalkWith(s *schema.Schema, sel Selector, classify Classifier) error {
	if classify == nil {
		classify = ClassifyType
	}

	if err := sel(Element{Schema: s}, language.LocationSchema); err != nil {
		return err
	}

	for _, name := range s.TypeNames() {
		t, ok := s.Types[name]
		if !ok {
			continue
		}
		// Children are snapshotted before the type itself is offered, so
		// a selector growing the type during its own visit cannot extend
		// the current pass.
		snap := snapshotChildren(t)
		if err := sel(Element{Type: t}, classify(t, s)); err != nil {
			return err
		}
		if err := snap.visit(t, sel); err != nil {
			return err
		}
	}
	return nil
}

type childSnapshot struct {
	fields      []fieldSnapshot
	enumValues  []*schema.EnumValue
	inputFields []*schema.InputValue
}

// fieldSnapshot pins a field's argument list alongside the field, so an
// argument appended by the field's own handler stays out of the pass.
type fieldSnapshot struct {
	field *schema.Field
	args  []*schema.InputValue
}

func snapshotChildren(t *schema.Type) childSnapshot {
	var snap childSnapshot
	switch t.Kind {
	case schema.TypeKindObject, schema.TypeKindInterface:
		snap.fields = make([]fieldSnapshot, len(t.Fields))
		for i, f := range t.Fields {
			args := make([]*schema.InputValue, len(f.Arguments))
			copy(args, f.Arguments)
			snap.fields[i] = fieldSnapshot{field: f, args: args}
		}
	case schema.TypeKindEnum:
		snap.enumValues = make([]*schema.EnumValue, len(t.EnumValues))
		copy(snap.enumValues, t.EnumValues)
	case schema.TypeKindInputObject:
		snap.inputFields = make([]*schema.InputValue, len(t.InputFields))
		copy(snap.inputFields, t.InputFields)
	}
	// Unions and scalars have no visitable children.
	return snap
}

func (snap childSnapshot) visit(t *schema.Type, sel Selector) error {
	for _, fs := range snap.fields {
		if err := sel(Element{Type: t, Field: fs.field}, language.LocationFieldDefinition); err != nil {
			return err
		}
		for _, a := range fs.args {
			if err := sel(Element{Type: t, Field: fs.field, Argument: a}, language.LocationArgumentDefinition); err != nil {
				return err
			}
		}
	}
	for _, v := range snap.enumValues {
		if err := sel(Element{Type: t, EnumValue: v}, language.LocationEnumValue); err != nil {
			return err
		}
	}
	for _, f := range snap.inputFields {
		if err := sel(Element{Type: t, InputField: f}, language.LocationInputFieldDefinition); err != nil {
			return err
		}
	}
	return nil
}

// appliedTo returns the directive occurrences attached to el: the base
// definition's occurrences followed by any extension-node occurrences of
// the same named type.
func appliedTo(el Element, loc language.DirectiveLocation) language.DirectiveList {
	switch loc {
	case language.LocationSchema:
		return mergeApplied(el.Schema.AppliedDirectives, el.Schema.ExtensionDirectives)
	case language.LocationFieldDefinition:
		return el.Field.AppliedDirectives
	case language.LocationArgumentDefinition:
		return el.Argument.AppliedDirectives
	case language.LocationEnumValue:
		return el.EnumValue.AppliedDirectives
	case language.LocationInputFieldDefinition:
		return el.InputField.AppliedDirectives
	default:
		return mergeApplied(el.Type.AppliedDirectives, el.Type.ExtensionDirectives)
	}
}

func mergeApplied(base language.DirectiveList, extensions []language.DirectiveList) language.DirectiveList {
	if len(extensions) == 0 {
		return base
	}
	merged := make(language.DirectiveList, 0, len(base))
	merged = append(merged, base...)
	for _, ext := range extensions {
		merged = append(merged, ext...)
	}
	return merged
}
