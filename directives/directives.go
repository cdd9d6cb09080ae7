// Package directives applies schema directives by dispatching each
// occurrence to a registered visitor implementation. A visitor implements
// the meaning of one directive name once, independent of where the
// directive is used; the dispatch engine walks the schema, resolves each
// occurrence's arguments against its declaration, and invokes the handler
// matching the occurrence's location.
package directives

import (
	language "github.com/gqlkit/schemakit/language"
	schema "github.com/gqlkit/schemakit/schema"
)

// Visitor is the base contract of a directive implementation. A visitor
// type additionally implements the location interfaces below for every
// location it handles; occurrences at locations the type does not handle
// never construct an instance. Embed Base for the default Declaration.
type Visitor interface {
	// Declaration returns the effective directive declaration for name,
	// or nil to use the declaration found in the schema itself. It lets a
	// reusable implementation ship its own argument signature without
	// depending on the schema author having written one.
	Declaration(name string, s *schema.Schema) *schema.Directive
}

// Base is the no-op Visitor to embed in implementations.
type Base struct{}

func (Base) Declaration(name string, s *schema.Schema) *schema.Directive { return nil }

// Constructor builds one fresh visitor instance per directive occurrence.
type Constructor func() Visitor

// Registry maps directive names to their visitor constructors.
type Registry map[string]Constructor

// Per-location handler interfaces. The handler may mutate the visited
// element or the schema in place; returning an error aborts the pass.

type SchemaVisitor interface {
	Visitor
	VisitSchema(u *Use) error
}

type ScalarVisitor interface {
	Visitor
	VisitScalar(u *Use) error
}

type ObjectVisitor interface {
	Visitor
	VisitObject(u *Use) error
}

type FieldDefinitionVisitor interface {
	Visitor
	VisitFieldDefinition(u *Use) error
}

type ArgumentDefinitionVisitor interface {
	Visitor
	VisitArgumentDefinition(u *Use) error
}

type InterfaceVisitor interface {
	Visitor
	VisitInterface(u *Use) error
}

type UnionVisitor interface {
	Visitor
	VisitUnion(u *Use) error
}

type EnumVisitor interface {
	Visitor
	VisitEnum(u *Use) error
}

type EnumValueVisitor interface {
	Visitor
	VisitEnumValue(u *Use) error
}

type InputObjectVisitor interface {
	Visitor
	VisitInputObject(u *Use) error
}

type InputFieldDefinitionVisitor interface {
	Visitor
	VisitInputFieldDefinition(u *Use) error
}

// Use is one applied directive occurrence bound to its visitor instance:
// the resolved arguments, the annotated element, the schema, and the
// context map shared by every Use of one Visit pass.
type Use struct {
	Name     string
	Args     map[string]any
	Location language.DirectiveLocation
	Element  Element
	Schema   *schema.Schema
	Context  map[string]any
	Visitor  Visitor
}

// capSet records which locations a visitor type handles. It is populated
// once per registration from a probe instance, so dispatch never needs
// reflection and never constructs instances for unhandled locations.
type capSet map[language.DirectiveLocation]bool

func capabilitiesOf(v Visitor) capSet {
	caps := capSet{}
	if _, ok := v.(SchemaVisitor); ok {
		caps[language.LocationSchema] = true
	}
	if _, ok := v.(ScalarVisitor); ok {
		caps[language.LocationScalar] = true
	}
	if _, ok := v.(ObjectVisitor); ok {
		caps[language.LocationObject] = true
	}
	if _, ok := v.(FieldDefinitionVisitor); ok {
		caps[language.LocationFieldDefinition] = true
	}
	if _, ok := v.(ArgumentDefinitionVisitor); ok {
		caps[language.LocationArgumentDefinition] = true
	}
	if _, ok := v.(InterfaceVisitor); ok {
		caps[language.LocationInterface] = true
	}
	if _, ok := v.(UnionVisitor); ok {
		caps[language.LocationUnion] = true
	}
	if _, ok := v.(EnumVisitor); ok {
		caps[language.LocationEnum] = true
	}
	if _, ok := v.(EnumValueVisitor); ok {
		caps[language.LocationEnumValue] = true
	}
	if _, ok := v.(InputObjectVisitor); ok {
		caps[language.LocationInputObject] = true
	}
	if _, ok := v.(InputFieldDefinitionVisitor); ok {
		caps[language.LocationInputFieldDefinition] = true
	}
	return caps
}

// dispatch invokes the handler for u.Location on u.Visitor. The caller
// has already checked the capability for the location.
func dispatch(u *Use) error {
	switch u.Location {
	case language.LocationSchema:
		return u.Visitor.(SchemaVisitor).VisitSchema(u)
	case language.LocationScalar:
		return u.Visitor.(ScalarVisitor).VisitScalar(u)
	case language.LocationObject:
		return u.Visitor.(ObjectVisitor).VisitObject(u)
	case language.LocationFieldDefinition:
		return u.Visitor.(FieldDefinitionVisitor).VisitFieldDefinition(u)
	case language.LocationArgumentDefinition:
		return u.Visitor.(ArgumentDefinitionVisitor).VisitArgumentDefinition(u)
	case language.LocationInterface:
		return u.Visitor.(InterfaceVisitor).VisitInterface(u)
	case language.LocationUnion:
		return u.Visitor.(UnionVisitor).VisitUnion(u)
	case language.LocationEnum:
		return u.Visitor.(EnumVisitor).VisitEnum(u)
	case language.LocationEnumValue:
		return u.Visitor.(EnumValueVisitor).VisitEnumValue(u)
	case language.LocationInputObject:
		return u.Visitor.(InputObjectVisitor).VisitInputObject(u)
	case language.LocationInputFieldDefinition:
		return u.Visitor.(InputFieldDefinitionVisitor).VisitInputFieldDefinition(u)
	}
	return nil
}
