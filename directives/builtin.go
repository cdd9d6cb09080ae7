package directives

import (
	schema "github.com/gqlkit/schemakit/schema"
)

// Builtin returns a registry implementing the standard schema directives
// @deprecated and @specifiedBy.
func Builtin() Registry {
	return Registry{
		"deprecated":  func() Visitor { return &Deprecated{} },
		"specifiedBy": func() Visitor { return &SpecifiedBy{} },
	}
}

// Deprecated projects @deprecated occurrences onto the deprecation flags
// of fields, arguments, input fields and enum values.
type Deprecated struct {
	Base
}

func (v *Deprecated) reason(u *Use) string {
	if reason, ok := u.Args["reason"].(string); ok {
		return reason
	}
	return schema.DefaultDeprecationReason
}

func (v *Deprecated) VisitFieldDefinition(u *Use) error {
	u.Element.Field.Deprecate(v.reason(u))
	return nil
}

func (v *Deprecated) VisitArgumentDefinition(u *Use) error {
	u.Element.Argument.Deprecate(v.reason(u))
	return nil
}

func (v *Deprecated) VisitInputFieldDefinition(u *Use) error {
	u.Element.InputField.Deprecate(v.reason(u))
	return nil
}

func (v *Deprecated) VisitEnumValue(u *Use) error {
	u.Element.EnumValue.Deprecate(v.reason(u))
	return nil
}

// SpecifiedBy records the @specifiedBy URL on custom scalars.
type SpecifiedBy struct {
	Base
}

func (v *SpecifiedBy) VisitScalar(u *Use) error {
	if url, ok := u.Args["url"].(string); ok {
		u.Element.Type.SetSpecifiedByURL(url)
	}
	return nil
}
