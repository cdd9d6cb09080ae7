package directives

// Test visitors shared across the package tests.

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	language "github.com/gqlkit/schemakit/language"
	schema "github.com/gqlkit/schemakit/schema"
)

// fieldTagger handles FIELD_DEFINITION only. Each invocation records the
// visited field name in the pass context under "fields".
type fieldTagger struct {
	Base
}

func (v *fieldTagger) VisitFieldDefinition(u *Use) error {
	fields, _ := u.Context["fields"].([]string)
	u.Context["fields"] = append(fields, u.Element.Type.Name+"."+u.Element.Field.Name)
	return nil
}

// everywhereTagger handles every type-system location.
type everywhereTagger struct {
	Base
}

func (v *everywhereTagger) record(u *Use) error {
	visited, _ := u.Context["visited"].([]language.DirectiveLocation)
	u.Context["visited"] = append(visited, u.Location)
	return nil
}

func (v *everywhereTagger) VisitSchema(u *Use) error               { return v.record(u) }
func (v *everywhereTagger) VisitScalar(u *Use) error               { return v.record(u) }
func (v *everywhereTagger) VisitObject(u *Use) error               { return v.record(u) }
func (v *everywhereTagger) VisitFieldDefinition(u *Use) error      { return v.record(u) }
func (v *everywhereTagger) VisitArgumentDefinition(u *Use) error   { return v.record(u) }
func (v *everywhereTagger) VisitInterface(u *Use) error            { return v.record(u) }
func (v *everywhereTagger) VisitUnion(u *Use) error                { return v.record(u) }
func (v *everywhereTagger) VisitEnum(u *Use) error                 { return v.record(u) }
func (v *everywhereTagger) VisitEnumValue(u *Use) error            { return v.record(u) }
func (v *everywhereTagger) VisitInputObject(u *Use) error          { return v.record(u) }
func (v *everywhereTagger) VisitInputFieldDefinition(u *Use) error { return v.record(u) }

// countingTagger records how many times its own instance ran. Instance
// freshness shows up as every instance carrying exactly one visit.
type countingTagger struct {
	Base
	visits int
}

func (v *countingTagger) VisitFieldDefinition(u *Use) error {
	v.visits++
	return nil
}

// objectOnly handles OBJECT only.
type objectOnly struct {
	Base
}

func (v *objectOnly) VisitObject(u *Use) error { return nil }

// declaringFieldTagger supplies its own declaration through the hook.
type declaringFieldTagger struct {
	fieldTagger
}

func (v *declaringFieldTagger) Declaration(name string, s *schema.Schema) *schema.Directive {
	return schema.NewDirective(name, "").
		AddArgument(schema.NewInputValue("limit", "", schema.NamedType("Int")).SetDefault(3)).
		AddLocation(language.LocationFieldDefinition)
}

// fieldAppender adds a new annotated field to the object it visits.
type fieldAppender struct {
	Base
}

func (v *fieldAppender) VisitObject(u *Use) error {
	f := schema.NewField("added", "", schema.NamedType("String"))
	f.AppliedDirectives = language.DirectiveList{{Name: u.Name}}
	u.Element.Type.AddField(f)
	return nil
}

// failingVisitor returns an error from its field handler.
type failingVisitor struct {
	Base
}

func (v *failingVisitor) VisitFieldDefinition(u *Use) error {
	return fmt.Errorf("handler failed on %s", u.Element.Field.Name)
}

func mustBuildSchema(t testing.TB, sdl string) *schema.Schema {
	t.Helper()
	s, err := schema.BuildFromSDL(sdl)
	require.NoError(t, err, "failed to build schema from SDL")
	return s
}
