package schema

import (
	"fmt"
	"sort"
	"strconv"

	language "github.com/gqlkit/schemakit/language"
)

// BuildFromSDL parses a single SDL source and returns the corresponding Schema.
func BuildFromSDL(sdl string) (*Schema, error) {
	return BuildFromSources(&language.Source{Name: "schema.graphql", Input: sdl})
}

// BuildFromSources parses and merges multiple SDL sources into one Schema.
func BuildFromSources(sources ...*language.Source) (*Schema, error) {
	doc, err := language.ParseSchemas(sources...)
	if err != nil {
		return nil, err
	}
	return BuildFromDocument(doc)
}

// BuildFromDocument builds a Schema from an already-parsed schema document.
// Extension nodes are merged into their base definitions member-wise, while
// each extension node's directives are retained as a separate occurrence
// list on the base type.
func BuildFromDocument(doc *language.SchemaDocument) (*Schema, error) {
	s := NewSchema("")

	// Builtins, fresh per schema
	for _, t := range builtinTypes() {
		s.AddType(t)
	}
	for _, d := range builtinDirectives() {
		s.AddDirective(d)
	}

	for _, node := range doc.Definitions {
		if _, exists := s.Types[node.Name]; exists {
			return nil, fmt.Errorf("type %q defined more than once", node.Name)
		}
		s.AddType(buildType(node))
	}

	for _, node := range doc.Extensions {
		base, exists := s.Types[node.Name]
		if !exists {
			return nil, fmt.Errorf("cannot extend undefined type %q", node.Name)
		}
		if base.Kind != typeKindOf(node.Kind) {
			return nil, fmt.Errorf("cannot extend %s %q as %s", base.Kind, node.Name, node.Kind)
		}
		extendType(base, node)
	}

	for _, dir := range doc.Directives {
		s.AddDirective(buildDirective(dir))
	}

	if err := applySchemaDefinitions(s, doc); err != nil {
		return nil, err
	}

	resolvePossibleTypes(s)
	return s, nil
}

func applySchemaDefinitions(s *Schema, doc *language.SchemaDocument) error {
	for _, node := range doc.Schema {
		s.Description = node.Description
		s.AppliedDirectives = append(s.AppliedDirectives, node.Directives...)
		if err := applyOperationTypes(s, node); err != nil {
			return err
		}
	}
	for _, node := range doc.SchemaExtension {
		s.ExtensionDirectives = append(s.ExtensionDirectives, node.Directives)
		if err := applyOperationTypes(s, node); err != nil {
			return err
		}
	}

	// Default root names apply when no schema definition names them.
	if len(doc.Schema) == 0 {
		for _, name := range []string{"Query", "Mutation", "Subscription"} {
			if t, ok := s.Types[name]; ok && t.Kind == TypeKindObject {
				switch name {
				case "Query":
					s.SetQueryType(name)
				case "Mutation":
					s.SetMutationType(name)
				case "Subscription":
					s.SetSubscriptionType(name)
				}
			}
		}
	}
	return nil
}

func applyOperationTypes(s *Schema, node *language.SchemaDefinition) error {
	for _, op := range node.OperationTypes {
		if _, ok := s.Types[op.Type]; !ok {
			return fmt.Errorf("root %s type %q is not defined", op.Operation, op.Type)
		}
		switch op.Operation {
		case language.Query:
			s.SetQueryType(op.Type)
		case language.Mutation:
			s.SetMutationType(op.Type)
		case language.Subscription:
			s.SetSubscriptionType(op.Type)
		}
	}
	return nil
}

func buildType(node *language.Definition) *Type {
	t := NewType(node.Name, typeKindOf(node.Kind), node.Description)
	t.AppliedDirectives = append(t.AppliedDirectives, node.Directives...)
	addTypeMembers(t, node)
	return t
}

func extendType(t *Type, node *language.Definition) {
	t.ExtensionDirectives = append(t.ExtensionDirectives, node.Directives)
	addTypeMembers(t, node)
}

func addTypeMembers(t *Type, node *language.Definition) {
	for _, name := range node.Interfaces {
		t.AddInterface(name)
	}
	switch t.Kind {
	case TypeKindObject, TypeKindInterface:
		for _, fieldNode := range node.Fields {
			t.AddField(buildField(fieldNode))
		}
	case TypeKindEnum:
		for _, valueNode := range node.EnumValues {
			t.AddEnumValue(buildEnumValue(valueNode))
		}
	case TypeKindInputObject:
		for _, fieldNode := range node.Fields {
			t.AddInputField(buildInputField(fieldNode))
		}
		if node.Directives.ForName("oneOf") != nil {
			t.SetOneOf(true)
		}
	case TypeKindUnion:
		for _, member := range node.Types {
			t.AddPossibleType(member)
		}
	}
}

func buildField(node *language.FieldDefinition) *Field {
	f := NewField(node.Name, node.Description, typeRefFromAST(node.Type))
	f.AppliedDirectives = append(f.AppliedDirectives, node.Directives...)
	for _, argNode := range node.Arguments {
		f.AddArgument(buildArgument(argNode))
	}
	return f
}

func buildArgument(node *language.ArgumentDefinition) *InputValue {
	in := NewInputValue(node.Name, node.Description, typeRefFromAST(node.Type))
	if node.DefaultValue != nil {
		in.SetDefault(literalValue(node.DefaultValue))
	}
	in.AppliedDirectives = append(in.AppliedDirectives, node.Directives...)
	return in
}

func buildInputField(node *language.FieldDefinition) *InputValue {
	in := NewInputValue(node.Name, node.Description, typeRefFromAST(node.Type))
	if node.DefaultValue != nil {
		in.SetDefault(literalValue(node.DefaultValue))
	}
	in.AppliedDirectives = append(in.AppliedDirectives, node.Directives...)
	return in
}

func buildEnumValue(node *language.EnumValueDefinition) *EnumValue {
	e := NewEnumValue(node.Name, node.Description)
	e.AppliedDirectives = append(e.AppliedDirectives, node.Directives...)
	return e
}

func buildDirective(node *language.DirectiveDefinition) *Directive {
	d := NewDirective(node.Name, node.Description).SetRepeatable(node.IsRepeatable)
	d.Position = node.Position
	d.Locations = append(d.Locations, node.Locations...)
	for _, argNode := range node.Arguments {
		d.AddArgument(buildArgument(argNode))
	}
	return d
}

func typeKindOf(kind language.DefinitionKind) TypeKind {
	switch kind {
	case language.Object:
		return TypeKindObject
	case language.Interface:
		return TypeKindInterface
	case language.Union:
		return TypeKindUnion
	case language.Scalar:
		return TypeKindScalar
	case language.Enum:
		return TypeKindEnum
	case language.InputObject:
		return TypeKindInputObject
	}
	panic("unreachable")
}

func typeRefFromAST(t *language.Type) *TypeRef {
	var ref *TypeRef
	if t.NamedType != "" {
		ref = NamedType(t.NamedType)
	} else {
		ref = ListType(typeRefFromAST(t.Elem))
	}
	if t.NonNull {
		ref = NonNullType(ref)
	}
	return ref
}

// resolvePossibleTypes records each object type on the interfaces it
// implements. Union possible types come directly from the member list.
func resolvePossibleTypes(s *Schema) {
	for _, name := range s.TypeNames() {
		t := s.Types[name]
		if t.Kind != TypeKindObject {
			continue
		}
		for _, ifaceName := range t.Interfaces {
			if iface, ok := s.Types[ifaceName]; ok && iface.Kind == TypeKindInterface {
				iface.AddPossibleType(t.Name)
			}
		}
	}
	for _, t := range s.Types {
		if t.Kind == TypeKindInterface {
			sort.Strings(t.PossibleTypes)
		}
	}
}

// literalValue converts an SDL literal (a default value position, so
// variables cannot occur) to a Go value.
func literalValue(value *language.Value) any {
	if value == nil {
		return nil
	}
	switch value.Kind {
	case language.IntValue:
		iv, _ := strconv.Atoi(value.Raw)
		return iv
	case language.FloatValue:
		fv, _ := strconv.ParseFloat(value.Raw, 64)
		return fv
	case language.StringValue, language.BlockValue:
		return value.Raw
	case language.BooleanValue:
		return value.Raw == "true"
	case language.NullValue:
		return nil
	case language.EnumValue:
		return value.Raw
	case language.ListValue:
		out := make([]any, len(value.Children))
		for i, c := range value.Children {
			out[i] = literalValue(c.Value)
		}
		return out
	case language.ObjectValue:
		m := make(map[string]any)
		for _, f := range value.Children {
			m[f.Name] = literalValue(f.Value)
		}
		return m
	default:
		return nil
	}
}
