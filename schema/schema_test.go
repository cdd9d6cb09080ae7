package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	language "github.com/gqlkit/schemakit/language"
)

const testSDL = `
schema @core(feature: "test") {
  query: RootQuery
}

extend schema @link(url: "https://example.com")

type RootQuery {
  user(id: ID!): User
}

type User implements Node @owner(team: "identity") {
  id: ID!
  name: String @length(max: 50)
}

extend type User @audit {
  email: String
}

interface Node {
  id: ID!
}

enum Role {
  ADMIN
  MEMBER @internalOnly
}

input UserFilter {
  nameLike: String = "%"
}

union Entity = RootQuery | User

scalar Date @specifiedBy(url: "https://example.com/date")

directive @length(max: Int) on FIELD_DEFINITION
directive @owner(team: String!) on OBJECT
`

func mustBuild(t *testing.T, sdl string) *Schema {
	t.Helper()
	s, err := BuildFromSDL(sdl)
	require.NoError(t, err, "failed to build schema from SDL")
	return s
}

func TestBuildFromSDLRoots(t *testing.T) {
	s := mustBuild(t, testSDL)

	require.Equal(t, "RootQuery", s.QueryType)
	require.NotNil(t, s.GetQueryType())
	require.True(t, s.IsRootType("RootQuery"))
	require.False(t, s.IsRootType("User"))
	require.Nil(t, s.GetMutationType())
}

func TestBuildFromSDLDefaultRoots(t *testing.T) {
	s := mustBuild(t, `
		type Query { ok: Boolean }
		type Mutation { noop: Boolean }
	`)
	require.Equal(t, "Query", s.QueryType)
	require.Equal(t, "Mutation", s.MutationType)
	require.Equal(t, "", s.SubscriptionType)
}

func TestBuildFromSDLTypeKinds(t *testing.T) {
	s := mustBuild(t, testSDL)

	for name, kind := range map[string]TypeKind{
		"RootQuery":  TypeKindObject,
		"User":       TypeKindObject,
		"Node":       TypeKindInterface,
		"Role":       TypeKindEnum,
		"UserFilter": TypeKindInputObject,
		"Entity":     TypeKindUnion,
		"Date":       TypeKindScalar,
	} {
		typ := s.Types[name]
		require.NotNil(t, typ, "type %s missing", name)
		require.Equal(t, kind, typ.Kind, "kind of %s", name)
	}
}

func TestBuildFromSDLAppliedDirectives(t *testing.T) {
	s := mustBuild(t, testSDL)

	// Schema root: base occurrence plus one extension node.
	require.Len(t, s.AppliedDirectives, 1)
	require.Equal(t, "core", s.AppliedDirectives[0].Name)
	require.Len(t, s.ExtensionDirectives, 1)
	require.Equal(t, "link", s.ExtensionDirectives[0][0].Name)

	user := s.Types["User"]
	require.Len(t, user.AppliedDirectives, 1)
	require.Equal(t, "owner", user.AppliedDirectives[0].Name)
	require.Len(t, user.ExtensionDirectives, 1)
	require.Equal(t, "audit", user.ExtensionDirectives[0][0].Name)

	name := user.GetField("name")
	require.NotNil(t, name)
	require.Equal(t, "length", name.AppliedDirectives[0].Name)

	role := s.Types["Role"]
	require.Len(t, role.EnumValues, 2)
	require.Empty(t, role.EnumValues[0].AppliedDirectives)
	require.Equal(t, "internalOnly", role.EnumValues[1].AppliedDirectives[0].Name)
}

func TestBuildFromSDLExtensionMembers(t *testing.T) {
	s := mustBuild(t, testSDL)

	user := s.Types["User"]
	fieldNames := make([]string, len(user.Fields))
	for i, f := range user.Fields {
		fieldNames[i] = f.Name
	}
	if diff := cmp.Diff([]string{"id", "name", "email"}, fieldNames); diff != "" {
		t.Errorf("extension fields not merged (-want +got):\n%s", diff)
	}
}

func TestBuildFromSDLPossibleTypes(t *testing.T) {
	s := mustBuild(t, testSDL)

	node := s.Types["Node"]
	if diff := cmp.Diff([]string{"User"}, node.PossibleTypes); diff != "" {
		t.Errorf("interface possible types (-want +got):\n%s", diff)
	}

	entity := s.Types["Entity"]
	if diff := cmp.Diff([]string{"RootQuery", "User"}, entity.PossibleTypes); diff != "" {
		t.Errorf("union possible types (-want +got):\n%s", diff)
	}
}

func TestBuildFromSDLDirectiveDeclarations(t *testing.T) {
	s := mustBuild(t, testSDL)

	length := s.Directives["length"]
	require.NotNil(t, length)
	require.Equal(t, []language.DirectiveLocation{language.LocationFieldDefinition}, length.Locations)
	max := length.GetArgument("max")
	require.NotNil(t, max)
	require.Equal(t, "Int", max.Type.GetNamedType())

	owner := s.Directives["owner"]
	require.NotNil(t, owner)
	require.True(t, IsNonNull(owner.GetArgument("team").Type))

	// Built-in declarations are always present.
	deprecated := s.Directives["deprecated"]
	require.NotNil(t, deprecated)
	require.Equal(t, DefaultDeprecationReason, deprecated.GetArgument("reason").DefaultValue)
	require.NotNil(t, s.Directives["specifiedBy"])
	require.NotNil(t, s.Directives["include"])
	require.NotNil(t, s.Directives["skip"])
}

func TestBuildFromSDLInputDefaults(t *testing.T) {
	s := mustBuild(t, testSDL)

	filter := s.Types["UserFilter"]
	require.Len(t, filter.InputFields, 1)
	require.Equal(t, "%", filter.InputFields[0].DefaultValue)
}

func TestBuildFromSDLOneOf(t *testing.T) {
	s := mustBuild(t, `
		type Query { ok: Boolean }
		input Lookup @oneOf {
		  byID: ID
		  byName: String
		}
	`)
	require.True(t, s.Types["Lookup"].OneOf)
}

func TestBuildFromSDLErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		sdl  string
	}{
		{name: "extend_undefined", sdl: `extend type Missing { id: ID }`},
		{name: "extend_kind_mismatch", sdl: "enum Color { RED }\nextend type Color { id: ID }"},
		{name: "duplicate_type", sdl: "type A { id: ID }\ntype A { id: ID }"},
		{name: "undefined_root", sdl: `schema { query: Missing }`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildFromSDL(tc.sdl)
			require.Error(t, err)
		})
	}
}

func TestTypeNamesSnapshotIsDetached(t *testing.T) {
	s := mustBuild(t, `type Query { ok: Boolean }`)

	names := s.TypeNames()
	before := len(names)
	s.AddType(NewType("Later", TypeKindObject, ""))
	require.Len(t, names, before)
	require.Contains(t, s.TypeNames(), "Later")
}

func TestBuildIsolatesBuiltins(t *testing.T) {
	// Each schema owns its built-in types and declarations; extending a
	// built-in scalar in one schema must not show up in another.
	a := mustBuild(t, `
		type Query { ok: Boolean }
		extend scalar String @tag
	`)
	b := mustBuild(t, `type Query { ok: Boolean }`)

	require.NotSame(t, a.Types["String"], b.Types["String"])
	require.Len(t, a.Types["String"].ExtensionDirectives, 1)
	require.Empty(t, b.Types["String"].ExtensionDirectives)

	a.Directives["deprecated"].AddLocation(language.LocationObject)
	require.NotContains(t, b.Directives["deprecated"].Locations, language.LocationObject)
}

func TestBuildFromSources(t *testing.T) {
	s, err := BuildFromSources(
		&language.Source{Name: "base.graphql", Input: `type Query { user: User }` + "\n" + `type User { id: ID! }`},
		&language.Source{Name: "ext.graphql", Input: `extend type User { name: String }`},
	)
	require.NoError(t, err)
	require.NotNil(t, s.Types["User"].GetField("name"))
}
