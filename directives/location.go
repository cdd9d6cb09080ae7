package directives

import (
	"strings"

	language "github.com/gqlkit/schemakit/language"
)

// HandlerName maps a directive location to its visitor method name:
// the symbolic location is split on underscores, each segment is
// title-cased, and the result is prefixed with "Visit". The mapping is
// total over the directive-location taxonomy; executable locations map
// to names that no handler interface declares.
func HandlerName(loc language.DirectiveLocation) string {
	var b strings.Builder
	b.WriteString("Visit")
	for _, segment := range strings.Split(string(loc), "_") {
		if segment == "" {
			continue
		}
		b.WriteString(segment[:1])
		b.WriteString(strings.ToLower(segment[1:]))
	}
	return b.String()
}

// handlerLocations lists every location backed by a real handler
// interface. Locations outside this set (the executable ones) are never
// validated against a visitor's capabilities.
var handlerLocations = map[language.DirectiveLocation]bool{
	language.LocationSchema:               true,
	language.LocationScalar:               true,
	language.LocationObject:               true,
	language.LocationFieldDefinition:      true,
	language.LocationArgumentDefinition:   true,
	language.LocationInterface:            true,
	language.LocationUnion:                true,
	language.LocationEnum:                 true,
	language.LocationEnumValue:            true,
	language.LocationInputObject:          true,
	language.LocationInputFieldDefinition: true,
}

// HasHandler reports whether loc maps to a real handler method.
func HasHandler(loc language.DirectiveLocation) bool {
	return handlerLocations[loc]
}
