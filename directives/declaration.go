package directives

import (
	"fmt"
	"sort"

	language "github.com/gqlkit/schemakit/language"
	schema "github.com/gqlkit/schemakit/schema"
)

// Violation is one configuration error found while validating a
// directive registration against its declaration.
type Violation struct {
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

type ValidationError []*Violation

func (e ValidationError) Error() string {
	msg := "violations found:\n"
	for _, v := range e {
		line := "- " + v.Message
		if v.File != "" {
			line += fmt.Sprintf(" %s:%d:%d", v.File, v.Line, v.Column)
		}
		msg += line + "\n"
	}
	return msg
}

func violationMissingHandler(name string, loc language.DirectiveLocation, handler string, pos *language.Position) *Violation {
	v := &Violation{
		Message: fmt.Sprintf("directive @%s declares location %s but its visitor does not implement %s", name, loc, handler),
	}
	if pos != nil && pos.Src != nil {
		v.File = pos.Src.Name
		v.Line = pos.Line
		v.Column = pos.Column
	}
	return v
}

// resolveDeclarations produces the effective declaration for every
// directive name declared by the schema or registered in reg, and the
// capability set of every registered name.
//
// Schema-level declarations seed the map; a registered visitor's
// Declaration hook overrides the seed for its name. Every legal location
// of a registered name's declaration that maps to a real handler must be
// implemented by the visitor; violations are collected and returned as a
// single ValidationError before any traversal begins. Declarations for
// names absent from reg are retained unvalidated, so a later pass with a
// different registry can still coerce their arguments.
func resolveDeclarations(s *schema.Schema, reg Registry) (map[string]*schema.Directive, map[string]capSet, error) {
	decls := make(map[string]*schema.Directive, len(s.Directives))
	for name, d := range s.Directives {
		decls[name] = d
	}

	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	sort.Strings(names)

	caps := make(map[string]capSet, len(reg))
	for _, name := range names {
		probe := reg[name]()
		caps[name] = capabilitiesOf(probe)
		if d := probe.Declaration(name, s); d != nil {
			decls[name] = d
		}
	}

	var violations []*Violation
	for _, name := range names {
		decl := decls[name]
		if decl == nil {
			continue
		}
		for _, loc := range decl.Locations {
			if !HasHandler(loc) {
				continue
			}
			if !caps[name][loc] {
				violations = append(violations, violationMissingHandler(name, loc, HandlerName(loc), decl.Position))
			}
		}
	}
	if len(violations) > 0 {
		return nil, nil, ValidationError(violations)
	}

	return decls, caps, nil
}
