package directives

import (
	language "github.com/gqlkit/schemakit/language"
	schema "github.com/gqlkit/schemakit/schema"
)

// Visit applies every registered directive implementation to the schema.
//
// The registry's declarations are resolved and validated first, so a
// configuration error fails the call before any element is visited. The
// traversal then offers every element to the selection step: occurrences
// whose name is unregistered are ignored, occurrences at locations the
// registered visitor does not handle construct no instance, and every
// remaining occurrence yields exactly one Use whose handler runs
// immediately and may mutate the element or schema in place. Argument or
// handler errors abort the pass at once; mutation already applied by
// earlier elements remains (directive application runs once at schema
// build time, where fail-fast is the useful contract).
//
// passCtx is shared by reference across every Use of the call; nil means
// a fresh empty map. The result maps each registered name to its Uses in
// encounter order.
func Visit(s *schema.Schema, reg Registry, passCtx map[string]any) (map[string][]*Use, error) {
	if passCtx == nil {
		passCtx = map[string]any{}
	}

	decls, caps, err := resolveDeclarations(s, reg)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]*Use, len(reg))
	for name := range reg {
		result[name] = []*Use{}
	}

	err = Walk(s, func(el Element, loc language.DirectiveLocation) error {
		for _, d := range appliedTo(el, loc) {
			ctor, ok := reg[d.Name]
			if !ok {
				continue
			}
			if !caps[d.Name][loc] {
				continue
			}
			args, err := resolveArguments(d, decls[d.Name])
			if err != nil {
				return err
			}
			u := &Use{
				Name:     d.Name,
				Args:     args,
				Location: loc,
				Element:  el,
				Schema:   s,
				Context:  passCtx,
				Visitor:  ctor(),
			}
			if err := dispatch(u); err != nil {
				return err
			}
			result[d.Name] = append(result[d.Name], u)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
