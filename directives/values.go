package directives

import (
	"fmt"
	"strconv"

	language "github.com/gqlkit/schemakit/language"
	schema "github.com/gqlkit/schemakit/schema"
)

// resolveArguments resolves a directive occurrence's arguments. With a
// declaration, each supplied argument is coerced against its declared
// type and declared defaults fill in omitted arguments; an unsupported
// argument name or an incoercible value is fatal. Without a declaration,
// each literal converts to its natural Go value with no type checking.
func resolveArguments(d *language.Directive, decl *schema.Directive) (map[string]any, error) {
	if decl == nil {
		return convertArguments(d)
	}
	return coerceArguments(d, decl)
}

func coerceArguments(d *language.Directive, decl *schema.Directive) (map[string]any, error) {
	coerced := make(map[string]any, len(decl.Arguments))
	for _, arg := range d.Arguments {
		argDef := decl.GetArgument(arg.Name)
		if argDef == nil {
			return nil, fmt.Errorf("@%s does not declare argument %q", d.Name, arg.Name)
		}
		raw, err := convertLiteral(arg.Value)
		if err != nil {
			return nil, fmt.Errorf("@%s argument %q: %v", d.Name, arg.Name, err)
		}
		cv, err := coerceValue(raw, argDef.Type)
		if err != nil {
			return nil, fmt.Errorf("@%s argument %q: %v", d.Name, arg.Name, err)
		}
		coerced[arg.Name] = cv
	}
	for _, argDef := range decl.Arguments {
		if _, ok := coerced[argDef.Name]; ok {
			continue
		}
		if argDef.DefaultValue != nil {
			coerced[argDef.Name] = argDef.DefaultValue
		} else if schema.IsNonNull(argDef.Type) {
			return nil, fmt.Errorf("@%s argument %q of required type was not provided", d.Name, argDef.Name)
		}
	}
	return coerced, nil
}

func convertArguments(d *language.Directive) (map[string]any, error) {
	args := make(map[string]any, len(d.Arguments))
	for _, arg := range d.Arguments {
		v, err := convertLiteral(arg.Value)
		if err != nil {
			return nil, fmt.Errorf("@%s argument %q: %v", d.Name, arg.Name, err)
		}
		args[arg.Name] = v
	}
	return args, nil
}

// convertLiteral converts an AST literal to a Go value. Directive
// arguments in schema position are static literals; a variable reference
// has nothing to bind against and is an error.
func convertLiteral(value *language.Value) (any, error) {
	if value == nil {
		return nil, nil
	}
	switch value.Kind {
	case language.Variable:
		return nil, fmt.Errorf("variable $%s cannot be used in schema position", value.Raw)
	case language.IntValue:
		iv, err := strconv.Atoi(value.Raw)
		if err != nil {
			return nil, fmt.Errorf("invalid Int literal %q", value.Raw)
		}
		return iv, nil
	case language.FloatValue:
		fv, err := strconv.ParseFloat(value.Raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid Float literal %q", value.Raw)
		}
		return fv, nil
	case language.StringValue, language.BlockValue:
		return value.Raw, nil
	case language.BooleanValue:
		return value.Raw == "true", nil
	case language.NullValue:
		return nil, nil
	case language.EnumValue:
		return value.Raw, nil
	case language.ListValue:
		out := make([]any, len(value.Children))
		for i, c := range value.Children {
			cv, err := convertLiteral(c.Value)
			if err != nil {
				return nil, err
			}
			out[i] = cv
		}
		return out, nil
	case language.ObjectValue:
		m := make(map[string]any, len(value.Children))
		for _, f := range value.Children {
			fv, err := convertLiteral(f.Value)
			if err != nil {
				return nil, err
			}
			m[f.Name] = fv
		}
		return m, nil
	default:
		return nil, nil
	}
}

// coerceValue coerces a value to the specified GraphQL type
func coerceValue(value any, targetType *schema.TypeRef) (any, error) {
	// Handle Non-Null wrapper
	if schema.IsNonNull(targetType) {
		if value == nil {
			return nil, fmt.Errorf("cannot provide null for non-null type")
		}
		return coerceValue(value, schema.Unwrap(targetType))
	}

	// Handle null for nullable types
	if value == nil {
		return nil, nil
	}

	// Handle List wrapper
	if schema.IsList(targetType) {
		return coerceListValue(value, targetType)
	}

	// Get the named type for scalar coercion
	namedType := schema.GetNamedType(targetType)

	// Coerce based on target scalar type
	switch namedType {
	case "Int":
		return coerceToInt(value)
	case "Float":
		return coerceToFloat(value)
	case "String":
		return coerceToString(value)
	case "Boolean":
		return coerceToBoolean(value)
	case "ID":
		return coerceToID(value)
	default:
		// For enums, input objects and custom scalars, return as-is
		return value, nil
	}
}

// coerceListValue coerces a value to a list
func coerceListValue(value any, listType *schema.TypeRef) (any, error) {
	// If already a slice, coerce each item
	if slice, ok := value.([]any); ok {
		innerType := schema.Unwrap(listType)
		coercedSlice := make([]any, len(slice))
		for i, item := range slice {
			coercedItem, err := coerceValue(item, innerType)
			if err != nil {
				return nil, err
			}
			coercedSlice[i] = coercedItem
		}
		return coercedSlice, nil
	}

	// Single value becomes a list of one
	innerType := schema.Unwrap(listType)
	coercedItem, err := coerceValue(value, innerType)
	if err != nil {
		return nil, err
	}
	return []any{coercedItem}, nil
}

func coerceToInt(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case float32:
		return int(v), nil
	}
	return nil, fmt.Errorf("cannot coerce %v (%T) to Int", value, value)
}

func coerceToFloat(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return nil, fmt.Errorf("cannot coerce %v (%T) to Float", value, value)
}

func coerceToString(value any) (any, error) {
	if v, ok := value.(string); ok {
		return v, nil
	}
	return nil, fmt.Errorf("cannot coerce %v (%T) to String", value, value)
}

func coerceToBoolean(value any) (any, error) {
	if v, ok := value.(bool); ok {
		return v, nil
	}
	return nil, fmt.Errorf("cannot coerce %v (%T) to Boolean", value, value)
}

func coerceToID(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	default:
		return nil, fmt.Errorf("cannot coerce %v (%T) to ID", value, value)
	}
}
