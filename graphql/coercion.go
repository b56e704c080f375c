/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

import "github.com/chediak/graphql-go/ast"

// SubstituteVariables recursively transforms a parsed Value into a ConstValue,
// replacing each Variable(name) with its entry in variables (§4.1 "Variable
// substitution"). It fails with a coercion-adjacent ErrKindVariable error if a
// referenced variable has no entry.
func SubstituteVariables(value ast.Value, variables map[string]ast.ConstValue) (ast.ConstValue, error) {
	switch value.Kind {
	case ast.KindVariable:
		cv, ok := variables[value.StringValue]
		if !ok {
			return ast.ConstValue{}, NewKindError(ErrKindVariable, "Missing variable `%s`", value.StringValue)
		}
		return cv, nil

	case ast.KindList:
		out := make([]ast.Value, len(value.ListValue))
		for i, elem := range value.ListValue {
			cv, err := SubstituteVariables(elem, variables)
			if err != nil {
				return ast.ConstValue{}, err
			}
			out[i] = cv
		}
		return ast.ConstValue{Kind: ast.KindList, ListValue: out}, nil

	case ast.KindObject:
		out := make([]ast.ObjectField, len(value.ObjectValue))
		for i, field := range value.ObjectValue {
			cv, err := SubstituteVariables(field.Value, variables)
			if err != nil {
				return ast.ConstValue{}, err
			}
			out[i] = ast.ObjectField{Name: field.Name, Value: cv}
		}
		return ast.ConstValue{Kind: ast.KindObject, ObjectValue: out}, nil

	default:
		return value, nil
	}
}

// evalArg implements the eval_arg dispatch table of §4.1. value is nil for
// "None" (the argument/field was absent after variable substitution); a non-nil
// value of Kind KindNull represents an explicit "Some Null". The second return
// indicates whether the coercion produced "Some" (true) or "None" (false); when
// it returns (nil, false, nil) the caller is responsible for applying whatever
// default adapts "None" into a concrete value (§4.1 step 3).
func evalArg(typ ArgType, value *ast.ConstValue) (interface{}, bool, error) {
	switch t := typ.(type) {
	case *NonNullArgType:
		if value == nil || value.IsNull() {
			return nil, false, NewCoercionError("Missing required argument")
		}
		coerced, ok, err := evalArg(t.Of, value)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, NewCoercionError("Missing required argument")
		}
		return coerced, true, nil

	case *ScalarArgType:
		if value == nil || value.IsNull() {
			return nil, false, nil
		}
		coerced, err := t.Coerce(*value)
		if err != nil {
			return nil, false, err
		}
		return coerced, true, nil

	case *EnumArgType:
		if value == nil || value.IsNull() {
			return nil, false, nil
		}
		switch value.Kind {
		case ast.KindEnum, ast.KindString:
			coerced, ok := t.lookup(value.StringValue)
			if !ok {
				return nil, false, NewCoercionError("Invalid enum value")
			}
			return coerced, true, nil
		default:
			return nil, false, NewCoercionError("Expected enum")
		}

	case *InputObjectArgType:
		if value == nil || value.IsNull() {
			return nil, false, nil
		}
		if value.Kind != ast.KindObject {
			return nil, false, NewCoercionError("Expected object")
		}
		props := make(map[string]interface{}, len(t.Fields))
		for _, f := range t.Fields {
			var fieldValue *ast.ConstValue
			if v, ok := ast.LookupObjectField(value.ObjectValue, f.Name); ok {
				fieldValue = &v
			}
			if fieldValue == nil && f.HasDefault {
				props[f.Name] = f.Default
				continue
			}
			coerced, ok, err := evalArg(f.Type, fieldValue)
			if err != nil {
				return nil, false, err
			}
			if !ok {
				if f.HasDefault {
					props[f.Name] = f.Default
				}
				continue
			}
			props[f.Name] = coerced
		}
		ctor, err := t.Ctor(props)
		if err != nil {
			return nil, false, err
		}
		return ctor, true, nil

	case *ListArgType:
		if value == nil || value.IsNull() {
			return nil, false, nil
		}
		if value.Kind == ast.KindList {
			result := make([]interface{}, len(value.ListValue))
			for i := range value.ListValue {
				elem := &value.ListValue[i]
				coerced, ok, err := evalArg(t.Of, elem)
				if err != nil {
					return nil, false, err
				}
				if !ok {
					coerced = nil
				}
				result[i] = coerced
			}
			return result, true, nil
		}
		// Single-value promotion: a lone value where a list is expected coerces to
		// a one-element list (§4.1, required for input-coercion compliance).
		coerced, ok, err := evalArg(t.Of, value)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return []interface{}{nil}, true, nil
		}
		return []interface{}{coerced}, true, nil
	}

	return nil, false, NewError("Unknown argument type %T", typ)
}

// CoerceArgumentValues walks args in declaration order, substituting variables
// into each supplied value and coercing it against its declared type, applying
// defaults where the value is absent, and returns the fully-applied
// ArgumentValues the resolver expects (§4.1).
func CoerceArgumentValues(variables map[string]ast.ConstValue, args []*Argument, keyValues []ast.Argument) (ArgumentValues, error) {
	if len(args) == 0 {
		return NoArgumentValues(), nil
	}

	values := make(map[string]interface{}, len(args))
	for _, arg := range args {
		var constValue *ast.ConstValue
		if raw, ok := ast.LookupArgument(keyValues, arg.Name); ok {
			cv, err := SubstituteVariables(raw, variables)
			if err != nil {
				return ArgumentValues{}, err
			}
			constValue = &cv
		}
		if constValue == nil && arg.HasDefault {
			values[arg.Name] = arg.Default
			continue
		}

		coerced, ok, err := evalArg(arg.Type, constValue)
		if err != nil {
			return ArgumentValues{}, err
		}
		if !ok {
			if arg.HasDefault {
				values[arg.Name] = arg.Default
			}
			continue
		}
		values[arg.Name] = coerced
	}

	return NewArgumentValues(values), nil
}
