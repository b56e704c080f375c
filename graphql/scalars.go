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

import (
	"math"

	"github.com/google/uuid"

	"github.com/chediak/graphql-go/ast"
)

// The built-in output scalars. Each coerces a Go value of the listed type:
//
//	Int     -> int64
//	Float   -> float64
//	String  -> string
//	Boolean -> bool
//	ID      -> string (see GUID for the UUID-flavored variant)
var (
	Int = NewScalar(&ScalarConfig{
		Name:        "Int",
		Description: "The Int scalar type represents a signed 32-bit numeric non-fractional value.",
		Coerce: func(value interface{}) (Result, error) {
			switch v := value.(type) {
			case int:
				return IntResult(int64(v)), nil
			case int32:
				return IntResult(int64(v)), nil
			case int64:
				return IntResult(v), nil
			}
			return Null, NewCoercionError("Int cannot represent non-integer value: %v", value)
		},
	})

	Float = NewScalar(&ScalarConfig{
		Name:        "Float",
		Description: "The Float scalar type represents signed double-precision fractional values.",
		Coerce: func(value interface{}) (Result, error) {
			switch v := value.(type) {
			case float32:
				return FloatResult(float64(v)), nil
			case float64:
				return FloatResult(v), nil
			case int:
				return FloatResult(float64(v)), nil
			case int64:
				return FloatResult(float64(v)), nil
			}
			return Null, NewCoercionError("Float cannot represent non-numeric value: %v", value)
		},
	})

	String = NewScalar(&ScalarConfig{
		Name:        "String",
		Description: "The String scalar type represents textual data, represented as UTF-8 character sequences.",
		Coerce: func(value interface{}) (Result, error) {
			v, ok := value.(string)
			if !ok {
				return Null, NewCoercionError("String cannot represent a non string value: %v", value)
			}
			return StringResult(v), nil
		},
	})

	Boolean = NewScalar(&ScalarConfig{
		Name:        "Boolean",
		Description: "The Boolean scalar type represents true or false.",
		Coerce: func(value interface{}) (Result, error) {
			v, ok := value.(bool)
			if !ok {
				return Null, NewCoercionError("Boolean cannot represent a non boolean value: %v", value)
			}
			return BoolResult(v), nil
		},
	})

	ID = NewScalar(&ScalarConfig{
		Name:        "ID",
		Description: "The ID scalar type represents a unique identifier, serialized as a String.",
		Coerce: func(value interface{}) (Result, error) {
			switch v := value.(type) {
			case string:
				return StringResult(v), nil
			case int:
				return StringResult(Itoa(int64(v))), nil
			case int64:
				return StringResult(Itoa(v)), nil
			case uuid.UUID:
				return StringResult(v.String()), nil
			}
			return Null, NewCoercionError("ID cannot represent value: %v", value)
		},
	})
)

// Itoa renders an int64 as a decimal string, used by the ID scalar's coercer.
func Itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Arg holds the built-in argument type constructors, mirroring §6's
// "Arg.scalar, Arg.enum, Arg.obj, Arg.list, Arg.non_null, built-ins
// int/string/float/bool/guid".
var Arg = struct {
	Int     *ScalarArgType
	String  *ScalarArgType
	Float   *ScalarArgType
	Boolean *ScalarArgType
	Guid    *ScalarArgType
}{
	Int: &ScalarArgType{
		Name: "Int",
		Coerce: func(value ast.ConstValue) (interface{}, error) {
			switch value.Kind {
			case ast.KindInt:
				if value.IntValue > math.MaxInt32 || value.IntValue < math.MinInt32 {
					return nil, NewCoercionError("Int cannot represent value outside 32-bit signed range: %d", value.IntValue)
				}
				return int(value.IntValue), nil
			}
			return nil, NewCoercionError("Int cannot represent non-integer value")
		},
	},
	String: &ScalarArgType{
		Name: "String",
		Coerce: func(value ast.ConstValue) (interface{}, error) {
			if value.Kind != ast.KindString {
				return nil, NewCoercionError("String cannot represent a non string value")
			}
			return value.StringValue, nil
		},
	},
	Float: &ScalarArgType{
		Name: "Float",
		Coerce: func(value ast.ConstValue) (interface{}, error) {
			switch value.Kind {
			case ast.KindFloat:
				return value.FloatValue, nil
			case ast.KindInt:
				return float64(value.IntValue), nil
			}
			return nil, NewCoercionError("Float cannot represent non-numeric value")
		},
	},
	Boolean: &ScalarArgType{
		Name: "Boolean",
		Coerce: func(value ast.ConstValue) (interface{}, error) {
			if value.Kind != ast.KindBoolean {
				return nil, NewCoercionError("Boolean cannot represent a non boolean value")
			}
			return value.BoolValue, nil
		},
	},

	// Guid is the built-in `guid` argument type from §6: it parses a string
	// literal with github.com/google/uuid and hands the resolver a uuid.UUID,
	// rather than leaving UUID validation to the resolver the way the plain ID
	// scalar does.
	Guid: &ScalarArgType{
		Name: "GUID",
		Coerce: func(value ast.ConstValue) (interface{}, error) {
			if value.Kind != ast.KindString {
				return nil, NewCoercionError("GUID cannot represent a non string value")
			}
			id, err := uuid.Parse(value.StringValue)
			if err != nil {
				return nil, NewCoercionError("GUID cannot represent an invalid UUID: %s", value.StringValue)
			}
			return id, nil
		},
	},
}

// GUID is the output-side counterpart to Arg.Guid: a scalar that serializes a
// uuid.UUID (or a string already in canonical form) as its string
// representation.
var GUID = NewScalar(&ScalarConfig{
	Name:        "GUID",
	Description: "A universally unique identifier, serialized in its canonical string form.",
	Coerce: func(value interface{}) (Result, error) {
		switch v := value.(type) {
		case uuid.UUID:
			return StringResult(v.String()), nil
		case string:
			if _, err := uuid.Parse(v); err != nil {
				return Null, NewCoercionError("GUID cannot represent an invalid UUID: %s", v)
			}
			return StringResult(v), nil
		}
		return Null, NewCoercionError("GUID cannot represent value: %v", value)
	},
})
