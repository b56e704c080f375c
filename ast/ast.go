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

// Package ast defines the query-document data model that a host-supplied parser
// produces and that this module's executor consumes. The parser itself — turning
// GraphQL source text into these types — is an external collaborator and is not
// part of this package; see the PURPOSE & SCOPE section of the design notes.
package ast

// ValueKind discriminates the variant held by a Value.
type ValueKind uint8

// Enumeration of ValueKind.
const (
	KindNull ValueKind = iota
	KindInt
	KindFloat
	KindString
	KindBoolean
	KindEnum
	KindVariable
	KindList
	KindObject
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBoolean:
		return "Boolean"
	case KindEnum:
		return "Enum"
	case KindVariable:
		return "Variable"
	case KindList:
		return "List"
	case KindObject:
		return "Object"
	}
	return "Unknown"
}

// ObjectField is a single name/value pair within a Value of KindObject.
type ObjectField struct {
	Name  string
	Value Value
}

// Value is the value grammar a parsed query may contain: the literal forms a query
// document can spell, plus Variable references.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#Value
type Value struct {
	Kind ValueKind

	// IntValue holds the parsed integer for KindInt.
	IntValue int64

	// FloatValue holds the parsed float for KindFloat.
	FloatValue float64

	// StringValue holds the payload for KindString (the string contents), KindEnum
	// (the enum value's name) and KindVariable (the variable's name, without "$").
	StringValue string

	// BoolValue holds the parsed boolean for KindBoolean.
	BoolValue bool

	// ListValue holds the elements for KindList.
	ListValue []Value

	// ObjectValue holds the fields for KindObject.
	ObjectValue []ObjectField
}

// ConstValue is a Value that is known not to contain KindVariable anywhere in its
// tree. The coercion phase produces ConstValue by substituting variables into a
// Value (see graphql.SubstituteVariables); nothing in this package enforces the
// invariant beyond that call path, so callers constructing a ConstValue by hand must
// not use KindVariable.
type ConstValue = Value

// Null is the ConstValue for a JSON/GraphQL null.
var Null = ConstValue{Kind: KindNull}

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// Interface renders v as a plain Go value, mirroring the shape a JSON decoder would
// produce. It is primarily useful for error messages and tests; the executor itself
// dispatches on Kind directly rather than going through this conversion.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindNull:
		return nil
	case KindInt:
		return v.IntValue
	case KindFloat:
		return v.FloatValue
	case KindString, KindEnum:
		return v.StringValue
	case KindBoolean:
		return v.BoolValue
	case KindVariable:
		return "$" + v.StringValue
	case KindList:
		out := make([]interface{}, len(v.ListValue))
		for i, elem := range v.ListValue {
			out[i] = elem.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]interface{}, len(v.ObjectValue))
		for _, f := range v.ObjectValue {
			out[f.Name] = f.Value.Interface()
		}
		return out
	}
	return nil
}

// LookupObjectField returns the value of the named field in an ObjectValue and
// whether it was present.
func LookupObjectField(fields []ObjectField, name string) (Value, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}
