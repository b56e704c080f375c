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

// ArgType is the recursive family of types that may describe a field argument or
// an input object field: AT<R, K> from §3, erased so that K (the resolver
// signature fragment an argument contributes) disappears and only the coercion
// behavior (ScalarArgType/EnumArgType/InputObjectArgType/ListArgType/NonNullArgType)
// remains.
type ArgType interface {
	argType()
}

// ScalarArgCoercer parses a parsed-query ConstValue into the Go value (B) a
// resolver will receive for a scalar argument.
type ScalarArgCoercer func(value ast.ConstValue) (interface{}, error)

// ScalarArgType is a leaf argument type that parses its value directly off the
// query AST (as opposed to going through JSON decoding first).
type ScalarArgType struct {
	Name   string
	Coerce ScalarArgCoercer
}

func (*ScalarArgType) argType() {}

// EnumArgValue pairs an accepted literal spelling with the Go value a resolver
// receives when that spelling is used.
type EnumArgValue struct {
	Name  string
	Value interface{}
}

// EnumArgType is a leaf argument type accepting one of a fixed set of named
// values.
type EnumArgType struct {
	Name   string
	Values []EnumArgValue
}

func (*EnumArgType) argType() {}

func (e *EnumArgType) lookup(name string) (interface{}, bool) {
	for _, v := range e.Values {
		if v.Name == name {
			return v.Value, true
		}
	}
	return nil, false
}

// InputField is one field of an InputObjectArgType: AL<B, Ctor> flattened to an
// ordered, name-addressed list per the erasure in §9.
type InputField struct {
	Name string
	Type ArgType

	// HasDefault/Default mirror Argument's default handling (§3 "Argument"): when
	// the field is absent (or explicitly null against a nullable type), Default is
	// used in its place if HasDefault is set, otherwise the field is omitted (nil).
	HasDefault bool
	Default    interface{}
}

// InputObjectCtor assembles the coerced field values (already defaulted) into
// whatever Go value (B) a resolver expects for this input object argument.
type InputObjectCtor func(fields map[string]interface{}) (interface{}, error)

// InputObjectArgType is an argument type whose value is itself an object of
// named, typed fields.
type InputObjectArgType struct {
	Name   string
	Fields []InputField
	Ctor   InputObjectCtor
}

func (*InputObjectArgType) argType() {}

// TypeName returns the input object's declared name, satisfying SchemaType so
// Schema.TypeMap() can register it alongside the output-side NamedType family.
func (t *InputObjectArgType) TypeName() string { return t.Name }

// ListArgType is an argument type whose value is a sequence of Of. A single
// value supplied where a list is expected is promoted to a one-element list
// during coercion (§4.1, "List singleton promotion").
type ListArgType struct {
	Of ArgType
}

func (*ListArgType) argType() {}

// NonNullArgType is an argument type that forbids an absent or explicitly-null
// value; violating it is always a "Missing required argument" coercion error
// (§4.1).
type NonNullArgType struct {
	Of ArgType
}

func (*NonNullArgType) argType() {}

// Argument is one entry of a field's (or input object's) typed argument list:
// AL<R, F>'s Cons cell, erased to a plain slice element (§3 "Argument List").
type Argument struct {
	Name        string
	Description string
	Type        ArgType

	// HasDefault/Default behave exactly as InputField's: used in place of an
	// absent or null value, per the adapter described in §3 ("Argument").
	HasDefault bool
	Default    interface{}
}

// NewArgument builds an argument with no default value. It is required only
// when typ is a NonNullArgType.
func NewArgument(name string, typ ArgType) *Argument {
	return &Argument{Name: name, Type: typ}
}

// NewArgumentWithDefault builds an argument with a default value substituted
// when the query omits it (or supplies an explicit null against a nullable
// type).
func NewArgumentWithDefault(name string, typ ArgType, def interface{}) *Argument {
	return &Argument{Name: name, Type: typ, HasDefault: true, Default: def}
}

// IsRequiredArgument reports whether a value must be supplied for arg to
// execute: it wraps a NonNullArgType and carries no default.
func IsRequiredArgument(arg *Argument) bool {
	_, nonNull := arg.Type.(*NonNullArgType)
	return nonNull && !arg.HasDefault
}
