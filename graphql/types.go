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

// Package graphql is the schema construction API and the type algebra that the
// executor walks. It realizes the recursive output type family T<Ctx, Src>
// (Scalar / Enum / Object / List / NonNull) from the design notes' §3 Data Model,
// erased to Go's interface{} for Src per the note in §9 ("Heterogeneous argument
// lists", option (a)): Ctx is simply Go's context.Context plus an opaque
// AppContext value, and Src is interface{}.
package graphql

// OutputType is the recursive family of types that may appear as the type of a
// field's result: Scalar, Enum, Object, List, and NonNull. Every variant except
// NonNull is nullable by construction (§3 "Output type nullability").
type OutputType interface {
	// TypeName returns the GraphQL type name. List and NonNull compute theirs from
	// their wrapped type ("[Int]", "String!"); the other variants return the name
	// they were declared with.
	TypeName() string

	outputType()
}

// TypeWithDescription is implemented by the OutputType variants that carry a
// description for introspection (Scalar, Enum, Object); List and NonNull do not.
type TypeWithDescription interface {
	Description() string
}

// NamedType is implemented by the OutputType variants with their own declared
// name, as opposed to List/NonNull whose name is derived from what they wrap.
// Introspection's type-graph walk (§4.4) keys on this to decide which types get
// registered once by name.
type NamedType interface {
	OutputType
	TypeWithDescription
}

// SchemaType is anything Schema.TypeMap() can register by name: every NamedType
// (Scalar/Enum/Object) as well as *InputObjectArgType, the one ArgType variant
// with its own declared name. OutputType and ArgType are otherwise disjoint
// families (§4.4's AnyTyp erasure), but both sides need a single map so
// __schema.types and __type(name:) can see input object types too.
type SchemaType interface {
	TypeName() string
}

// WrappingType is implemented by the OutputType variants that wrap another type:
// List and NonNull.
type WrappingType interface {
	OutputType
	WrappedType() OutputType
}

// IsNonNullType reports whether t is a *NonNull.
func IsNonNullType(t OutputType) bool {
	_, ok := t.(*NonNull)
	return ok
}

// NullableType strips a single NonNull wrapper from t, if present.
func NullableType(t OutputType) OutputType {
	if n, ok := t.(*NonNull); ok {
		return n.Of
	}
	return t
}
