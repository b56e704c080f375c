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

// This file groups the remaining constructors named in §6's external-interface
// listing ("Arg.scalar, Arg.enum, Arg.obj, Arg.list, Arg.non_null") that don't
// already have a natural struct literal form. ArgScalar/ArgEnum/ArgInputObject
// are thin aliases over the ArgType struct literals so schema authors have a
// single, consistent family of constructors to reach for instead of building
// some argument types via literal and others via function call.

// ArgScalar builds a ScalarArgType.
func ArgScalar(name string, coerce ScalarArgCoercer) *ScalarArgType {
	return &ScalarArgType{Name: name, Coerce: coerce}
}

// ArgEnum builds an EnumArgType.
func ArgEnum(name string, values []EnumArgValue) *EnumArgType {
	return &EnumArgType{Name: name, Values: values}
}

// ArgInputObject builds an InputObjectArgType.
func ArgInputObject(name string, fields []InputField, ctor InputObjectCtor) *InputObjectArgType {
	return &InputObjectArgType{Name: name, Fields: fields, Ctor: ctor}
}

// ArgList wraps of in a ListArgType.
func ArgList(of ArgType) *ListArgType {
	return &ListArgType{Of: of}
}

// ArgNonNull wraps of in a NonNullArgType. Wrapping a type that is already
// NonNullArgType is redundant but harmless; wrapping nil panics since it can
// never be satisfied.
func ArgNonNull(of ArgType) *NonNullArgType {
	if of == nil {
		panic(NewError("Must provide a non-nil argument type for NonNull."))
	}
	return &NonNullArgType{Of: of}
}
