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
	"context"
	"fmt"

	"github.com/chediak/graphql-go/concurrent/future"
)

// This file builds the self-hosting introspection meta-schema described in
// §4.4: __Schema, __Type, __Field, __InputValue, __EnumValue, __Directive, and
// __TypeKind, wired so that `{ __schema { ... } }` can describe a Schema
// (including these very meta-types) using the same Object/Field/Scalar/Enum
// machinery every other type in the module uses.
//
// Output types (*Scalar, *Enum, *Object, *List, *NonNull) and argument types
// (*ScalarArgType, *EnumArgType, *InputObjectArgType, *ListArgType,
// *NonNullArgType) are two disjoint families with no common Go interface,
// mirroring the AnyTyp erasure §4.4 calls for over Typ<RTE> and AT<R,K>. typeRef
// wraps whichever family a given introspection site actually has so __Type's
// fields can project either uniformly.
type typeRef struct {
	out OutputType
	arg ArgType
}

func outRef(t OutputType) typeRef { return typeRef{out: t} }
func argRef(t ArgType) typeRef    { return typeRef{arg: t} }

func (r typeRef) name() string {
	switch {
	case r.out != nil:
		if n, ok := r.out.(NamedType); ok {
			return n.TypeName()
		}
		return ""
	case r.arg != nil:
		switch t := r.arg.(type) {
		case *ScalarArgType:
			return t.Name
		case *EnumArgType:
			return t.Name
		case *InputObjectArgType:
			return t.Name
		}
		return ""
	}
	return ""
}

func (r typeRef) description() string {
	if r.out != nil {
		if d, ok := r.out.(TypeWithDescription); ok {
			return d.Description()
		}
	}
	return ""
}

func (r typeRef) kind() string {
	switch {
	case r.out != nil:
		switch r.out.(type) {
		case *Scalar:
			return "SCALAR"
		case *Enum:
			return "ENUM"
		case *Object:
			return "OBJECT"
		case *List:
			return "LIST"
		case *NonNull:
			return "NON_NULL"
		}
	case r.arg != nil:
		switch r.arg.(type) {
		case *ScalarArgType:
			return "SCALAR"
		case *EnumArgType:
			return "ENUM"
		case *InputObjectArgType:
			return "INPUT_OBJECT"
		case *ListArgType:
			return "LIST"
		case *NonNullArgType:
			return "NON_NULL"
		}
	}
	return "SCALAR"
}

func (r typeRef) ofType() (typeRef, bool) {
	switch {
	case r.out != nil:
		switch t := r.out.(type) {
		case *List:
			return outRef(t.Of), true
		case *NonNull:
			return outRef(t.Of), true
		}
	case r.arg != nil:
		switch t := r.arg.(type) {
		case *ListArgType:
			return argRef(t.Of), true
		case *NonNullArgType:
			return argRef(t.Of), true
		}
	}
	return typeRef{}, false
}

// fields lists the __Field entries of an object type's own output fields; it is
// nil for every other kind, which __Type.fields presents as null (interfaces
// never occur here, per §4.4).
func (r typeRef) fields() []*Field {
	obj, ok := r.out.(*Object)
	if !ok {
		return nil
	}
	return obj.Fields()
}

func (r typeRef) inputFields() []InputField {
	if obj, ok := r.arg.(*InputObjectArgType); ok {
		return obj.Fields
	}
	return nil
}

func (r typeRef) enumValues() []EnumValue {
	switch t := r.out.(type) {
	case *Enum:
		return t.Values()
	}
	if t, ok := r.arg.(*EnumArgType); ok {
		out := make([]EnumValue, len(t.Values))
		for i, v := range t.Values {
			out[i] = EnumValue{Name: v.Name, Value: v.Value}
		}
		return out
	}
	return nil
}

// introspectionTypes lazily builds the meta-schema's own Object/Enum
// definitions. They close over nothing schema-specific (unlike __Schema's
// fields, whose Src is always a concrete *Schema), so one instance is shared by
// every schema a process builds.
type introspectionTypes struct {
	typeKind    *Enum
	inputValue  *Object
	enumValue   *Object
	field       *Object
	typ         *Object
	directive   *Object
	schema      *Object
}

var introspection = buildIntrospectionTypes()

func buildIntrospectionTypes() *introspectionTypes {
	t := &introspectionTypes{}

	t.typeKind = NewEnum(&EnumConfig{
		Name:        "__TypeKind",
		Description: "An enum describing what kind of type a given `__Type` is.",
		Values: []EnumValue{
			{Name: "SCALAR", Value: "SCALAR", Description: "Indicates this type is a scalar."},
			{Name: "OBJECT", Value: "OBJECT", Description: "Indicates this type is an object. `fields` and `interfaces` are valid fields."},
			{Name: "INTERFACE", Value: "INTERFACE", Description: "Indicates this type is an interface. `fields`, `interfaces`, and `possibleTypes` are valid fields."},
			{Name: "UNION", Value: "UNION", Description: "Indicates this type is a union. `possibleTypes` is a valid field."},
			{Name: "ENUM", Value: "ENUM", Description: "Indicates this type is an enum. `enumValues` is a valid field."},
			{Name: "INPUT_OBJECT", Value: "INPUT_OBJECT", Description: "Indicates this type is an input object. `inputFields` is a valid field."},
			{Name: "LIST", Value: "LIST", Description: "Indicates this type is a list. `ofType` is a valid field."},
			{Name: "NON_NULL", Value: "NON_NULL", Description: "Indicates this type is a non-null. `ofType` is a valid field."},
		},
	})

	t.inputValue = NewObject(&ObjectConfig{
		Name:        "__InputValue",
		Description: "Arguments provided to Fields or Directives and the input fields of an InputObject are represented as Input Values which describe their type and optionally a default value.",
		Fields: func(self *Object) []*Field {
			return []*Field{
				NewField("name", NewNonNull(String), nil, inputValueName),
				NewField("description", String, nil, inputValueDescription),
				NewField("type", NewNonNull(t.typ), nil, inputValueType),
				NewField("defaultValue", String, nil, inputValueDefaultValue),
			}
		},
	})

	t.enumValue = NewObject(&ObjectConfig{
		Name:        "__EnumValue",
		Description: "One possible value for a given Enum. Enum values are unique values, not a placeholder for a string or numeric value. However, an Enum value is returned in a response in string form.",
		Fields: func(self *Object) []*Field {
			return []*Field{
				NewField("name", NewNonNull(String), nil, enumValueName),
				NewField("description", String, nil, enumValueDescription),
				NewField("isDeprecated", NewNonNull(Boolean), nil, func(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
					return false, nil
				}),
				NewField("deprecationReason", String, nil, func(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
					return nil, nil
				}),
			}
		},
	})

	t.field = NewObject(&ObjectConfig{
		Name:        "__Field",
		Description: "Object and Interface types are described by a list of Fields, each of which has a name, potentially a list of arguments, and a return type.",
		Fields: func(self *Object) []*Field {
			return []*Field{
				NewField("name", NewNonNull(String), nil, fieldName),
				NewField("description", String, nil, fieldDescription),
				NewField("args", NewNonNull(NewList(NewNonNull(t.inputValue))), nil, fieldArgs),
				NewField("type", NewNonNull(t.typ), nil, fieldType),
				NewField("isDeprecated", NewNonNull(Boolean), nil, fieldIsDeprecated),
				NewField("deprecationReason", String, nil, fieldDeprecationReason),
			}
		},
	})

	t.typ = NewObject(&ObjectConfig{
		Name:        "__Type",
		Description: "The fundamental unit of any GraphQL Schema is the type. There are many kinds of types in GraphQL as represented by the `__TypeKind` enum.",
		Fields: func(self *Object) []*Field {
			return []*Field{
				NewField("kind", NewNonNull(t.typeKind), nil, typeKindField),
				NewField("name", String, nil, typeNameField),
				NewField("description", String, nil, typeDescriptionField),
				NewField("fields", NewList(NewNonNull(t.field)), []*Argument{
					NewArgumentWithDefault("includeDeprecated", ArgNonNull(Arg.Boolean), false),
				}, typeFieldsField),
				NewField("interfaces", NewList(NewNonNull(t.typ)), nil, typeInterfacesField),
				NewField("possibleTypes", NewList(NewNonNull(t.typ)), nil, typePossibleTypesField),
				NewField("enumValues", NewList(NewNonNull(t.enumValue)), []*Argument{
					NewArgumentWithDefault("includeDeprecated", ArgNonNull(Arg.Boolean), false),
				}, typeEnumValuesField),
				NewField("inputFields", NewList(NewNonNull(t.inputValue)), nil, typeInputFieldsField),
				NewField("ofType", t.typ, nil, typeOfTypeField),
			}
		},
	})

	t.directive = NewObject(&ObjectConfig{
		Name:        "__Directive",
		Description: "A Directive provides a way to describe alternate runtime execution and type validation behavior in a GraphQL document.",
		Fields: func(self *Object) []*Field {
			return []*Field{
				NewField("name", NewNonNull(String), nil, directiveName),
				NewField("description", String, nil, directiveDescription),
				NewField("locations", NewNonNull(NewList(NewNonNull(String))), nil, directiveLocations),
				NewField("args", NewNonNull(NewList(NewNonNull(t.inputValue))), nil, directiveArgs),
			}
		},
	})

	t.schema = NewObject(&ObjectConfig{
		Name:        "__Schema",
		Description: "A GraphQL Schema defines the capabilities of a GraphQL server. It exposes all available types and directives on the server, as well as the entry points for query and mutation operations.",
		Fields: func(self *Object) []*Field {
			return []*Field{
				NewField("types", NewNonNull(NewList(NewNonNull(t.typ))), nil, schemaTypes),
				NewField("queryType", NewNonNull(t.typ), nil, schemaQueryType),
				NewField("mutationType", t.typ, nil, schemaMutationType),
				NewField("subscriptionType", t.typ, nil, schemaSubscriptionType),
				NewField("directives", NewNonNull(NewList(NewNonNull(t.directive))), nil, schemaDirectives),
			}
		},
	})

	return t
}

// --- __InputValue ---

func inputValueName(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
	return src.(InputField).Name, nil
}

func inputValueDescription(_ context.Context, _ interface{}, _ interface{}, _ ArgumentValues) (interface{}, error) {
	return nil, nil
}

func inputValueType(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
	return argRef(src.(InputField).Type), nil
}

func inputValueDefaultValue(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
	f := src.(InputField)
	if !f.HasDefault {
		return nil, nil
	}
	return fmt.Sprintf("%v", f.Default), nil
}

// --- __EnumValue ---

func enumValueName(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
	return src.(EnumValue).Name, nil
}

func enumValueDescription(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
	return src.(EnumValue).Description, nil
}

// --- __Field ---

func fieldName(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
	return src.(*Field).Name, nil
}

func fieldDescription(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
	return src.(*Field).Description, nil
}

func fieldArgs(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
	// __InputValue's resolvers are shared between field arguments and input object
	// fields, so an *Argument is normalized to the same InputField shape here.
	args := src.(*Field).Args
	out := make([]InputField, len(args))
	for i, a := range args {
		out[i] = InputField{Name: a.Name, Type: a.Type, HasDefault: a.HasDefault, Default: a.Default}
	}
	return out, nil
}

func fieldType(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
	return outRef(src.(*Field).Type), nil
}

func fieldIsDeprecated(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
	return src.(*Field).Deprecated != "", nil
}

func fieldDeprecationReason(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
	f := src.(*Field)
	if f.Deprecated == "" {
		return nil, nil
	}
	return f.Deprecated, nil
}

// --- __Type ---

func asTypeRef(src interface{}) typeRef {
	switch v := src.(type) {
	case typeRef:
		return v
	case OutputType:
		return outRef(v)
	case ArgType:
		return argRef(v)
	}
	panic(NewError("__Type resolved against an unexpected source %T", src))
}

func typeKindField(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
	return asTypeRef(src).kind(), nil
}

func typeNameField(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
	name := asTypeRef(src).name()
	if name == "" {
		return nil, nil
	}
	return name, nil
}

func typeDescriptionField(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
	return asTypeRef(src).description(), nil
}

func typeFieldsField(_ context.Context, _ interface{}, src interface{}, args ArgumentValues) (interface{}, error) {
	r := asTypeRef(src)
	if r.kind() != "OBJECT" {
		return nil, nil
	}
	return r.fields(), nil
}

func typeInterfacesField(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
	if asTypeRef(src).kind() != "OBJECT" {
		return nil, nil
	}
	// Interface types are out of scope (§ Non-goals); every object implements none.
	return []typeRef{}, nil
}

func typePossibleTypesField(_ context.Context, _ interface{}, _ interface{}, _ ArgumentValues) (interface{}, error) {
	// Interfaces/unions never occur, so there is never a set of possible types.
	return nil, nil
}

func typeEnumValuesField(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
	r := asTypeRef(src)
	if r.kind() != "ENUM" {
		return nil, nil
	}
	return r.enumValues(), nil
}

func typeInputFieldsField(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
	r := asTypeRef(src)
	if r.kind() != "INPUT_OBJECT" {
		return nil, nil
	}
	return r.inputFields(), nil
}

func typeOfTypeField(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
	of, ok := asTypeRef(src).ofType()
	if !ok {
		return nil, nil
	}
	return of, nil
}

// --- __Directive ---
//
// No directives (@skip/@include or custom) are implemented, consistent with
// directive handling being out of scope; `directives` is always empty and this
// Object exists purely so __Schema.directives type-checks against a server that
// later grows directive support.

func directiveName(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
	return src.(string), nil
}

func directiveDescription(_ context.Context, _ interface{}, _ interface{}, _ ArgumentValues) (interface{}, error) {
	return nil, nil
}

func directiveLocations(_ context.Context, _ interface{}, _ interface{}, _ ArgumentValues) (interface{}, error) {
	return []string{}, nil
}

func directiveArgs(_ context.Context, _ interface{}, _ interface{}, _ ArgumentValues) (interface{}, error) {
	return []InputField{}, nil
}

// --- __Schema ---

func schemaTypes(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
	schema := src.(*Schema)
	typeMap := schema.TypeMap()
	refs := make([]typeRef, 0, len(typeMap))
	for _, t := range typeMap {
		refs = append(refs, schemaTypeRef(t))
	}
	return refs, nil
}

// schemaTypeRef wraps a Schema.TypeMap() entry as a typeRef, dispatching on
// which of the two disjoint families (OutputType or ArgType) it actually is.
func schemaTypeRef(t SchemaType) typeRef {
	switch v := t.(type) {
	case OutputType:
		return outRef(v)
	case ArgType:
		return argRef(v)
	}
	return typeRef{}
}

func schemaQueryType(_ context.Context, _ interface{}, src interface{}, _ ArgumentValues) (interface{}, error) {
	return outRef(src.(*Schema).Query()), nil
}

func schemaMutationType(_ context.Context, _ interface{}, _ interface{}, _ ArgumentValues) (interface{}, error) {
	// Mutations are rejected by the executor (§4.3); there is never a mutation root.
	return nil, nil
}

func schemaSubscriptionType(_ context.Context, _ interface{}, _ interface{}, _ ArgumentValues) (interface{}, error) {
	return nil, nil
}

func schemaDirectives(_ context.Context, _ interface{}, _ interface{}, _ ArgumentValues) (interface{}, error) {
	return []string{}, nil
}

// metaFields returns the synthetic root-level introspection fields (§4.4,
// "__schema" plus the "__type" supplement grounded on the teacher's
// meta_fields.go) that NewSchema joins onto the user's query root.
func metaFields(schema *Schema) []*Field {
	return []*Field{
		{
			Name:        "__schema",
			Description: "Access the current type schema of this server.",
			Type:        NewNonNull(introspection.schema),
			Resolve: func(_ context.Context, _ interface{}, _ interface{}, _ ArgumentValues) future.Future {
				return future.Ready(schema)
			},
		},
		{
			Name:        "__type",
			Description: "Request the type information of a single type.",
			Type:        introspection.typ,
			Args: []*Argument{
				NewArgument("name", ArgNonNull(Arg.String)),
			},
			Resolve: func(_ context.Context, _ interface{}, _ interface{}, args ArgumentValues) future.Future {
				name := args.Get("name").(string)
				if named, ok := schema.TypeMap()[name]; ok {
					return future.Ready(schemaTypeRef(named))
				}
				return future.Ready(nil)
			},
		},
	}
}
