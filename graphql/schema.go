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

import "sync"

// RootTypeName is the fixed name given to a schema's query root object, per §6
// ("constructs a schema whose query root is named root").
const RootTypeName = "root"

// Schema is an immutable description of the types, fields, and arguments a
// server accepts, plus the synthetic introspection fields the executor exposes
// on the query root.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Schema
type Schema struct {
	query *Object

	typeMapOnce sync.Once
	typeMap     map[string]SchemaType
}

// SchemaConfig provides the definition for a Schema to NewSchema.
type SchemaConfig struct {
	// Query is the root object exposing the server's read operations. Its fields
	// are joined with the synthetic __schema/__type introspection fields (§4.4)
	// to form the schema's actual query root. __typename is not a field of the
	// root; the executor answers it on every object.
	Query *Object
}

// NewSchema builds a Schema whose query root is named "root" and augmented with
// the introspection meta-fields (§4.4, §6).
func NewSchema(config *SchemaConfig) *Schema {
	schema := &Schema{}

	userQuery := config.Query
	schema.query = NewObject(&ObjectConfig{
		Name:        RootTypeName,
		Description: userQuery.Description(),
		Fields: func(self *Object) []*Field {
			fields := append([]*Field{}, userQuery.Fields()...)
			fields = append(fields, metaFields(schema)...)
			return fields
		},
	})

	return schema
}

// Query returns the schema's (introspection-augmented) query root.
func (s *Schema) Query() *Object {
	return s.query
}

// TypeMap enumerates the named types reachable from the query root (the root
// itself included) by recursing into every field's output type and every
// argument's argument type, keyed by name and visited at most once. Every
// named output type is registered. Of the argument types, only input objects
// are registered (both satisfy SchemaType), so an input object used only as an
// argument type still shows up in __schema.types and answers __type(name:);
// scalar and enum argument types are not registered.
// It is memoized after the first call, consistent with a schema being
// immutable once built.
func (s *Schema) TypeMap() map[string]SchemaType {
	s.typeMapOnce.Do(func() {
		acc := map[string]SchemaType{}
		visited := map[string]bool{}
		walkOutputType(s.query, acc, visited)
		s.typeMap = acc
	})
	return s.typeMap
}

func walkOutputType(t OutputType, acc map[string]SchemaType, visited map[string]bool) {
	switch typ := t.(type) {
	case *List:
		walkOutputType(typ.Of, acc, visited)
	case *NonNull:
		walkOutputType(typ.Of, acc, visited)
	case *Scalar:
		visitNamed(typ, acc, visited)
	case *Enum:
		visitNamed(typ, acc, visited)
	case *Object:
		if !visitNamed(typ, acc, visited) {
			return
		}
		for _, f := range typ.Fields() {
			walkOutputType(f.Type, acc, visited)
			for _, a := range f.Args {
				walkArgType(a.Type, acc, visited)
			}
		}
	}
}

func walkArgType(t ArgType, acc map[string]SchemaType, visited map[string]bool) {
	switch typ := t.(type) {
	case *ListArgType:
		walkArgType(typ.Of, acc, visited)
	case *NonNullArgType:
		walkArgType(typ.Of, acc, visited)
	case *ScalarArgType:
		// Scalar and enum argument types are not registered in the type map.
		// Their names still show up through __InputValue.type in introspection
		// without being an entry here.
	case *EnumArgType:
	case *InputObjectArgType:
		if visited[typ.Name] {
			return
		}
		visited[typ.Name] = true
		acc[typ.Name] = typ
		for _, f := range typ.Fields {
			walkArgType(f.Type, acc, visited)
		}
	}
}

func visitNamed(t NamedType, acc map[string]SchemaType, visited map[string]bool) bool {
	name := t.TypeName()
	if visited[name] {
		return false
	}
	visited[name] = true
	acc[name] = t
	return true
}
