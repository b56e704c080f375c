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

// FieldsThunk builds the field list of an Object. It receives the Object under
// construction so a field's type or resolver may reference the object itself,
// which is what makes cyclic schemas (e.g. a "User" with a "friends: [User!]!"
// field) representable at all (§9 "Recursive schemas").
type FieldsThunk func(self *Object) []*Field

// ObjectConfig provides the definition for an Object type to NewObject.
type ObjectConfig struct {
	Name        string
	Description string

	// Fields is evaluated at most once, the first time the object's fields are
	// needed during execution, and memoized thereafter (§3 "lazy field list ...
	// evaluated at most once per execution").
	Fields FieldsThunk
}

// Object is an output type describing a set of named, typed fields, each with its
// own resolver.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Objects
type Object struct {
	name        string
	description string

	fieldsOnce  sync.Once
	fieldsThunk FieldsThunk
	fields      []*Field
	fieldIndex  map[string]*Field
}

var (
	_ OutputType          = (*Object)(nil)
	_ TypeWithDescription = (*Object)(nil)
)

// NewObject defines an Object type from an ObjectConfig. The fields thunk is not
// invoked until the object's fields are first requested, which permits the thunk
// to close over the returned *Object for self-reference.
func NewObject(config *ObjectConfig) *Object {
	return &Object{
		name:        config.Name,
		description: config.Description,
		fieldsThunk: config.Fields,
	}
}

func (*Object) outputType() {}

// TypeName implements OutputType.
func (o *Object) TypeName() string { return o.name }

// Description implements TypeWithDescription.
func (o *Object) Description() string { return o.description }

// Fields forces and memoizes the object's field list (§3, §9 "atomic one-shot
// initialization is sufficient because schemas are immutable after
// construction").
func (o *Object) Fields() []*Field {
	o.fieldsOnce.Do(func() {
		if o.fieldsThunk != nil {
			o.fields = o.fieldsThunk(o)
		}
		index := make(map[string]*Field, len(o.fields))
		for _, f := range o.fields {
			// Field-name uniqueness is expected but not enforced (§3); the first
			// match for a name wins on lookup, so a later duplicate is simply
			// shadowed in the index and unreachable by FieldByName.
			if _, exists := index[f.Name]; !exists {
				index[f.Name] = f
			}
		}
		o.fieldIndex = index
	})
	return o.fields
}

// FieldByName returns the field with the given name, or nil if the object has no
// such field. A missing field is not an error at this layer — the executor
// resolves it to a JSON null (§4.2.2, permissive mode).
func (o *Object) FieldByName(name string) *Field {
	o.Fields()
	return o.fieldIndex[name]
}
