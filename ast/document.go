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

package ast

// OperationType is the kind of root operation a query document defines.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Language.Operations
type OperationType string

// Enumeration of OperationType.
const (
	OperationTypeQuery        OperationType = "query"
	OperationTypeMutation     OperationType = "mutation"
	OperationTypeSubscription OperationType = "subscription"
)

// Argument is a single name/value pair supplied to a field in a query document.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#Argument
type Argument struct {
	Name  string
	Value Value
}

// LookupArgument returns the value given to the named argument in a field's
// argument list, and whether it was present.
func LookupArgument(args []Argument, name string) (Value, bool) {
	for _, a := range args {
		if a.Name == name {
			return a.Value, true
		}
	}
	return Value{}, false
}

// Selection is one entry of a SelectionSet: a field, a named fragment spread, or an
// inline fragment.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#Selection
type Selection interface {
	selectionNode()
}

// SelectionSet is the braced list of selections following a query node.
type SelectionSet []Selection

// Field is a single field selection, with an optional alias and its own nested
// selection set.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#Field
type Field struct {
	// Alias is the response key to use in place of Name, if given.
	Alias string

	// Name is the field name as declared on the schema's object type.
	Name string

	Arguments    []Argument
	SelectionSet SelectionSet
}

func (*Field) selectionNode() {}

// ResponseKey is the key under which this field's value appears in the response:
// the alias if given, the field name otherwise.
func (f *Field) ResponseKey() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// FragmentSpread references a named fragment defined elsewhere in the document.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#FragmentSpread
type FragmentSpread struct {
	Name string
}

func (*FragmentSpread) selectionNode() {}

// InlineFragment applies a selection set conditionally on the runtime type of the
// enclosing selection, or unconditionally when TypeCondition is empty.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#InlineFragment
type InlineFragment struct {
	TypeCondition string
	SelectionSet  SelectionSet
}

func (*InlineFragment) selectionNode() {}

// HasTypeCondition reports whether the inline fragment restricts to a named type.
func (f *InlineFragment) HasTypeCondition() bool {
	return f.TypeCondition != ""
}

// Definition is a top-level entry of a Document: either an operation or a fragment.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#Definition
type Definition interface {
	definitionNode()
}

// OperationDefinition is an executable operation: a query, mutation, or
// subscription.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#OperationDefinition
type OperationDefinition struct {
	// Type is the operation's kind. The zero value is treated as
	// OperationTypeQuery, matching the query-shorthand form "{ field }".
	Type OperationType

	// Name is the operation's name, if given. Operation-name selection is not
	// supported by Execute; only the first operation in a document ever runs (see
	// §4.3 of the design notes).
	Name string

	SelectionSet SelectionSet
}

func (*OperationDefinition) definitionNode() {}

// EffectiveType returns d.Type, defaulting to OperationTypeQuery for the
// query-shorthand form.
func (d *OperationDefinition) EffectiveType() OperationType {
	if d.Type == "" {
		return OperationTypeQuery
	}
	return d.Type
}

// FragmentDefinition is a named, reusable selection set scoped to a type
// condition.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#FragmentDefinition
type FragmentDefinition struct {
	Name          string
	TypeCondition string
	SelectionSet  SelectionSet
}

func (*FragmentDefinition) definitionNode() {}

// Document is a complete parsed query document.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#Document
type Document struct {
	Definitions []Definition
}

// Operations returns every OperationDefinition in the document, in source order.
func (d Document) Operations() []*OperationDefinition {
	var ops []*OperationDefinition
	for _, def := range d.Definitions {
		if op, ok := def.(*OperationDefinition); ok {
			ops = append(ops, op)
		}
	}
	return ops
}

// Fragments indexes every FragmentDefinition in the document by name.
func (d Document) Fragments() map[string]*FragmentDefinition {
	fragments := make(map[string]*FragmentDefinition)
	for _, def := range d.Definitions {
		if frag, ok := def.(*FragmentDefinition); ok {
			fragments[frag.Name] = frag
		}
	}
	return fragments
}
