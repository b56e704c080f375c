/**
 * Copyright (c) 2019, The Artemis Authors.
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

package executor

import (
	"reflect"

	"github.com/chediak/graphql-go/ast"
	"github.com/chediak/graphql-go/graphql"
)

// Present converts a resolved Go value (Raw) into a Result tree according to
// typ, recursing into list elements and object subselections as needed (§4.2.3
// "Presentation"). It is synchronous: an Object value is presented by calling
// ResolveFields, which resolves the subselection (whose resolvers may suspend)
// and waits for it before returning.
func Present(ec *ExecutionContext, typ graphql.OutputType, value interface{}, selectionSet ast.SelectionSet) (graphql.Result, error) {
	if nn, ok := typ.(*graphql.NonNull); ok {
		if value == nil {
			// Reference behavior (documented on NonNull): a NonNull violation
			// resolves to a silent null rather than propagating an error to the
			// nearest nullable ancestor.
			return graphql.Null, nil
		}
		return Present(ec, nn.Of, value, selectionSet)
	}

	if value == nil {
		return graphql.Null, nil
	}

	switch t := typ.(type) {
	case *graphql.Scalar:
		return t.CoerceResult(value)

	case *graphql.Enum:
		label, ok := t.Label(value)
		if !ok {
			// Reference behavior (documented on Enum.Label): a resolver value with
			// no matching member resolves to a silent null.
			return graphql.Null, nil
		}
		return graphql.StringResult(label), nil

	case *graphql.List:
		return presentList(ec, t, value, selectionSet)

	case *graphql.Object:
		fields, err := ResolveFields(ec, t, value, selectionSet)
		if err != nil {
			return graphql.Null, err
		}
		return graphql.ObjectResult(fields), nil
	}

	return graphql.Null, graphql.NewError("Unknown output type %T", typ)
}

// presentList iterates value's elements with reflection rather than requiring a
// concrete []interface{}, since resolvers (and especially introspection's own
// fields) naturally return typed slices such as []*graphql.Field or
// []graphql.EnumValue.
func presentList(ec *ExecutionContext, list *graphql.List, value interface{}, selectionSet ast.SelectionSet) (graphql.Result, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return graphql.Null, graphql.NewError("Expected a list-like value for %s, got %T", list.TypeName(), value)
	}

	n := rv.Len()
	elements := make([]graphql.Result, n)
	for i := 0; i < n; i++ {
		elem := rv.Index(i).Interface()
		result, err := Present(ec, list.Of, elem, selectionSet)
		if err != nil {
			return graphql.Null, err
		}
		elements[i] = result
	}
	return graphql.ListResult(elements), nil
}
