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

	"github.com/chediak/graphql-go/concurrent/future"
)

// Resolver computes a field's result value (Raw) from the field's enclosing
// object (source) and its coerced argument values, lifted into the async effect
// by the Field that owns it. AppContext carries the opaque, host-supplied value
// from ExecuteParams.AppContext (§3 "Execution Context").
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#ResolveFieldValue()
type Resolver func(ctx context.Context, appContext interface{}, source interface{}, args ArgumentValues) future.Future

// Field bundles everything the executor needs to resolve one field of an Object:
// its output type, its typed argument list, and a resolver already lifted into
// the async effect (§3 "Field").
type Field struct {
	Name        string
	Description string
	Type        OutputType
	Args        []*Argument
	Resolve     Resolver

	// Deprecated, when non-empty, is the reason surfaced through introspection's
	// __Field.deprecationReason. Field-level deprecation is otherwise untracked,
	// per spec.md's non-goals.
	Deprecated string
}

// NewField builds a Field whose resolver is synchronous: fn returns a plain
// (value, error) pair, and the Field lifts it into the effect with
// future.Ready/future.Err. This is the "pure field" convenience constructor from
// §3 ("a pure field where lift returns immediately").
func NewField(name string, typ OutputType, args []*Argument, fn func(ctx context.Context, appContext interface{}, source interface{}, args ArgumentValues) (interface{}, error)) *Field {
	return &Field{
		Name: name,
		Type: typ,
		Args: args,
		Resolve: func(ctx context.Context, appContext interface{}, source interface{}, args ArgumentValues) future.Future {
			value, err := fn(ctx, appContext, source, args)
			if err != nil {
				return future.Err(err)
			}
			return future.Ready(value)
		},
	}
}

// NewIOField builds a Field whose resolver itself produces an async effect: fn
// returns a future.Future directly, and the Field's lift is the identity. This is
// the "effectful field" convenience constructor from §3 ("an effectful field
// where the resolver itself returns an effect and lift is the identity").
func NewIOField(name string, typ OutputType, args []*Argument, fn func(ctx context.Context, appContext interface{}, source interface{}, args ArgumentValues) future.Future) *Field {
	return &Field{
		Name:    name,
		Type:    typ,
		Args:    args,
		Resolve: Resolver(fn),
	}
}
