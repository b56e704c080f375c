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
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/chediak/graphql-go/ast"
	"github.com/chediak/graphql-go/concurrent/future"
	"github.com/chediak/graphql-go/graphql"
)

// typenameField is the name of the meta-field that every object selection set
// implicitly exposes, answered by the enclosing object type's name rather than
// by any Field registered on the object itself (see the SPEC_FULL typename
// supplement).
const typenameField = "__typename"

// ResolveField runs a single field selection against source: it looks up the
// field on objectType, coerces its arguments, invokes its resolver, and
// presents the resolved value against the field's declared type, all chained
// through the async effect (§4.2.2 "Field resolution").
//
// A selection naming a field the object type doesn't declare resolves to null
// rather than an error — this module does not validate a query against the
// schema ahead of execution (see the Non-goals in the design notes); a
// malformed query simply reads back nulls for its unknown fields.
func ResolveField(ec *ExecutionContext, objectType *graphql.Object, source interface{}, selection *ast.Field) future.Future {
	if selection.Name == typenameField {
		return future.Ready(graphql.StringResult(objectType.TypeName()))
	}

	field := objectType.FieldByName(selection.Name)
	if field == nil {
		return future.Ready(graphql.Null)
	}

	args, err := graphql.CoerceArgumentValues(ec.Variables, field.Args, selection.Arguments)
	if err != nil {
		return future.Err(err)
	}

	resolved := resolveWithRecover(ec, field, source, args)

	return resolved.Then(func(value interface{}) (future.Future, error) {
		result, err := Present(ec, field.Type, value, selection.SelectionSet)
		if err != nil {
			return nil, err
		}
		return future.Ready(result), nil
	})
}

// resolveWithRecover invokes field's resolver, converting a recovered panic
// into an ErrKindInternal Error: a panicking resolver never crashes the server,
// it only fails the one field that triggered it, and the panic is logged (not
// part of the JSON envelope) so an operator can still find it. An error the
// resolver's future fails with is passed through unchanged.
func resolveWithRecover(ec *ExecutionContext, field *graphql.Field, source interface{}, args graphql.ArgumentValues) (result future.Future) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			logrus.WithField("field", field.Name).Warn("resolver panicked: ", err)
			result = future.Err(graphql.WrapInternalError(err))
		}
	}()

	return field.Resolve(ec.Ctx, ec.AppContext, source, args)
}
