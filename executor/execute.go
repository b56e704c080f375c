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
	"context"

	"github.com/chediak/graphql-go/ast"
	"github.com/chediak/graphql-go/concurrent/future"
	"github.com/chediak/graphql-go/graphql"
)

// ExecuteParams bundles everything a single call to Execute needs: the parsed
// document, any variable values already decoded from the request (e.g. off
// JSON), and the host-supplied AppContext threaded opaquely into every resolver
// call (§3 "Execution Context", §4.3 "Execute").
type ExecuteParams struct {
	Ctx        context.Context
	Schema     *graphql.Schema
	Document   *ast.Document
	Variables  map[string]ast.ConstValue
	AppContext interface{}
}

// Execute runs the first operation in params.Document against params.Schema and
// returns a Future for the final, enveloped Result (§4.3, §7): either
// {"data": <result>} on success or {"errors": [{"message": ...}]} on the first
// error encountered. Operation-name selection is not supported; a document
// with more than one operation always runs its first (§4.3, "Open Question:
// operation selection").
func Execute(params ExecuteParams) future.Future {
	operations := params.Document.Operations()
	if len(operations) == 0 {
		return envelope(future.Err(graphql.NewKindError(graphql.ErrKindOperation, "No operation found")))
	}

	operation := operations[0]
	switch operation.EffectiveType() {
	case ast.OperationTypeMutation:
		return envelope(future.Err(graphql.NewKindError(graphql.ErrKindOperation, "Mutation is not implemented")))
	case ast.OperationTypeSubscription:
		return envelope(future.Err(graphql.NewKindError(graphql.ErrKindOperation, "Subscription is not implemented")))
	}

	variables := params.Variables
	if variables == nil {
		variables = map[string]ast.ConstValue{}
	}

	ec := &ExecutionContext{
		Ctx:        params.Ctx,
		AppContext: params.AppContext,
		Schema:     params.Schema,
		Document:   params.Document,
		Fragments:  params.Document.Fragments(),
		Variables:  variables,
	}

	query := params.Schema.Query()

	resolved := future.Go(func() (interface{}, error) {
		fields, err := ResolveFields(ec, query, nil, operation.SelectionSet)
		if err != nil {
			return nil, err
		}
		return graphql.ObjectResult(fields), nil
	})

	return envelope(resolved)
}

// envelope wraps a Future of a raw data Result (or an error) into the
// top-level response shape described by §7: a successful future becomes
// {"data": result}; a failed one becomes {"errors": [{"message": err.Error()}]}
// with no "data" key. The error never escapes as a Go error from the returned
// Future's Await — both branches settle it into a value.
func envelope(result future.Future) future.Future {
	return future.Recover(
		future.Map(result, func(value interface{}) (interface{}, error) {
			return graphql.ObjectResult([]graphql.ResultField{
				{Name: "data", Value: value.(graphql.Result)},
			}), nil
		}),
		func(err error) (interface{}, error) {
			errs := graphql.ListResult([]graphql.Result{
				graphql.ObjectResult([]graphql.ResultField{
					{Name: "message", Value: graphql.StringResult(err.Error())},
				}),
			})
			return graphql.ObjectResult([]graphql.ResultField{
				{Name: "errors", Value: errs},
			}), nil
		},
	)
}
