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
	"github.com/chediak/graphql-go/ast"
	"github.com/chediak/graphql-go/concurrent/future"
	"github.com/chediak/graphql-go/graphql"
)

// ResolveFields collects objectType's selection set, starts every sibling
// field's resolution in selection order, and joins them through future.All,
// assembling the results in selection order regardless of completion order.
// A field whose resolver returns an already-settled future (as NewField's do)
// is resolved and presented inline before the next sibling starts; only
// futures that run on their own goroutine (future.Go, e.g. from a NewIOField
// resolver) overlap with their siblings. ResolveFields blocks on the combined
// future before returning.
func ResolveFields(ec *ExecutionContext, objectType *graphql.Object, source interface{}, selectionSet ast.SelectionSet) ([]graphql.ResultField, error) {
	selections := CollectFields(ec, selectionSet, objectType.TypeName())

	futures := make([]future.Future, len(selections))
	for i, selection := range selections {
		futures[i] = ResolveField(ec, objectType, source, selection)
	}

	joined := future.All(futures)
	values, err := joined.Await()
	if err != nil {
		return nil, err
	}

	results := values.([]interface{})
	fields := make([]graphql.ResultField, len(selections))
	for i, selection := range selections {
		fields[i] = graphql.ResultField{
			Name:  selection.ResponseKey(),
			Value: results[i].(graphql.Result),
		}
	}
	return fields, nil
}
