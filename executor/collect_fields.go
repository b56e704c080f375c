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

import "github.com/chediak/graphql-go/ast"

// CollectFields flattens a selection set into the ordered list of concrete
// field selections it denotes against typeName, inlining fragment spreads and
// inline fragments whose type condition matches (or is absent) along the way
// (§4.2.1 "Fragment collection").
//
// Two fields with the same response key are NOT merged: they appear as two
// separate entries here, each resolved and written independently, so a
// duplicate response key in the query produces a duplicate key in the response
// object (the design notes' open question on response-key duplicates is
// resolved in favor of this simpler, literal behavior rather than field-merging
// across fragments).
//
// Directives (@skip/@include or otherwise) are not evaluated; every selection
// is collected unconditionally, consistent with directive execution being out
// of scope.
func CollectFields(ec *ExecutionContext, selectionSet ast.SelectionSet, typeName string) []*ast.Field {
	var fields []*ast.Field

	// A selection set is walked with an explicit stack rather than recursive
	// calls so that deeply nested fragment spreads don't grow the Go call stack
	// one frame per nesting level.
	type frame struct {
		selections   []ast.Selection
		index        int
		fromFragment string // non-empty if these selections came from spreading this fragment
	}
	stack := []frame{{selections: selectionSet}}

	// onPath tracks fragment names open along the current root-to-frame chain,
	// guarding only against a fragment spreading itself (directly or through a
	// cycle). It is not a set of everything ever visited: the same fragment
	// spread twice as siblings (`{ ...Frag ...Frag }`) is not a cycle, and each
	// spread must still expand on its own, per this function's own duplicate
	// response-key behavior.
	onPath := map[string]bool{}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.index >= len(top.selections) {
			if top.fromFragment != "" {
				onPath[top.fromFragment] = false
			}
			stack = stack[:len(stack)-1]
			continue
		}
		selection := top.selections[top.index]
		top.index++

		switch sel := selection.(type) {
		case *ast.Field:
			fields = append(fields, sel)

		case *ast.InlineFragment:
			if sel.HasTypeCondition() && sel.TypeCondition != typeName {
				continue
			}
			stack = append(stack, frame{selections: sel.SelectionSet})

		case *ast.FragmentSpread:
			if onPath[sel.Name] {
				continue
			}
			fragment := ec.lookupFragment(sel.Name)
			if fragment == nil {
				continue
			}
			if fragment.TypeCondition != "" && fragment.TypeCondition != typeName {
				continue
			}
			onPath[sel.Name] = true
			stack = append(stack, frame{selections: fragment.SelectionSet, fromFragment: sel.Name})
		}
	}

	return fields
}
