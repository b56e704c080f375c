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

// Package executor implements the Query Executor: it walks a parsed operation
// against a Schema, resolving and presenting each field into an ordered Result
// tree (the design notes' §4 "Query Execution").
package executor

import (
	"context"

	"github.com/chediak/graphql-go/ast"
	"github.com/chediak/graphql-go/graphql"
)

// ExecutionContext bundles the values every step of a single operation's
// execution needs to read: the parsed document, the variables already coerced
// from the request, the schema being executed against, and the caller's
// context/app-context pair threaded through every resolver call (§3 "Execution
// Context").
type ExecutionContext struct {
	Ctx         context.Context
	AppContext  interface{}
	Schema      *graphql.Schema
	Document    *ast.Document
	Fragments   map[string]*ast.FragmentDefinition
	Variables   map[string]ast.ConstValue
}

// lookupFragment returns the named fragment definition, or nil if the document
// defines no such fragment (a reference to an undefined fragment is silently
// skipped rather than treated as an execution error, consistent with this
// module not performing request validation ahead of execution; see the
// Non-goals in the design notes).
func (ec *ExecutionContext) lookupFragment(name string) *ast.FragmentDefinition {
	return ec.Fragments[name]
}
