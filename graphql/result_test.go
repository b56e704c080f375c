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

package graphql_test

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"

	"github.com/chediak/graphql-go/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Result", func() {
	It("marshals an object tree preserving field order", func() {
		result := graphql.ObjectResult([]graphql.ResultField{
			{Name: "b", Value: graphql.IntResult(2)},
			{Name: "a", Value: graphql.IntResult(1)},
		})
		bytes, err := result.MarshalJSON()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(bytes)).Should(Equal(`{"b":2,"a":1}`))
	})

	It("diffs deeply equal result trees as equal under go-cmp", func() {
		left := graphql.ListResult([]graphql.Result{graphql.StringResult("x"), graphql.Null})
		right := graphql.ListResult([]graphql.Result{graphql.StringResult("x"), graphql.Null})

		diff := cmp.Diff(left, right)
		if diff != "" {
			// spew.Sdump renders the full tree for a human to read when a structural
			// mismatch needs more context than go-cmp's one-line diff gives.
			Fail("unexpected diff, trees were:\n" + spew.Sdump(left, right) + "\ndiff:\n" + diff)
		}
	})

	It("reports a structural difference through go-cmp", func() {
		left := graphql.IntResult(1)
		right := graphql.IntResult(2)
		Expect(cmp.Diff(left, right)).ShouldNot(BeEmpty())
	})
})
