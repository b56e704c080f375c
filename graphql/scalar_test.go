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
	"github.com/chediak/graphql-go/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Scalar", func() {
	It("panics when Coerce is nil", func() {
		Expect(func() {
			graphql.NewScalar(&graphql.ScalarConfig{Name: "Broken"})
		}).Should(Panic())
	})

	It("exposes its name and description", func() {
		Expect(graphql.Int.TypeName()).Should(Equal("Int"))
		Expect(graphql.String.Description()).ShouldNot(BeEmpty())
	})

	It("coerces Int from Go int/int32/int64", func() {
		for _, v := range []interface{}{int(1), int32(1), int64(1)} {
			r, err := graphql.Int.CoerceResult(v)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(r).Should(Equal(graphql.IntResult(1)))
		}
	})

	It("rejects non-integer values for Int", func() {
		_, err := graphql.Int.CoerceResult("not an int")
		Expect(err).Should(HaveOccurred())
	})

	It("coerces Float from an int value", func() {
		r, err := graphql.Float.CoerceResult(3)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(r).Should(Equal(graphql.FloatResult(3)))
	})

	It("coerces String", func() {
		r, err := graphql.String.CoerceResult("hi")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(r).Should(Equal(graphql.StringResult("hi")))
	})

	It("coerces Boolean", func() {
		r, err := graphql.Boolean.CoerceResult(true)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(r).Should(Equal(graphql.BoolResult(true)))
	})

	It("coerces ID from an int", func() {
		r, err := graphql.ID.CoerceResult(7)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(r).Should(Equal(graphql.StringResult("7")))
	})
})
