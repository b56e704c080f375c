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
	"context"

	"github.com/chediak/graphql-go/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Introspection", func() {
	It("resolves __schema to the schema itself", func() {
		schema := buildTestSchema()
		field := schema.Query().FieldByName("__schema")
		value, err := field.Resolve(context.Background(), nil, nil, graphql.NoArgumentValues()).Await()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(BeIdenticalTo(schema))
	})

	It("finds a named type through __type", func() {
		schema := buildTestSchema()
		field := schema.Query().FieldByName("__type")
		args := graphql.NewArgumentValues(map[string]interface{}{"name": "Widget"})
		value, err := field.Resolve(context.Background(), nil, nil, args).Await()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).ShouldNot(BeNil())
	})

	It("resolves to nil for an unknown type name", func() {
		schema := buildTestSchema()
		field := schema.Query().FieldByName("__type")
		args := graphql.NewArgumentValues(map[string]interface{}{"name": "Nonexistent"})
		value, err := field.Resolve(context.Background(), nil, nil, args).Await()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(BeNil())
	})
})
