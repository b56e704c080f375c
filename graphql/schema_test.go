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

func buildTestSchema() *graphql.Schema {
	widget := graphql.NewObject(&graphql.ObjectConfig{
		Name: "Widget",
		Fields: func(self *graphql.Object) []*graphql.Field {
			return []*graphql.Field{
				graphql.NewField("id", graphql.NewNonNull(graphql.ID), nil, func(_ context.Context, _ interface{}, src interface{}, _ graphql.ArgumentValues) (interface{}, error) {
					return "1", nil
				}),
			}
		},
	})

	query := graphql.NewObject(&graphql.ObjectConfig{
		Name: "Query",
		Fields: func(self *graphql.Object) []*graphql.Field {
			return []*graphql.Field{
				graphql.NewField("widget", widget, nil, func(_ context.Context, _ interface{}, _ interface{}, _ graphql.ArgumentValues) (interface{}, error) {
					return struct{}{}, nil
				}),
			}
		},
	})

	return graphql.NewSchema(&graphql.SchemaConfig{Query: query})
}

var _ = Describe("Schema", func() {
	It("names its query root \"root\"", func() {
		schema := buildTestSchema()
		Expect(schema.Query().TypeName()).Should(Equal(graphql.RootTypeName))
	})

	It("joins the introspection meta-fields onto the query root", func() {
		schema := buildTestSchema()
		Expect(schema.Query().FieldByName("__schema")).ShouldNot(BeNil())
		Expect(schema.Query().FieldByName("__type")).ShouldNot(BeNil())
		Expect(schema.Query().FieldByName("widget")).ShouldNot(BeNil())
	})

	It("walks the type graph reachable from the query root", func() {
		schema := buildTestSchema()
		types := schema.TypeMap()
		Expect(types).Should(HaveKey("Widget"))
		Expect(types).Should(HaveKey("ID"))
		Expect(types).Should(HaveKey("root"))
	})

	It("registers an input object argument type reachable only through an argument", func() {
		point := graphql.ArgInputObject("Point", []graphql.InputField{
			{Name: "x", Type: graphql.ArgNonNull(graphql.Arg.Int)},
		}, func(fields map[string]interface{}) (interface{}, error) {
			return fields, nil
		})

		query := graphql.NewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: func(self *graphql.Object) []*graphql.Field {
				return []*graphql.Field{
					graphql.NewField("locate", graphql.String,
						[]*graphql.Argument{graphql.NewArgument("at", point)},
						func(_ context.Context, _ interface{}, _ interface{}, _ graphql.ArgumentValues) (interface{}, error) {
							return "", nil
						}),
				}
			},
		})

		schema := graphql.NewSchema(&graphql.SchemaConfig{Query: query})
		Expect(schema.TypeMap()).Should(HaveKey("Point"))
	})

	It("memoizes the type map across calls", func() {
		schema := buildTestSchema()
		first := schema.TypeMap()
		first["Injected"] = nil
		Expect(schema.TypeMap()).Should(HaveKey("Injected"))
	})
})
