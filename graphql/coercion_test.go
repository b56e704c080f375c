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
	"github.com/chediak/graphql-go/ast"
	"github.com/chediak/graphql-go/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("SubstituteVariables", func() {
	It("replaces a top-level variable reference", func() {
		vars := map[string]ast.ConstValue{"x": {Kind: ast.KindInt, IntValue: 42}}
		cv, err := graphql.SubstituteVariables(ast.Value{Kind: ast.KindVariable, StringValue: "x"}, vars)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(cv).Should(Equal(ast.ConstValue{Kind: ast.KindInt, IntValue: 42}))
	})

	It("errors on a reference to a missing variable", func() {
		_, err := graphql.SubstituteVariables(ast.Value{Kind: ast.KindVariable, StringValue: "missing"}, nil)
		Expect(err).Should(HaveOccurred())
	})

	It("recurses into list and object values", func() {
		vars := map[string]ast.ConstValue{"y": {Kind: ast.KindString, StringValue: "hi"}}
		value := ast.Value{
			Kind: ast.KindList,
			ListValue: []ast.Value{
				{Kind: ast.KindVariable, StringValue: "y"},
				{Kind: ast.KindInt, IntValue: 1},
			},
		}
		cv, err := graphql.SubstituteVariables(value, vars)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(cv.ListValue[0]).Should(Equal(ast.ConstValue{Kind: ast.KindString, StringValue: "hi"}))
	})
})

var _ = Describe("CoerceArgumentValues", func() {
	It("applies a default when an argument is absent", func() {
		args := []*graphql.Argument{
			graphql.NewArgumentWithDefault("limit", graphql.Arg.Int, 10),
		}
		values, err := graphql.CoerceArgumentValues(nil, args, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(values.Get("limit")).Should(Equal(10))
	})

	It("errors when a required argument is missing", func() {
		args := []*graphql.Argument{
			graphql.NewArgument("id", graphql.ArgNonNull(graphql.Arg.String)),
		}
		_, err := graphql.CoerceArgumentValues(nil, args, nil)
		Expect(err).Should(HaveOccurred())
	})

	It("coerces a supplied literal", func() {
		args := []*graphql.Argument{
			graphql.NewArgument("name", graphql.Arg.String),
		}
		keyValues := []ast.Argument{
			{Name: "name", Value: ast.Value{Kind: ast.KindString, StringValue: "Ada"}},
		}
		values, err := graphql.CoerceArgumentValues(nil, args, keyValues)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(values.Get("name")).Should(Equal("Ada"))
	})

	It("promotes a single value to a one-element list", func() {
		args := []*graphql.Argument{
			graphql.NewArgument("tags", graphql.ArgList(graphql.Arg.String)),
		}
		keyValues := []ast.Argument{
			{Name: "tags", Value: ast.Value{Kind: ast.KindString, StringValue: "a"}},
		}
		values, err := graphql.CoerceArgumentValues(nil, args, keyValues)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(values.Get("tags")).Should(Equal([]interface{}{"a"}))
	})

	It("substitutes a variable before coercing", func() {
		args := []*graphql.Argument{
			graphql.NewArgument("count", graphql.ArgNonNull(graphql.Arg.Int)),
		}
		keyValues := []ast.Argument{
			{Name: "count", Value: ast.Value{Kind: ast.KindVariable, StringValue: "n"}},
		}
		vars := map[string]ast.ConstValue{"n": {Kind: ast.KindInt, IntValue: 3}}
		values, err := graphql.CoerceArgumentValues(vars, args, keyValues)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(values.Get("count")).Should(Equal(3))
	})

	It("coerces an enum argument by literal name", func() {
		color := graphql.ArgEnum("Color", []graphql.EnumArgValue{
			{Name: "RED", Value: "red"},
		})
		args := []*graphql.Argument{graphql.NewArgument("color", color)}
		keyValues := []ast.Argument{
			{Name: "color", Value: ast.Value{Kind: ast.KindEnum, StringValue: "RED"}},
		}
		values, err := graphql.CoerceArgumentValues(nil, args, keyValues)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(values.Get("color")).Should(Equal("red"))
	})

	It("coerces an input object argument, applying nested defaults", func() {
		point := graphql.ArgInputObject("Point", []graphql.InputField{
			{Name: "x", Type: graphql.ArgNonNull(graphql.Arg.Int)},
			{Name: "y", Type: graphql.ArgNonNull(graphql.Arg.Int), HasDefault: true, Default: 0},
		}, func(fields map[string]interface{}) (interface{}, error) {
			return fields, nil
		})
		args := []*graphql.Argument{graphql.NewArgument("at", point)}
		keyValues := []ast.Argument{
			{Name: "at", Value: ast.Value{
				Kind: ast.KindObject,
				ObjectValue: []ast.ObjectField{
					{Name: "x", Value: ast.Value{Kind: ast.KindInt, IntValue: 5}},
				},
			}},
		}
		values, err := graphql.CoerceArgumentValues(nil, args, keyValues)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(values.Get("at")).Should(Equal(map[string]interface{}{"x": 5, "y": 0}))
	})
})
