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

package executor_test

import (
	"context"

	"github.com/chediak/graphql-go/ast"
	"github.com/chediak/graphql-go/executor"
	"github.com/chediak/graphql-go/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type person struct {
	name    string
	friends []*person
}

func buildSchema() *graphql.Schema {
	var personType *graphql.Object
	personType = graphql.NewObject(&graphql.ObjectConfig{
		Name: "Person",
		Fields: func(self *graphql.Object) []*graphql.Field {
			return []*graphql.Field{
				graphql.NewField("name", graphql.NewNonNull(graphql.String), nil,
					func(_ context.Context, _ interface{}, src interface{}, _ graphql.ArgumentValues) (interface{}, error) {
						return src.(*person).name, nil
					}),
				graphql.NewField("friends", graphql.NewList(personType), nil,
					func(_ context.Context, _ interface{}, src interface{}, _ graphql.ArgumentValues) (interface{}, error) {
						return src.(*person).friends, nil
					}),
			}
		},
	})

	query := graphql.NewObject(&graphql.ObjectConfig{
		Name: "Query",
		Fields: func(self *graphql.Object) []*graphql.Field {
			return []*graphql.Field{
				graphql.NewField("hello", graphql.String, nil,
					func(_ context.Context, _ interface{}, _ interface{}, _ graphql.ArgumentValues) (interface{}, error) {
						return "world", nil
					}),
				graphql.NewField("greet", graphql.NewNonNull(graphql.String),
					[]*graphql.Argument{graphql.NewArgument("name", graphql.ArgNonNull(graphql.Arg.String))},
					func(_ context.Context, _ interface{}, _ interface{}, args graphql.ArgumentValues) (interface{}, error) {
						return "hello, " + args.Get("name").(string), nil
					}),
				graphql.NewField("numbers", graphql.NewList(graphql.NewNonNull(graphql.Int)), nil,
					func(_ context.Context, _ interface{}, _ interface{}, _ graphql.ArgumentValues) (interface{}, error) {
						return []int{1, 2, 3}, nil
					}),
				graphql.NewField("me", personType, nil,
					func(_ context.Context, _ interface{}, _ interface{}, _ graphql.ArgumentValues) (interface{}, error) {
						return &person{name: "Ada", friends: []*person{{name: "Alan"}}}, nil
					}),
			}
		},
	})

	return graphql.NewSchema(&graphql.SchemaConfig{Query: query})
}

func document(selections ...ast.Selection) *ast.Document {
	return &ast.Document{
		Definitions: []ast.Definition{
			&ast.OperationDefinition{Type: ast.OperationTypeQuery, SelectionSet: selections},
		},
	}
}

func field(name string, sub ...ast.Selection) *ast.Field {
	return &ast.Field{Name: name, SelectionSet: sub}
}

func run(schema *graphql.Schema, doc *ast.Document, variables map[string]ast.ConstValue) (graphql.Result, error) {
	f := executor.Execute(executor.ExecuteParams{
		Ctx:       context.Background(),
		Schema:    schema,
		Document:  doc,
		Variables: variables,
	})
	value, err := f.Await()
	return value.(graphql.Result), err
}

func objField(r graphql.Result, name string) (graphql.Result, bool) {
	for _, f := range r.ObjectValue {
		if f.Name == name {
			return f.Value, true
		}
	}
	return graphql.Null, false
}

var _ = Describe("Execute", func() {
	It("runs a trivial hello-world query", func() {
		schema := buildSchema()
		doc := document(field("hello"))
		result, err := run(schema, doc, nil)
		Expect(err).ShouldNot(HaveOccurred())

		data, ok := objField(result, "data")
		Expect(ok).Should(BeTrue())
		hello, _ := objField(data, "hello")
		Expect(hello).Should(Equal(graphql.StringResult("world")))
	})

	It("coerces an argument supplied through a variable", func() {
		schema := buildSchema()
		greet := &ast.Field{
			Name: "greet",
			Arguments: []ast.Argument{
				{Name: "name", Value: ast.Value{Kind: ast.KindVariable, StringValue: "who"}},
			},
		}
		doc := document(greet)
		result, err := run(schema, doc, map[string]ast.ConstValue{
			"who": {Kind: ast.KindString, StringValue: "Ada"},
		})
		Expect(err).ShouldNot(HaveOccurred())

		data, _ := objField(result, "data")
		greeted, _ := objField(data, "greet")
		Expect(greeted).Should(Equal(graphql.StringResult("hello, Ada")))
	})

	It("reports a missing variable as a top-level error, not a panic", func() {
		schema := buildSchema()
		greet := &ast.Field{
			Name: "greet",
			Arguments: []ast.Argument{
				{Name: "name", Value: ast.Value{Kind: ast.KindVariable, StringValue: "missing"}},
			},
		}
		doc := document(greet)
		result, err := run(schema, doc, nil)
		Expect(err).ShouldNot(HaveOccurred())

		_, hasData := objField(result, "data")
		Expect(hasData).Should(BeFalse())
		errs, ok := objField(result, "errors")
		Expect(ok).Should(BeTrue())
		Expect(errs.ListValue).Should(HaveLen(1))
	})

	It("resolves nested fields and aliases", func() {
		schema := buildSchema()
		aliasedName := &ast.Field{Alias: "myName", Name: "name"}
		me := field("me", aliasedName, field("friends", field("name")))
		doc := document(me)
		result, err := run(schema, doc, nil)
		Expect(err).ShouldNot(HaveOccurred())

		data, _ := objField(result, "data")
		me2, _ := objField(data, "me")
		myName, _ := objField(me2, "myName")
		Expect(myName).Should(Equal(graphql.StringResult("Ada")))

		friends, _ := objField(me2, "friends")
		Expect(friends.ListValue).Should(HaveLen(1))
		friendName, _ := objField(friends.ListValue[0], "name")
		Expect(friendName).Should(Equal(graphql.StringResult("Alan")))
	})

	It("presents a list field element by element", func() {
		schema := buildSchema()
		doc := document(field("numbers"))
		result, err := run(schema, doc, nil)
		Expect(err).ShouldNot(HaveOccurred())

		data, _ := objField(result, "data")
		numbers, _ := objField(data, "numbers")
		Expect(numbers.ListValue).Should(Equal([]graphql.Result{
			graphql.IntResult(1), graphql.IntResult(2), graphql.IntResult(3),
		}))
	})

	It("refuses to execute a mutation operation", func() {
		schema := buildSchema()
		doc := &ast.Document{
			Definitions: []ast.Definition{
				&ast.OperationDefinition{Type: ast.OperationTypeMutation, SelectionSet: ast.SelectionSet{field("hello")}},
			},
		}
		result, err := run(schema, doc, nil)
		Expect(err).ShouldNot(HaveOccurred())

		_, hasData := objField(result, "data")
		Expect(hasData).Should(BeFalse())
		errs, ok := objField(result, "errors")
		Expect(ok).Should(BeTrue())
		Expect(errs.ListValue).Should(HaveLen(1))
		message, _ := objField(errs.ListValue[0], "message")
		Expect(message).Should(Equal(graphql.StringResult("Mutation is not implemented")))
	})

	It("answers __typename without a resolver being declared for it", func() {
		schema := buildSchema()
		doc := document(field("me", field("__typename")))
		result, err := run(schema, doc, nil)
		Expect(err).ShouldNot(HaveOccurred())

		data, _ := objField(result, "data")
		me, _ := objField(data, "me")
		typename, _ := objField(me, "__typename")
		Expect(typename).Should(Equal(graphql.StringResult("Person")))
	})
})
