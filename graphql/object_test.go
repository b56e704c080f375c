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

var _ = Describe("Object", func() {
	var thunkCalls int

	newPerson := func() *graphql.Object {
		thunkCalls = 0
		var person *graphql.Object
		person = graphql.NewObject(&graphql.ObjectConfig{
			Name: "Person",
			Fields: func(self *graphql.Object) []*graphql.Field {
				thunkCalls++
				return []*graphql.Field{
					graphql.NewField("name", graphql.String, nil, func(_ context.Context, _ interface{}, _ interface{}, _ graphql.ArgumentValues) (interface{}, error) {
						return "Ada", nil
					}),
					// Self-reference through the `person` variable the thunk closes over,
					// exercising the cyclic-schema support the lazy Fields thunk exists for.
					graphql.NewField("bestFriend", person, nil, func(_ context.Context, _ interface{}, _ interface{}, _ graphql.ArgumentValues) (interface{}, error) {
						return nil, nil
					}),
				}
			},
		})
		return person
	}

	It("evaluates the fields thunk at most once", func() {
		person := newPerson()
		person.Fields()
		person.Fields()
		person.FieldByName("name")
		Expect(thunkCalls).Should(Equal(1))
	})

	It("finds a field by name", func() {
		person := newPerson()
		Expect(person.FieldByName("name")).ShouldNot(BeNil())
	})

	It("returns nil, not an error, for an unknown field", func() {
		person := newPerson()
		Expect(person.FieldByName("nonexistent")).Should(BeNil())
	})

	It("supports a field typed as the object it belongs to", func() {
		person := newPerson()
		friend := person.FieldByName("bestFriend")
		Expect(friend.Type).Should(BeIdenticalTo(person))
	})
})
