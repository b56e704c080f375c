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

package graphql

// List is a wrapping output type whose source is a sequence of the wrapped
// type's source. A nil source is null; otherwise each element is presented
// independently (§4.2.3).
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-List
type List struct {
	Of OutputType

	notation string
}

var (
	_ OutputType   = (*List)(nil)
	_ WrappingType = (*List)(nil)
)

// NewList wraps elementType in a List output type.
func NewList(elementType OutputType) *List {
	if elementType == nil {
		panic(NewError("Must provide a non-nil element type for List."))
	}
	return &List{Of: elementType, notation: "[" + elementType.TypeName() + "]"}
}

func (*List) outputType() {}

// TypeName implements OutputType.
func (l *List) TypeName() string { return l.notation }

// WrappedType implements WrappingType.
func (l *List) WrappedType() OutputType { return l.Of }
