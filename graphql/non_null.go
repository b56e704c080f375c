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

// NonNull is a wrapping output type which removes the implicit outer nullability
// of the type it wraps. Enforcement happens in the executor: presenting a
// NonNull re-enters presentation of the wrapped type against the same source
// rather than checking it here (§4.2.3) — this module follows the reference
// behavior of silently producing null when a resolver violates non-nullability,
// rather than promoting the null to the nearest nullable ancestor; see the open
// questions in the design notes.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Type-System.Non-Null
type NonNull struct {
	Of OutputType

	notation string
}

var (
	_ OutputType   = (*NonNull)(nil)
	_ WrappingType = (*NonNull)(nil)
)

// NewNonNull wraps elementType, which must not itself be a NonNull, in a NonNull
// output type.
func NewNonNull(elementType OutputType) *NonNull {
	if elementType == nil {
		panic(NewError("Must provide a non-nil element type for NonNull."))
	}
	if IsNonNullType(elementType) {
		panic(NewError("Cannot nest NonNull inside NonNull: %s.", elementType.TypeName()))
	}
	return &NonNull{Of: elementType, notation: elementType.TypeName() + "!"}
}

func (*NonNull) outputType() {}

// TypeName implements OutputType.
func (n *NonNull) TypeName() string { return n.notation }

// WrappedType implements WrappingType.
func (n *NonNull) WrappedType() OutputType { return n.Of }
