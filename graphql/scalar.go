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

// ScalarResultCoercer serializes a resolver's result value (Src) into a Result for
// a Scalar field. It runs synchronously and produces no further effects (§4.2.3).
type ScalarResultCoercer func(value interface{}) (Result, error)

// ScalarConfig provides the definition for a Scalar type to NewScalar.
type ScalarConfig struct {
	Name        string
	Description string

	// Coerce serializes a non-nil resolver result into its Result representation.
	// It is never called with a nil value — the executor's Present maps a nil Src
	// straight to Result Null without invoking Coerce (§4.2.3's Scalar/None row).
	Coerce ScalarResultCoercer
}

// Scalar is a leaf output type whose values are serialized by a user-supplied
// coercion function.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Scalars
type Scalar struct {
	name        string
	description string
	coerce      ScalarResultCoercer
}

var (
	_ OutputType          = (*Scalar)(nil)
	_ TypeWithDescription = (*Scalar)(nil)
)

// NewScalar defines a Scalar type from a ScalarConfig.
func NewScalar(config *ScalarConfig) *Scalar {
	if config.Coerce == nil {
		panic(NewError("Scalar %q must provide Coerce.", config.Name))
	}
	return &Scalar{
		name:        config.Name,
		description: config.Description,
		coerce:      config.Coerce,
	}
}

func (*Scalar) outputType() {}

// TypeName implements OutputType.
func (s *Scalar) TypeName() string { return s.name }

// Description implements TypeWithDescription.
func (s *Scalar) Description() string { return s.description }

// CoerceResult serializes a non-nil resolver result value.
func (s *Scalar) CoerceResult(value interface{}) (Result, error) {
	return s.coerce(value)
}
