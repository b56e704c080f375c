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

import "reflect"

// EnumValue is one member of an Enum type: the Go value a resolver may return
// (Src) paired with the label it's serialized as.
type EnumValue struct {
	// Value is compared against a resolver's result with reflect.DeepEqual to
	// select Name. The design notes (§3 "Enum value equality") leave the equality
	// definition to the implementer; DeepEqual is used here so values need not be
	// comparable with == (e.g. they may be structs containing slices).
	Value interface{}
	Name  string

	Description string
}

// EnumConfig provides the definition for an Enum type to NewEnum.
type EnumConfig struct {
	Name        string
	Description string
	Values      []EnumValue
}

// Enum is a leaf output type whose values are drawn from a fixed set of named
// members.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Enums
type Enum struct {
	name        string
	description string
	values      []EnumValue
}

var (
	_ OutputType          = (*Enum)(nil)
	_ TypeWithDescription = (*Enum)(nil)
)

// NewEnum defines an Enum type from an EnumConfig.
func NewEnum(config *EnumConfig) *Enum {
	return &Enum{
		name:        config.Name,
		description: config.Description,
		values:      config.Values,
	}
}

func (*Enum) outputType() {}

// TypeName implements OutputType.
func (e *Enum) TypeName() string { return e.name }

// Description implements TypeWithDescription.
func (e *Enum) Description() string { return e.description }

// Values returns the enum's members, in declaration order.
func (e *Enum) Values() []EnumValue { return e.values }

// Label finds the member whose Value matches value and returns its Name. The
// design notes flag invalid enum source values (a resolver returning a value
// absent from the enum's members) as an open question — the reference behavior
// produces a silent null rather than an error, which is what ok=false signals
// here (§4.2.3, §9).
func (e *Enum) Label(value interface{}) (name string, ok bool) {
	for _, v := range e.values {
		if reflect.DeepEqual(v.Value, value) {
			return v.Name, true
		}
	}
	return "", false
}
