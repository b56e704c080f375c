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

// ArgumentValues is the fully-coerced, fully-applied argument tuple a resolver
// receives: the erasure of the spec's statically curried AL<R, F> chain down to a
// dynamic, name-addressed map (§9, "option (a)"). It is immutable once built by
// the coercion engine.
type ArgumentValues struct {
	values map[string]interface{}
}

var noArgumentValues = ArgumentValues{values: map[string]interface{}{}}

// NoArgumentValues is the empty ArgumentValues, used for fields with no declared
// arguments.
func NoArgumentValues() ArgumentValues { return noArgumentValues }

// NewArgumentValues builds an ArgumentValues from a fully-coerced map.
func NewArgumentValues(values map[string]interface{}) ArgumentValues {
	if len(values) == 0 {
		return noArgumentValues
	}
	return ArgumentValues{values: values}
}

// Get returns the coerced value for name, or nil if there is no argument by that
// name (which is indistinguishable from an explicit null — use Lookup to tell
// the two apart).
func (args ArgumentValues) Get(name string) interface{} {
	return args.values[name]
}

// Lookup returns the coerced value for name and whether an entry exists for it
// at all (as opposed to existing with a nil/null value).
func (args ArgumentValues) Lookup(name string) (value interface{}, ok bool) {
	value, ok = args.values[name]
	return
}
