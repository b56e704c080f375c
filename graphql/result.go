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

import (
	jsoniter "github.com/json-iterator/go"
)

// resultJSON is the jsoniter configuration used to marshal Result trees. It's
// configured compatible with encoding/json so a host that also uses
// encoding/json-shaped tooling against the bytes we emit sees the same output.
var resultJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// ResultKind discriminates the variant held by a Result.
type ResultKind uint8

// Enumeration of ResultKind.
const (
	ResultNull ResultKind = iota
	ResultInt
	ResultFloat
	ResultString
	ResultBoolean
	ResultList
	ResultObject
)

// ResultField is a single name/value pair within a Result of ResultObject, kept in
// the order fields were resolved. Preserving this order — rather than delegating to
// a Go map, whose iteration order is unspecified — is what makes response-key
// ordering (§5, §8 "Alias binding") observable in the serialized output.
type ResultField struct {
	Name  string
	Value Result
}

// Result is the JSON value tree the executor assembles for a single operation: the
// "JSON" type referenced throughout §4 and §6. It is deliberately a closed,
// ordered tree rather than interface{}/map[string]interface{}, because GraphQL
// response objects must serialize fields in selection order (duplicates included;
// see the fragment-collection design note on response-key duplicates).
type Result struct {
	Kind ResultKind

	IntValue    int64
	FloatValue  float64
	StringValue string
	BoolValue   bool
	ListValue   []Result
	ObjectValue []ResultField
}

// Null is the JSON null Result.
var Null = Result{Kind: ResultNull}

// IntResult builds a Result for an integer value.
func IntResult(v int64) Result { return Result{Kind: ResultInt, IntValue: v} }

// FloatResult builds a Result for a floating point value.
func FloatResult(v float64) Result { return Result{Kind: ResultFloat, FloatValue: v} }

// StringResult builds a Result for a string value.
func StringResult(v string) Result { return Result{Kind: ResultString, StringValue: v} }

// BoolResult builds a Result for a boolean value.
func BoolResult(v bool) Result { return Result{Kind: ResultBoolean, BoolValue: v} }

// ListResult builds a Result for a JSON array.
func ListResult(values []Result) Result { return Result{Kind: ResultList, ListValue: values} }

// ObjectResult builds a Result for a JSON object, preserving the given field
// order verbatim (including duplicate keys, if any were passed in).
func ObjectResult(fields []ResultField) Result { return Result{Kind: ResultObject, ObjectValue: fields} }

// MarshalJSON implements json.Marshaler by streaming through jsoniter, writing
// object fields in the exact order stored rather than any order a Go map would
// impose.
func (r Result) MarshalJSON() ([]byte, error) {
	stream := resultJSON.BorrowStream(nil)
	defer resultJSON.ReturnStream(stream)

	r.writeTo(stream)
	if stream.Error != nil {
		return nil, stream.Error
	}

	buf := make([]byte, len(stream.Buffer()))
	copy(buf, stream.Buffer())
	return buf, nil
}

func (r Result) writeTo(stream *jsoniter.Stream) {
	switch r.Kind {
	case ResultNull:
		stream.WriteNil()
	case ResultInt:
		stream.WriteInt64(r.IntValue)
	case ResultFloat:
		stream.WriteFloat64(r.FloatValue)
	case ResultString:
		stream.WriteString(r.StringValue)
	case ResultBoolean:
		stream.WriteBool(r.BoolValue)
	case ResultList:
		stream.WriteArrayStart()
		for i, elem := range r.ListValue {
			if i > 0 {
				stream.WriteMore()
			}
			elem.writeTo(stream)
		}
		stream.WriteArrayEnd()
	case ResultObject:
		stream.WriteObjectStart()
		for i, field := range r.ObjectValue {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(field.Name)
			field.Value.writeTo(stream)
		}
		stream.WriteObjectEnd()
	}
}
