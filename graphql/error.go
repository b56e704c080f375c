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
	"fmt"

	"github.com/pkg/errors"
)

// ErrKind classifies an Error for hosts that want to branch on the failure mode
// rather than pattern-match its message. The message text, not the kind, is what
// the JSON envelope exposes (§7): Kind exists for host-side logging/metrics only.
type ErrKind uint8

// Enumeration of ErrKind.
const (
	// ErrKindOther is an unclassified error.
	ErrKindOther ErrKind = iota

	// ErrKindVariable is raised when a query references a variable that has no
	// entry in the supplied variable values.
	ErrKindVariable

	// ErrKindCoercion is raised while coercing an argument or variable value
	// against its declared type.
	ErrKindCoercion

	// ErrKindOperation is raised by operation selection/dispatch: no operation in
	// the document, or an unimplemented operation type.
	ErrKindOperation

	// ErrKindResolver wraps an error value returned by a user-supplied resolver.
	ErrKindResolver

	// ErrKindInternal marks a violated invariant inside the core itself (e.g. a
	// recovered resolver panic).
	ErrKindInternal
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindVariable:
		return "variable error"
	case ErrKindCoercion:
		return "coercion error"
	case ErrKindOperation:
		return "operation error"
	case ErrKindResolver:
		return "resolver error"
	case ErrKindInternal:
		return "internal error"
	}
	return "error"
}

// Error is the single error representation used throughout this module. Its
// Error() text is exactly what ends up at errors[0].message in the response
// envelope (§6, §7).
type Error struct {
	Kind    ErrKind
	Message string

	// cause is populated when the error wraps another (e.g. a recovered panic or a
	// resolver-returned error), so a host's logger can unwrap a stack trace via
	// github.com/pkg/errors even though the JSON envelope only ever shows Message.
	cause error
}

// NewError builds an unclassified Error with a formatted message.
func NewError(format string, a ...interface{}) *Error {
	return &Error{Kind: ErrKindOther, Message: fmt.Sprintf(format, a...)}
}

// NewKindError builds an Error of the given kind with a formatted message.
func NewKindError(kind ErrKind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

// NewCoercionError builds an ErrKindCoercion Error.
func NewCoercionError(format string, a ...interface{}) *Error {
	return NewKindError(ErrKindCoercion, format, a...)
}

// WrapResolverError classifies an error returned by a resolver as ErrKindResolver,
// surfacing its message verbatim per §7 point 4 ("User resolver errors — any Error
// returned from a resolver's effect; surfaced verbatim").
func WrapResolverError(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{Kind: ErrKindResolver, Message: err.Error(), cause: err}
}

// WrapInternalError classifies err (typically a recovered panic) as
// ErrKindInternal and attaches a stack trace via github.com/pkg/errors so a host's
// logger can report where the invariant broke, without that detail ever reaching
// the JSON envelope.
func WrapInternalError(err error) *Error {
	wrapped := errors.WithStack(err)
	return &Error{Kind: ErrKindInternal, Message: err.Error(), cause: wrapped}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Cause returns the wrapped error, if any, so github.com/pkg/errors.Cause and
// similar unwrap helpers work against it.
func (e *Error) Cause() error {
	return e.cause
}

// Unwrap supports errors.Is/errors.As from the standard library.
func (e *Error) Unwrap() error {
	return e.cause
}
