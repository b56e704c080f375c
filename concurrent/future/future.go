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

// Package future is the asynchronous effect the executor is parametric over (see
// §5 of the design notes, "Scheduling model"). It exposes exactly the two
// primitives a host needs to supply — Ready (return) and Then (bind) — plus the
// result-aware combinators the core uses internally: Map, derived from Then, and
// All and Recover, which wait on their inputs through Await.
//
// Unlike artemis's original Poll/Waker design — which models a cooperatively
// scheduled task system borrowed from Rust's Future — this package resolves a
// Future by running its producer on a goroutine and handing the result over a
// channel. That is a deliberate simplification: the spec only requires return and
// bind, and a host that wants true cooperative scheduling can still implement the
// Future interface itself and hand instances of it to resolvers (Then dispatches on
// the interface, not on any concrete struct in this package).
package future

// A Future represents a value that is being computed asynchronously. It is
// produced by a resolver's effect (or by one of this package's constructors) and
// consumed by Await or by chaining further computation onto it with Then.
type Future interface {
	// Then registers a continuation to run once the future settles. If the future
	// resolves to a value, cb is invoked with it and the Future it returns becomes
	// the result of the chain. If the future fails, cb is never invoked and the
	// error propagates to the chain's result directly — this is the
	// "result-aware" bind the executor relies on to short-circuit field and list
	// assembly on the first error (§7).
	Then(cb func(value interface{}) (Future, error)) Future

	// Await blocks the calling goroutine until the future settles and returns its
	// value or error. Hosts that run on a different scheduler (e.g. a cooperative
	// task system) are not required to call Await themselves; it exists so this
	// package's own combinators, and the top-level Execute entry point, have a way
	// to materialize a final result.
	Await() (interface{}, error)
}

// settled is a Future that has already finished, carrying either a value or an
// error. Ready and Err build this directly so that resolving a literal value never
// needs a goroutine or a channel.
type settled struct {
	value interface{}
	err   error
}

func (f *settled) Await() (interface{}, error) {
	return f.value, f.err
}

func (f *settled) Then(cb func(value interface{}) (Future, error)) Future {
	if f.err != nil {
		return f
	}
	next, err := cb(f.value)
	if err != nil {
		return &settled{err: err}
	}
	return next
}

// Ready lifts a plain value into the effect. This is the "return" primitive of the
// async effect contract (§6).
func Ready(value interface{}) Future {
	return &settled{value: value}
}

// Err lifts an error into the effect as an already-failed future.
func Err(err error) Future {
	return &settled{err: err}
}

// async is a Future backed by a goroutine computing its result.
type async struct {
	done chan struct{}
	value interface{}
	err   error
}

func (f *async) Await() (interface{}, error) {
	<-f.done
	return f.value, f.err
}

func (f *async) Then(cb func(value interface{}) (Future, error)) Future {
	return Go(func() (interface{}, error) {
		value, err := f.Await()
		if err != nil {
			return nil, err
		}
		next, err := cb(value)
		if err != nil {
			return nil, err
		}
		return next.Await()
	})
}

// Go runs fn on a new goroutine and returns a Future for its result. This is the
// effectful escape hatch a resolver uses when it genuinely needs to suspend (an I/O
// call, a database round-trip); see the NewIOField convenience constructor in the
// graphql package.
func Go(fn func() (interface{}, error)) Future {
	f := &async{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.value, f.err = fn()
	}()
	return f
}
