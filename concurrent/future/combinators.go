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

package future

// Map transforms a future's resolved value with fn, once it settles. It is
// derived entirely from Then, as the spec's §6 says map can be.
func Map(f Future, fn func(value interface{}) (interface{}, error)) Future {
	return f.Then(func(value interface{}) (Future, error) {
		out, err := fn(value)
		if err != nil {
			return nil, err
		}
		return Ready(out), nil
	})
}

// All waits for every future in a collection to settle and joins their results
// into a single slice in the same order they were given. If any input future
// fails, the whole join fails with the first error to arrive, once every input
// has settled. All blocks its caller until then and returns a settled future.
//
// Sibling field resolution in the executor is joined through All (§5,
// "Ordering guarantees"): All does not start any work itself, it only waits for
// the futures it is given and preserves response-key order while doing so.
func All(futures []Future) Future {
	if len(futures) == 0 {
		return Ready([]interface{}{})
	}

	type outcome struct {
		index int
		value interface{}
		err   error
	}

	results := make([]interface{}, len(futures))
	done := make(chan outcome, len(futures))

	for i, f := range futures {
		i, f := i, f
		go func() {
			value, err := f.Await()
			done <- outcome{index: i, value: value, err: err}
		}()
	}

	var firstErr error
	for range futures {
		o := <-done
		if o.err != nil {
			if firstErr == nil {
				firstErr = o.err
			}
			continue
		}
		results[o.index] = o.value
	}

	if firstErr != nil {
		return Err(firstErr)
	}
	return Ready(results)
}

// Recover intercepts a future's error, if any, and converts it into a value via
// handler. If the future succeeds, or handler itself returns an error, that result
// passes through unchanged. The top-level Execute entry point uses this to turn
// the single first error encountered during assembly into the {"errors": [...]}
// envelope rather than letting it propagate as a Go error out of Await.
func Recover(f Future, handler func(err error) (interface{}, error)) Future {
	value, err := f.Await()
	if err == nil {
		return Ready(value)
	}
	out, err := handler(err)
	if err != nil {
		return Err(err)
	}
	return Ready(out)
}
