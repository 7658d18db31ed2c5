// Package result implements Result, the outcome of an operation that either
// succeeded with a value (Ok) or failed with an error value (Err).
//
// Business failures travel as Err values and are never panicked. Unwrapping the
// wrong variant is a programmer error and panics.
package result

import (
	"context"
	"fmt"

	"github.com/adanyl0v/go-todo-stories/internal/option"
)

type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value and panics on Err.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(fmt.Sprintf("result: unwrap called on an Err: %v", r.err))
	}
	return r.value
}

// UnwrapErr returns the error value and panics on Ok.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic("result: unwrap_err called on an Ok")
	}
	return r.err
}

// Expect is Unwrap with a caller supplied panic message.
func (r Result[T, E]) Expect(message string) T {
	if !r.ok {
		panic(fmt.Sprintf("%s: %v", message, r.err))
	}
	return r.value
}

func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// Ok projects the success value into an Option.
func (r Result[T, E]) Ok() option.Option[T] {
	if r.ok {
		return option.Some(r.value)
	}
	return option.None[T]()
}

// Err projects the error value into an Option.
func (r Result[T, E]) Err() option.Option[E] {
	if r.ok {
		return option.None[E]()
	}
	return option.Some(r.err)
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Map transforms the success value. fn is not called for Err.
func Map[T, R, E any](r Result[T, E], fn func(T) R) Result[R, E] {
	if !r.ok {
		return Err[R](r.err)
	}
	return Ok[R, E](fn(r.value))
}

// MapErr transforms the error value. fn is not called for Ok.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T](fn(r.err))
}

// Widen retypes the error channel without touching the error value, so that
// steps with different error types can be chained. E must be assignable to F
// (typically F is an interface E implements); otherwise Widen panics on Err.
func Widen[F, T, E any](r Result[T, E]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	f, ok := any(r.err).(F)
	if !ok {
		panic(fmt.Sprintf("result: cannot widen error %T to %T", r.err, f))
	}
	return Err[T](f)
}

// AndThen chains a fallible step. fn is only called for Ok, so the first Err
// in a chain is carried unchanged to its end.
func AndThen[T, R, E any](r Result[T, E], fn func(T) Result[R, E]) Result[R, E] {
	if !r.ok {
		return Err[R](r.err)
	}
	return fn(r.value)
}

// AndThenCtx is AndThen for steps that block on I/O, such as a repository
// round trip. It short-circuits on Err exactly like AndThen and does not check
// ctx itself: cancellation is left to fn.
func AndThenCtx[T, R, E any](ctx context.Context, r Result[T, E], fn func(context.Context, T) Result[R, E]) Result[R, E] {
	if !r.ok {
		return Err[R](r.err)
	}
	return fn(ctx, r.value)
}

// Match calls onOk or onErr depending on the variant. Both branches are
// required.
func Match[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// OkOr converts an Option into a Result: Some(v) becomes Ok(v) and None
// becomes Err(err).
func OkOr[T, E any](o option.Option[T], err E) Result[T, E] {
	if value, ok := o.Get(); ok {
		return Ok[T, E](value)
	}
	return Err[T](err)
}
