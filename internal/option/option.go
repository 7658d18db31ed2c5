// Package option implements Option, a value that is either Some(value) or None.
//
// The zero value of Option is None, so there is no need for a shared None
// instance: None carries no payload and every None of the same type is equal.
package option

import "fmt"

type Option[T any] struct {
	value T
	some  bool
}

// Some wraps value. Some(nil) is valid for nil-capable types.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None returns the empty Option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr maps a nil pointer to None and anything else to Some of the pointee.
// A pointer to a zero value, such as an empty string, is Some.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// FromOk mirrors the comma-ok idiom of map lookups and type assertions.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Unwrap returns the contained value and panics on None.
// Callers must check IsSome or use Match first.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic("option: unwrap called on a None")
	}
	return o.value
}

// Expect is Unwrap with a caller supplied panic message.
func (o Option[T]) Expect(message string) T {
	if !o.some {
		panic(message)
	}
	return o.value
}

func (o Option[T]) UnwrapOr(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// ToPtr returns a pointer to a copy of the value, or nil for None.
func (o Option[T]) ToPtr() *T {
	if !o.some {
		return nil
	}
	value := o.value
	return &value
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies fn to the value of a Some. fn is never called for None.
func Map[T, R any](o Option[T], fn func(T) R) Option[R] {
	if !o.some {
		return None[R]()
	}
	return Some(fn(o.value))
}

// Match calls onSome or onNone depending on the variant. Both branches are
// required.
func Match[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}
