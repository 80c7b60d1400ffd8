// Package results provides Result, a value that holds either the value an operation produced or the
// error it failed with, together with Of and OfValue which run a function and capture whatever it
// returns, fails with or panics with as a Result.
//
// A Result is one of two shapes, told apart by its discriminant:
//
//	Ok    success is true, Value carries the payload and Err is nil
//	Err   success is false, Err carries the payload and Value is the zero value
//
// Results are immutable values. Nothing in this package panics on a Result of the wrong shape, so
// callers must inspect IsOk or IsErr before using the payload.
//
// Of and OfValue are synchronous. The asynchronous counterpart, which captures the outcome of a
// Thenable such as a futures.Future, is futures.ResultOf.
package results

import "reflect"

const (
	successKey = "success"
	valueKey   = "value"
	errorKey   = "error"
)

// Result is the outcome of an operation: either a value of type T or an error.
// The zero Result is an Err with a nil error.
type Result[T any] struct {
	success bool
	value   T
	err     error
}

// Outcome is the view of a Result that does not depend on its value type.
// Every Result[T] and *Result[T] implements it.
type Outcome interface {
	IsOk() bool
	IsErr() bool
	Err() error
	// Any returns the payload: the value for an Ok and the error for an Err.
	Any() any
}

// Ok returns a successful Result carrying val.
func Ok[T any](val T) Result[T] {
	return Result[T]{success: true, value: val}
}

// Err returns a failed Result carrying err. err is stored as is.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// New converts the conventional (value, error) pair into a Result.
// A non-nil err yields an Err and val is dropped.
func New[T any](val T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(val)
}

// Value returns the success payload, or the zero value of T for an Err.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure payload, or nil for an Ok.
func (r Result[T]) Err() error {
	return r.err
}

// Get returns the Result as the conventional (value, error) pair.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r Result[T]) IsOk() bool {
	return r.success
}

func (r Result[T]) IsErr() bool {
	return !r.success
}

func (r Result[T]) Any() any {
	if r.success {
		return r.value
	}
	return r.err
}

// IsOk reports whether r is the success variant.
func IsOk[T any](r Result[T]) bool {
	return r.IsOk()
}

// IsErr reports whether r is the failure variant.
func IsErr[T any](r Result[T]) bool {
	return r.IsErr()
}

// IsResult reports whether x is a Result of any value type.
//
// Besides Result values and non-nil pointers to them, IsResult also recognises the generic form a
// Result takes after a round trip through JSON: a map holding a boolean "success" key and at least
// one of the "value" or "error" keys.
func IsResult(x any) bool {
	switch v := x.(type) {
	case nil:
		return false
	case map[string]any:
		return isResultObject(v)
	case Outcome:
		return !isNilPointer(v)
	default:
		return false
	}
}

func isResultObject(m map[string]any) bool {
	if _, ok := m[successKey].(bool); !ok {
		return false
	}
	_, hasValue := m[valueKey]
	_, hasError := m[errorKey]
	return hasValue || hasError
}

func isNilPointer(x any) bool {
	v := reflect.ValueOf(x)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
