package results

// Thenable is a value that settles later. Then registers the two handlers; once the value settles
// exactly one of them is called, exactly once. Implementations must not call either handler before
// Then returns.
type Thenable[T any] interface {
	Then(onFulfilled func(T), onRejected func(error))
}

// IsThenable reports whether x is a non-nil Thenable of T.
func IsThenable[T any](x any) bool {
	if x == nil {
		return false
	}
	_, ok := x.(Thenable[T])
	return ok && !isNilPointer(x)
}

// Of calls fn once and captures its outcome. A returned error or a panic yields an Err, the panic
// value normalized with EnsureError. Of never panics itself.
//
// Of blocks for as long as fn runs and nothing longer; for functions producing a Thenable use
// futures.ResultOf.
func Of[T any](fn func() (T, error)) (r Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			logPanic(p)
			r = Err[T](EnsureError(p))
		}
	}()

	val, err := fn()
	if err != nil {
		return Err[T](EnsureError(err))
	}
	return Ok(val)
}

// OfValue is Of for functions that can only fail by panicking.
func OfValue[T any](fn func() T) Result[T] {
	return Of(func() (T, error) {
		return fn(), nil
	})
}
