package futures

import (
	"github.com/abevier/resultkit/results"
)

// ResultOf calls fn exactly once, on the calling go routine, and returns a Future of the outcome of the
// Thenable it produces.  The returned future completes with results.Ok when the thenable is fulfilled and with
// results.Err when it is rejected.
//
// If fn panics, or returns a nil thenable, the returned future is already completed with an Err when ResultOf
// returns.  The returned future never fails: Get only reports an error when the caller's context is done.
//
// ResultOf does not cancel the thenable's computation; wrap fn for that.
func ResultOf[T any](fn func() results.Thenable[T]) *Future[results.Result[T]] {
	f := New[results.Result[T]]()

	r := results.OfValue(fn)
	if r.IsErr() {
		f.Complete(results.Err[T](r.Err()))
		return f
	}

	t := r.Value()
	if !results.IsThenable[T](t) {
		f.Complete(results.Err[T](results.ErrNilThenable))
		return f
	}

	attached := results.OfValue(func() struct{} {
		t.Then(
			func(v T) {
				f.Complete(results.Ok(v))
			},
			func(err error) {
				f.Complete(results.Err[T](results.EnsureError(err)))
			},
		)
		return struct{}{}
	})
	if attached.IsErr() {
		f.Complete(results.Err[T](attached.Err()))
	}

	return f
}
