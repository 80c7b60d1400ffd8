package futures

import (
	"context"
	"testing"
	"time"

	"github.com/abevier/resultkit/results"
	"github.com/stretchr/testify/require"
)

// manualThenable settles by a direct call, outside of any Future.
type manualThenable[T any] struct {
	handlers chan func(T, error)
}

func newManualThenable[T any]() *manualThenable[T] {
	return &manualThenable[T]{handlers: make(chan func(T, error), 1)}
}

func (m *manualThenable[T]) Then(onFulfilled func(T), onRejected func(error)) {
	m.handlers <- func(v T, err error) {
		if err != nil {
			onRejected(err)
			return
		}
		onFulfilled(v)
	}
}

func (m *manualThenable[T]) settle(v T, err error) {
	h := <-m.handlers
	go h(v, err)
}

// rejectWithNil calls the rejection handler with a nil error.
type rejectWithNil[T any] struct{}

func (rejectWithNil[T]) Then(_ func(T), onRejected func(error)) {
	go onRejected(nil)
}

type panickingThenable[T any] struct{}

func (panickingThenable[T]) Then(func(T), func(error)) {
	panic("cannot attach")
}

func getResult[T any](t *testing.T, f *Future[results.Result[T]]) results.Result[T] {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	r, err := f.Get(ctx)
	require.NoError(t, err)
	return r
}

func isCompleted[T any](f *Future[T]) bool {
	select {
	case <-f.Done():
		return true
	default:
		return false
	}
}

func TestResultOfFulfilled(t *testing.T) {
	req := require.New(t)

	f := ResultOf(func() results.Thenable[int] {
		return Resolved(42)
	})

	req.Equal(results.Ok(42), getResult(t, f))
}

func TestResultOfRejected(t *testing.T) {
	req := require.New(t)

	f := ResultOf(func() results.Thenable[int] {
		return Rejected[int](ErrTest)
	})

	r := getResult(t, f)
	req.True(r.IsErr())
	req.Same(ErrTest, r.Err())
}

func TestResultOfRejectedWithPanic(t *testing.T) {
	req := require.New(t)

	f := ResultOf(func() results.Thenable[string] {
		return FromFunc(func() (string, error) {
			panic("nope")
		})
	})

	r := getResult(t, f)
	req.True(r.IsErr())
	req.EqualError(r.Err(), "nope")

	cause, ok := results.CauseOf(r.Err())
	req.True(ok)
	req.Equal("nope", cause)
}

func TestResultOfRejectedWithNil(t *testing.T) {
	req := require.New(t)

	f := ResultOf(func() results.Thenable[int] {
		return rejectWithNil[int]{}
	})

	r := getResult(t, f)
	req.True(r.IsErr())
	req.Error(r.Err())
}

func TestResultOfSynchronousPanic(t *testing.T) {
	req := require.New(t)

	f := ResultOf(func() results.Thenable[int] {
		panic(ErrTest)
	})

	req.True(isCompleted(f))
	req.Equal(results.Err[int](ErrTest), getResult(t, f))
}

func TestResultOfNilThenable(t *testing.T) {
	req := require.New(t)

	f := ResultOf(func() results.Thenable[int] {
		return nil
	})
	req.True(isCompleted(f))
	r := getResult(t, f)
	req.True(results.Error.Has(r.Err()))

	f = ResultOf(func() results.Thenable[int] {
		var nilFuture *Future[int]
		return nilFuture
	})
	req.True(isCompleted(f))
	r = getResult(t, f)
	req.ErrorIs(r.Err(), results.ErrNilThenable)
}

func TestResultOfThenPanics(t *testing.T) {
	req := require.New(t)

	f := ResultOf(func() results.Thenable[int] {
		return panickingThenable[int]{}
	})

	req.True(isCompleted(f))
	r := getResult(t, f)
	req.EqualError(r.Err(), "cannot attach")
}

func TestResultOfPending(t *testing.T) {
	req := require.New(t)

	m := newManualThenable[int]()
	calls := 0
	f := ResultOf(func() results.Thenable[int] {
		calls++
		return m
	})
	req.Equal(1, calls)
	req.False(isCompleted(f))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := f.Get(ctx)
	req.ErrorIs(err, context.DeadlineExceeded)

	m.settle(5, nil)
	req.Equal(results.Ok(5), getResult(t, f))
	req.Equal(1, calls)
}

func TestResultOfManualRejection(t *testing.T) {
	req := require.New(t)

	m := newManualThenable[int]()
	f := ResultOf(func() results.Thenable[int] {
		return m
	})

	m.settle(0, ErrTest)
	req.Equal(results.Err[int](ErrTest), getResult(t, f))
}

func TestResultOfSettlesIndependently(t *testing.T) {
	req := require.New(t)

	slow := New[int]()
	fast := New[int]()

	fs := ResultOf(func() results.Thenable[int] { return slow })
	ff := ResultOf(func() results.Thenable[int] { return fast })

	fast.Complete(2)
	req.Equal(results.Ok(2), getResult(t, ff))
	req.False(isCompleted(fs))

	slow.Complete(1)
	req.Equal(results.Ok(1), getResult(t, fs))
}

func TestResultOfResolveAll(t *testing.T) {
	req := require.New(t)

	fs := []*Future[results.Result[int]]{
		ResultOf(func() results.Thenable[int] { return Resolved(1) }),
		ResultOf(func() results.Thenable[int] { return Rejected[int](ErrTest) }),
		ResultOf(func() results.Thenable[int] { panic("boom") }),
	}

	rs, err := ResolveAll(context.Background(), fs)
	req.NoError(err)
	req.Len(rs, 3)

	for _, r := range rs {
		req.True(r.IsOk())
	}
	req.Equal(results.Ok(1), rs[0].Value())
	req.Equal(results.Err[int](ErrTest), rs[1].Value())
	req.EqualError(rs[2].Value().Err(), "boom")
}
