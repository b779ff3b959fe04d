package await

// A Result is the completion value of a computation: the value it
// produced, and the error that tagged its failure, if it failed.
type Result[T any] struct {
	Value T
	Err   error
}

// A Future is an asynchronous computation that completes with a
// [Result].
//
// The following types implement Future: [FutureFunc], [Job] and [Timer],
// as do the futures returned by [Value], [Failed], [Never], [Then],
// [Select], [Join] and [WaitGroup.Wait].
type Future[T any] interface {
	// Poll attempts to complete the computation.
	//
	// If the computation is complete, Poll returns its Result and true.
	// Otherwise Poll returns false, having first arranged for w, or a
	// copy of w, to be woken at least once after the computation becomes
	// able to progress. Reporting pending without arranging a wake stalls
	// the driver forever.
	//
	// Poll must not block; anything slow or blocking belongs behind [Go]
	// or [Submit]. A Future must not be polled by more than one
	// goroutine at a time.
	Poll(w Waker) (Result[T], bool)
}

// A FutureFunc is a function that implements the [Future] interface.
type FutureFunc[T any] func(w Waker) (Result[T], bool)

// Poll calls f(w).
func (f FutureFunc[T]) Poll(w Waker) (Result[T], bool) { return f(w) }

// Value returns a [Future] that is already complete with value v.
// Running it never parks.
func Value[T any](v T) FutureFunc[T] {
	return func(Waker) (Result[T], bool) {
		return Result[T]{Value: v}, true
	}
}

// Failed returns a [Future] that is already complete with error err.
func Failed[T any](err error) FutureFunc[T] {
	return func(Waker) (Result[T], bool) {
		return Result[T]{Err: err}, true
	}
}

// Never returns a [Future] that never completes.
//
// Running a Never alone parks the driving goroutine forever. It is only
// useful under [Select], as a branch that never wins.
func Never[T any]() FutureFunc[T] {
	return func(Waker) (Result[T], bool) {
		return Result[T]{}, false
	}
}

// Then returns a [Future] that completes f and then applies fn to its
// value. If f completes with an error, fn is not called and the error
// passes through.
//
// fn runs on the driving goroutine. The best practice is not to block;
// blocking work belongs behind [Go] or [Submit].
func Then[T, U any](f Future[T], fn func(v T) (U, error)) FutureFunc[U] {
	var (
		done bool
		out  Result[U]
	)
	return func(w Waker) (Result[U], bool) {
		if done {
			return out, true
		}
		res, ok := f.Poll(w)
		if !ok {
			return Result[U]{}, false
		}
		done = true
		if res.Err != nil {
			out = Result[U]{Err: res.Err}
			return out, true
		}
		out.Value, out.Err = fn(res.Value)
		return out, true
	}
}
